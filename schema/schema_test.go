package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "go.yaml.in/yaml/v4"
)

func TestMarshalJSON_FieldOrder(t *testing.T) {
	props := NewOrderedMap()
	props.Set("id", &Schema{Type: "integer"})
	props.Set("name", &Schema{Type: "string"})

	s := &Schema{
		Dialect:              Draft202012,
		Title:                "User",
		Type:                 "object",
		Properties:           props,
		Required:             []string{"id"},
		AdditionalProperties: false,
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)

	want := `{"$schema":"https://json-schema.org/draft/2020-12/schema",` +
		`"title":"User","type":"object",` +
		`"properties":{"id":{"type":"integer"},"name":{"type":"string"}},` +
		`"required":["id"],"additionalProperties":false}`
	assert.JSONEq(t, want, string(out))
	// Property order must survive marshaling verbatim, not just semantically.
	assert.Contains(t, string(out), `"properties":{"id":{"type":"integer"},"name":{"type":"string"}}`)
}

func TestMarshalJSON_RawShortCircuits(t *testing.T) {
	s, err := ParseFragment([]byte(`{ "type": "string", "x-custom": true }`))
	require.NoError(t, err)

	// Fields set alongside Raw must not leak into output.
	s.Title = "ignored"
	s.Type = "object"

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"string","x-custom":true}`, string(out))
}

func TestParseFragment_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"invalid json", `{"type":`},
		{"not an object", `["a","b"]`},
		{"bare scalar", `"string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFragment([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestOrderedMap_SetPreservesPosition(t *testing.T) {
	m := NewOrderedMap()
	m.Set("b", &Schema{Type: "string"})
	m.Set("a", &Schema{Type: "integer"})
	m.Set("b", &Schema{Type: "boolean"}) // replace keeps position

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	got, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, "boolean", got.Type)
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMap_JSONRoundTrip(t *testing.T) {
	src := `{"zeta":{"type":"string"},"alpha":{"type":"integer"},"mid":{"type":"boolean"}}`

	var m OrderedMap
	require.NoError(t, json.Unmarshal([]byte(src), &m))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestOrderedMap_EmptyMarshalsAsObject(t *testing.T) {
	out, err := json.Marshal(NewOrderedMap())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestEncodeYAML_OrderAndRaw(t *testing.T) {
	props := NewOrderedMap()
	props.Set("z", &Schema{Type: "string"})
	raw, err := ParseFragment([]byte(`{"enum":[1,2]}`))
	require.NoError(t, err)
	props.Set("a", raw)

	s := &Schema{Type: "object", Properties: props}
	out, err := s.EncodeYAML()
	require.NoError(t, err)

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &node))

	text := string(out)
	// "z" must appear before "a" despite reverse-alphabetical order.
	assert.Less(t, indexOf(text, "z:"), indexOf(text, "a:"))
	assert.Contains(t, text, "enum:")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestMarshalJSONIndent_TrailingNewline(t *testing.T) {
	s := &Schema{Type: "string"}
	out, err := s.MarshalJSONIndent()
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestNewRef(t *testing.T) {
	assert.Equal(t, "#/$defs/Order", NewRef("Order").Ref)
	assert.Equal(t, "#", RootRef().Ref)
}

func TestSchemaJSONRoundTrip(t *testing.T) {
	src := &Schema{
		Type:      "integer",
		Minimum:   FloatPtr(0),
		Maximum:   FloatPtr(255),
		MinLength: IntPtr(1),
	}
	data, err := json.Marshal(src)
	require.NoError(t, err)

	var back Schema
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "integer", back.Type)
	require.NotNil(t, back.Minimum)
	assert.Equal(t, 0.0, *back.Minimum)
	require.NotNil(t, back.Maximum)
	assert.Equal(t, 255.0, *back.Maximum)
}
