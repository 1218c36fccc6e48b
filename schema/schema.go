package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// Draft202012 is the dialect identifier emitted in $schema.
const Draft202012 = "https://json-schema.org/draft/2020-12/schema"

// Schema represents a JSON Schema Draft 2020-12 fragment or document.
//
// Field order mirrors the order keywords appear in marshaled output.
// A Schema with a non-nil Raw payload marshals that payload verbatim
// and ignores every other field.
type Schema struct {
	// Core
	Dialect string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	ID      string `json:"$id,omitempty" yaml:"$id,omitempty"`
	Ref     string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Comment string `json:"$comment,omitempty" yaml:"$comment,omitempty"`

	// Metadata
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
	Examples    []any  `json:"examples,omitempty" yaml:"examples,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	WriteOnly   bool   `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`

	// Type validation
	Type   any    `json:"type,omitempty" yaml:"type,omitempty"` // string or []string
	Enum   []any  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Const  any    `json:"const,omitempty" yaml:"const,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`

	// String validation
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Array validation
	Items       *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`

	// Object validation
	Properties           *OrderedMap `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string    `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any         `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"` // *Schema or bool
	PropertyNames        *Schema     `json:"propertyNames,omitempty" yaml:"propertyNames,omitempty"`
	MinProperties        *int        `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties        *int        `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`

	// Composition
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty" yaml:"not,omitempty"`

	// Definitions table. Emitted last so documents read top-down.
	Defs *OrderedMap `json:"$defs,omitempty" yaml:"$defs,omitempty"`

	// Raw, when non-nil, is a verbatim fragment that replaces all other
	// fields during marshaling. Used for raw-schema overrides.
	Raw json.RawMessage `json:"-" yaml:"-"`
}

// NewRef returns a schema fragment that is a pointer to a named
// definition in the document's $defs table.
func NewRef(name string) *Schema {
	return &Schema{Ref: "#/$defs/" + name}
}

// RootRef is the self-reference emitted when a type recursively
// references the document root.
func RootRef() *Schema {
	return &Schema{Ref: "#"}
}

// ParseFragment validates and wraps a raw JSON payload as a verbatim
// schema fragment. The payload must be a JSON object.
func ParseFragment(raw []byte) (*Schema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("schema: empty raw fragment")
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("schema: raw fragment is not valid JSON")
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("schema: raw fragment must be a JSON object")
	}
	return &Schema{Raw: json.RawMessage(trimmed)}, nil
}

// schemaAlias avoids infinite recursion in the custom marshalers.
type schemaAlias Schema

// MarshalJSON emits the schema, or the Raw payload verbatim when set.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if s.Raw != nil {
		var buf bytes.Buffer
		if err := json.Compact(&buf, s.Raw); err != nil {
			return nil, fmt.Errorf("schema: compacting raw fragment: %w", err)
		}
		return buf.Bytes(), nil
	}
	return json.Marshal((*schemaAlias)(s))
}

// UnmarshalJSON decodes a schema fragment.
func (s *Schema) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, (*schemaAlias)(s))
}

// MarshalYAML emits the schema, expanding a Raw payload into plain YAML
// values when set.
func (s *Schema) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	if s.Raw != nil {
		var v any
		if err := json.Unmarshal(s.Raw, &v); err != nil {
			return nil, fmt.Errorf("schema: decoding raw fragment: %w", err)
		}
		return v, nil
	}
	return (*schemaAlias)(s), nil
}

// MarshalJSONIndent renders the schema as indented JSON with a trailing
// newline, suitable for writing to a file.
func (s *Schema) MarshalJSONIndent() ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// EncodeYAML renders the schema as a YAML document.
func (s *Schema) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// IntPtr returns a pointer to v. Convenience for optional integer keywords.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v. Convenience for optional numeric keywords.
func FloatPtr(v float64) *float64 { return &v }
