package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// OrderedMap is a string-keyed schema map that preserves insertion
// order through JSON and YAML marshaling. Go maps marshal with sorted
// keys, which would destroy member declaration order; the engine uses
// OrderedMap for properties and $defs so output order is stable and
// meaningful.
type OrderedMap struct {
	keys   []string
	values map[string]*Schema
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]*Schema)}
}

// Set inserts or replaces the entry for key. A replaced entry keeps its
// original position.
func (m *OrderedMap) Set(key string, s *Schema) {
	if m.values == nil {
		m.values = make(map[string]*Schema)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = s
}

// Get returns the entry for key and whether it exists.
func (m *OrderedMap) Get(key string) (*Schema, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	s, ok := m.values[key]
	return s, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *OrderedMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON emits the entries as a JSON object in insertion order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("schema: marshaling entry %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its source key order.
func (m *OrderedMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = make(map[string]*Schema)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("schema: expected string key, got %v", keyTok)
		}
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("schema: decoding entry %q: %w", key, err)
		}
		m.Set(key, &s)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML emits the entries as a YAML mapping in insertion order.
func (m *OrderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if m == nil {
		return node, nil
	}
	for _, key := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("schema: encoding entry %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping preserving its source key order.
func (m *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: expected YAML mapping, got %v", node.Kind)
	}
	m.keys = nil
	m.values = make(map[string]*Schema)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var s Schema
		if err := node.Content[i+1].Decode(&s); err != nil {
			return fmt.Errorf("schema: decoding entry %q: %w", key, err)
		}
		m.Set(key, &s)
	}
	return nil
}
