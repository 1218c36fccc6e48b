package graph

import (
	"encoding/json"
	"fmt"

	yaml "go.yaml.in/yaml/v4"
)

// RawFragment is an opaque schema payload carried through snapshots
// untouched. It behaves like json.RawMessage in JSON and accepts either
// a string or an inline mapping in YAML.
type RawFragment []byte

// MarshalJSON emits the payload verbatim.
func (r RawFragment) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON stores the payload verbatim.
func (r *RawFragment) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// MarshalYAML emits the payload as a string scalar.
func (r RawFragment) MarshalYAML() (any, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return string(r), nil
}

// UnmarshalYAML accepts either a string scalar containing JSON, or an
// inline mapping which is re-encoded as JSON. Note that re-encoding an
// inline mapping sorts its keys; use the string form when key order in
// the raw payload matters.
func (r *RawFragment) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = RawFragment(node.Value)
		return nil
	case yaml.MappingNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		*r = data
		return nil
	default:
		return fmt.Errorf("graph: rawSchema must be a string or mapping, got %v", node.Kind)
	}
}
