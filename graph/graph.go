package graph

import (
	"encoding/json"
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/typeschema/internal/maputil"
	"github.com/erraggy/typeschema/tserrors"
)

// Graph is one snapshot: a root type identity plus every type reachable
// from it. The engine holds only transient references to a Graph during
// a conversion and never mutates it.
type Graph struct {
	// Root is the identity of the type the schema document describes.
	Root TypeID `json:"root" yaml:"root"`
	// Types maps each identity to its node.
	Types map[TypeID]*TypeNode `json:"types" yaml:"types"`
}

// New builds a snapshot from nodes. Each node must carry its ID.
func New(root TypeID, nodes ...*TypeNode) *Graph {
	g := &Graph{Root: root, Types: make(map[TypeID]*TypeNode, len(nodes))}
	for _, n := range nodes {
		g.Types[n.ID] = n
	}
	return g
}

// Lookup returns the node for id and whether it exists.
func (g *Graph) Lookup(id TypeID) (*TypeNode, bool) {
	n, ok := g.Types[id]
	return n, ok
}

// RootNode returns the root type node and whether it exists.
func (g *Graph) RootNode() (*TypeNode, bool) {
	return g.Lookup(g.Root)
}

// Decode parses a snapshot from YAML or JSON bytes and normalizes node
// identities against the map keys.
func Decode(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("graph: decoding snapshot: %w", err)
	}
	if err := g.normalize(); err != nil {
		return nil, err
	}
	return &g, nil
}

// DecodeFile reads and decodes a snapshot file.
func DecodeFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodeYAML renders the snapshot as YAML.
func (g *Graph) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(g)
}

// EncodeJSON renders the snapshot as indented JSON.
func (g *Graph) EncodeJSON() ([]byte, error) {
	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// normalize fills node IDs from map keys and rejects mismatches.
func (g *Graph) normalize() error {
	for _, id := range maputil.SortedKeys(g.Types) {
		node := g.Types[id]
		if node == nil {
			return &tserrors.GraphError{TypeID: string(id), Message: "nil type node"}
		}
		if node.ID == "" {
			node.ID = id
		} else if node.ID != id {
			return &tserrors.GraphError{
				TypeID:  string(id),
				Message: fmt.Sprintf("node id %q does not match snapshot key", node.ID),
			}
		}
	}
	return nil
}

// Validate checks the snapshot for structural problems: a missing or
// dangling root, unresolved type references, and kind-specific shape
// requirements. It returns the first problem found, iterating types in
// sorted identity order so the reported error is deterministic.
func (g *Graph) Validate() error {
	if g.Root == "" {
		return &tserrors.GraphError{Message: "snapshot has no root type"}
	}
	if _, ok := g.Lookup(g.Root); !ok {
		return &tserrors.GraphError{Ref: string(g.Root), Message: "root type not present in snapshot"}
	}

	for _, id := range maputil.SortedKeys(g.Types) {
		node := g.Types[id]
		if err := g.validateNode(node); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) validateNode(node *TypeNode) error {
	fail := func(ref TypeID, msg string) error {
		return &tserrors.GraphError{TypeID: string(node.ID), Ref: string(ref), Message: msg}
	}

	if node.Name == "" {
		return fail("", "type has no name")
	}
	if !node.Kind.Valid() {
		return fail("", fmt.Sprintf("unrecognized kind %q", node.Kind))
	}

	switch node.Kind {
	case KindPrimitive:
		if !node.Primitive.Valid() || node.Primitive == "" {
			return fail("", fmt.Sprintf("unrecognized primitive kind %q", node.Primitive))
		}
	case KindArray, KindNullable:
		if node.Element == "" {
			return fail("", string(node.Kind)+" type has no element type")
		}
		if _, ok := g.Lookup(node.Element); !ok {
			return fail(node.Element, "element type not present in snapshot")
		}
	case KindDictionary:
		if node.Key == "" || node.Value == "" {
			return fail("", "dictionary type needs both key and value types")
		}
		if _, ok := g.Lookup(node.Key); !ok {
			return fail(node.Key, "key type not present in snapshot")
		}
		if _, ok := g.Lookup(node.Value); !ok {
			return fail(node.Value, "value type not present in snapshot")
		}
	case KindEnum:
		if node.EnumUnderlying != "" && !node.EnumUnderlying.Valid() {
			return fail("", fmt.Sprintf("unrecognized enum underlying kind %q", node.EnumUnderlying))
		}
	}

	if node.BaseType != "" {
		if _, ok := g.Lookup(node.BaseType); !ok {
			return fail(node.BaseType, "base type not present in snapshot")
		}
	}
	if node.DeclaringType != "" {
		if _, ok := g.Lookup(node.DeclaringType); !ok {
			return fail(node.DeclaringType, "declaring type not present in snapshot")
		}
	}
	for _, derived := range node.DerivedTypes {
		if _, ok := g.Lookup(derived); !ok {
			return fail(derived, "derived type not present in snapshot")
		}
	}

	for _, m := range node.Members {
		if m.Name == "" {
			return fail("", "member has no name")
		}
		if m.Type == "" {
			return fail("", fmt.Sprintf("member %q has no type", m.Name))
		}
		if _, ok := g.Lookup(m.Type); !ok {
			return fail(m.Type, fmt.Sprintf("member %q references a type not present in snapshot", m.Name))
		}
		if !m.Accessibility.Valid() {
			return fail("", fmt.Sprintf("member %q has unrecognized accessibility %q", m.Name, m.Accessibility))
		}
	}
	return nil
}
