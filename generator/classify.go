package generator

import "github.com/erraggy/typeschema/graph"

// ShapeKind is the structural category driving fragment construction.
// It is classified once per node occurrence and dispatched exhaustively
// in the node builder.
type ShapeKind int

const (
	// ShapeUnsupported is a node the classifier cannot categorize.
	ShapeUnsupported ShapeKind = iota
	// ShapeRawOverride carries a verbatim raw-schema payload.
	ShapeRawOverride
	// ShapeNullable is a value wrapper whose element may be null.
	ShapeNullable
	// ShapeEnum is a closed set of named values.
	ShapeEnum
	// ShapeSequence exposes a single homogeneous element type.
	ShapeSequence
	// ShapeMap exposes string-keyed key/value pairs.
	ShapeMap
	// ShapePolymorphicRoot heads a closed hierarchy of derived types.
	ShapePolymorphicRoot
	// ShapePlainObject is a record of named members.
	ShapePlainObject
	// ShapePrimitive is a scalar with a fixed schema mapping.
	ShapePrimitive
)

// String returns a short name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRawOverride:
		return "raw-override"
	case ShapeNullable:
		return "nullable"
	case ShapeEnum:
		return "enum"
	case ShapeSequence:
		return "sequence"
	case ShapeMap:
		return "map"
	case ShapePolymorphicRoot:
		return "polymorphic-root"
	case ShapePlainObject:
		return "plain-object"
	case ShapePrimitive:
		return "primitive"
	default:
		return "unsupported"
	}
}

// classify categorizes a type node. Rules apply in order: a raw
// override beats everything; the node's own structural kind decides the
// rest. A hierarchy root only becomes ShapePolymorphicRoot when it has
// derived types, is not switched to base traversal, and (for
// interfaces) interface unions are enabled; otherwise it falls through
// to ShapePlainObject with inherited members flattened in.
func classify(node *graph.TypeNode, cfg *config) ShapeKind {
	if node.Overrides != nil && len(node.Overrides.RawSchema) > 0 {
		return ShapeRawOverride
	}

	switch node.Kind {
	case graph.KindNullable:
		return ShapeNullable
	case graph.KindEnum:
		return ShapeEnum
	case graph.KindArray:
		return ShapeSequence
	case graph.KindDictionary:
		return ShapeMap
	case graph.KindObject, graph.KindInterface:
		if len(node.DerivedTypes) > 0 && !node.TraverseBases {
			if node.Kind == graph.KindObject || cfg.includeInterfaces {
				return ShapePolymorphicRoot
			}
		}
		return ShapePlainObject
	case graph.KindPrimitive:
		return ShapePrimitive
	default:
		return ShapeUnsupported
	}
}

// stringKeyKinds are the primitive kinds representable as JSON object
// property names without loss.
var stringKeyKinds = map[graph.PrimitiveKind]bool{
	graph.String:   true,
	graph.Char:     true,
	graph.UUID:     true,
	graph.URI:      true,
	graph.Date:     true,
	graph.DateTime: true,
	graph.Duration: true,
}

// stringRepresentableKey reports whether a dictionary key type can
// serve as a JSON object property name. String-like primitives qualify,
// as do enums (their value names are strings).
func stringRepresentableKey(key *graph.TypeNode) bool {
	switch key.Kind {
	case graph.KindPrimitive:
		return stringKeyKinds[key.Primitive]
	case graph.KindEnum:
		return true
	default:
		return false
	}
}
