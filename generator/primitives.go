package generator

import (
	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/schema"
)

// primitiveSpec is the fixed schema mapping for one scalar kind.
type primitiveSpec struct {
	typ       string
	format    string
	minimum   float64
	maximum   float64
	hasBounds bool
	minLength int
	maxLength int
	hasLength bool
}

// primitiveTable maps every scalar kind to its JSON Schema rendering.
// Integer widths up to 32 bits carry explicit storage bounds; 64-bit
// widths carry only a format hint because their extremes are not exact
// in a JSON number. Unsigned 64-bit still pins the lower bound at zero.
var primitiveTable = map[graph.PrimitiveKind]primitiveSpec{
	graph.Int8:    {typ: "integer", minimum: -128, maximum: 127, hasBounds: true},
	graph.Int16:   {typ: "integer", minimum: -32768, maximum: 32767, hasBounds: true},
	graph.Int32:   {typ: "integer", format: "int32", minimum: -2147483648, maximum: 2147483647, hasBounds: true},
	graph.Int64:   {typ: "integer", format: "int64"},
	graph.UInt8:   {typ: "integer", minimum: 0, maximum: 255, hasBounds: true},
	graph.UInt16:  {typ: "integer", minimum: 0, maximum: 65535, hasBounds: true},
	graph.UInt32:  {typ: "integer", minimum: 0, maximum: 4294967295, hasBounds: true},
	graph.UInt64:  {typ: "integer", format: "int64", minimum: 0},
	graph.Float32: {typ: "number", format: "float"},
	graph.Float64: {typ: "number", format: "double"},
	graph.Decimal: {typ: "number", format: "decimal"},

	graph.Bool: {typ: "boolean"},

	graph.Char:      {typ: "string", minLength: 1, maxLength: 1, hasLength: true},
	graph.String:    {typ: "string"},
	graph.Bytes:     {typ: "string", format: "byte"},
	graph.DateTime:  {typ: "string", format: "date-time"},
	graph.Date:      {typ: "string", format: "date"},
	graph.TimeOfDay: {typ: "string", format: "time"},
	graph.Duration:  {typ: "string", format: "duration"},
	graph.UUID:      {typ: "string", format: "uuid"},
	graph.URI:       {typ: "string", format: "uri"},
}

// primitiveSchema builds a fresh fragment for a scalar kind. Returns
// nil for kinds the table does not know.
func primitiveSchema(kind graph.PrimitiveKind) *schema.Schema {
	spec, ok := primitiveTable[kind]
	if !ok {
		return nil
	}
	s := &schema.Schema{Type: spec.typ, Format: spec.format}
	if spec.hasBounds {
		s.Minimum = schema.FloatPtr(spec.minimum)
		s.Maximum = schema.FloatPtr(spec.maximum)
	} else if kind == graph.UInt64 {
		s.Minimum = schema.FloatPtr(0)
	}
	if spec.hasLength {
		s.MinLength = schema.IntPtr(spec.minLength)
		s.MaxLength = schema.IntPtr(spec.maxLength)
	}
	return s
}

// integerKind reports whether a primitive kind is an integer width
// usable as an enum's underlying storage type.
func integerKind(kind graph.PrimitiveKind) bool {
	switch kind {
	case graph.Int8, graph.Int16, graph.Int32, graph.Int64,
		graph.UInt8, graph.UInt16, graph.UInt32, graph.UInt64:
		return true
	default:
		return false
	}
}
