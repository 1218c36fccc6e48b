package graph

// TypeID is the stable, fully qualified identity of a type within a
// snapshot. Two nodes with the same TypeID are the same type.
type TypeID string

// Kind is the structural category of a type node.
type Kind string

// Recognized type kinds.
const (
	// KindPrimitive is a scalar type described by a PrimitiveKind.
	KindPrimitive Kind = "primitive"
	// KindEnum is a closed set of named values.
	KindEnum Kind = "enum"
	// KindArray exposes a single homogeneous element type.
	KindArray Kind = "array"
	// KindDictionary exposes key/value pairs.
	KindDictionary Kind = "dictionary"
	// KindObject is a plain record of named members.
	KindObject Kind = "object"
	// KindNullable is a value wrapper whose element may also be null.
	KindNullable Kind = "nullable"
	// KindInterface is an abstract contract implemented by other types.
	KindInterface Kind = "interface"
)

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPrimitive, KindEnum, KindArray, KindDictionary,
		KindObject, KindNullable, KindInterface:
		return true
	}
	return false
}

// PrimitiveKind identifies a scalar type with a fixed schema mapping.
type PrimitiveKind string

// Recognized primitive kinds.
const (
	Int8    PrimitiveKind = "int8"
	Int16   PrimitiveKind = "int16"
	Int32   PrimitiveKind = "int32"
	Int64   PrimitiveKind = "int64"
	UInt8   PrimitiveKind = "uint8"
	UInt16  PrimitiveKind = "uint16"
	UInt32  PrimitiveKind = "uint32"
	UInt64  PrimitiveKind = "uint64"
	Float32 PrimitiveKind = "float32"
	Float64 PrimitiveKind = "float64"
	Decimal PrimitiveKind = "decimal"
	Bool    PrimitiveKind = "bool"
	Char    PrimitiveKind = "char"
	String  PrimitiveKind = "string"
	Bytes   PrimitiveKind = "bytes"

	DateTime  PrimitiveKind = "datetime"
	Date      PrimitiveKind = "date"
	TimeOfDay PrimitiveKind = "time"
	Duration  PrimitiveKind = "duration"
	UUID      PrimitiveKind = "uuid"
	URI       PrimitiveKind = "uri"
)

// Valid reports whether p is a recognized primitive kind.
func (p PrimitiveKind) Valid() bool {
	switch p {
	case Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64,
		Float32, Float64, Decimal, Bool, Char, String, Bytes,
		DateTime, Date, TimeOfDay, Duration, UUID, URI:
		return true
	}
	return false
}

// Accessibility is a member's declared visibility.
type Accessibility string

// Recognized accessibility levels. The empty string is treated as
// public, so hand-written snapshots can omit the field.
const (
	Public   Accessibility = "public"
	Internal Accessibility = "internal"
	Private  Accessibility = "private"
)

// Valid reports whether a is a recognized accessibility level.
func (a Accessibility) Valid() bool {
	switch a {
	case "", Public, Internal, Private:
		return true
	}
	return false
}
