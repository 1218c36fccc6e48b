package graph

// TypeNode describes one type in a snapshot. Nodes are immutable once
// handed to the engine; the engine never mutates them.
type TypeNode struct {
	// ID is the fully qualified identity. Filled from the snapshot map
	// key during decoding when omitted.
	ID TypeID `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the simple (unqualified) name used for definition naming.
	Name string `json:"name" yaml:"name"`
	// Namespace is the enclosing namespace, if any.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	// Kind is the structural category.
	Kind Kind `json:"kind" yaml:"kind"`
	// Primitive identifies the scalar mapping for KindPrimitive nodes.
	Primitive PrimitiveKind `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	// Anonymous marks synthetic types (for example a front end's slice
	// or map instantiations) that inline at every occurrence instead of
	// registering a named definition.
	Anonymous bool `json:"anonymous,omitempty" yaml:"anonymous,omitempty"`

	// Members lists the declared members in declaration order.
	Members []*MemberNode `json:"members,omitempty" yaml:"members,omitempty"`

	// BaseType is the direct base type, if any.
	BaseType TypeID `json:"baseType,omitempty" yaml:"baseType,omitempty"`
	// DerivedTypes lists the known derived types in declaration order.
	// Order is preserved into polymorphic union output.
	DerivedTypes []TypeID `json:"derivedTypes,omitempty" yaml:"derivedTypes,omitempty"`
	// Abstract marks a type that is never instantiated directly.
	Abstract bool `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	// DeclaringType is the enclosing type for nested declarations.
	// Nested variant types are named DeclaringName_Name in the
	// definitions table to keep same-named variants apart.
	DeclaringType TypeID `json:"declaringType,omitempty" yaml:"declaringType,omitempty"`
	// TraverseBases switches this hierarchy member from emitting a
	// oneOf union of derived types to flattening inherited members into
	// its own object schema.
	TraverseBases bool `json:"traverseBases,omitempty" yaml:"traverseBases,omitempty"`

	// Element is the element type for KindArray and KindNullable nodes.
	Element TypeID `json:"element,omitempty" yaml:"element,omitempty"`
	// Key and Value are the pair types for KindDictionary nodes.
	Key   TypeID `json:"key,omitempty" yaml:"key,omitempty"`
	Value TypeID `json:"value,omitempty" yaml:"value,omitempty"`

	// EnumValues lists the values of a KindEnum node in declaration order.
	EnumValues []EnumValue `json:"enumValues,omitempty" yaml:"enumValues,omitempty"`
	// EnumUnderlying is the storage primitive of a KindEnum node.
	// Defaults to Int32 when empty.
	EnumUnderlying PrimitiveKind `json:"enumUnderlying,omitempty" yaml:"enumUnderlying,omitempty"`

	// Doc is the attached free-text documentation, if any.
	Doc *DocComment `json:"doc,omitempty" yaml:"doc,omitempty"`
	// Overrides are the attached declarative overrides, if any.
	Overrides *Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// EnumValue is one named value of an enumeration.
type EnumValue struct {
	// Name is the declared member name.
	Name string `json:"name" yaml:"name"`
	// Value is the underlying numeric value.
	Value int64 `json:"value" yaml:"value"`
	// DisplayName overrides Name in string-enum output when non-empty.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// MemberNode describes one member of an object or interface type.
// Ordinal position is the index within TypeNode.Members.
type MemberNode struct {
	// Name is the member's declared name, used as the property key.
	Name string `json:"name" yaml:"name"`
	// Type is the declared type reference.
	Type TypeID `json:"type" yaml:"type"`
	// Nullable is the use-site declared nullability. Non-nullable
	// members default to required.
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	// Static members belong to the type, not instances, and are always
	// excluded from generation.
	Static bool `json:"static,omitempty" yaml:"static,omitempty"`
	// WriteOnly marks a member with no readable accessor. Such members
	// are structurally excluded from generation.
	WriteOnly bool `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`
	// ReadOnly marks a member with no writable accessor. Carried into
	// the emitted fragment's readOnly keyword.
	ReadOnly bool `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	// Accessibility is the declared visibility; empty means public.
	Accessibility Accessibility `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`

	// Doc is the attached free-text documentation, if any.
	Doc *DocComment `json:"doc,omitempty" yaml:"doc,omitempty"`
	// Overrides are the attached declarative overrides, if any.
	Overrides *Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Overrides is the declarative override record a front end attaches to
// a type or member. It is plain data: the engine never parses
// annotation syntax, it only consumes this normalized form.
type Overrides struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Pattern     string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Required forces the required state both ways; nil leaves the
	// structural default in place.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Ignore excludes the member from the parent's property set
	// entirely. Checked before any other metadata is computed.
	Ignore bool `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	Const   any `json:"const,omitempty" yaml:"const,omitempty"`
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
	Example any `json:"example,omitempty" yaml:"example,omitempty"`

	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`

	MinLength     *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength     *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems      *int `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems      *int `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinProperties *int `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties *int `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`

	UniqueItems bool `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	Deprecated  bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// RawSchema is an opaque fragment that fully replaces generated
	// output for this node. When present, no other field is consulted.
	RawSchema RawFragment `json:"rawSchema,omitempty" yaml:"rawSchema,omitempty"`
}

// DocComment is free-text documentation segmented into the recognized
// sub-vocabulary. Front ends either fill the tagged fields directly or
// use ParseDocComment to segment raw text.
type DocComment struct {
	// Summary is the leading untagged text, used as a fallback title or
	// description.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	// Remarks is supplementary prose, used as a fallback description
	// when Summary already serves as the title.
	Remarks string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	// Title, Description, and Example are the recognized structured tags.
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
}

// Empty reports whether the comment carries no content at all.
func (d *DocComment) Empty() bool {
	return d == nil || (d.Summary == "" && d.Remarks == "" &&
		d.Title == "" && d.Description == "" && d.Example == "")
}
