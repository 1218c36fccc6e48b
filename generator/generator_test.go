package generator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/schema"
	"github.com/erraggy/typeschema/tserrors"
)

func stringNode() *graph.TypeNode {
	return &graph.TypeNode{ID: "sys.string", Name: "string", Kind: graph.KindPrimitive, Primitive: graph.String}
}

func int32Node() *graph.TypeNode {
	return &graph.TypeNode{ID: "sys.int32", Name: "int32", Kind: graph.KindPrimitive, Primitive: graph.Int32}
}

func boolNode() *graph.TypeNode {
	return &graph.TypeNode{ID: "sys.bool", Name: "bool", Kind: graph.KindPrimitive, Primitive: graph.Bool}
}

func member(name, typ string) *graph.MemberNode {
	return &graph.MemberNode{Name: name, Type: graph.TypeID(typ)}
}

func TestConvertDeterministic(t *testing.T) {
	g := graph.New("acme.Order",
		&graph.TypeNode{
			ID: "acme.Order", Name: "Order", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("id", "sys.string"),
				member("billing", "acme.Address"),
				member("shipping", "acme.Address"),
				member("total", "sys.int32"),
			},
		},
		&graph.TypeNode{
			ID: "acme.Address", Name: "Address", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("street", "sys.string"),
				member("city", "sys.string"),
			},
		},
		stringNode(), int32Node(),
	)

	first, err := Convert(g, WithID("https://example.com/order"))
	require.NoError(t, err)
	second, err := Convert(g, WithID("https://example.com/order"))
	require.NoError(t, err)

	a, err := first.MarshalJSONIndent()
	require.NoError(t, err)
	b, err := second.MarshalJSONIndent()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestConvertSharedTypeRegistersOnce(t *testing.T) {
	g := graph.New("acme.Order",
		&graph.TypeNode{
			ID: "acme.Order", Name: "Order", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("billing", "acme.Address"),
				member("shipping", "acme.Address"),
			},
		},
		&graph.TypeNode{
			ID: "acme.Address", Name: "Address", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("street", "sys.string")},
		},
		stringNode(),
	)

	res, err := ConvertWithResult(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Address"}, res.Definitions)

	billing, ok := res.Schema.Properties.Get("billing")
	require.True(t, ok)
	shipping, ok := res.Schema.Properties.Get("shipping")
	require.True(t, ok)
	assert.Equal(t, "#/$defs/Address", billing.Ref)
	assert.Equal(t, "#/$defs/Address", shipping.Ref)
}

func TestConvertRecursiveRootSelfReference(t *testing.T) {
	g := graph.New("acme.Category",
		&graph.TypeNode{
			ID: "acme.Category", Name: "Category", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("name", "sys.string"),
				{Name: "parent", Type: "acme.Category", Nullable: true},
			},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)

	parent, ok := doc.Properties.Get("parent")
	require.True(t, ok)
	require.Len(t, parent.OneOf, 2)
	assert.Equal(t, "#", parent.OneOf[0].Ref)
	assert.Equal(t, "null", parent.OneOf[1].Type)
	assert.Equal(t, []string{"name"}, doc.Required)
}

func TestConvertRecursiveDefinition(t *testing.T) {
	g := graph.New("acme.Tree",
		&graph.TypeNode{
			ID: "acme.Tree", Name: "Tree", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("root", "acme.TreeNode")},
		},
		&graph.TypeNode{
			ID: "acme.TreeNode", Name: "TreeNode", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("label", "sys.string"),
				member("children", "acme.TreeNode[]"),
			},
		},
		&graph.TypeNode{
			ID: "acme.TreeNode[]", Name: "TreeNode[]", Kind: graph.KindArray,
			Anonymous: true, Element: "acme.TreeNode",
		},
		stringNode(),
	)

	res, err := ConvertWithResult(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"TreeNode"}, res.Definitions)

	node, ok := res.Schema.Defs.Get("TreeNode")
	require.True(t, ok)
	children, ok := node.Properties.Get("children")
	require.True(t, ok)
	assert.Equal(t, "array", children.Type)
	assert.Equal(t, "#/$defs/TreeNode", children.Items.Ref)
	assert.Empty(t, res.Unsupported)
}

func TestConvertRequiredInference(t *testing.T) {
	forceOn := true
	forceOff := false
	g := graph.New("acme.Widget",
		&graph.TypeNode{
			ID: "acme.Widget", Name: "Widget", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("a", "sys.string"),
				{Name: "b", Type: "sys.string", Nullable: true},
				{Name: "c", Type: "sys.string", Nullable: true, Overrides: &graph.Overrides{Required: &forceOn}},
				{Name: "d", Type: "sys.string", Overrides: &graph.Overrides{Required: &forceOff}},
			},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, doc.Required)
	assert.Equal(t, 4, doc.Properties.Len())
}

func TestConvertPolymorphicUnion(t *testing.T) {
	g := graph.New("acme.Drawing",
		&graph.TypeNode{
			ID: "acme.Drawing", Name: "Drawing", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("shape", "acme.Shape")},
		},
		&graph.TypeNode{
			ID: "acme.Shape", Name: "Shape", Kind: graph.KindObject,
			Abstract:     true,
			DerivedTypes: []graph.TypeID{"acme.Circle", "acme.Square"},
			Members:      []*graph.MemberNode{member("id", "sys.string")},
		},
		&graph.TypeNode{
			ID: "acme.Circle", Name: "Circle", Kind: graph.KindObject,
			BaseType: "acme.Shape",
			Members:  []*graph.MemberNode{member("radius", "sys.int32")},
		},
		&graph.TypeNode{
			ID: "acme.Square", Name: "Square", Kind: graph.KindObject,
			BaseType: "acme.Shape",
			Members:  []*graph.MemberNode{member("side", "sys.int32")},
		},
		stringNode(), int32Node(),
	)

	res, err := ConvertWithResult(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shape", "Circle", "Square"}, res.Definitions)

	shape, ok := res.Schema.Defs.Get("Shape")
	require.True(t, ok)
	require.Len(t, shape.OneOf, 2)
	assert.Equal(t, "#/$defs/Circle", shape.OneOf[0].Ref)
	assert.Equal(t, "#/$defs/Square", shape.OneOf[1].Ref)

	// Inherited members flatten into each variant, basemost first.
	circle, ok := res.Schema.Defs.Get("Circle")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "radius"}, circle.Properties.Keys())
	assert.Equal(t, []string{"id", "radius"}, circle.Required)
}

func TestConvertConcreteUnionIncludesSelf(t *testing.T) {
	g := graph.New("acme.Animal",
		&graph.TypeNode{
			ID: "acme.Animal", Name: "Animal", Kind: graph.KindObject,
			DerivedTypes: []graph.TypeID{"acme.Dog"},
			Members:      []*graph.MemberNode{member("name", "sys.string")},
		},
		&graph.TypeNode{
			ID: "acme.Dog", Name: "Dog", Kind: graph.KindObject,
			BaseType: "acme.Animal",
			Members:  []*graph.MemberNode{member("breed", "sys.string")},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	require.Len(t, doc.OneOf, 2)
	assert.Equal(t, "object", doc.OneOf[0].Type)
	assert.Equal(t, []string{"name"}, doc.OneOf[0].Properties.Keys())
	assert.Equal(t, "#/$defs/Dog", doc.OneOf[1].Ref)
}

func TestConvertEnumModes(t *testing.T) {
	newGraph := func() *graph.Graph {
		return graph.New("acme.Paint",
			&graph.TypeNode{
				ID: "acme.Paint", Name: "Paint", Kind: graph.KindObject,
				Members: []*graph.MemberNode{member("color", "acme.Color")},
			},
			&graph.TypeNode{
				ID: "acme.Color", Name: "Color", Kind: graph.KindEnum,
				EnumUnderlying: graph.UInt8,
				EnumValues: []graph.EnumValue{
					{Name: "Red", Value: 0},
					{Name: "Green", Value: 1},
					{Name: "BlueGreen", Value: 2, DisplayName: "blue-green"},
				},
			},
		)
	}

	doc, err := Convert(newGraph())
	require.NoError(t, err)
	color, ok := doc.Defs.Get("Color")
	require.True(t, ok)
	assert.Equal(t, "string", color.Type)
	assert.Equal(t, []any{"Red", "Green", "blue-green"}, color.Enum)

	doc, err = Convert(newGraph(), WithEnumAsUnderlyingType(true))
	require.NoError(t, err)
	color, ok = doc.Defs.Get("Color")
	require.True(t, ok)
	assert.Equal(t, "integer", color.Type)
	require.NotNil(t, color.Minimum)
	require.NotNil(t, color.Maximum)
	assert.Equal(t, float64(0), *color.Minimum)
	assert.Equal(t, float64(255), *color.Maximum)
	assert.Equal(t, []any{int64(0), int64(1), int64(2)}, color.Enum)
}

func TestConvertRawOverrideVerbatim(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{
					Name: "payload", Type: "sys.string",
					Overrides: &graph.Overrides{
						RawSchema:   graph.RawFragment(`{"type": "string", "x-vendor": true, "description": "ignored by the engine"}`),
						Description: "never applied",
					},
				},
			},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"x-vendor":true`)
	assert.Contains(t, string(out), `"ignored by the engine"`)
	assert.NotContains(t, string(out), "never applied")
}

func TestConvertRawOverrideInvalid(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{
					Name: "payload", Type: "sys.string",
					Overrides: &graph.Overrides{RawSchema: graph.RawFragment(`{"type": `)},
				},
			},
		},
		stringNode(),
	)

	_, err := Convert(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrConfig))

	var cfgErr *tserrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "acme.Doc", cfgErr.TypeID)
	assert.Equal(t, "payload", cfgErr.Member)
}

func TestConvertDictionaryKeyModes(t *testing.T) {
	newGraph := func() *graph.Graph {
		return graph.New("acme.Stats",
			&graph.TypeNode{
				ID: "acme.Stats", Name: "Stats", Kind: graph.KindObject,
				Members: []*graph.MemberNode{member("byCode", "map[int32]string")},
			},
			&graph.TypeNode{
				ID: "map[int32]string", Name: "map[int32]string", Kind: graph.KindDictionary,
				Anonymous: true, Key: "sys.int32", Value: "sys.string",
			},
			stringNode(), int32Node(),
		)
	}

	res, err := ConvertWithResult(newGraph())
	require.NoError(t, err)
	byCode, ok := res.Schema.Properties.Get("byCode")
	require.True(t, ok)
	assert.Contains(t, byCode.Comment, "non-string dictionary key")
	assert.Nil(t, byCode.Type)
	require.Len(t, res.Unsupported, 1)
	assert.Equal(t, "non-string dictionary key", res.Unsupported[0].Reason)
	assert.Equal(t, "map[int32]string", res.Unsupported[0].TypeID)

	res, err = ConvertWithResult(newGraph(), WithDictionaryKeyMode(Permissive))
	require.NoError(t, err)
	byCode, ok = res.Schema.Properties.Get("byCode")
	require.True(t, ok)
	assert.Equal(t, "object", byCode.Type)
	assert.Equal(t, "dictionary<sys.int32, sys.string>; keys coerced to strings", byCode.Comment)
	value, ok := byCode.AdditionalProperties.(*schema.Schema)
	require.True(t, ok)
	assert.Equal(t, "string", value.Type)
	assert.Empty(t, res.Unsupported)
}

func TestConvertDictionaryCommentRecordsTypes(t *testing.T) {
	g := graph.New("acme.Labels",
		&graph.TypeNode{
			ID: "acme.Labels", Name: "Labels", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("labels", "map[string]string")},
		},
		&graph.TypeNode{
			ID: "map[string]string", Name: "map[string]string", Kind: graph.KindDictionary,
			Anonymous: true, Key: "sys.string", Value: "sys.string",
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	labels, ok := doc.Properties.Get("labels")
	require.True(t, ok)
	assert.Equal(t, "dictionary<sys.string, sys.string>", labels.Comment)
	assert.Nil(t, labels.PropertyNames)
}

func TestConvertDictionaryEnumKeys(t *testing.T) {
	g := graph.New("acme.Tally",
		&graph.TypeNode{
			ID: "acme.Tally", Name: "Tally", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("counts", "map[Color]int32")},
		},
		&graph.TypeNode{
			ID: "map[Color]int32", Name: "map[Color]int32", Kind: graph.KindDictionary,
			Anonymous: true, Key: "acme.Color", Value: "sys.int32",
		},
		&graph.TypeNode{
			ID: "acme.Color", Name: "Color", Kind: graph.KindEnum,
			EnumValues: []graph.EnumValue{{Name: "Red"}, {Name: "Green", Value: 1}},
		},
		int32Node(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	counts, ok := doc.Properties.Get("counts")
	require.True(t, ok)
	require.NotNil(t, counts.PropertyNames)
	assert.Equal(t, "#/$defs/Color", counts.PropertyNames.Ref)
	assert.Equal(t, "dictionary<acme.Color, sys.int32>", counts.Comment)
}

func TestConvertDictionaryEnumKeyUnderlyingMode(t *testing.T) {
	g := graph.New("acme.Tally",
		&graph.TypeNode{
			ID: "acme.Tally", Name: "Tally", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("counts", "map[Color]int32")},
		},
		&graph.TypeNode{
			ID: "map[Color]int32", Name: "map[Color]int32", Kind: graph.KindDictionary,
			Anonymous: true, Key: "acme.Color", Value: "sys.int32",
		},
		&graph.TypeNode{
			ID: "acme.Color", Name: "Color", Kind: graph.KindEnum,
			EnumUnderlying: graph.Int32,
			EnumValues:     []graph.EnumValue{{Name: "Red"}, {Name: "Green", Value: 1}},
		},
		int32Node(),
	)

	// Property names stay strings even when the enum itself renders as
	// its underlying integer type. A $ref to the integer definition
	// would make every non-empty map unsatisfiable.
	doc, err := Convert(g, WithEnumAsUnderlyingType(true))
	require.NoError(t, err)
	counts, ok := doc.Properties.Get("counts")
	require.True(t, ok)
	require.NotNil(t, counts.PropertyNames)
	assert.Empty(t, counts.PropertyNames.Ref)
	assert.Equal(t, "string", counts.PropertyNames.Type)
	assert.Equal(t, []any{"Red", "Green"}, counts.PropertyNames.Enum)
}

func TestConvertMaxDepth(t *testing.T) {
	g := graph.New("acme.Deep",
		&graph.TypeNode{
			ID: "acme.Deep", Name: "Deep", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("m", "arr1")},
		},
		&graph.TypeNode{ID: "arr1", Name: "arr1", Kind: graph.KindArray, Anonymous: true, Element: "arr2"},
		&graph.TypeNode{ID: "arr2", Name: "arr2", Kind: graph.KindArray, Anonymous: true, Element: "sys.string"},
		stringNode(),
	)

	res, err := ConvertWithResult(g, WithMaxDepth(2))
	require.NoError(t, err)
	require.Len(t, res.Unsupported, 1)
	assert.Equal(t, "maximum depth exceeded", res.Unsupported[0].Reason)
	assert.Equal(t, 3, res.Unsupported[0].Depth)

	m, ok := res.Schema.Properties.Get("m")
	require.True(t, ok)
	assert.Contains(t, m.Items.Items.Comment, "maximum depth exceeded")
}

func TestConvertNullableWrapper(t *testing.T) {
	g := graph.New("acme.Form",
		&graph.TypeNode{
			ID: "acme.Form", Name: "Form", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("age", "int32?")},
		},
		&graph.TypeNode{ID: "int32?", Name: "int32?", Kind: graph.KindNullable, Anonymous: true, Element: "sys.int32"},
		int32Node(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	age, ok := doc.Properties.Get("age")
	require.True(t, ok)
	require.Len(t, age.OneOf, 2)
	assert.Equal(t, "integer", age.OneOf[0].Type)
	assert.Equal(t, "null", age.OneOf[1].Type)
	// The wrapper's element may be null already; the use-site flag must
	// not double-wrap.
	assert.Equal(t, []string{"age"}, doc.Required)
}

func TestConvertAccessibilityModes(t *testing.T) {
	newGraph := func() *graph.Graph {
		return graph.New("acme.Account",
			&graph.TypeNode{
				ID: "acme.Account", Name: "Account", Kind: graph.KindObject,
				Members: []*graph.MemberNode{
					{Name: "id", Type: "sys.string"},
					{Name: "flags", Type: "sys.int32", Accessibility: graph.Internal},
					{Name: "secret", Type: "sys.string", Accessibility: graph.Private},
				},
			},
			stringNode(), int32Node(),
		)
	}

	tests := []struct {
		name string
		mode AccessibilityMode
		want []string
	}{
		{"public only", PublicOnly, []string{"id"}},
		{"public and internal", PublicAndInternal, []string{"id", "flags"}},
		{"all", All, []string{"id", "flags", "secret"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Convert(newGraph(), WithAccessibility(tt.mode))
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Properties.Keys())
		})
	}
}

func TestConvertMemberFilters(t *testing.T) {
	g := graph.New("acme.Account",
		&graph.TypeNode{
			ID: "acme.Account", Name: "Account", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{Name: "id", Type: "sys.string"},
				{Name: "counter", Type: "sys.int32", Static: true},
				{Name: "password", Type: "sys.string", WriteOnly: true},
				{Name: "legacy", Type: "sys.string", Overrides: &graph.Overrides{Ignore: true}},
				{Name: "createdAt", Type: "sys.string", ReadOnly: true},
			},
		},
		stringNode(), int32Node(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "createdAt"}, doc.Properties.Keys())
	created, _ := doc.Properties.Get("createdAt")
	assert.True(t, created.ReadOnly)
}

func TestConvertMetadataPrecedence(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{
					Name: "a", Type: "sys.string",
					Doc:       &graph.DocComment{Description: "from doc tag"},
					Overrides: &graph.Overrides{Description: "from override"},
				},
				{
					Name: "b", Type: "sys.string",
					Doc: &graph.DocComment{Summary: "summary text"},
				},
				{
					Name: "c", Type: "sys.string",
					Doc: &graph.DocComment{Summary: "short name", Remarks: "longer prose"},
				},
			},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)

	a, _ := doc.Properties.Get("a")
	assert.Equal(t, "from override", a.Description)
	b, _ := doc.Properties.Get("b")
	assert.Equal(t, "summary text", b.Description)
	c, _ := doc.Properties.Get("c")
	assert.Equal(t, "short name", c.Title)
	assert.Equal(t, "longer prose", c.Description)
}

func TestConvertMemberDocDecoratesOccurrence(t *testing.T) {
	g := graph.New("acme.Order",
		&graph.TypeNode{
			ID: "acme.Order", Name: "Order", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{
					Name: "billing", Type: "acme.Address",
					Doc: &graph.DocComment{Summary: "Where the invoice goes."},
				},
				member("shipping", "acme.Address"),
			},
		},
		&graph.TypeNode{
			ID: "acme.Address", Name: "Address", Kind: graph.KindObject,
			Doc:     &graph.DocComment{Summary: "A postal address."},
			Members: []*graph.MemberNode{member("street", "sys.string")},
		},
		stringNode(),
	)

	doc, err := Convert(g)
	require.NoError(t, err)

	// The type's own documentation lands on the shared definition; the
	// referencing member's documentation decorates its occurrence site.
	def, ok := doc.Defs.Get("Address")
	require.True(t, ok)
	assert.Equal(t, "A postal address.", def.Description)

	billing, _ := doc.Properties.Get("billing")
	assert.Equal(t, "#/$defs/Address", billing.Ref)
	assert.Equal(t, "Where the invoice goes.", billing.Description)

	shipping, _ := doc.Properties.Get("shipping")
	assert.Equal(t, "#/$defs/Address", shipping.Ref)
	assert.Empty(t, shipping.Description)
}

func TestConvertDocCommentsDisabled(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{Name: "a", Type: "sys.string", Doc: &graph.DocComment{Summary: "summary text"}},
			},
		},
		stringNode(),
	)

	doc, err := Convert(g, WithDocComments(false))
	require.NoError(t, err)
	a, _ := doc.Properties.Get("a")
	assert.Empty(t, a.Description)
}

func TestConvertTitleFromNames(t *testing.T) {
	g := graph.New("acme.Invoice",
		&graph.TypeNode{
			ID: "acme.Invoice", Name: "Invoice", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("line", "acme.OrderLineItem")},
		},
		&graph.TypeNode{
			ID: "acme.OrderLineItem", Name: "OrderLineItem", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("sku", "sys.string")},
		},
		stringNode(),
	)

	doc, err := Convert(g, WithTitleFromNames(true))
	require.NoError(t, err)
	assert.Equal(t, "Invoice", doc.Title)
	line, ok := doc.Defs.Get("OrderLineItem")
	require.True(t, ok)
	assert.Equal(t, "Order Line Item", line.Title)
}

func TestConvertConflictingRangeOverride(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				{
					Name: "n", Type: "sys.int32",
					Overrides: &graph.Overrides{Minimum: schema.FloatPtr(10), Maximum: schema.FloatPtr(1)},
				},
			},
		},
		int32Node(),
	)

	_, err := Convert(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrConfig))
}

func TestConvertOptionValidation(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject},
	)

	_, err := Convert(g, WithMaxDepth(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrConfig))
}

func TestConvertNilSnapshot(t *testing.T) {
	_, err := Convert(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrGraph))
}

func TestConvertDocumentEnvelope(t *testing.T) {
	g := graph.New("acme.Doc",
		&graph.TypeNode{
			ID: "acme.Doc", Name: "Doc", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("ok", "sys.bool")},
		},
		boolNode(),
	)

	doc, err := Convert(g, WithID("https://example.com/doc"), WithAdditionalProperties(true))
	require.NoError(t, err)
	assert.Equal(t, schema.Draft202012, doc.Dialect)
	assert.Equal(t, "https://example.com/doc", doc.ID)
	assert.Nil(t, doc.AdditionalProperties)
	assert.Nil(t, doc.Defs)
}
