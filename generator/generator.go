package generator

import (
	"fmt"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/schema"
	"github.com/erraggy/typeschema/tserrors"
)

// Result is the full outcome of one conversion.
type Result struct {
	// Schema is the generated document.
	Schema *schema.Schema
	// Unsupported records every occurrence the engine replaced with a
	// marker fragment, in the order they were encountered.
	Unsupported []*tserrors.UnsupportedShapeError
	// Definitions lists the $defs entry names in registration order.
	Definitions []string
}

// Convert generates a JSON Schema document for the snapshot's root
// type. The result is deterministic: the same snapshot and options
// always produce byte-identical output.
func Convert(g *graph.Graph, opts ...Option) (*schema.Schema, error) {
	res, err := ConvertWithResult(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Schema, nil
}

// ConvertWithResult generates a document and also reports the
// unsupported occurrences recorded during the walk. Unsupported shapes
// are not errors: the document is still produced, with marker fragments
// at the affected sites.
func ConvertWithResult(g *graph.Graph, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &tserrors.GraphError{Message: "nil snapshot"}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	b := &builder{g: g, cfg: &cfg, reg: newRegistry(g, &cfg)}
	doc, err := b.buildDocument()
	if err != nil {
		return nil, err
	}
	return &Result{
		Schema:      doc,
		Unsupported: b.unsupported,
		Definitions: b.reg.names(),
	}, nil
}

// builder holds the transient state of one conversion walk.
type builder struct {
	g           *graph.Graph
	cfg         *config
	reg         *registry
	unsupported []*tserrors.UnsupportedShapeError
}

// buildDocument generates the root document. The root type's body is
// inlined at the top level rather than referenced from $defs, and the
// root identity is pre-bound to "#" so recursive occurrences become
// self-references.
func (b *builder) buildDocument() (*schema.Schema, error) {
	root, ok := b.g.RootNode()
	if !ok {
		return nil, &tserrors.GraphError{Ref: string(b.g.Root), Message: "root type not present in snapshot"}
	}
	b.reg.bindRoot(root.ID)

	body, err := b.buildBody(root, root.Name, 0)
	if err != nil {
		return nil, err
	}
	if err := b.decorateDefinition(root, body); err != nil {
		return nil, err
	}
	if body.Raw != nil {
		// A raw override on the root replaces the whole document.
		return body, nil
	}
	body.Dialect = schema.Draft202012
	body.ID = b.cfg.id
	body.Defs = b.reg.definitions()
	return body, nil
}

// buildOccurrence generates the fragment for one use of a type. Named
// types resolve to a $ref, registering their definition on first
// encounter; everything else is built inline at the occurrence site.
func (b *builder) buildOccurrence(id graph.TypeID, path string, depth int) (*schema.Schema, error) {
	node, ok := b.g.Lookup(id)
	if !ok {
		return nil, &tserrors.GraphError{Ref: string(id), Message: "type not present in snapshot"}
	}
	if depth > b.cfg.maxDepth {
		return b.marker(node, "", path, depth, "maximum depth exceeded"), nil
	}

	if ref, ok := b.reg.refFor(node.ID); ok {
		return &schema.Schema{Ref: ref}, nil
	}

	if b.named(node) {
		_, placeholder, err := b.reg.reserve(node)
		if err != nil {
			return nil, err
		}
		body, err := b.buildBody(node, path, depth)
		if err != nil {
			return nil, err
		}
		if err := b.decorateDefinition(node, body); err != nil {
			return nil, err
		}
		b.reg.complete(placeholder, body)
		ref, _ := b.reg.refFor(node.ID)
		return &schema.Schema{Ref: ref}, nil
	}

	body, err := b.buildBody(node, path, depth)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// named reports whether a node registers a $defs entry. Objects,
// interfaces, and enums always do; containers do only when they are
// declared (non-anonymous) types. Primitives and nullable wrappers
// inline everywhere.
func (b *builder) named(node *graph.TypeNode) bool {
	if node.Anonymous {
		return false
	}
	switch node.Kind {
	case graph.KindObject, graph.KindInterface, graph.KindEnum:
		return true
	case graph.KindArray, graph.KindDictionary:
		return node.Name != ""
	default:
		return false
	}
}

// buildBody generates a node's structural fragment, without definition
// registration concerns.
func (b *builder) buildBody(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	switch classify(node, b.cfg) {
	case ShapeRawOverride:
		return b.buildRawOverride(node)
	case ShapeNullable:
		return b.buildNullable(node, path, depth)
	case ShapeEnum:
		return b.buildEnum(node), nil
	case ShapeSequence:
		return b.buildSequence(node, path, depth)
	case ShapeMap:
		return b.buildMap(node, path, depth)
	case ShapePolymorphicRoot:
		return b.buildUnion(node, path, depth)
	case ShapePlainObject:
		return b.buildObject(node, path, depth)
	case ShapePrimitive:
		if s := primitiveSchema(node.Primitive); s != nil {
			return s, nil
		}
		return b.marker(node, "", path, depth, "unrecognized primitive kind"), nil
	default:
		return b.marker(node, "", path, depth, "unclassifiable type"), nil
	}
}

func (b *builder) buildRawOverride(node *graph.TypeNode) (*schema.Schema, error) {
	s, err := schema.ParseFragment(node.Overrides.RawSchema)
	if err != nil {
		return nil, &tserrors.ConfigError{
			TypeID:  string(node.ID),
			Option:  "rawSchema",
			Message: "invalid raw schema payload",
			Cause:   err,
		}
	}
	return s, nil
}

func (b *builder) buildNullable(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	inner, err := b.buildOccurrence(node.Element, path, depth+1)
	if err != nil {
		return nil, err
	}
	return nullUnion(inner), nil
}

// nullUnion wraps a fragment in a oneOf admitting null. The inner
// fragment always comes first so readers see the value form before the
// null arm.
func nullUnion(inner *schema.Schema) *schema.Schema {
	return &schema.Schema{OneOf: []*schema.Schema{inner, {Type: "null"}}}
}

// buildEnum renders a closed value set. The default rendering is a
// string enum of member names (display names win when present). With
// WithEnumAsUnderlyingType the rendering switches to the storage
// integer type with its width bounds plus the numeric value set;
// display names play no part there.
func (b *builder) buildEnum(node *graph.TypeNode) *schema.Schema {
	if b.cfg.enumAsUnderlyingType {
		underlying := node.EnumUnderlying
		if underlying == "" || !integerKind(underlying) {
			underlying = graph.Int32
		}
		s := primitiveSchema(underlying)
		values := make([]any, len(node.EnumValues))
		for i, v := range node.EnumValues {
			values[i] = v.Value
		}
		s.Enum = values
		return s
	}
	return stringEnum(node)
}

// stringEnum renders the string form of an enum: a closed set of member
// names, display names winning when present.
func stringEnum(node *graph.TypeNode) *schema.Schema {
	values := make([]any, len(node.EnumValues))
	for i, v := range node.EnumValues {
		name := v.Name
		if v.DisplayName != "" {
			name = v.DisplayName
		}
		values[i] = name
	}
	return &schema.Schema{Type: "string", Enum: values}
}

func (b *builder) buildSequence(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	items, err := b.buildOccurrence(node.Element, path+"[]", depth+1)
	if err != nil {
		return nil, err
	}
	return &schema.Schema{Type: "array", Items: items}, nil
}

// buildMap renders a dictionary as a JSON object with uniform values.
// Keys must be representable as property names; what happens otherwise
// depends on the configured key mode.
func (b *builder) buildMap(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	key, ok := b.g.Lookup(node.Key)
	if !ok {
		return nil, &tserrors.GraphError{TypeID: string(node.ID), Ref: string(node.Key), Message: "key type not present in snapshot"}
	}

	coerced := false
	if !stringRepresentableKey(key) {
		if b.cfg.dictionaryKeyMode == StringOnly {
			return b.marker(node, "", path, depth, "non-string dictionary key"), nil
		}
		coerced = true
	}

	value, err := b.buildOccurrence(node.Value, path+"[*]", depth+1)
	if err != nil {
		return nil, err
	}
	s := &schema.Schema{
		Type:                 "object",
		AdditionalProperties: value,
		Comment:              fmt.Sprintf("dictionary<%s, %s>", node.Key, node.Value),
	}
	if coerced {
		s.Comment += "; keys coerced to strings"
		return s, nil
	}
	switch {
	case key.Kind == graph.KindEnum && b.cfg.enumAsUnderlyingType:
		// Property names are strings regardless of the enum rendering
		// mode, so the key constraint is always the name set. A $ref to
		// the definition would point at the integer form here.
		s.PropertyNames = stringEnum(key)
	case key.Kind != graph.KindPrimitive || key.Primitive != graph.String:
		// Key types with their own constraints (enums, formatted
		// strings) surface through propertyNames; a plain string key
		// adds nothing beyond the comment.
		names, err := b.buildOccurrence(node.Key, path+"[key]", depth+1)
		if err != nil {
			return nil, err
		}
		s.PropertyNames = names
	}
	return s, nil
}

// buildUnion renders a polymorphic hierarchy root as a oneOf of its
// variants in declaration order. A concrete root contributes its own
// object form as the first arm; variants are ordinary named types and
// land in $defs.
func (b *builder) buildUnion(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	var arms []*schema.Schema
	if !node.Abstract {
		self, err := b.buildObject(node, path, depth)
		if err != nil {
			return nil, err
		}
		arms = append(arms, self)
	}
	for _, variantID := range node.DerivedTypes {
		arm, err := b.buildOccurrence(variantID, path+"|"+string(variantID), depth+1)
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)
	}
	return &schema.Schema{OneOf: arms}, nil
}

// buildObject renders a record of named members. The inheritance chain
// is flattened: base members come first, basemost first, then the
// type's own members in declaration order. A derived member shadowing a
// base member by name keeps the base position but uses the derived
// declaration.
func (b *builder) buildObject(node *graph.TypeNode, path string, depth int) (*schema.Schema, error) {
	members, err := b.flattenMembers(node)
	if err != nil {
		return nil, err
	}

	props := schema.NewOrderedMap()
	var required []string
	for _, m := range members {
		if !b.includeMember(m) {
			continue
		}
		frag, req, err := b.buildMember(node, m, path, depth)
		if err != nil {
			return nil, err
		}
		props.Set(m.Name, frag)
		if req {
			required = append(required, m.Name)
		}
	}

	s := &schema.Schema{Type: "object", Properties: props, Required: required}
	if !b.cfg.allowAdditional {
		s.AdditionalProperties = false
	}
	return s, nil
}

// flattenMembers collects the full member list for an object, walking
// the base chain to the top. Shadowed names resolve to the most derived
// declaration while keeping the base-chain position.
func (b *builder) flattenMembers(node *graph.TypeNode) ([]*graph.MemberNode, error) {
	var chain []*graph.TypeNode
	seen := make(map[graph.TypeID]bool)
	for cur := node; cur != nil; {
		if seen[cur.ID] {
			return nil, &tserrors.GraphError{TypeID: string(cur.ID), Message: "inheritance cycle"}
		}
		seen[cur.ID] = true
		chain = append(chain, cur)
		if cur.BaseType == "" {
			break
		}
		base, ok := b.g.Lookup(cur.BaseType)
		if !ok {
			return nil, &tserrors.GraphError{TypeID: string(cur.ID), Ref: string(cur.BaseType), Message: "base type not present in snapshot"}
		}
		cur = base
	}

	byName := make(map[string]*graph.MemberNode)
	for _, t := range chain {
		for _, m := range t.Members {
			if _, ok := byName[m.Name]; !ok {
				byName[m.Name] = m
			}
		}
	}

	var out []*graph.MemberNode
	emitted := make(map[string]bool)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, m := range chain[i].Members {
			if emitted[m.Name] {
				continue
			}
			emitted[m.Name] = true
			out = append(out, byName[m.Name])
		}
	}
	return out, nil
}

// includeMember applies the structural and visibility filters. Static
// and write-only members never generate; the accessibility gate follows
// the configured mode; an ignore override wins over everything.
func (b *builder) includeMember(m *graph.MemberNode) bool {
	if m.Static || m.WriteOnly {
		return false
	}
	if m.Overrides != nil && m.Overrides.Ignore {
		return false
	}
	switch m.Accessibility {
	case "", graph.Public:
		return true
	case graph.Internal:
		return b.cfg.accessibility >= PublicAndInternal
	default:
		return b.cfg.accessibility >= All
	}
}

// buildMember generates the property fragment for one member and
// reports whether the property is required. Non-nullable members are
// required by default; a required override forces the state either way.
func (b *builder) buildMember(owner *graph.TypeNode, m *graph.MemberNode, path string, depth int) (*schema.Schema, bool, error) {
	required := !m.Nullable
	if m.Overrides != nil && m.Overrides.Required != nil {
		required = *m.Overrides.Required
	}

	memberPath := path + "." + m.Name
	if m.Overrides != nil && len(m.Overrides.RawSchema) > 0 {
		raw, err := schema.ParseFragment(m.Overrides.RawSchema)
		if err != nil {
			return nil, false, &tserrors.ConfigError{
				TypeID:  string(owner.ID),
				Member:  m.Name,
				Option:  "rawSchema",
				Message: "invalid raw schema payload",
				Cause:   err,
			}
		}
		return raw, required, nil
	}

	frag, err := b.buildOccurrence(m.Type, memberPath, depth+1)
	if err != nil {
		return nil, false, err
	}
	if m.Nullable && !b.alreadyNullable(m.Type) {
		frag = nullUnion(frag)
	}

	md, err := resolveMetadata(owner.ID, m.Name, m.Overrides, m.Doc, b.cfg)
	if err != nil {
		return nil, false, err
	}
	md.applyTo(frag)
	if m.ReadOnly {
		frag.ReadOnly = true
	}
	return frag, required, nil
}

// alreadyNullable reports whether the target type's own fragment admits
// null, in which case a use-site nullable flag adds nothing.
func (b *builder) alreadyNullable(id graph.TypeID) bool {
	node, ok := b.g.Lookup(id)
	return ok && node.Kind == graph.KindNullable
}

// decorateDefinition applies type-level metadata to a definition body.
// Raw overrides stay untouched; a title derived from the type name is
// filled in last when enabled and nothing better was resolved.
func (b *builder) decorateDefinition(node *graph.TypeNode, body *schema.Schema) error {
	if body.Raw != nil {
		return nil
	}
	md, err := resolveMetadata(node.ID, "", node.Overrides, node.Doc, b.cfg)
	if err != nil {
		return err
	}
	md.applyTo(body)
	if body.Title == "" && b.cfg.titleFromNames && node.Name != "" {
		body.Title = humanizeName(node.Name)
	}
	return nil
}

// marker emits the placeholder fragment for an occurrence the engine
// cannot express and records it on the result. The fragment carries
// only a $comment, constraining nothing.
func (b *builder) marker(node *graph.TypeNode, member, path string, depth int, reason string) *schema.Schema {
	rec := &tserrors.UnsupportedShapeError{
		TypeID: string(node.ID),
		Member: member,
		Path:   path,
		Depth:  depth,
		Reason: reason,
	}
	b.unsupported = append(b.unsupported, rec)
	b.cfg.logger.Warn("unsupported shape", "type", string(node.ID), "path", path, "reason", reason)
	return &schema.Schema{Comment: fmt.Sprintf("unsupported: %s (%s)", reason, node.ID)}
}
