package gograph

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/tserrors"
)

// Option configures one Build call.
type Option func(*builder)

// WithDocs attaches a documentation source. Types and fields resolved
// by the source carry their parsed doc comments into the snapshot.
func WithDocs(docs *DocSource) Option {
	return func(b *builder) { b.docs = docs }
}

// Build walks the types reachable from v into a snapshot rooted at v's
// type. v must not be nil.
func Build(v any, opts ...Option) (*graph.Graph, error) {
	if v == nil {
		return nil, &tserrors.GraphError{Message: "cannot build a snapshot from nil"}
	}
	b := &builder{types: make(map[graph.TypeID]*graph.TypeNode)}
	for _, opt := range opts {
		opt(b)
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	rootID, err := b.resolve(t)
	if err != nil {
		return nil, err
	}
	g := &graph.Graph{Root: rootID, Types: b.types}
	return g, nil
}

type builder struct {
	types map[graph.TypeID]*graph.TypeNode
	docs  *DocSource
}

// resolve returns the identity for a Go type, materializing its node
// and everything it references on first encounter.
func (b *builder) resolve(t reflect.Type) (graph.TypeID, error) {
	id := typeIdentity(t)
	if _, ok := b.types[id]; ok {
		return id, nil
	}

	if node := specialTypeNode(t); node != nil {
		node.ID = id
		b.types[id] = node
		return id, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		// Install the wrapper before resolving the element so pointer
		// cycles terminate.
		node := &graph.TypeNode{ID: id, Name: t.String(), Kind: graph.KindNullable, Anonymous: true}
		b.types[id] = node
		elem, err := b.resolve(t.Elem())
		if err != nil {
			return "", err
		}
		node.Element = elem
		return id, nil

	case reflect.Slice, reflect.Array:
		node := &graph.TypeNode{ID: id, Name: t.String(), Kind: graph.KindArray, Anonymous: t.Name() == ""}
		if !node.Anonymous {
			node.Name = t.Name()
			node.Namespace = t.PkgPath()
		}
		b.types[id] = node
		elem, err := b.resolve(t.Elem())
		if err != nil {
			return "", err
		}
		node.Element = elem
		return id, nil

	case reflect.Map:
		node := &graph.TypeNode{ID: id, Name: t.String(), Kind: graph.KindDictionary, Anonymous: t.Name() == ""}
		if !node.Anonymous {
			node.Name = t.Name()
			node.Namespace = t.PkgPath()
		}
		b.types[id] = node
		key, err := b.resolve(t.Key())
		if err != nil {
			return "", err
		}
		value, err := b.resolve(t.Elem())
		if err != nil {
			return "", err
		}
		node.Key, node.Value = key, value
		return id, nil

	case reflect.Struct:
		return id, b.buildStruct(id, t)

	case reflect.Interface:
		// An empty interface constrains nothing. Express that as a raw
		// empty schema so the engine emits {} rather than a closed
		// object.
		b.types[id] = &graph.TypeNode{
			ID: id, Name: t.String(), Kind: graph.KindObject, Anonymous: true,
			Overrides: &graph.Overrides{RawSchema: graph.RawFragment(`{}`)},
		}
		return id, nil

	default:
		return b.resolvePrimitive(id, t)
	}
}

func (b *builder) resolvePrimitive(id graph.TypeID, t reflect.Type) (graph.TypeID, error) {
	kind, ok := primitiveFor(t.Kind())
	if !ok {
		return "", &tserrors.GraphError{
			TypeID:  string(id),
			Message: fmt.Sprintf("unsupported Go kind %s", t.Kind()),
		}
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	node := &graph.TypeNode{ID: id, Name: name, Kind: graph.KindPrimitive, Primitive: kind}
	if t.PkgPath() != "" {
		node.Namespace = t.PkgPath()
	}
	b.types[id] = node
	return id, nil
}

func (b *builder) buildStruct(id graph.TypeID, t reflect.Type) error {
	node := &graph.TypeNode{
		ID:        id,
		Name:      structName(t),
		Namespace: t.PkgPath(),
		Kind:      graph.KindObject,
		Anonymous: t.Name() == "",
	}
	// Install before walking fields so self-referencing structs resolve.
	b.types[id] = node

	typeDoc, fieldDocs := b.lookupDocs(t)
	if typeDoc != "" {
		node.Doc = graph.ParseDocComment(typeDoc)
	}

	members, err := b.structMembers(t, fieldDocs)
	if err != nil {
		return err
	}
	node.Members = members
	return nil
}

// structMembers converts exported fields to member nodes, inlining
// embedded structs the way encoding/json flattens them.
func (b *builder) structMembers(t reflect.Type, fieldDocs map[string]string) ([]*graph.MemberNode, error) {
	var members []*graph.MemberNode
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && embeddable(field.Type) {
			embedded, err := b.embeddedMembers(field)
			if err != nil {
				return nil, err
			}
			members = append(members, embedded...)
			continue
		}

		m, err := b.fieldMember(t, field, fieldDocs)
		if err != nil {
			return nil, err
		}
		if m != nil {
			members = append(members, m)
		}
	}
	return members, nil
}

func (b *builder) embeddedMembers(field reflect.StructField) ([]*graph.MemberNode, error) {
	et := field.Type
	for et.Kind() == reflect.Pointer {
		et = et.Elem()
	}
	_, embeddedDocs := b.lookupDocs(et)
	return b.structMembers(et, embeddedDocs)
}

func (b *builder) fieldMember(owner reflect.Type, field reflect.StructField, fieldDocs map[string]string) (*graph.MemberNode, error) {
	name, omitempty, skip := jsonFieldName(field)
	if skip {
		return nil, nil
	}

	ft := field.Type
	nullable := false
	if ft.Kind() == reflect.Pointer {
		nullable = true
		ft = ft.Elem()
	}

	typeID, err := b.resolve(ft)
	if err != nil {
		return nil, err
	}

	m := &graph.MemberNode{Name: name, Type: typeID, Nullable: nullable}
	if doc := fieldDocs[field.Name]; doc != "" {
		m.Doc = graph.ParseDocComment(doc)
	}

	ov, err := parseSchemaTag(field.Tag.Get("schema"))
	if err != nil {
		return nil, &tserrors.ConfigError{
			TypeID:  string(typeIdentity(owner)),
			Member:  name,
			Option:  "schema tag",
			Message: err.Error(),
		}
	}
	// omitempty means the field may be absent, not that it admits null.
	if omitempty && !nullable {
		if ov == nil {
			ov = &graph.Overrides{}
		}
		if ov.Required == nil {
			optional := false
			ov.Required = &optional
		}
	}
	m.Overrides = ov
	return m, nil
}

func (b *builder) lookupDocs(t reflect.Type) (string, map[string]string) {
	if b.docs == nil || t.PkgPath() == "" || t.Name() == "" {
		return "", nil
	}
	return b.docs.lookup(t.PkgPath(), t.Name())
}

// embeddable reports whether an anonymous field inlines its members.
func embeddable(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && specialTypeNode(t) == nil
}

// typeIdentity derives a stable identity for a Go type. Named types use
// their import path; synthetic types compose from their parts the way
// Go spells them.
func typeIdentity(t reflect.Type) graph.TypeID {
	if t.Name() != "" {
		if t.PkgPath() != "" {
			return graph.TypeID(t.PkgPath() + "." + t.Name())
		}
		return graph.TypeID(t.Name())
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeIdentity(t.Elem())
	case reflect.Slice:
		return "[]" + typeIdentity(t.Elem())
	case reflect.Array:
		return graph.TypeID(fmt.Sprintf("[%d]%s", t.Len(), typeIdentity(t.Elem())))
	case reflect.Map:
		return graph.TypeID(fmt.Sprintf("map[%s]%s", typeIdentity(t.Key()), typeIdentity(t.Elem())))
	default:
		return graph.TypeID(t.String())
	}
}

func structName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// specialTypeNode maps well-known Go types straight to scalar nodes.
// uuid types are matched by name to avoid importing every uuid package.
func specialTypeNode(t reflect.Type) *graph.TypeNode {
	switch {
	case t == reflect.TypeOf(time.Time{}):
		return &graph.TypeNode{Name: "Time", Namespace: "time", Kind: graph.KindPrimitive, Primitive: graph.DateTime}
	case t == reflect.TypeOf(time.Duration(0)):
		return &graph.TypeNode{Name: "Duration", Namespace: "time", Kind: graph.KindPrimitive, Primitive: graph.Duration}
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 && t.Name() == "":
		return &graph.TypeNode{Name: "[]byte", Kind: graph.KindPrimitive, Primitive: graph.Bytes, Anonymous: true}
	case strings.HasSuffix(t.String(), "uuid.UUID"):
		return &graph.TypeNode{Name: "UUID", Namespace: t.PkgPath(), Kind: graph.KindPrimitive, Primitive: graph.UUID}
	}
	return nil
}

// primitiveFor maps Go scalar kinds to snapshot primitive kinds. The
// platform-sized int and uint map to their widest form.
func primitiveFor(k reflect.Kind) (graph.PrimitiveKind, bool) {
	switch k {
	case reflect.Bool:
		return graph.Bool, true
	case reflect.String:
		return graph.String, true
	case reflect.Int8:
		return graph.Int8, true
	case reflect.Int16:
		return graph.Int16, true
	case reflect.Int32:
		return graph.Int32, true
	case reflect.Int, reflect.Int64:
		return graph.Int64, true
	case reflect.Uint8:
		return graph.UInt8, true
	case reflect.Uint16:
		return graph.UInt16, true
	case reflect.Uint32:
		return graph.UInt32, true
	case reflect.Uint, reflect.Uint64:
		return graph.UInt64, true
	case reflect.Float32:
		return graph.Float32, true
	case reflect.Float64:
		return graph.Float64, true
	default:
		return "", false
	}
}
