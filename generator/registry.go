package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/schema"
	"github.com/erraggy/typeschema/tserrors"
)

// registry is the per-conversion definition table. Every named type is
// reserved before its body is built, so a type that reaches itself
// through its own members resolves to a $ref against the reserved
// placeholder instead of recursing.
type registry struct {
	g   *graph.Graph
	cfg *config

	// defs holds placeholder entries in registration order. Entries are
	// completed in place, so references handed out during the walk stay
	// valid.
	defs *schema.OrderedMap
	// refs maps a type identity to its pointer string. The root maps to
	// "#"; everything else maps to "#/$defs/<name>".
	refs map[graph.TypeID]string
	// owners maps a definition name back to the identity that claimed
	// it, for collision detection.
	owners map[string]graph.TypeID
}

func newRegistry(g *graph.Graph, cfg *config) *registry {
	return &registry{
		g:      g,
		cfg:    cfg,
		defs:   schema.NewOrderedMap(),
		refs:   make(map[graph.TypeID]string),
		owners: make(map[string]graph.TypeID),
	}
}

// bindRoot maps the root identity to the document self-reference.
// Recursive occurrences of the root become {"$ref": "#"} rather than a
// duplicate $defs entry.
func (r *registry) bindRoot(id graph.TypeID) {
	r.refs[id] = "#"
}

// refFor returns the pointer for an already-registered identity.
func (r *registry) refFor(id graph.TypeID) (string, bool) {
	ref, ok := r.refs[id]
	return ref, ok
}

// reserve claims a definition name for the node and installs an empty
// placeholder under it. The returned placeholder must be completed once
// the body is built.
func (r *registry) reserve(node *graph.TypeNode) (string, *schema.Schema, error) {
	if ref, ok := r.refs[node.ID]; ok {
		return "", nil, &tserrors.InternalError{
			TypeID:  string(node.ID),
			Message: fmt.Sprintf("already registered as %q", ref),
		}
	}
	name, err := r.claimName(node)
	if err != nil {
		return "", nil, err
	}
	placeholder := &schema.Schema{}
	r.defs.Set(name, placeholder)
	r.refs[node.ID] = "#/$defs/" + name
	r.owners[name] = node.ID
	r.cfg.logger.Debug("registered definition", "name", name, "type", string(node.ID))
	return name, placeholder, nil
}

// complete fills a reserved placeholder with the built body.
func (r *registry) complete(placeholder *schema.Schema, body *schema.Schema) {
	*placeholder = *body
}

// definitions returns the $defs table, or nil when no type registered.
func (r *registry) definitions() *schema.OrderedMap {
	if r.defs.Len() == 0 {
		return nil
	}
	return r.defs
}

// names returns the registered definition names in registration order.
func (r *registry) names() []string {
	return r.defs.Keys()
}

// claimName picks a free definition name for the node. The simple name
// is tried first (prefixed with the declaring type's name for nested
// declarations), then a namespace-qualified form, then a numeric
// suffix. The numeric fallback cannot fail, so exhausting it is an
// engine bug.
func (r *registry) claimName(node *graph.TypeNode) (string, error) {
	base := node.Name
	if base == "" {
		base = "Type"
	}
	if node.DeclaringType != "" {
		if decl, ok := r.g.Lookup(node.DeclaringType); ok && decl.Name != "" {
			base = decl.Name + "_" + base
		}
	}
	if _, taken := r.owners[base]; !taken {
		return base, nil
	}

	if qualified := r.qualifiedName(node, base); qualified != base {
		if _, taken := r.owners[qualified]; !taken {
			return qualified, nil
		}
	}

	for i := 2; i < 10000; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if _, taken := r.owners[candidate]; !taken {
			return candidate, nil
		}
	}
	return "", &tserrors.InternalError{
		TypeID:  string(node.ID),
		Message: fmt.Sprintf("unable to resolve definition name collision for %q", base),
	}
}

// qualifiedName prefixes the base name with the node's namespace, with
// the configured common namespace stripped and dots flattened to
// underscores.
func (r *registry) qualifiedName(node *graph.TypeNode, base string) string {
	ns := node.Namespace
	if r.cfg.commonNamespace != "" {
		ns = strings.TrimPrefix(ns, r.cfg.commonNamespace)
		ns = strings.TrimPrefix(ns, ".")
	}
	if ns == "" {
		return base
	}
	return strings.ReplaceAll(ns, ".", "_") + "_" + base
}
