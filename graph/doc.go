// Package graph models the type-graph snapshots consumed by the
// typeschema engine.
//
// A snapshot is an immutable description of a type hierarchy: type
// identities, shape kinds, member lists, inheritance edges, declared
// nullability, declarative overrides, and attached documentation. Front
// ends produce snapshots (from reflection, compiled metadata, or hand
// written files) and the engine walks them; the engine never inspects
// source code or annotation syntax itself.
//
// Snapshots serialize to JSON and YAML, so they can be stored as files
// and fed to the typeschema CLI:
//
//	root: acme.orders.Order
//	types:
//	  acme.orders.Order:
//	    name: Order
//	    kind: object
//	    members:
//	      - name: id
//	        type: system.Int64
//
// Use Validate before handing a hand-built snapshot to the engine; it
// catches dangling type references and kind-specific structural
// problems up front.
package graph
