// Package generator converts type-graph snapshots into JSON Schema
// Draft 2020-12 documents.
//
// The engine is a single synchronous, purely functional walk over an
// immutable graph.Graph. Each Convert call owns its own definition
// registry and configuration, so independent calls may run concurrently
// as long as each gets its own arguments.
//
// # Generation model
//
// Every type occurrence is classified into a shape kind (primitive,
// enum, nullable wrapper, sequence, map, polymorphic root, plain
// object, raw override) and dispatched to the matching builder. Named
// shapes (objects, interfaces, enums, and named containers) register
// a single entry in the document's $defs table; every further
// occurrence becomes a $ref pointer, which is what keeps recursive and
// shared types from expanding forever. An explicit depth guard backs
// this up for graphs that cycle through anonymous shapes.
//
// Metadata for each fragment is merged from declarative overrides, the
// documentation sub-vocabulary, and free-text summaries, in that
// precedence. A raw-schema override short-circuits everything and is
// emitted verbatim.
//
// # Example
//
//	doc, err := generator.Convert(g,
//	    generator.WithID("https://example.com/schemas/order"),
//	    generator.WithEnumAsUnderlyingType(false),
//	)
//	if err != nil {
//	    return err
//	}
//	out, err := doc.MarshalJSONIndent()
//
// Use ConvertWithResult to also receive the unsupported-shape records
// collected during the walk.
package generator
