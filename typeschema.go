// Package typeschema derives JSON Schema (Draft 2020-12) documents from
// abstract type-graph snapshots.
//
// A snapshot describes a set of types, their members, and attached
// metadata (declared nullability, inheritance edges, declarative
// overrides, and free-text documentation). typeschema walks the graph
// from a root type and synthesizes a single self-contained schema
// document: shared and recursive types are deduplicated into a $defs
// table, polymorphic hierarchies become discriminated oneOf unions, and
// metadata from overrides and documentation is merged under a defined
// precedence.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - graph: the immutable type-graph snapshot model consumed by the engine
//   - generator: the recursive schema-generation engine
//   - schema: the JSON Schema document model with deterministic marshaling
//   - tserrors: structured error types for programmatic error handling
//
// A reflection-based front end for Go types lives in frontend/gograph;
// it builds graph snapshots from Go values and can enrich them with Go
// doc comments. The engine itself never inspects source code: it only
// consumes snapshots, so front ends for other type systems can be
// written against the graph package alone.
//
// # Quick Start
//
// Generate a schema from a snapshot:
//
//	import (
//	    "github.com/erraggy/typeschema/generator"
//	    "github.com/erraggy/typeschema/graph"
//	)
//
//	g, err := graph.DecodeFile("snapshot.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := generator.Convert(g,
//	    generator.WithID("https://example.com/schemas/order"),
//	    generator.WithMaxDepth(32),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := doc.MarshalJSONIndent()
//	fmt.Println(string(out))
//
// Build a snapshot from a Go type:
//
//	import "github.com/erraggy/typeschema/frontend/gograph"
//
//	g, err := gograph.Build(Order{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Determinism
//
// For a fixed snapshot and configuration, two Convert calls produce
// byte-identical output. Property order follows member declaration
// order, $defs order follows registration order, and name-collision
// suffixes are assigned in registration order. Nothing in the engine
// depends on map iteration order or wall-clock time.
//
// # Command-Line Interface
//
// The typeschema command wraps the library:
//
//	# Generate a schema from a snapshot
//	typeschema generate -o order.schema.json snapshot.yaml
//
//	# Summarize a snapshot
//	typeschema inspect snapshot.yaml
//
//	# Run the MCP server over stdio
//	typeschema mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/typeschema/cmd/typeschema@latest
package typeschema
