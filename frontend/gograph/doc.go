// Package gograph builds type-graph snapshots from live Go values using
// reflection. It is the reference front end for the engine: point it at
// a root value and it walks the reachable types into a graph.Graph that
// generator.Convert can consume.
//
//	g, err := gograph.Build(Order{})
//	if err != nil {
//	    return err
//	}
//	doc, err := generator.Convert(g)
//
// Struct fields map to object members using encoding/json naming rules:
// the json tag renames, "-" excludes, and ",omitempty" marks the member
// optional. Pointer fields are optional as well. A schema struct tag
// attaches declarative overrides, with comma-separated key=value pairs:
//
//	type Order struct {
//	    ID    string `json:"id" schema:"format=uuid"`
//	    Total int    `json:"total" schema:"min=0,description=Total in cents"`
//	}
//
// Documentation is not available through reflection. LoadDocs parses
// the declaring source packages and yields a DocSource that Build can
// consult via WithDocs, attaching doc comments to the types and members
// it resolves.
package gograph
