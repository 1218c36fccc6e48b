package main

import (
	"fmt"
	"io"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/internal/maputil"
)

// printSnapshotSummary writes a human-readable structural summary of a
// validated snapshot.
func printSnapshotSummary(w io.Writer, g *graph.Graph) {
	fmt.Fprintf(w, "Snapshot Summary\n")
	fmt.Fprintf(w, "================\n\n")
	fmt.Fprintf(w, "Root:  %s\n", g.Root)
	fmt.Fprintf(w, "Types: %d\n\n", len(g.Types))

	kindCounts := make(map[graph.Kind]int)
	for _, node := range g.Types {
		kindCounts[node.Kind]++
	}
	for _, kind := range maputil.SortedKeys(kindCounts) {
		fmt.Fprintf(w, "  %-11s %d\n", kind, kindCounts[kind])
	}
	fmt.Fprintln(w)

	for _, id := range maputil.SortedKeys(g.Types) {
		node := g.Types[id]
		switch node.Kind {
		case graph.KindObject, graph.KindInterface:
			fmt.Fprintf(w, "%s (%s, %d members)\n", id, node.Kind, len(node.Members))
		case graph.KindEnum:
			fmt.Fprintf(w, "%s (enum, %d values)\n", id, len(node.EnumValues))
		default:
			fmt.Fprintf(w, "%s (%s)\n", id, node.Kind)
		}
	}
}
