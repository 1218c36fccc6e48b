package main

import (
	"strings"
	"testing"

	"github.com/erraggy/typeschema/graph"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"genrate", "generate"},
		{"generae", "generate"},
		{"generete", "generate"},
		{"inpect", "inspect"},
		{"inspct", "inspect"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"generatification", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrintSnapshotSummary(t *testing.T) {
	g := graph.New("acme.Order",
		&graph.TypeNode{
			ID: "acme.Order", Name: "Order", Kind: graph.KindObject,
			Members: []*graph.MemberNode{{Name: "id", Type: "sys.string"}},
		},
		&graph.TypeNode{ID: "sys.string", Name: "string", Kind: graph.KindPrimitive, Primitive: graph.String},
	)

	var sb strings.Builder
	printSnapshotSummary(&sb, g)
	out := sb.String()

	for _, want := range []string{
		"Root:  acme.Order",
		"Types: 2",
		"acme.Order (object, 1 members)",
		"sys.string (primitive)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q in:\n%s", want, out)
		}
	}
}
