package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/typeschema/internal/maputil"
)

type inspectInput struct {
	Snapshot snapshotInput `json:"snapshot" jsonschema:"The type-graph snapshot to inspect"`
}

type typeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	MemberCount int    `json:"member_count,omitempty"`
	EnumValues  int    `json:"enum_values,omitempty"`
	Derived     int    `json:"derived,omitempty"`
}

type inspectOutput struct {
	Root       string         `json:"root"`
	TypeCount  int            `json:"type_count"`
	KindCounts map[string]int `json:"kind_counts"`
	Types      []typeSummary  `json:"types"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	g, err := input.Snapshot.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		Root:       string(g.Root),
		TypeCount:  len(g.Types),
		KindCounts: make(map[string]int),
	}
	output.Types = makeSlice[typeSummary](len(g.Types))
	for _, id := range maputil.SortedKeys(g.Types) {
		node := g.Types[id]
		output.KindCounts[string(node.Kind)]++
		output.Types = append(output.Types, typeSummary{
			ID:          string(id),
			Name:        node.Name,
			Kind:        string(node.Kind),
			MemberCount: len(node.Members),
			EnumValues:  len(node.EnumValues),
			Derived:     len(node.DerivedTypes),
		})
	}

	return nil, output, nil
}
