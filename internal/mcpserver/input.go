package mcpserver

import (
	"fmt"

	"github.com/erraggy/typeschema/graph"
)

// snapshotInput represents the two ways a snapshot can be provided to a
// tool. Exactly one of File or Content must be set.
type snapshotInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a snapshot file on disk (YAML or JSON)"`
	Content string `json:"content,omitempty" jsonschema:"Inline snapshot content (YAML or JSON)"`
}

// resolve decodes and validates the snapshot from whichever source was
// provided.
func (s snapshotInput) resolve() (*graph.Graph, error) {
	var (
		g   *graph.Graph
		err error
	)
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case s.File != "":
		g, err = graph.DecodeFile(s.File)
	case s.Content != "":
		g, err = graph.Decode([]byte(s.Content))
	default:
		return nil, fmt.Errorf("snapshot requires file or content")
	}
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
