// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes typeschema capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/typeschema"
)

const serverInstructions = `typeschema MCP server — generates JSON Schema Draft 2020-12 documents from type-graph snapshots and inspects snapshot structure.

Snapshots are YAML or JSON documents with a root type identity and a types table; see the generate tool's snapshot input. Provide the snapshot inline via content or as a file path.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "typeschema", Version: typeschema.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a JSON Schema Draft 2020-12 document from a type-graph snapshot. Options mirror the CLI: id, max_depth, enum_as_underlying_type, accessibility (public, internal, all), dictionary_key_mode (string-only, permissive), additional_properties, title_from_names, and output format (json or yaml). Unsupported shapes are reported alongside the document, not as errors.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect a type-graph snapshot without generating. Returns the root identity, per-kind type counts, and a summary of each type (identity, kind, member count). Use it to sanity-check a snapshot before generation.",
	}, handleInspect)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON
// semantics), otherwise returns make([]T, 0, n) for pre-allocated
// appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
