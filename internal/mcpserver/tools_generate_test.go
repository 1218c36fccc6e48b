package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderSnapshot is a minimal snapshot with one object, a shared
// reference, and an enum, giving the generator something to register.
const orderSnapshot = `root: acme.Order
types:
  acme.Order:
    name: Order
    kind: object
    members:
      - name: id
        type: sys.string
      - name: status
        type: acme.Status
      - name: billing
        type: acme.Address
      - name: shipping
        type: acme.Address
        nullable: true
  acme.Address:
    name: Address
    kind: object
    members:
      - name: street
        type: sys.string
  acme.Status:
    name: Status
    kind: enum
    enumValues:
      - name: Pending
        value: 0
      - name: Shipped
        value: 1
  sys.string:
    name: string
    kind: primitive
    primitive: string
`

func TestGenerateTool_InlineContent(t *testing.T) {
	input := generateInput{
		Snapshot: snapshotInput{Content: orderSnapshot},
		ID:       "https://example.com/order",
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Contains(t, output.Document, `"$schema": "https://json-schema.org/draft/2020-12/schema"`)
	assert.Contains(t, output.Document, `"$id": "https://example.com/order"`)
	assert.Contains(t, output.Document, `"#/$defs/Address"`)
	assert.Equal(t, []string{"Status", "Address"}, output.Definitions)
	assert.Zero(t, output.UnsupportedCount)
}

func TestGenerateTool_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(orderSnapshot), 0o644))

	input := generateInput{
		Snapshot: snapshotInput{File: path},
		Format:   "yaml",
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Contains(t, output.Document, "$schema: https://json-schema.org/draft/2020-12/schema")
}

func TestGenerateTool_EnumAsUnderlyingType(t *testing.T) {
	input := generateInput{
		Snapshot:             snapshotInput{Content: orderSnapshot},
		EnumAsUnderlyingType: true,
	}
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Contains(t, output.Document, `"type": "integer"`)
}

func TestGenerateTool_BadInputs(t *testing.T) {
	tests := []struct {
		name  string
		input generateInput
	}{
		{"no source", generateInput{}},
		{"both sources", generateInput{Snapshot: snapshotInput{File: "x.yaml", Content: "root: x"}}},
		{"bad format", generateInput{Snapshot: snapshotInput{Content: orderSnapshot}, Format: "xml"}},
		{"bad accessibility", generateInput{Snapshot: snapshotInput{Content: orderSnapshot}, Accessibility: "bogus"}},
		{"dangling root", generateInput{Snapshot: snapshotInput{Content: "root: missing\ntypes: {}"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestInspectTool(t *testing.T) {
	input := inspectInput{Snapshot: snapshotInput{Content: orderSnapshot}}
	result, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "acme.Order", output.Root)
	assert.Equal(t, 4, output.TypeCount)
	assert.Equal(t, 2, output.KindCounts["object"])
	assert.Equal(t, 1, output.KindCounts["enum"])
	require.Len(t, output.Types, 4)
	assert.Equal(t, "acme.Address", output.Types[0].ID)
}

func TestSanitizeError(t *testing.T) {
	err := os.ErrNotExist
	assert.Equal(t, "file does not exist", sanitizeError(err))
	assert.Empty(t, sanitizeError(nil))
}
