package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/typeschema/generator"
)

type generateInput struct {
	Snapshot             snapshotInput `json:"snapshot"                          jsonschema:"The type-graph snapshot to generate from"`
	ID                   string        `json:"id,omitempty"                      jsonschema:"Value for the document's $id"`
	MaxDepth             int           `json:"max_depth,omitempty"               jsonschema:"Recursion bound for anonymous shapes (default 64)"`
	EnumAsUnderlyingType bool          `json:"enum_as_underlying_type,omitempty" jsonschema:"Render enums as their underlying integer type"`
	NoDocComments        bool          `json:"no_doc_comments,omitempty"         jsonschema:"Ignore free-text documentation"`
	NoInterfaces         bool          `json:"no_interfaces,omitempty"           jsonschema:"Render interfaces as plain objects instead of unions"`
	Accessibility        string        `json:"accessibility,omitempty"           jsonschema:"Member visibility cutoff: public, internal, or all (default public)"`
	DictionaryKeyMode    string        `json:"dictionary_key_mode,omitempty"     jsonschema:"Non-string dictionary key policy: string-only or permissive (default string-only)"`
	CommonNamespace      string        `json:"common_namespace,omitempty"        jsonschema:"Namespace prefix stripped during collision naming"`
	AdditionalProperties bool          `json:"additional_properties,omitempty"   jsonschema:"Leave object schemas open to undeclared properties"`
	TitleFromNames       bool          `json:"title_from_names,omitempty"        jsonschema:"Derive definition titles from type names"`
	Format               string        `json:"format,omitempty"                  jsonschema:"Output format: json (default) or yaml"`
}

type unsupportedInfo struct {
	Type   string `json:"type"`
	Path   string `json:"path,omitempty"`
	Reason string `json:"reason"`
}

type generateOutput struct {
	Document         string            `json:"document"`
	Definitions      []string          `json:"definitions,omitempty"`
	UnsupportedCount int               `json:"unsupported_count"`
	Unsupported      []unsupportedInfo `json:"unsupported,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	g, err := input.Snapshot.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts, err := buildOptions(input)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	res, err := generator.ConvertWithResult(g, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	var rendered []byte
	switch input.Format {
	case "", "json":
		rendered, err = res.Schema.MarshalJSONIndent()
	case "yaml":
		rendered, err = res.Schema.EncodeYAML()
	default:
		return errResult(fmt.Errorf("unrecognized format %q", input.Format)), generateOutput{}, nil
	}
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Document:         string(rendered),
		Definitions:      res.Definitions,
		UnsupportedCount: len(res.Unsupported),
	}
	output.Unsupported = makeSlice[unsupportedInfo](len(res.Unsupported))
	for _, u := range res.Unsupported {
		output.Unsupported = append(output.Unsupported, unsupportedInfo{
			Type:   u.TypeID,
			Path:   u.Path,
			Reason: u.Reason,
		})
	}
	return nil, output, nil
}

func buildOptions(input generateInput) ([]generator.Option, error) {
	var opts []generator.Option
	if input.ID != "" {
		opts = append(opts, generator.WithID(input.ID))
	}
	if input.MaxDepth > 0 {
		opts = append(opts, generator.WithMaxDepth(input.MaxDepth))
	}
	if input.EnumAsUnderlyingType {
		opts = append(opts, generator.WithEnumAsUnderlyingType(true))
	}
	if input.NoDocComments {
		opts = append(opts, generator.WithDocComments(false))
	}
	if input.NoInterfaces {
		opts = append(opts, generator.WithIncludeInterfaces(false))
	}
	if input.Accessibility != "" {
		mode, err := generator.ParseAccessibilityMode(input.Accessibility)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generator.WithAccessibility(mode))
	}
	if input.DictionaryKeyMode != "" {
		mode, err := generator.ParseDictionaryKeyMode(input.DictionaryKeyMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generator.WithDictionaryKeyMode(mode))
	}
	if input.CommonNamespace != "" {
		opts = append(opts, generator.WithCommonNamespace(input.CommonNamespace))
	}
	if input.AdditionalProperties {
		opts = append(opts, generator.WithAdditionalProperties(true))
	}
	if input.TitleFromNames {
		opts = append(opts, generator.WithTitleFromNames(true))
	}
	return opts, nil
}
