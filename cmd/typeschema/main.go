package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/typeschema"
	"github.com/erraggy/typeschema/generator"
	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("typeschema v%s\n", typeschema.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := handleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	output               string
	format               string
	id                   string
	maxDepth             int
	enumAsUnderlyingType bool
	noDocComments        bool
	noInterfaces         bool
	accessibility        string
	dictionaryKeyMode    string
	commonNamespace      string
	additionalProperties bool
	titleFromNames       bool
	verbose              bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.output, "o", "", "write the document to a file instead of stdout")
	fs.StringVar(&flags.format, "format", "json", "output format: json or yaml")
	fs.StringVar(&flags.id, "id", "", "value for the document's $id")
	fs.IntVar(&flags.maxDepth, "max-depth", generator.DefaultMaxDepth, "recursion bound for anonymous shapes")
	fs.BoolVar(&flags.enumAsUnderlyingType, "enum-as-underlying-type", false, "render enums as their underlying integer type")
	fs.BoolVar(&flags.noDocComments, "no-doc-comments", false, "ignore free-text documentation")
	fs.BoolVar(&flags.noInterfaces, "no-interfaces", false, "render interfaces as plain objects instead of unions")
	fs.StringVar(&flags.accessibility, "accessibility", "public", "member visibility cutoff: public, internal, or all")
	fs.StringVar(&flags.dictionaryKeyMode, "dictionary-key-mode", "string-only", "non-string dictionary key policy: string-only or permissive")
	fs.StringVar(&flags.commonNamespace, "common-namespace", "", "namespace prefix stripped during collision naming")
	fs.BoolVar(&flags.additionalProperties, "additional-properties", false, "leave object schemas open to undeclared properties")
	fs.BoolVar(&flags.titleFromNames, "title-from-names", false, "derive definition titles from type names")
	fs.BoolVar(&flags.verbose, "verbose", false, "log generation progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: typeschema generate [flags] <snapshot>\n\n")
		_, _ = fmt.Fprintf(output, "Generate a JSON Schema Draft 2020-12 document from a type-graph snapshot.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  typeschema generate snapshot.yaml\n")
		_, _ = fmt.Fprintf(output, "  typeschema generate -id https://example.com/order -o order.schema.json snapshot.yaml\n")
		_, _ = fmt.Fprintf(output, "  typeschema generate -format yaml -title-from-names snapshot.yaml\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one snapshot path")
	}

	g, err := graph.DecodeFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	opts, err := generateOptions(flags)
	if err != nil {
		return err
	}

	result, err := generator.ConvertWithResult(g, opts...)
	if err != nil {
		return fmt.Errorf("generating schema: %w", err)
	}

	for _, u := range result.Unsupported {
		fmt.Fprintf(os.Stderr, "warning: %v\n", u)
	}

	var data []byte
	switch flags.format {
	case "json":
		data, err = result.Schema.MarshalJSONIndent()
	case "yaml":
		data, err = result.Schema.EncodeYAML()
	default:
		return fmt.Errorf("unrecognized format %q (want json or yaml)", flags.format)
	}
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", flags.output)
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing document to stdout: %w", err)
	}
	return nil
}

func generateOptions(flags *generateFlags) ([]generator.Option, error) {
	accessibility, err := generator.ParseAccessibilityMode(flags.accessibility)
	if err != nil {
		return nil, err
	}
	keyMode, err := generator.ParseDictionaryKeyMode(flags.dictionaryKeyMode)
	if err != nil {
		return nil, err
	}

	opts := []generator.Option{
		generator.WithMaxDepth(flags.maxDepth),
		generator.WithDocComments(!flags.noDocComments),
		generator.WithEnumAsUnderlyingType(flags.enumAsUnderlyingType),
		generator.WithIncludeInterfaces(!flags.noInterfaces),
		generator.WithAccessibility(accessibility),
		generator.WithDictionaryKeyMode(keyMode),
		generator.WithAdditionalProperties(flags.additionalProperties),
		generator.WithTitleFromNames(flags.titleFromNames),
	}
	if flags.id != "" {
		opts = append(opts, generator.WithID(flags.id))
	}
	if flags.commonNamespace != "" {
		opts = append(opts, generator.WithCommonNamespace(flags.commonNamespace))
	}
	if flags.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, generator.WithLogger(generator.NewSlogAdapter(logger)))
	}
	return opts, nil
}

func setupInspectFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: typeschema inspect <snapshot>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a type-graph snapshot and print a structural summary.\n\n")
		_, _ = fmt.Fprintf(output, "Examples:\n")
		_, _ = fmt.Fprintf(output, "  typeschema inspect snapshot.yaml\n")
	}
	return fs
}

func handleInspect(args []string) error {
	fs := setupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one snapshot path")
	}

	g, err := graph.DecodeFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("validating snapshot: %w", err)
	}

	printSnapshotSummary(os.Stdout, g)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`typeschema - JSON Schema generation from type-graph snapshots

Usage:
  typeschema <command> [options]

Commands:
  generate    Generate a JSON Schema document from a snapshot file
  inspect     Validate a snapshot and print a structural summary
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  typeschema generate snapshot.yaml
  typeschema generate -id https://example.com/order -o order.schema.json snapshot.yaml
  typeschema inspect snapshot.yaml

Run 'typeschema <command> --help' for more information on a command.`)
}
