package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/openparity/openparity"
	"github.com/openparity/openparity/checker"
	"github.com/openparity/openparity/internal/mcpserver"
	"github.com/openparity/openparity/parityerrors"
	"github.com/openparity/openparity/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("openparity v%s\n", openparity.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "translate":
		if err := handleTranslate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// checkFlags contains flags for the check command
type checkFlags struct {
	quiet  bool
	asJSON bool
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.BoolVar(&flags.quiet, "quiet", false, "print the summary line only")
	fs.BoolVar(&flags.asJSON, "json", false, "print the full result as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openparity check [flags] <open-file> <hosted-file>\n\n")
		_, _ = fmt.Fprintf(output, "Check an open-source API description against its hosted counterpart.\n")
		_, _ = fmt.Fprintf(output, "Exits non-zero when any compatibility mismatch is found.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  openparity check oss_schema.json cloud_schema.json\n")
		_, _ = fmt.Fprintf(output, "  openparity check --json oss_schema.json cloud_schema.json\n")
	}

	return fs, flags
}

func handleCheck(args []string) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("check command requires an open file and a hosted file")
	}

	result, err := checker.CheckWithOptions(
		checker.WithOpenFilePath(fs.Arg(0)),
		checker.WithHostedFilePath(fs.Arg(1)),
	)
	if err != nil {
		return err
	}

	switch {
	case flags.asJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Println(string(data))
	case flags.quiet:
		fmt.Println(result.Summary())
	default:
		fmt.Print(result.Render())
	}

	if !result.Compatible {
		return &parityerrors.MismatchError{
			Count:   result.MismatchCount,
			Message: "documents are not compatible",
		}
	}
	return nil
}

func handleParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openparity parse <file>\n\n")
		_, _ = fmt.Fprintf(output, "Parse an API description and print a structural summary.\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path")
	}

	result, err := parser.New().Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	doc := result.Document
	fmt.Printf("openparity version: %s\n", openparity.Version())
	fmt.Printf("Specification: %s\n", result.SourcePath)
	fmt.Printf("Title: %s\n", doc.Info.Title)
	fmt.Printf("Version: %s\n", result.Version)
	fmt.Printf("OAS Version: %s\n", doc.OpenAPI)
	fmt.Printf("Source Size: %d bytes\n", result.SourceSize)
	fmt.Printf("Paths: %d\n", len(doc.Paths))
	fmt.Printf("Schemas: %d\n", len(doc.SchemaNames()))
	return nil
}

func handleTranslate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openparity translate <path>\n\n")
		_, _ = fmt.Fprintf(output, "Print the hosted-namespace spelling of an open route path.\n\n")
		_, _ = fmt.Fprintf(output, "Examples:\n")
		_, _ = fmt.Fprintf(output, "  openparity translate /api/flows/\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("translate command requires exactly one route path")
	}

	fmt.Println(checker.DefaultTables().TranslatePath(fs.Arg(0)))
	return nil
}

func printUsage() {
	fmt.Println(`openparity - open/hosted API description parity checker

Usage:
  openparity <command> [options]

Commands:
  check       Check an open API description against its hosted counterpart
  parse       Parse and summarize an API description file
  translate   Print the hosted-namespace spelling of an open route path
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  openparity check oss_schema.json cloud_schema.json
  openparity check --quiet oss_schema.json cloud_schema.json
  openparity parse oss_schema.json
  openparity translate /api/flows/

Run 'openparity <command> --help' for more information on a command.`)
}
