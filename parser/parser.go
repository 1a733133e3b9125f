package parser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/openparity/openparity/parityerrors"
)

// Parser loads API description documents from files, readers, or byte
// slices. Both JSON and YAML input are accepted; JSON is a subset of YAML
// so a single decode path covers both.
type Parser struct {
	// Logger receives structured debug output during parsing.
	// Defaults to the no-op logger.
	Logger Logger
}

// New creates a new Parser with default settings
func New() *Parser {
	return &Parser{}
}

func (p *Parser) log() Logger {
	if p.Logger == nil {
		return NopLogger()
	}
	return p.Logger
}

// ParseResult holds a fully loaded document: the typed view, the raw tree,
// and source metadata. The result is an immutable snapshot; checkers never
// mutate it.
type ParseResult struct {
	// Document is the typed view of the loaded description
	Document *Document
	// Version is the document's declared info.version string
	Version string
	// SourcePath is the file path the document was loaded from, if any
	SourcePath string
	// SourceSize is the size of the source document in bytes
	SourceSize int64
}

// Parse loads and parses the API description at the given file path.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, &parityerrors.ParseError{
			Path:    specPath,
			Message: "failed to read document",
			Cause:   err,
		}
	}

	result, err := p.ParseBytes(data)
	if err != nil {
		var parseErr *parityerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = specPath
		}
		return nil, err
	}
	result.SourcePath = specPath
	return result, nil
}

// ParseReader parses an API description from the given reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &parityerrors.ParseError{
			Message: "failed to read document",
			Cause:   err,
		}
	}
	return p.ParseBytes(data)
}

// ParseBytes parses an API description from a byte slice.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	// First pass: decode to the raw tree used for $ref resolution.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &parityerrors.ParseError{
			Message: "failed to decode document",
			Cause:   err,
		}
	}
	if raw == nil {
		return nil, &parityerrors.ParseError{Message: "document is empty"}
	}

	// Second pass: decode the sections the checker compares into the
	// typed view. Unknown fields land in the inline Extra maps.
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &parityerrors.ParseError{
			Message: "failed to decode document structure",
			Cause:   err,
		}
	}
	doc.raw = raw

	p.log().Debug("parsed document",
		"version", doc.Info.Version,
		"paths", len(doc.Paths),
		"schemas", len(doc.SchemaNames()),
	)

	return &ParseResult{
		Document:   &doc,
		Version:    doc.Info.Version,
		SourceSize: int64(len(data)),
	}, nil
}

// decodeSubtree round-trips a raw subtree so it can be decoded into a typed
// value. Used by the resolver when a reference lands on an untyped node.
func decodeSubtree(node any, target any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("parser: failed to re-encode subtree: %w", err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parser: failed to decode subtree: %w", err)
	}
	return nil
}
