package mcpserver

import (
	"fmt"
	"strings"

	"github.com/openparity/openparity/parser"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve parses the spec input into a ParseResult.
func (s specInput) resolve() (*parser.ParseResult, error) {
	set := 0
	if s.File != "" {
		set++
	}
	if s.Content != "" {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	p := parser.New()
	if s.File != "" {
		return p.Parse(s.File)
	}
	return p.ParseReader(strings.NewReader(s.Content))
}
