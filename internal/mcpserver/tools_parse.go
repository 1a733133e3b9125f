package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparity/openparity/checker"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to summarize"`
}

type parseOutput struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	OASVersion  string `json:"oas_version"`
	PathCount   int    `json:"path_count"`
	SchemaCount int    `json:"schema_count"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Document
	return nil, parseOutput{
		Title:       doc.Info.Title,
		Version:     doc.Info.Version,
		OASVersion:  doc.OpenAPI,
		PathCount:   len(doc.Paths),
		SchemaCount: len(doc.SchemaNames()),
	}, nil
}

type translatePathInput struct {
	Path string `json:"path" jsonschema:"An open-namespace route path, e.g. /api/flows/"`
}

type translatePathOutput struct {
	Open   string `json:"open"`
	Hosted string `json:"hosted"`
}

func handleTranslatePath(_ context.Context, _ *mcp.CallToolRequest, input translatePathInput) (*mcp.CallToolResult, translatePathOutput, error) {
	tables := checker.DefaultTables()
	return nil, translatePathOutput{
		Open:   input.Path,
		Hosted: tables.TranslatePath(input.Path),
	}, nil
}
