// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes openparity capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparity/openparity"
)

const serverInstructions = `openparity MCP server — checks an open-source API description against its hosted counterpart for compatibility.

Tools:
- check_parity compares two OpenAPI documents (open and hosted) and reports every route, parameter, request-body, and type divergence. Paths in the open document are renamespaced under account/workspace scoping before lookup.
- parse returns a structural summary of a single document: title, version, route and type counts.
- translate_path previews the open-to-hosted path rewrite for one route path.

Both documents are read from local file paths; no network access is performed.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openparity", Version: openparity.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_parity",
		Description: "Compare an open-source OpenAPI document against its hosted counterpart. Reports missing routes, parameter divergences, request-body incompatibilities, and type mismatches, with known forward-compatible divergences filtered out. Use errors_only=true to suppress informational findings.",
	}, handleCheckParity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI document and return a structural summary: title, declared version, and route/type counts. Useful for confirming a document loads before running check_parity.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "translate_path",
		Description: "Preview how one open-namespace route path is rewritten into the hosted account/workspace-scoped namespace. Paths shared verbatim by both variants are returned unchanged.",
	}, handleTranslatePath)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
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
