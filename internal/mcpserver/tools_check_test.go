package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openSpec = `openapi: "3.1.0"
info:
  title: Open Orchestration API
  version: "3.1.4"
paths:
  /api/flows/:
    post:
      tags: [Flows]
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/FlowCreate"
components:
  schemas:
    FlowCreate:
      type: object
      properties:
        name:
          type: string
      required: [name]
`

const hostedSpec = `openapi: "3.1.0"
info:
  title: Hosted Orchestration API
  version: "3.1.9"
paths:
  /api/accounts/{account_id}/workspaces/{workspace_id}/flows/:
    post:
      tags: [Flows]
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/FlowCreate"
components:
  schemas:
    FlowCreate:
      type: object
      properties:
        name:
          type: string
      required: [name]
`

const hostedEmptySpec = `openapi: "3.1.0"
info:
  title: Hosted Orchestration API
  version: "3.1.9"
paths: {}
`

func TestCheckParityTool_CompatiblePair(t *testing.T) {
	input := checkParityInput{
		Open:   specInput{Content: openSpec},
		Hosted: specInput{Content: hostedSpec},
	}
	result, output, err := handleCheckParity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Compatible)
	assert.Zero(t, output.MismatchCount)
	assert.Empty(t, output.Findings)
	assert.Equal(t, "3.1.4", output.OpenVersion)
	assert.Contains(t, output.Summary, "Compatible")
}

func TestCheckParityTool_MissingRoute(t *testing.T) {
	input := checkParityInput{
		Open:   specInput{Content: openSpec},
		Hosted: specInput{Content: hostedEmptySpec},
	}
	result, output, err := handleCheckParity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.False(t, output.Compatible)
	assert.Equal(t, 1, output.MismatchCount)
	require.NotEmpty(t, output.Findings)
	assert.Equal(t, "route-existence", output.Findings[0].Check)
	assert.Contains(t, output.Summary, "Incompatible")
}

func TestCheckParityTool_ErrorsOnly(t *testing.T) {
	input := checkParityInput{
		Open:       specInput{Content: openSpec},
		Hosted:     specInput{Content: hostedEmptySpec},
		ErrorsOnly: true,
	}
	_, output, err := handleCheckParity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	// The missing FlowCreate type is informational and filtered out.
	for _, f := range output.Findings {
		assert.Equal(t, "error", f.Severity)
	}
}

func TestCheckParityTool_InvalidInput(t *testing.T) {
	input := checkParityInput{
		Open:   specInput{},
		Hosted: specInput{Content: hostedSpec},
	}
	result, _, err := handleCheckParity(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestParseTool(t *testing.T) {
	input := parseInput{Spec: specInput{Content: openSpec}}
	result, output, err := handleParse(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "Open Orchestration API", output.Title)
	assert.Equal(t, "3.1.4", output.Version)
	assert.Equal(t, "3.1.0", output.OASVersion)
	assert.Equal(t, 1, output.PathCount)
	assert.Equal(t, 1, output.SchemaCount)
}

func TestTranslatePathTool(t *testing.T) {
	input := translatePathInput{Path: "/api/flows/"}
	_, output, err := handleTranslatePath(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "/api/flows/", output.Open)
	assert.Equal(t, "/api/accounts/{account_id}/workspaces/{workspace_id}/flows/", output.Hosted)
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	err := &testError{msg: "parse error in /tmp/secret/spec.json: boom"}
	assert.Equal(t, "parse error in <path>: boom", sanitizeError(err))
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
