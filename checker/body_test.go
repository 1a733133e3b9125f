package checker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparity/openparity/parser"
)

// bodyDoc builds a one-route document whose POST request body references a
// single named schema.
func bodyDoc(t *testing.T, path, schemaName, schemaJSON string) *parser.Document {
	t.Helper()
	src := fmt.Sprintf(`{
		"openapi": "3.1.0",
		"info": {"title": "Test API", "version": "3.1.0"},
		"paths": {
			%q: {
				"post": {
					"requestBody": {
						"content": {
							"application/json": {
								"schema": {"$ref": "#/components/schemas/%s"}
							}
						}
					}
				}
			}
		},
		"components": {"schemas": {%q: %s}}
	}`, path, schemaName, schemaName, schemaJSON)

	result, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	return result.Document
}

func runBodyCheck(t *testing.T, open, hosted *parser.Document) *Result {
	t.Helper()
	rc := newTestRunContext(open, hosted, false)
	result := &Result{}
	c := New()
	c.checkRequestBodies(rc, flattenRoutes(open.Paths, rc.tables), result)
	return result
}

func TestCheckRequestBodiesCompatible(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tags": {"type": "array", "default": []}
		}
	}`
	open := bodyDoc(t, "/api/flows/", "FlowCreate", schema)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", schema)

	result := runBodyCheck(t, open, hosted)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesForwardCompatibleField(t *testing.T) {
	open := bodyDoc(t, "/api/deployments/", "DeploymentCreate", `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"job_variables": {"type": "object"}
		}
	}`)
	hosted := bodyDoc(t,
		"/api/accounts/{account_id}/workspaces/{workspace_id}/deployments/",
		"DeploymentCreate", `{
		"type": "object",
		"properties": {
			"name": {"type": "string"}
		}
	}`)

	// job_variables exists only on the open side and is pre-approved.
	result := runBodyCheck(t, open, hosted)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesMissingField(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {"description": {"type": "string"}}
	}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{
		"type": "object",
		"properties": {}
	}`)

	result := runBodyCheck(t, open, hosted)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, CheckRequestBody, f.Check)
	assert.Equal(t, FacetName, f.Facet)
	assert.Equal(t, "description", f.Field)
}

func TestCheckRequestBodiesNullableFieldToleratesHostedFormat(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {
			"updated": {"anyOf": [{"type": "string"}, {"type": "null"}]}
		}
	}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{
		"type": "object",
		"properties": {
			"updated": {"type": "string", "format": "date-time"}
		}
	}`)

	result := runBodyCheck(t, open, hosted)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesFormatMismatch(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {"id": {"type": "string"}}
	}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{
		"type": "object",
		"properties": {"id": {"type": "string", "format": "uuid"}}
	}`)

	// Without the null escape hatch a format divergence is a mismatch.
	result := runBodyCheck(t, open, hosted)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, FacetFormat, result.Findings[0].Facet)
}

func TestCheckRequestBodiesTypeSubset(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {
			"value": {"anyOf": [{"type": "string"}, {"type": "integer"}]}
		}
	}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{
		"type": "object",
		"properties": {
			"value": {"type": "string"}
		}
	}`)

	result := runBodyCheck(t, open, hosted)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, FacetTypes, f.Facet)
	assert.Contains(t, f.Message, "not a subset")
}

func TestCheckRequestBodiesDefaultMismatch(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {"tags": {"type": "array", "default": []}}
	}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{
		"type": "object",
		"properties": {"tags": {"type": "array", "default": {}}}
	}`)

	result := runBodyCheck(t, open, hosted)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, FacetDefault, result.Findings[0].Facet)
}

func TestCheckRequestBodiesFieldAlias(t *testing.T) {
	open := bodyDoc(t, "/api/work_pools/", "WorkPoolCreateRequest", `{
		"type": "object",
		"properties": {"template": {"type": "object"}}
	}`)
	hosted := bodyDoc(t,
		"/api/accounts/{account_id}/workspaces/{workspace_id}/work_pools/",
		"WorkPoolCreateHosted", `{
		"type": "object",
		"properties": {"base_job_template": {"type": "object"}}
	}`)

	result := runBodyCheck(t, open, hosted)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesAllOfWrapperRef(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`)

	hostedSrc := fmt.Sprintf(`{
		"openapi": "3.1.0",
		"info": {"title": "Test API", "version": "3.1.0"},
		"paths": {
			%q: {
				"post": {
					"requestBody": {
						"content": {
							"application/json": {
								"schema": {"allOf": [{"$ref": "#/components/schemas/FlowCreate"}]}
							}
						}
					}
				}
			}
		},
		"components": {"schemas": {"FlowCreate": {
			"type": "object",
			"properties": {"name": {"type": "string"}}
		}}}
	}`, hostedFlowsPath)
	hostedResult, err := parser.New().ParseBytes([]byte(hostedSrc))
	require.NoError(t, err)

	result := runBodyCheck(t, open, hostedResult.Document)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesUnresolvableRefSubstitutesEmptyDescriptor(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{"type": "object"}`)
	// Point the open body at a schema that does not exist.
	open.Paths["/api/flows/"].Post.RequestBody.Content["application/json"].Schema.Ref =
		"#/components/schemas/Missing"

	hosted := &parser.Document{Paths: parser.Paths{
		hostedFlowsPath: {Post: &parser.Operation{}},
	}}

	// Both sides reduce to the empty descriptor, which is self-compatible.
	result := runBodyCheck(t, open, hosted)
	assert.Empty(t, result.Findings)
}

func TestCheckRequestBodiesTopLevelKindMismatch(t *testing.T) {
	open := bodyDoc(t, "/api/flows/", "FlowCreate", `{"type": "object"}`)
	hosted := bodyDoc(t, hostedFlowsPath, "FlowCreate", `{"type": "array"}`)

	result := runBodyCheck(t, open, hosted)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, FacetType, f.Facet)
	assert.Contains(t, f.Message, "request body kind differs")
}

func TestBodyRef(t *testing.T) {
	assert.Equal(t, "", bodyRef(nil))
	assert.Equal(t, "", bodyRef(&parser.RequestBody{}))

	direct := &parser.RequestBody{Content: map[string]*parser.MediaType{
		"application/json": {Schema: &parser.Schema{Ref: "#/components/schemas/A"}},
	}}
	assert.Equal(t, "#/components/schemas/A", bodyRef(direct))

	wrapped := &parser.RequestBody{Content: map[string]*parser.MediaType{
		"application/json": {Schema: &parser.Schema{
			AnyOf: nil,
			AllOf: []*parser.Schema{{Ref: "#/components/schemas/B"}},
		}},
	}}
	assert.Equal(t, "#/components/schemas/B", bodyRef(wrapped))

	nonJSON := &parser.RequestBody{Content: map[string]*parser.MediaType{
		"text/plain": {Schema: &parser.Schema{Ref: "#/components/schemas/C"}},
	}}
	assert.Equal(t, "", bodyRef(nonJSON))
}
