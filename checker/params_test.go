package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparity/openparity/parser"
)

const hostedFlowsPath = "/api/accounts/{account_id}/workspaces/{workspace_id}/flows/"

func runParamCheck(t *testing.T, openParams, hostedParams []*parser.Parameter, openPath, hostedPath string) *Result {
	t.Helper()
	open := &parser.Document{Paths: parser.Paths{
		openPath: {Post: &parser.Operation{Parameters: openParams}},
	}}
	hosted := &parser.Document{Paths: parser.Paths{
		hostedPath: {Post: &parser.Operation{Parameters: hostedParams}},
	}}

	rc := newTestRunContext(open, hosted, false)
	result := &Result{}
	c := New()
	c.checkParameters(rc, flattenRoutes(open.Paths, rc.tables), result)
	return result
}

func TestCheckParametersInfraParamsDropped(t *testing.T) {
	openParams := []*parser.Parameter{
		{Name: "x-prefect-api-version", In: "header", Schema: &parser.Schema{Type: "string"}},
	}
	hostedParams := []*parser.Parameter{
		{Name: "x-prefect-api-version", In: "header", Schema: &parser.Schema{Type: "string"}},
		{Name: "account_id", In: "path", Required: true, Schema: &parser.Schema{Type: "string", Format: "uuid"}},
		{Name: "workspace_id", In: "path", Required: true, Schema: &parser.Schema{Type: "string", Format: "uuid"}},
		{Name: "token_cost", In: "query", Schema: &parser.Schema{Type: "number"}},
	}

	result := runParamCheck(t, openParams, hostedParams, "/api/flows/", hostedFlowsPath)
	assert.Empty(t, result.Findings)
}

func TestCheckParametersVersionHeaderExemptGroups(t *testing.T) {
	openParams := []*parser.Parameter{
		{Name: "x-prefect-api-version", In: "header", Schema: &parser.Schema{Type: "string"}},
	}

	// Events routes do not require the header on the hosted side.
	result := runParamCheck(t, openParams, nil,
		"/api/events/filter",
		"/api/accounts/{account_id}/workspaces/{workspace_id}/events/filter")
	assert.Empty(t, result.Findings)

	// Orchestration routes still compare it.
	result = runParamCheck(t, openParams, nil, "/api/flows/", hostedFlowsPath)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, CheckParameters, f.Check)
	assert.Equal(t, FacetName, f.Facet)
	assert.Equal(t, "x-prefect-api-version", f.Field)
}

func TestCheckParametersUnionNormalization(t *testing.T) {
	openParams := []*parser.Parameter{
		{Name: "limit", In: "query", Schema: &parser.Schema{
			AnyOf: []*parser.Schema{{Type: "integer"}, {Type: "null"}},
		}},
	}
	hostedParams := []*parser.Parameter{
		{Name: "limit", In: "query", Schema: &parser.Schema{
			AnyOf: []*parser.Schema{{Type: "integer"}},
		}},
	}

	result := runParamCheck(t, openParams, hostedParams, "/api/flows/", hostedFlowsPath)
	assert.Empty(t, result.Findings)
}

func TestCheckParametersRecordMismatch(t *testing.T) {
	openParams := []*parser.Parameter{
		{Name: "id", In: "query", Required: true, Schema: &parser.Schema{Type: "string"}},
	}
	hostedParams := []*parser.Parameter{
		{Name: "id", In: "query", Required: false, Schema: &parser.Schema{Type: "string"}},
	}

	result := runParamCheck(t, openParams, hostedParams, "/api/flows/", hostedFlowsPath)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, FacetTypes, f.Facet)
	assert.Equal(t, "id", f.Field)
	assert.Contains(t, f.Message, `parameter "id" differs`)
}

func TestCheckParametersHostedOnlyParameter(t *testing.T) {
	hostedParams := []*parser.Parameter{
		{Name: "offset", In: "query", Schema: &parser.Schema{Type: "integer"}},
	}

	result := runParamCheck(t, nil, hostedParams, "/api/flows/", hostedFlowsPath)
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Message, "present only in hosted document")
}

func TestCheckParametersSkipsRoutesMissingOnHosted(t *testing.T) {
	open := &parser.Document{Paths: parser.Paths{
		"/api/flows/": {Post: &parser.Operation{Parameters: []*parser.Parameter{
			{Name: "id", In: "query", Schema: &parser.Schema{Type: "string"}},
		}}},
	}}
	hosted := &parser.Document{Paths: parser.Paths{}}

	rc := newTestRunContext(open, hosted, false)
	result := &Result{}
	c := New()
	c.checkParameters(rc, flattenRoutes(open.Paths, rc.tables), result)

	// Missing routes belong to the existence check, not this one.
	assert.Empty(t, result.Findings)
}

func TestParamTypeFormats(t *testing.T) {
	pairs := paramTypeFormats(&parser.Schema{
		AnyOf: []*parser.Schema{
			{Type: "string", Format: "date-time"},
			{Type: "null"},
			{Type: "integer"},
		},
	})
	assert.Equal(t, []typeFormat{
		{Type: "string", Format: "date-time"},
		{Type: "integer"},
	}, pairs)

	pairs = paramTypeFormats(&parser.Schema{Type: "string", Format: "uuid"})
	assert.Equal(t, []typeFormat{{Type: "string", Format: "uuid"}}, pairs)

	assert.Nil(t, paramTypeFormats(nil))
}
