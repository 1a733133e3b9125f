package mcpserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparity/openparity/checker"
)

type checkParityInput struct {
	Open       specInput `json:"open"                  jsonschema:"The open-source variant's OpenAPI document"`
	Hosted     specInput `json:"hosted"                jsonschema:"The hosted variant's OpenAPI document"`
	ErrorsOnly bool      `json:"errors_only,omitempty" jsonschema:"Only show error-level findings"`
}

type parityFinding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Method   string `json:"method,omitempty"`
	Path     string `json:"path,omitempty"`
	TypeName string `json:"type_name,omitempty"`
	Field    string `json:"field,omitempty"`
	Facet    string `json:"facet,omitempty"`
	Message  string `json:"message"`
}

type checkParityOutput struct {
	Compatible             bool            `json:"compatible"`
	OpenVersion            string          `json:"open_version"`
	HostedVersion          string          `json:"hosted_version"`
	LegacyOptionalEncoding bool            `json:"legacy_optional_encoding"`
	RoutesChecked          int             `json:"routes_checked"`
	TypesChecked           int             `json:"types_checked"`
	MismatchCount          int             `json:"mismatch_count"`
	MissingTypes           []string        `json:"missing_types,omitempty"`
	Findings               []parityFinding `json:"findings,omitempty"`
	Summary                string          `json:"summary"`
}

func handleCheckParity(_ context.Context, _ *mcp.CallToolRequest, input checkParityInput) (*mcp.CallToolResult, checkParityOutput, error) {
	openResult, err := input.Open.resolve()
	if err != nil {
		return errResult(err), checkParityOutput{}, nil
	}

	hostedResult, err := input.Hosted.resolve()
	if err != nil {
		return errResult(err), checkParityOutput{}, nil
	}

	result, err := checker.CheckWithOptions(
		checker.WithOpenParsed(*openResult),
		checker.WithHostedParsed(*hostedResult),
	)
	if err != nil {
		return errResult(err), checkParityOutput{}, nil
	}

	output := checkParityOutput{
		Compatible:             result.Compatible,
		OpenVersion:            result.OpenVersion,
		HostedVersion:          result.HostedVersion,
		LegacyOptionalEncoding: result.LegacyOptionalEncoding,
		RoutesChecked:          result.RoutesChecked,
		TypesChecked:           result.TypesChecked,
		MismatchCount:          result.MismatchCount,
		MissingTypes:           result.MissingTypes,
		Findings:               makeSlice[parityFinding](len(result.Findings)),
	}

	for _, f := range result.Findings {
		if input.ErrorsOnly && f.Severity != checker.SeverityError {
			continue
		}
		output.Findings = append(output.Findings, parityFinding{
			Check:    string(f.Check),
			Severity: f.Severity.String(),
			Method:   f.Method,
			Path:     f.Path,
			TypeName: f.TypeName,
			Field:    f.Field,
			Facet:    string(f.Facet),
			Message:  f.Message,
		})
	}

	output.Summary = buildParitySummary(output)
	return nil, output, nil
}

func buildParitySummary(output checkParityOutput) string {
	if output.Compatible {
		return "Compatible: " + strconv.Itoa(output.RoutesChecked) + " routes and " +
			strconv.Itoa(output.TypesChecked) + " types checked, no mismatches."
	}

	summary := "Incompatible: " + formatCount(output.MismatchCount, "mismatch") + " found across " +
		strconv.Itoa(output.RoutesChecked) + " routes and " +
		strconv.Itoa(output.TypesChecked) + " types."
	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	suffix := "s"
	if noun == "mismatch" {
		suffix = "es"
	}
	return strconv.Itoa(n) + " " + noun + suffix
}
