package checker

import (
	"sort"
	"strings"

	"github.com/openparity/openparity/internal/severity"
	"github.com/openparity/openparity/parityerrors"
	"github.com/openparity/openparity/parser"
)

// CheckKind identifies which compatibility rule produced a finding.
type CheckKind string

const (
	// CheckRouteExistence asserts every open route exists in the hosted
	// document under its translated path.
	CheckRouteExistence CheckKind = "route-existence"
	// CheckParameters asserts the parameter sets of shared routes match.
	CheckParameters CheckKind = "parameters"
	// CheckRequestBody asserts request-body fields are forward compatible.
	CheckRequestBody CheckKind = "request-body"
	// CheckTypes asserts named data types are structurally compatible.
	CheckTypes CheckKind = "types"
)

// Facet identifies the compared aspect that diverged.
type Facet string

const (
	// FacetName is field presence under the (possibly aliased) name.
	FacetName Facet = "name"
	// FacetTypes is the logical type-set comparison (subset-or-equal).
	FacetTypes Facet = "types"
	// FacetFormat is the format annotation comparison.
	FacetFormat Facet = "format"
	// FacetDefault is the normalized default-value comparison.
	FacetDefault Facet = "default"
	// FacetDeprecated is the deprecated-flag comparison.
	FacetDeprecated Facet = "deprecated"
	// FacetProperties is the per-field comparison of a named type.
	FacetProperties Facet = "properties"
	// FacetRequired is the required-field-list comparison of a named type.
	FacetRequired Facet = "required"
	// FacetEnum is the enumerated-literal comparison of a named type.
	FacetEnum Facet = "enum"
	// FacetType is the declared-kind comparison.
	FacetType Facet = "type"
)

// Severity is re-exported from the internal severity package.
type Severity = severity.Severity

const (
	// SeverityError indicates a hard compatibility mismatch
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a divergence worth review
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational notices
	SeverityInfo = severity.SeverityInfo
)

// Finding is one divergence between the open and hosted documents. It
// carries the entry identity (route+method, type name, field), the facet
// that diverged, and both compared values, so every mismatch is actionable
// on its own.
type Finding struct {
	// Check is the rule that produced the finding
	Check CheckKind
	// Severity is the impact level; SeverityError findings fail the run
	Severity Severity
	// Method is the lowercase HTTP method, when the entry is a route
	Method string
	// Path is the route path in the hosted namespace, when applicable
	Path string
	// TypeName is the named data type, when the entry is a type
	TypeName string
	// Field is the affected field or parameter name, if any
	Field string
	// Facet is the compared aspect that diverged
	Facet Facet
	// OpenValue is the open document's value for the facet
	OpenValue any
	// HostedValue is the hosted document's value for the facet
	HostedValue any
	// Message is a human-readable description of the divergence
	Message string
}

// Result contains the aggregate outcome of one check run. Findings from
// every entry are collected; a failure in one entry never prevents
// evaluation of the rest.
type Result struct {
	// OpenVersion is the open document's declared info.version
	OpenVersion string
	// HostedVersion is the hosted document's declared info.version
	HostedVersion string
	// LegacyOptionalEncoding is true when the open document predates the
	// newer optional-field encoding and hosted types are nullable-wrapped
	// before comparison
	LegacyOptionalEncoding bool
	// RoutesChecked is the number of open route+method pairs examined
	RoutesChecked int
	// TypesChecked is the number of open named types examined
	TypesChecked int
	// MissingTypes lists open type names absent from the hosted document.
	// Name-level additions are not enforced yet; this is informational.
	MissingTypes []string
	// Findings contains every divergence found, across all checks
	Findings []Finding
	// MismatchCount is the number of SeverityError findings
	MismatchCount int
	// Compatible is true when no SeverityError finding was produced
	Compatible bool
}

// runContext carries the immutable inputs of one check run. The comparison
// mode is computed once from the open document's version and threaded
// through every checker call rather than held in package state.
type runContext struct {
	open   *parser.Document
	hosted *parser.Document
	tables *Tables
	// wrapOptional is true when the open document uses the legacy
	// optional-field encoding and hosted type copies must be
	// nullable-wrapped before structural comparison.
	wrapOptional bool
	logger       parser.Logger
}

// routeEntry is one (method, path, operation) triple from the open
// document's flattened route list.
type routeEntry struct {
	method string
	path   string
	op     *parser.Operation
}

// Checker runs the compatibility rules between an open and a hosted API
// description.
type Checker struct {
	// Tables are the exception tables for the run. Nil selects
	// DefaultTables.
	Tables *Tables
	// Logger receives structured debug output. Nil selects the no-op
	// logger.
	Logger parser.Logger
}

// New creates a Checker with the default exception tables.
func New() *Checker {
	return &Checker{Tables: DefaultTables()}
}

func (c *Checker) log() parser.Logger {
	if c.Logger == nil {
		return parser.NopLogger()
	}
	return c.Logger
}

// Check loads both description files and runs all compatibility rules.
func (c *Checker) Check(openPath, hostedPath string) (*Result, error) {
	p := parser.New()
	p.Logger = c.log()

	open, err := p.Parse(openPath)
	if err != nil {
		return nil, err
	}
	hosted, err := p.Parse(hostedPath)
	if err != nil {
		return nil, err
	}

	return c.CheckParsed(*open, *hosted)
}

// CheckParsed runs all compatibility rules over two already-loaded
// documents. The documents are treated as immutable snapshots; any
// normalization happens on checker-local copies.
func (c *Checker) CheckParsed(open, hosted parser.ParseResult) (*Result, error) {
	if open.Document == nil || hosted.Document == nil {
		return nil, &parityerrors.ConfigError{
			Option:  "documents",
			Message: "both documents must be parsed before checking",
		}
	}

	tables := c.Tables
	if tables == nil {
		tables = DefaultTables()
	}

	rc := &runContext{
		open:         open.Document,
		hosted:       hosted.Document,
		tables:       tables,
		wrapOptional: !strings.HasPrefix(open.Version, tables.NewVersionPrefix),
		logger:       c.log(),
	}

	result := &Result{
		OpenVersion:            open.Version,
		HostedVersion:          hosted.Version,
		LegacyOptionalEncoding: rc.wrapOptional,
	}

	routes := flattenRoutes(rc.open.Paths, tables)
	types := flattenTypeNames(rc.open)
	result.RoutesChecked = len(routes)
	result.TypesChecked = len(types)

	rc.logger.Debug("starting check run",
		"routes", len(routes),
		"types", len(types),
		"legacy_optional_encoding", rc.wrapOptional,
	)

	c.checkRouteExistence(rc, routes, result)
	c.checkParameters(rc, routes, result)
	c.checkRequestBodies(rc, routes, result)
	c.checkTypes(rc, types, result)

	for _, f := range result.Findings {
		if f.Severity == SeverityError {
			result.MismatchCount++
		}
	}
	result.Compatible = result.MismatchCount == 0

	return result, nil
}

// flattenRoutes builds the open document's route list: one entry per
// (method, path, operation) triple, minus paths matching the ignore
// patterns. Entries are ordered by path, then by method, so findings are
// deterministic across runs.
func flattenRoutes(paths parser.Paths, tables *Tables) []routeEntry {
	pathNames := make([]string, 0, len(paths))
	for path := range paths {
		if tables.RouteIgnored(path) {
			continue
		}
		pathNames = append(pathNames, path)
	}
	sort.Strings(pathNames)

	var routes []routeEntry
	for _, path := range pathNames {
		item := paths[path]
		if item == nil {
			continue
		}
		for _, method := range parser.HTTPMethods {
			if op := item.Operation(method); op != nil {
				routes = append(routes, routeEntry{method: method, path: path, op: op})
			}
		}
	}
	return routes
}

// flattenTypeNames returns the open document's declared type names in
// lexical order.
func flattenTypeNames(doc *parser.Document) []string {
	names := doc.SchemaNames()
	sort.Strings(names)
	return names
}

func (r *Result) addFinding(f Finding) {
	r.Findings = append(r.Findings, f)
}
