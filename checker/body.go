package checker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/openparity/openparity/parityerrors"
	"github.com/openparity/openparity/parser"
)

// mediaTypeJSON is the request media type whose schema participates in
// body compatibility checking.
const mediaTypeJSON = "application/json"

// checkRequestBodies compares the request-body shape of every route present
// in both documents. A body is compatible when every open-side field exists
// on the hosted side with a type-set that is a subset of (or equal to) the
// hosted side's, modulo the exception tables.
func (c *Checker) checkRequestBodies(rc *runContext, routes []routeEntry, result *Result) {
	for _, r := range routes {
		hostedPath := rc.tables.TranslatePath(r.path)
		item, ok := rc.hosted.Paths[hostedPath]
		if !ok {
			continue
		}
		hostedOp := item.Operation(r.method)
		if hostedOp == nil {
			continue
		}

		openSchema, err := resolveBodySchema(rc.open, bodyRef(r.op.RequestBody), rc.logger)
		if err != nil {
			result.addFinding(bodyLookupFinding(r, hostedPath, err))
			continue
		}
		hostedSchema, err := resolveBodySchema(rc.hosted, bodyRef(hostedOp.RequestBody), rc.logger)
		if err != nil {
			result.addFinding(bodyLookupFinding(r, hostedPath, err))
			continue
		}

		c.compareBodySchemas(rc, r, hostedPath, openSchema, hostedSchema, result)
	}
}

// bodyRef extracts the request-body schema reference, handling the two
// conventions for where the reference lives: directly on the schema, or
// one level inside an allOf composition wrapper. The direct form wins.
func bodyRef(rb *parser.RequestBody) string {
	if rb == nil {
		return ""
	}
	media := rb.Content[mediaTypeJSON]
	if media == nil || media.Schema == nil {
		return ""
	}
	if media.Schema.Ref != "" {
		return media.Schema.Ref
	}
	for _, wrapped := range media.Schema.AllOf {
		if wrapped != nil && wrapped.Ref != "" {
			return wrapped.Ref
		}
	}
	return ""
}

// resolveBodySchema resolves a request-body reference, substituting the
// empty descriptor when there is no reference or the reference does not
// resolve. This is the one call site where a lookup failure is expected:
// routes without a JSON body legitimately have no schema to point at.
func resolveBodySchema(doc *parser.Document, ref string, logger parser.Logger) (*parser.Schema, error) {
	if ref == "" {
		return emptyDescriptor(), nil
	}
	schema, err := doc.ResolveSchemaRef(ref)
	if err != nil {
		if errors.Is(err, parityerrors.ErrLookup) {
			logger.Debug("request body reference did not resolve, substituting empty descriptor", "ref", ref)
			return emptyDescriptor(), nil
		}
		return nil, err
	}
	if schema == nil {
		return emptyDescriptor(), nil
	}
	return schema, nil
}

// emptyDescriptor is the stand-in for an absent request-body schema:
// no declared kind, no properties.
func emptyDescriptor() *parser.Schema {
	return &parser.Schema{Properties: map[string]*parser.Schema{}}
}

func bodyLookupFinding(r routeEntry, hostedPath string, err error) Finding {
	return Finding{
		Check:    CheckRequestBody,
		Severity: SeverityError,
		Method:   r.method,
		Path:     hostedPath,
		Message:  fmt.Sprintf("%s: %s request body reference failed: %v", MethodDisplay(r.method), hostedPath, err),
	}
}

// compareBodySchemas checks the top-level kind and then every open-side
// field against the hosted side, applying the forward-compatible and
// facet-skip tables. Each facet mismatch yields its own finding.
func (c *Checker) compareBodySchemas(rc *runContext, r routeEntry, hostedPath string, open, hosted *parser.Schema, result *Result) {
	if open.Type != hosted.Type {
		result.addFinding(Finding{
			Check:       CheckRequestBody,
			Severity:    SeverityError,
			Method:      r.method,
			Path:        hostedPath,
			Facet:       FacetType,
			OpenValue:   open.Type,
			HostedValue: hosted.Type,
			Message:     fmt.Sprintf("%s: %s request body kind differs: open %q, hosted %q", MethodDisplay(r.method), hostedPath, open.Type, hosted.Type),
		})
	}

	fields := make([]string, 0, len(open.Properties))
	for name := range open.Properties {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if rc.tables.ForwardCompatibleRequestProp(r.path, field) {
			continue
		}
		c.compareBodyField(rc, r, hostedPath, field, open.Properties[field], hosted, result)
	}
}

func (c *Checker) compareBodyField(rc *runContext, r routeEntry, hostedPath, field string, openProp *parser.Schema, hosted *parser.Schema, result *Result) {
	fail := func(facet Facet, openVal, hostedVal any, detail string) {
		result.addFinding(Finding{
			Check:       CheckRequestBody,
			Severity:    SeverityError,
			Method:      r.method,
			Path:        hostedPath,
			Field:       field,
			Facet:       facet,
			OpenValue:   openVal,
			HostedValue: hostedVal,
			Message:     fmt.Sprintf("%s: %s field %q %s", MethodDisplay(r.method), hostedPath, field, detail),
		})
	}
	skip := func(facet Facet) bool {
		return rc.tables.FacetSkipped(r.path, r.method, field, facet)
	}

	hostedName := rc.tables.AliasFor(r.path, r.method, field)
	hostedProp, ok := hosted.Properties[hostedName]
	if !ok {
		if skip(FacetName) {
			return
		}
		fail(FacetName, field, nil, fmt.Sprintf("missing from hosted schema (looked up as %q)", hostedName))
		return
	}

	openTypes := ExtractTypeSet(openProp)
	hostedTypes := ExtractTypeSet(hostedProp)
	openFormat := ExtractFormat(openProp)
	hostedFormat := ExtractFormat(hostedProp)

	// The documents differ in whether nullable optional fields echo their
	// format; a null-typed open field with no format tolerates a hosted
	// format.
	if openTypes.Contains(NullType) && openFormat == "" && hostedFormat != "" {
		hostedFormat = ""
	}
	openTypes = openTypes.WithoutNull()

	if !skip(FacetTypes) && !openTypes.SubsetOf(hostedTypes) {
		fail(FacetTypes, openTypes.String(), hostedTypes.String(),
			fmt.Sprintf("type set %v is not a subset of hosted %v", openTypes, hostedTypes))
	}
	if !skip(FacetFormat) && openFormat != hostedFormat {
		fail(FacetFormat, openFormat, hostedFormat,
			fmt.Sprintf("format differs: open %q, hosted %q", openFormat, hostedFormat))
	}
	openDefault := NormalizeDefault(openProp)
	hostedDefault := NormalizeDefault(hostedProp)
	if !skip(FacetDefault) && !DefaultsEqual(openDefault, hostedDefault) {
		fail(FacetDefault, openDefault, hostedDefault,
			fmt.Sprintf("default differs: open %v, hosted %v", openDefault, hostedDefault))
	}
	if !skip(FacetDeprecated) && openProp.Deprecated != hostedProp.Deprecated {
		fail(FacetDeprecated, openProp.Deprecated, hostedProp.Deprecated,
			fmt.Sprintf("deprecated flag differs: open %v, hosted %v", openProp.Deprecated, hostedProp.Deprecated))
	}
}
