package checker

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/openparity/openparity/parser"
)

// checkTypes compares every named schema in the open document against the
// hosted document's schema of the same name. Compatibility is directional:
// the open side must describe a subset of what the hosted side accepts,
// never the reverse.
func (c *Checker) checkTypes(rc *runContext, types []string, result *Result) {
	for _, name := range types {
		openSchema := rc.open.Schema(name)
		if openSchema == nil {
			continue
		}
		hostedSchema := rc.hosted.Schema(name)
		if hostedSchema == nil {
			result.MissingTypes = append(result.MissingTypes, name)
			result.addFinding(Finding{
				Check:    CheckTypes,
				Severity: SeverityInfo,
				TypeName: name,
				Facet:    FacetName,
				Message:  fmt.Sprintf("type %q not present in hosted document", name),
			})
			continue
		}
		if rc.wrapOptional {
			hostedSchema = WrapOptionalAsNullable(hostedSchema)
		}
		c.compareTypeSchemas(rc, name, openSchema, hostedSchema, result)
	}
}

// compareTypeSchemas walks the schema facets in a fixed order. Mapping
// facets (properties) are always examined, but the first scalar facet the
// open schema declares ends the walk: a schema with a required list is
// judged on properties and required alone, one with an enum on properties
// and enum alone, and so on. The short-circuit is load-bearing: callers
// and tests rely on later facets staying unexamined.
func (c *Checker) compareTypeSchemas(rc *runContext, name string, open, hosted *parser.Schema, result *Result) {
	c.compareTypeProperties(rc, name, open, hosted, result)

	if open.Required != nil {
		c.compareTypeRequired(name, open, hosted, result)
		return
	}
	if open.Enum != nil {
		c.compareTypeEnum(name, open, hosted, result)
		return
	}
	if open.Type != "" {
		if open.Type != hosted.Type {
			result.addFinding(Finding{
				Check:       CheckTypes,
				Severity:    SeverityError,
				TypeName:    name,
				Facet:       FacetType,
				OpenValue:   open.Type,
				HostedValue: hosted.Type,
				Message:     fmt.Sprintf("type %q kind differs: open %q, hosted %q", name, open.Type, hosted.Type),
			})
		}
	}
}

func (c *Checker) compareTypeProperties(rc *runContext, name string, open, hosted *parser.Schema, result *Result) {
	fields := make([]string, 0, len(open.Properties))
	for field := range open.Properties {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if rc.tables.ForwardCompatibleTypeProp(name, field) {
			continue
		}
		if rc.wrapOptional && rc.tables.KnownIncompatibleTypeProp(name, field) {
			continue
		}
		hostedProp, ok := hosted.Properties[field]
		if !ok {
			result.addFinding(Finding{
				Check:    CheckTypes,
				Severity: SeverityError,
				TypeName: name,
				Field:    field,
				Facet:    FacetProperties,
				Message:  fmt.Sprintf("type %q field %q missing from hosted schema", name, field),
			})
			continue
		}
		openTypes := ExtractTypeSet(open.Properties[field]).WithoutNull()
		hostedTypes := ExtractTypeSet(hostedProp)
		if !openTypes.SubsetOf(hostedTypes) {
			result.addFinding(Finding{
				Check:       CheckTypes,
				Severity:    SeverityError,
				TypeName:    name,
				Field:       field,
				Facet:       FacetProperties,
				OpenValue:   openTypes.String(),
				HostedValue: hostedTypes.String(),
				Message:     fmt.Sprintf("type %q field %q type set %v is not a subset of hosted %v", name, field, openTypes, hostedTypes),
			})
		}
	}
}

// compareTypeRequired accepts the hosted side requiring more than the
// open side declares, since hosted wraps optional fields into required
// nullable ones. Only open-side requirements missing on hosted fail.
func (c *Checker) compareTypeRequired(name string, open, hosted *parser.Schema, result *Result) {
	hostedSet := make(map[string]struct{}, len(hosted.Required))
	for _, field := range hosted.Required {
		hostedSet[field] = struct{}{}
	}
	for _, field := range open.Required {
		if _, ok := hostedSet[field]; !ok {
			result.addFinding(Finding{
				Check:       CheckTypes,
				Severity:    SeverityError,
				TypeName:    name,
				Field:       field,
				Facet:       FacetRequired,
				OpenValue:   open.Required,
				HostedValue: hosted.Required,
				Message:     fmt.Sprintf("type %q requires %q which hosted does not declare required", name, field),
			})
		}
	}
}

func (c *Checker) compareTypeEnum(name string, open, hosted *parser.Schema, result *Result) {
	for _, value := range open.Enum {
		if !enumContains(hosted.Enum, value) {
			result.addFinding(Finding{
				Check:       CheckTypes,
				Severity:    SeverityError,
				TypeName:    name,
				Facet:       FacetEnum,
				OpenValue:   value,
				HostedValue: hosted.Enum,
				Message:     fmt.Sprintf("type %q enum value %v not accepted by hosted", name, value),
			})
		}
	}
}

func enumContains(values []any, value any) bool {
	for _, candidate := range values {
		if reflect.DeepEqual(candidate, value) {
			return true
		}
	}
	return false
}
