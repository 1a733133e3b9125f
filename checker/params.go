package checker

import (
	"fmt"
	"sort"

	"github.com/openparity/openparity/parser"
)

// typeFormat is one (type, format) pair of a parameter schema.
type typeFormat struct {
	Type   string
	Format string
}

// paramRecord is the comparison record built per parameter name:
// location, required flag, and the ordered type/format pairs with the
// null alternative filtered out.
type paramRecord struct {
	In       string
	Required bool
	Schemas  []typeFormat
}

func (r paramRecord) equal(other paramRecord) bool {
	if r.In != other.In || r.Required != other.Required || len(r.Schemas) != len(other.Schemas) {
		return false
	}
	for i, tf := range r.Schemas {
		if tf != other.Schemas[i] {
			return false
		}
	}
	return true
}

func (r paramRecord) String() string {
	return fmt.Sprintf("(in=%s required=%v schemas=%v)", r.In, r.Required, r.Schemas)
}

// checkParameters compares the parameter set of every route present in
// both documents. Existence of the translated route is the route checker's
// job; pairs missing on the hosted side are skipped here.
func (c *Checker) checkParameters(rc *runContext, routes []routeEntry, result *Result) {
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

		openRecords := paramRecords(r.op.Parameters, nil)
		hostedRecords := paramRecords(hostedOp.Parameters, rc.tables.InfraParams)

		// Some route groups do not require the orchestration version
		// header in the hosted document.
		if rc.tables.VersionHeaderExempt(ClassifyRoute(hostedPath)) {
			delete(openRecords, rc.tables.VersionHeader)
		}

		compareParamRecords(r, hostedPath, openRecords, hostedRecords, result)
	}
}

// paramRecords builds the per-name comparison records for one side,
// dropping the given infrastructure-only parameter names.
func paramRecords(params []*parser.Parameter, drop []string) map[string]paramRecord {
	records := make(map[string]paramRecord, len(params))
	for _, p := range params {
		if p == nil || containsString(drop, p.Name) {
			continue
		}
		records[p.Name] = paramRecord{
			In:       p.In,
			Required: p.Required,
			Schemas:  paramTypeFormats(p.Schema),
		}
	}
	return records
}

// paramTypeFormats extracts the ordered (type, format) pairs of a parameter
// schema. Union alternatives keep their declared order with the null
// alternative filtered out, so both sides normalize identically.
func paramTypeFormats(s *parser.Schema) []typeFormat {
	if s == nil {
		return nil
	}
	if len(s.AnyOf) == 0 {
		return []typeFormat{{Type: s.Type, Format: s.Format}}
	}
	pairs := make([]typeFormat, 0, len(s.AnyOf))
	for _, alt := range s.AnyOf {
		if alt == nil || alt.Type == NullType {
			continue
		}
		pairs = append(pairs, typeFormat{Type: alt.Type, Format: alt.Format})
	}
	return pairs
}

// compareParamRecords asserts the two per-name mappings are exactly equal:
// same name set, same record per name. Each divergence yields its own
// finding.
func compareParamRecords(r routeEntry, hostedPath string, open, hosted map[string]paramRecord, result *Result) {
	names := make(map[string]bool, len(open)+len(hosted))
	for name := range open {
		names[name] = true
	}
	for name := range hosted {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		openRec, onOpen := open[name]
		hostedRec, onHosted := hosted[name]

		switch {
		case !onHosted:
			result.addFinding(Finding{
				Check:     CheckParameters,
				Severity:  SeverityError,
				Method:    r.method,
				Path:      hostedPath,
				Field:     name,
				Facet:     FacetName,
				OpenValue: openRec.String(),
				Message:   fmt.Sprintf("%s: %s parameter %q missing from hosted document", MethodDisplay(r.method), hostedPath, name),
			})
		case !onOpen:
			result.addFinding(Finding{
				Check:       CheckParameters,
				Severity:    SeverityError,
				Method:      r.method,
				Path:        hostedPath,
				Field:       name,
				Facet:       FacetName,
				HostedValue: hostedRec.String(),
				Message:     fmt.Sprintf("%s: %s parameter %q present only in hosted document", MethodDisplay(r.method), hostedPath, name),
			})
		case !openRec.equal(hostedRec):
			result.addFinding(Finding{
				Check:       CheckParameters,
				Severity:    SeverityError,
				Method:      r.method,
				Path:        hostedPath,
				Field:       name,
				Facet:       FacetTypes,
				OpenValue:   openRec.String(),
				HostedValue: hostedRec.String(),
				Message:     fmt.Sprintf("%s: %s parameter %q differs: open %s, hosted %s", MethodDisplay(r.method), hostedPath, name, openRec, hostedRec),
			})
		}
	}
}
