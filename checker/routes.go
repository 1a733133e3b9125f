package checker

import "fmt"

// checkRouteExistence asserts that every open route+method exists in the
// hosted document under its translated path. Operations tagged as
// admin/internal-only are excluded; the ignore patterns were already
// applied when the route list was flattened.
//
// Every missing route yields its own finding; the check never stops at the
// first failure.
func (c *Checker) checkRouteExistence(rc *runContext, routes []routeEntry, result *Result) {
	for _, r := range routes {
		if r.op.HasTag(rc.tables.ExcludedTags...) {
			continue
		}

		hostedPath := rc.tables.TranslatePath(r.path)
		item, ok := rc.hosted.Paths[hostedPath]
		if ok && item.Operation(r.method) != nil {
			continue
		}

		result.addFinding(Finding{
			Check:       CheckRouteExistence,
			Severity:    SeverityError,
			Method:      r.method,
			Path:        hostedPath,
			OpenValue:   r.path,
			HostedValue: nil,
			Message:     fmt.Sprintf("%s: %s not present in hosted document", MethodDisplay(r.method), hostedPath),
		})
	}
}
