package checker

import "regexp"

// FieldKey identifies one field of one route for exception-table lookups.
// Path is the open-namespace route path and Method the lowercase HTTP method.
type FieldKey struct {
	Path   string
	Method string
	Field  string
}

// Tables holds the tunable inputs of a check run: ignored routes, excluded
// tags, infrastructure parameters, and the allow-lists of known,
// forward-compatible divergences. The tables are plain data so they can be
// audited, diffed, and tested independently of the comparison algorithms.
//
// DefaultTables returns the tables for the product's current API surface;
// pass a modified copy to Checker via WithTables to tune a run.
type Tables struct {
	// IgnoredRoutePatterns excludes open routes from every check when the
	// full path matches. Covers routes that intentionally exist only in the
	// open document.
	IgnoredRoutePatterns []*regexp.Regexp

	// ExcludedTags excludes an operation from the route existence check
	// when its tag set intersects this list.
	ExcludedTags []string

	// UnscopedPaths are returned unchanged by TranslatePath because the
	// hosted document does not nest them under account/workspace scoping.
	UnscopedPaths []string

	// InfraParams are parameter names injected by the hosted routing layer.
	// They have no open-side counterpart and are dropped from the hosted
	// side before parameter comparison.
	InfraParams []string

	// VersionHeader is the orchestration version header parameter. The
	// hosted document does not require it on routes belonging to
	// VersionHeaderExemptGroups, so it is dropped from the open side there.
	VersionHeader string

	// VersionHeaderExemptGroups lists the route groups where VersionHeader
	// is not compared.
	VersionHeaderExemptGroups []RouteGroup

	// ForwardCompatibleRequestProps maps an open route path to request-body
	// fields that exist only on the open side but are pre-approved as
	// forward compatible.
	ForwardCompatibleRequestProps map[string][]string

	// ForwardCompatibleTypeProps maps a named type to fields that exist
	// only on the open side but are pre-approved as forward compatible.
	ForwardCompatibleTypeProps map[string][]string

	// KnownIncompatibleTypeProps maps a named type to fields with known,
	// accepted incompatibilities. These are skipped only while the legacy
	// optional-field encoding is in play (see Result.LegacyOptionalEncoding).
	KnownIncompatibleTypeProps map[string][]string

	// FieldAliases remaps an open-side request-body field name to the
	// hosted-side name for the same logical field.
	FieldAliases map[FieldKey]string

	// SkipFacets lists comparison facets to skip for one field of one route.
	SkipFacets map[FieldKey][]Facet

	// NewVersionPrefix selects the comparison mode: an open document whose
	// info.version begins with this prefix uses the newer optional-field
	// encoding and needs no nullable-union wrapping.
	NewVersionPrefix string
}

// DefaultTables returns the exception tables for the current API surface.
func DefaultTables() *Tables {
	return &Tables{
		IgnoredRoutePatterns: []*regexp.Regexp{
			// CSRF protection exists only in the open variant.
			regexp.MustCompile(`^/api/csrf-token$`),
			// Experimental routes iterate too fast to pin down.
			regexp.MustCompile(`.*experimental.*`),
			// UI routes serve the bundled frontend only.
			regexp.MustCompile(`^/api/ui/.*`),
		},
		ExcludedTags: []string{"Admin", "Flow Run Notification Policies", "Root"},
		UnscopedPaths: []string{
			// Collection views are shared across accounts in the hosted
			// variant and are not renamespaced.
			"/api/collections/views/{view}",
		},
		InfraParams:   []string{"account_id", "workspace_id", "token_cost"},
		VersionHeader: "x-prefect-api-version",
		VersionHeaderExemptGroups: []RouteGroup{
			GroupCollections,
			GroupEvents,
			GroupAutomations,
			GroupTemplates,
		},
		ForwardCompatibleRequestProps: map[string][]string{
			"/api/deployments/":     {"job_variables"},
			"/api/deployments/{id}": {"job_variables"},
		},
		ForwardCompatibleTypeProps: map[string][]string{
			"DeploymentCreate":   {"job_variables"},
			"DeploymentUpdate":   {"job_variables"},
			"DeploymentResponse": {"job_variables"},
		},
		KnownIncompatibleTypeProps: map[string][]string{
			// The hosted work pool template diverged before the encoding
			// migration; tracked separately.
			"WorkPoolCreate": {"base_job_template"},
		},
		FieldAliases: map[FieldKey]string{
			// The hosted variant kept the long name when the open variant
			// shortened it.
			{Path: "/api/work_pools/", Method: "post", Field: "template"}: "base_job_template",
		},
		SkipFacets: map[FieldKey][]Facet{
			// Hosted declares a server-computed default for schedules.
			{Path: "/api/deployments/{id}", Method: "patch", Field: "schedules"}: {FacetDefault},
		},
		NewVersionPrefix: "3.",
	}
}

// RouteIgnored reports whether the open route path matches any ignore pattern.
func (t *Tables) RouteIgnored(path string) bool {
	for _, re := range t.IgnoredRoutePatterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// ForwardCompatibleRequestProp reports whether the field is pre-approved as
// open-side-only for the given route path.
func (t *Tables) ForwardCompatibleRequestProp(path, field string) bool {
	return containsString(t.ForwardCompatibleRequestProps[path], field)
}

// ForwardCompatibleTypeProp reports whether the field is pre-approved as
// open-side-only for the given named type.
func (t *Tables) ForwardCompatibleTypeProp(typeName, field string) bool {
	return containsString(t.ForwardCompatibleTypeProps[typeName], field)
}

// KnownIncompatibleTypeProp reports whether the field of the given named
// type carries a known, accepted incompatibility under the legacy encoding.
func (t *Tables) KnownIncompatibleTypeProp(typeName, field string) bool {
	return containsString(t.KnownIncompatibleTypeProps[typeName], field)
}

// AliasFor returns the hosted-side name for an open-side field, or the field
// itself when no alias is declared.
func (t *Tables) AliasFor(path, method, field string) string {
	if alias, ok := t.FieldAliases[FieldKey{Path: path, Method: method, Field: field}]; ok {
		return alias
	}
	return field
}

// FacetSkipped reports whether the given facet is skipped for one field of
// one route.
func (t *Tables) FacetSkipped(path, method, field string, facet Facet) bool {
	for _, f := range t.SkipFacets[FieldKey{Path: path, Method: method, Field: field}] {
		if f == facet {
			return true
		}
	}
	return false
}

// VersionHeaderExempt reports whether the version header is dropped from
// comparison for the given route group.
func (t *Tables) VersionHeaderExempt(group RouteGroup) bool {
	for _, g := range t.VersionHeaderExemptGroups {
		if g == group {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
