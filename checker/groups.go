package checker

import "strings"

// RouteGroup classifies a route by the subsystem that serves it. The group
// is derived once from the static path, not matched by substring at
// comparison time, so the path-to-group mapping can be tested on its own.
type RouteGroup int

const (
	// GroupOrchestration is the default group: flow, deployment, and run
	// orchestration routes.
	GroupOrchestration RouteGroup = iota
	// GroupCollections serves the shared collection registry.
	GroupCollections
	// GroupEvents serves the event ingest and query subsystem.
	GroupEvents
	// GroupAutomations serves the automations subsystem.
	GroupAutomations
	// GroupTemplates serves notification and block templates.
	GroupTemplates
)

// String returns the string representation of the route group.
func (g RouteGroup) String() string {
	switch g {
	case GroupOrchestration:
		return "orchestration"
	case GroupCollections:
		return "collections"
	case GroupEvents:
		return "events"
	case GroupAutomations:
		return "automations"
	case GroupTemplates:
		return "templates"
	default:
		return "unknown"
	}
}

// scopeSegments are the namespace segments skipped when classifying a path.
// Both the open and hosted spellings of a route classify identically.
var scopeSegments = map[string]bool{
	"api":            true,
	"accounts":       true,
	"{account_id}":   true,
	"workspaces":     true,
	"{workspace_id}": true,
}

// ClassifyRoute derives the route group from the first path segment after
// the routing prefix. Unknown segments fall into GroupOrchestration.
func ClassifyRoute(path string) RouteGroup {
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || scopeSegments[segment] {
			continue
		}
		switch segment {
		case "collections":
			return GroupCollections
		case "events":
			return GroupEvents
		case "automations":
			return GroupAutomations
		case "templates":
			return GroupTemplates
		default:
			return GroupOrchestration
		}
	}
	return GroupOrchestration
}
