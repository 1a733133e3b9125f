package checker

import "strings"

// hostedScope is the scoped spelling of the routing prefix in the hosted
// namespace.
const hostedScope = "api/accounts/{account_id}/workspaces/{workspace_id}"

// TranslatePath maps a route path in the open namespace to the equivalent
// path in the hosted namespace by replacing the first occurrence of the
// routing-prefix segment with its account/workspace-scoped spelling.
//
// Paths listed in Tables.UnscopedPaths are returned unchanged; that list is
// consulted before the generic rewrite. Translation is meant to be applied
// exactly once: re-translating an already-hosted path inserts the scope
// segments a second time.
func (t *Tables) TranslatePath(path string) string {
	for _, unscoped := range t.UnscopedPaths {
		if path == unscoped {
			return path
		}
	}
	return strings.Replace(path, "api", hostedScope, 1)
}
