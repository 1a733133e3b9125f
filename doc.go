// Package openparity verifies that the open-source and hosted variants of the
// same REST API stay compatible as both evolve.
//
// The hosted variant nests every open route under an account/workspace scope
// (/api/accounts/{account_id}/workspaces/{workspace_id}/...) and may lag or
// diverge in field-level detail. openparity diffs the two OpenAPI descriptions
// and reports every divergence that is not covered by an explicit
// forward-compatibility allow-list.
//
// The library consists of three primary packages:
//
//   - parser: load and model the two OpenAPI documents
//   - checker: the compatibility rule engine (routes, parameters, request
//     bodies, named types)
//   - parityerrors: structured error types for programmatic handling
//
// # Quick Start
//
// Run a full parity check between two description files:
//
//	import "github.com/openparity/openparity/checker"
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithOpenFilePath("oss_schema.json"),
//	    checker.WithHostedFilePath("cloud_schema.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Findings {
//	    fmt.Println(f)
//	}
//	if !result.Compatible {
//	    os.Exit(1)
//	}
//
// The exception tables that tune the comparison (ignored routes, excluded
// tags, forward-compatible fields, facet skips) are plain data on
// checker.Tables and can be replaced wholesale with checker.WithTables.
package openparity
