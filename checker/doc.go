/*
Package checker compares the open-source and hosted variants of the same
REST API and reports every compatibility divergence.

# Overview

The hosted variant serves the open API nested under an account/workspace
scope: every open route /api/... appears as
/api/accounts/{account_id}/workspaces/{workspace_id}/... in the hosted
description. The checker translates each open route into that namespace
and then runs four rules over the pair of documents:

  - route existence: every open route+method must exist under its
    translated path
  - parameters: shared routes must declare equivalent parameter sets,
    after infrastructure-only parameters are dropped
  - request bodies: every open body field must exist on the hosted side
    with a compatible type set, format, default, and deprecation flag
  - types: every named schema on the open side must describe a subset of
    what the hosted schema of the same name accepts

Compatibility is directional throughout: the open side may accept less
than the hosted side, never more.

# Exception Tables

Known, reviewed divergences are filtered through the [Tables] value: route
ignore patterns, excluded operation tags, infrastructure parameters,
version-header exemptions per route group, forward-compatible fields,
field aliases, and per-facet skips. [DefaultTables] carries the values
for the current API surface; pass a modified copy via [WithTables] to
tune a run. The tables are plain data so they can be audited and diffed
like configuration.

# Findings

Every divergence is reported as its own [Finding]; a failure in one entry
never prevents evaluation of the rest. [Result.Compatible] is false when
any finding carries SeverityError. Informational findings (such as open
type names absent from the hosted document) do not fail the run.

# Example

	result, err := checker.CheckWithOptions(
	    checker.WithOpenFilePath("oss_schema.json"),
	    checker.WithHostedFilePath("cloud_schema.json"),
	)
	if err != nil {
	    log.Fatal(err)
	}
	for _, f := range result.Findings {
	    fmt.Println(f)
	}
	if !result.Compatible {
	    os.Exit(1)
	}

# Comparison Modes

Older open releases encode optional schema fields differently from
current ones (an optional field versus a required nullable union). The
mode is derived once from the open document's declared info.version: when
it predates the current major line, each hosted type is rewritten on a
deep copy so both documents use the same encoding before structural
comparison. [Result.LegacyOptionalEncoding] records which mode a run
used.

# Related Packages

  - [github.com/openparity/openparity/parser] - load the two documents
  - [github.com/openparity/openparity/parityerrors] - structured errors
*/
package checker
