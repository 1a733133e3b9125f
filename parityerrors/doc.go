// Package parityerrors provides structured error types for openparity.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of failures and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML parsing failures and structural issues in a
//     loaded API description
//   - LookupError: internal reference resolution failures (a missing key
//     along a #/a/b/c reference path)
//   - MismatchError: a compatibility assertion that two sides differ on a
//     required facet
//   - ConfigError: invalid checker configuration or input options
//
// # Usage with errors.As
//
//	schema, err := doc.ResolveSchemaRef(ref)
//	if err != nil {
//	    var lookupErr *parityerrors.LookupError
//	    if errors.As(err, &lookupErr) {
//	        // Reference did not resolve; substitute an empty descriptor.
//	    }
//	}
package parityerrors
