// Package parser loads OpenAPI description documents for parity checking.
//
// The parser reads JSON or YAML input into two views of the same document:
// a typed [Document] covering the sections the checker package compares
// (paths, parameters, request bodies, components.schemas, info.version),
// and the raw map tree used for internal $ref resolution. Both views are
// treated as immutable snapshots for the lifetime of a check run.
//
// Parse a document from a file:
//
//	p := parser.New()
//	result, err := p.Parse("oss_schema.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Version)
//
// Resolve an internal reference:
//
//	schema, err := result.Document.ResolveSchemaRef("#/components/schemas/FlowCreate")
package parser
