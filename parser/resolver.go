package parser

import (
	"strconv"
	"strings"

	"github.com/openparity/openparity/parityerrors"
)

// ResolveRef resolves an internal reference of the form #/a/b/c against the
// document's raw tree and returns the sub-document it designates.
//
// An empty reference resolves to nil with no error, matching the call sites
// that treat "no reference" as "no schema". A missing segment anywhere along
// the path yields a *parityerrors.LookupError; callers that tolerate absent
// schemas must recover explicitly.
//
// References always resolve within the document they came from; there is no
// support for file or URL references.
func (d *Document) ResolveRef(ref string) (any, error) {
	if ref == "" {
		return nil, nil
	}

	trimmed := strings.TrimPrefix(ref, "#")
	if trimmed == "" || trimmed == "/" {
		return d.raw, nil
	}

	parts := strings.Split(strings.TrimPrefix(trimmed, "/"), "/")

	current := any(d.raw)
	for i, part := range parts {
		part = unescapeJSONPointer(part)

		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, &parityerrors.LookupError{
					Ref:        ref,
					MissingKey: part,
				}
			}
			current = next

		case []any:
			// Array indexing per RFC 6901 (JSON Pointer)
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil, &parityerrors.LookupError{
					Ref:        ref,
					MissingKey: part,
					Message:    "invalid array index",
				}
			}
			current = v[index]

		default:
			return nil, &parityerrors.LookupError{
				Ref:        ref,
				MissingKey: part,
				Message:    "cannot traverse into scalar at #/" + strings.Join(parts[:i], "/"),
			}
		}
	}

	return current, nil
}

// ResolveSchemaRef resolves an internal reference and decodes the resulting
// sub-document as a Schema. An empty reference yields (nil, nil).
func (d *Document) ResolveSchemaRef(ref string) (*Schema, error) {
	node, err := d.ResolveRef(ref)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}

	var schema Schema
	if err := decodeSubtree(node, &schema); err != nil {
		return nil, &parityerrors.LookupError{
			Ref:     ref,
			Message: "resolved node is not a schema",
			Cause:   err,
		}
	}
	return &schema, nil
}

// unescapeJSONPointer reverses RFC 6901 escaping: ~1 is "/", ~0 is "~".
// Order matters: ~1 must be unescaped before ~0.
func unescapeJSONPointer(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
