package checker

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/openparity/openparity/parser"
)

// NullType is the type tag for the JSON null type.
const NullType = "null"

// Sentinel tokens substituted for structurally-empty composite defaults so
// they compare equal regardless of how each document spells them.
const (
	emptyListDefault = "list"
	emptyMapDefault  = "dict"
)

// TypeSet is the logical set of type tags a schema fragment may take: the
// singular type, or the non-empty alternatives of an anyOf union.
type TypeSet map[string]struct{}

// NewTypeSet builds a TypeSet from the given tags.
func NewTypeSet(tags ...string) TypeSet {
	s := make(TypeSet, len(tags))
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
	return s
}

// Contains reports whether the set contains the given tag.
func (s TypeSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// SubsetOf reports whether every tag in s is also in other.
func (s TypeSet) SubsetOf(other TypeSet) bool {
	for tag := range s {
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}

// Equal reports whether the two sets contain exactly the same tags.
func (s TypeSet) Equal(other TypeSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// WithoutNull returns a copy of the set with the null tag removed. Used
// when comparing a field's non-null type options while tolerating one
// document's habit of listing nullability explicitly.
func (s TypeSet) WithoutNull() TypeSet {
	cp := make(TypeSet, len(s))
	for tag := range s {
		if tag != NullType {
			cp[tag] = struct{}{}
		}
	}
	return cp
}

// Sorted returns the tags in lexical order.
func (s TypeSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// String renders the set deterministically, e.g. {integer string}.
func (s TypeSet) String() string {
	return fmt.Sprintf("{%v}", s.Sorted())
}

// ExtractTypeSet returns the fragment's logical type set: {type} when a
// singular type is declared, else the non-empty type tags of its anyOf
// alternatives, else the empty set.
func ExtractTypeSet(s *parser.Schema) TypeSet {
	if s == nil {
		return NewTypeSet()
	}
	if s.Type != "" {
		return NewTypeSet(s.Type)
	}
	set := NewTypeSet()
	for _, alt := range s.AnyOf {
		if alt != nil && alt.Type != "" {
			set[alt.Type] = struct{}{}
		}
	}
	return set
}

// ExtractFormat returns the fragment's format annotation: the declared
// format when present, else the first non-empty format among its anyOf
// alternatives, else the empty string.
func ExtractFormat(s *parser.Schema) string {
	if s == nil {
		return ""
	}
	if s.Format != "" {
		return s.Format
	}
	for _, alt := range s.AnyOf {
		if alt != nil && alt.Format != "" {
			return alt.Format
		}
	}
	return ""
}

// NormalizeDefault returns the fragment's default value in comparable form:
// primitives pass through, a structurally-empty list or map collapses to a
// fixed sentinel token, and an undeclared default yields nil.
func NormalizeDefault(s *parser.Schema) any {
	if s == nil || s.Default == nil {
		return nil
	}
	switch v := s.Default.(type) {
	case []any:
		if len(v) == 0 {
			return emptyListDefault
		}
	case map[string]any:
		if len(v) == 0 {
			return emptyMapDefault
		}
	}
	return s.Default
}

// DefaultsEqual compares two normalized defaults.
func DefaultsEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// WrapOptionalAsNullable equalizes the two optional-field encodings before
// structural comparison: in a deep copy of the type descriptor, every
// property not listed in required is rewritten to a union of {null, original
// fragment} (merging into an existing union) and added to the required list.
//
// The rewrite operates on a copy only; the canonical loaded document is
// never mutated, and re-applying the function to its own output is a no-op,
// so repeated checker invocations never double-wrap fields.
func WrapOptionalAsNullable(s *parser.Schema) *parser.Schema {
	cp := s.DeepCopy()
	if cp == nil || len(cp.Properties) == 0 {
		return cp
	}

	required := make(map[string]bool, len(cp.Required))
	for _, name := range cp.Required {
		required[name] = true
	}

	names := make([]string, 0, len(cp.Properties))
	for name := range cp.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if required[name] {
			continue
		}
		cp.Properties[name] = wrapNullable(cp.Properties[name])
		cp.Required = append(cp.Required, name)
	}
	sort.Strings(cp.Required)

	return cp
}

// wrapNullable rewrites one fragment as a nullable union. The fragment is
// already checker-local; no further copying is needed.
func wrapNullable(prop *parser.Schema) *parser.Schema {
	if prop == nil {
		return &parser.Schema{AnyOf: []*parser.Schema{{Type: NullType}}}
	}

	if len(prop.AnyOf) > 0 {
		for _, alt := range prop.AnyOf {
			if alt != nil && alt.Type == NullType {
				return prop
			}
		}
		prop.AnyOf = append(prop.AnyOf, &parser.Schema{Type: NullType})
		return prop
	}

	inner := prop.DeepCopy()
	inner.Default = nil
	inner.Deprecated = false
	return &parser.Schema{
		AnyOf:      []*parser.Schema{inner, {Type: NullType}},
		Default:    prop.Default,
		Deprecated: prop.Deprecated,
		Title:      prop.Title,
	}
}
