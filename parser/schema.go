package parser

// Schema represents the subset of JSON Schema that participates in parity
// checking: the type/format pair (or an anyOf union of such pairs), the
// default value, the deprecated flag, and for named types the properties
// map, required list, and enum literals.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Composition
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool

	// Extra captures specification extensions and fields not modeled above
	Extra map[string]any `yaml:",inline" json:"-"`
}

// DeepCopy returns a fully independent copy of the schema. The checker
// normalizes copies before comparison and must never observe a rewrite
// leaking back into the loaded document, so every nested schema, slice,
// and composite default is duplicated.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}

	cp := &Schema{
		Ref:         s.Ref,
		Title:       s.Title,
		Description: s.Description,
		Default:     deepCopyJSONValue(s.Default),
		Deprecated:  s.Deprecated,
		Type:        s.Type,
		Format:      s.Format,
	}

	if s.Enum != nil {
		cp.Enum = make([]any, len(s.Enum))
		for i, v := range s.Enum {
			cp.Enum[i] = deepCopyJSONValue(v)
		}
	}
	if s.AnyOf != nil {
		cp.AnyOf = make([]*Schema, len(s.AnyOf))
		for i, sub := range s.AnyOf {
			cp.AnyOf[i] = sub.DeepCopy()
		}
	}
	if s.AllOf != nil {
		cp.AllOf = make([]*Schema, len(s.AllOf))
		for i, sub := range s.AllOf {
			cp.AllOf[i] = sub.DeepCopy()
		}
	}
	cp.Items = s.Items.DeepCopy()
	if s.Properties != nil {
		cp.Properties = make(map[string]*Schema, len(s.Properties))
		for name, sub := range s.Properties {
			cp.Properties[name] = sub.DeepCopy()
		}
	}
	if s.Required != nil {
		cp.Required = make([]string, len(s.Required))
		copy(cp.Required, s.Required)
	}
	cp.AdditionalProperties = deepCopySchemaOrBool(s.AdditionalProperties)
	if s.Extra != nil {
		cp.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			cp.Extra[k] = deepCopyJSONValue(v)
		}
	}

	return cp
}

// deepCopySchemaOrBool handles fields that can be *Schema or bool,
// such as additionalProperties.
func deepCopySchemaOrBool(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return t
	case *Schema:
		return t.DeepCopy()
	default:
		return deepCopyJSONValue(v)
	}
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
// This handles defaults, enum literals, and extension fields that can hold
// arbitrary JSON values.
func deepCopyJSONValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, val := range t {
			cp[k] = deepCopyJSONValue(val)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, val := range t {
			cp[i] = deepCopyJSONValue(val)
		}
		return cp
	default:
		// Scalars (string, bool, numbers) are immutable.
		return v
	}
}
