package parser

// Document is the typed view of a loaded API description. It covers the
// three sections the checker compares: paths, components.schemas, and
// info.version. Everything else in the source document is preserved only
// in the raw tree (see Raw).
type Document struct {
	OpenAPI    string      `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	Info       Info        `yaml:"info" json:"info"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// raw is the untyped document tree, retained for $ref resolution.
	// Set once at parse time and never mutated afterwards.
	raw map[string]any
}

// Info provides metadata about the API. Version selects the comparison
// mode used by the checker (the two major versions encode optional fields
// differently).
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds the reusable objects declared by the document. Only
// named schemas participate in parity checking.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	// Extra captures the component sections not modeled here
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Raw returns the untyped document tree. The tree is shared and must not
// be mutated by callers.
func (d *Document) Raw() map[string]any {
	return d.raw
}

// SchemaNames returns the names declared under components.schemas.
// Returns nil when the document declares no components.
func (d *Document) SchemaNames() []string {
	if d.Components == nil || len(d.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(d.Components.Schemas))
	for name := range d.Components.Schemas {
		names = append(names, name)
	}
	return names
}

// Schema returns the named schema from components.schemas, or nil if the
// document does not declare it.
func (d *Document) Schema(name string) *Schema {
	if d.Components == nil {
		return nil
	}
	return d.Components.Schemas[name]
}
