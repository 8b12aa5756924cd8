package spec

// Schema is the subset of the OpenAPI schema object that stonehm emits.
// A Schema with a non-empty Ref is a reference object and every other
// field is ignored by consumers.
type Schema struct {
	Ref                  string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title                string             `yaml:"title,omitempty" json:"title,omitempty"`
	Description          string             `yaml:"description,omitempty" json:"description,omitempty"`
	Type                 string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format               string             `yaml:"format,omitempty" json:"format,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items                *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
}

// SchemaRef returns a reference schema pointing at a named component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}
