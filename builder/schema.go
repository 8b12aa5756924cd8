package builder

import (
	"strings"

	"github.com/melito/stonehm/registry"
	"github.com/melito/stonehm/spec"
)

// Synthesize produces a schema from a type definition. Struct-like types
// become object schemas with one property per field; every field not marked
// optional is listed in required, in declaration order. Opaque types such
// as enums collapse to a bare string schema, an intentional simplification
// that leaves the variant shapes unmodeled.
func Synthesize(def registry.TypeDef) *spec.Schema {
	if def.Kind != registry.KindStruct {
		return &spec.Schema{
			Title: schemaTitle(def.Name),
			Type:  "string",
		}
	}

	schema := &spec.Schema{
		Title:      schemaTitle(def.Name),
		Type:       "object",
		Properties: make(map[string]*spec.Schema, len(def.Fields)),
	}
	for _, f := range def.Fields {
		token, optional := strings.CutPrefix(f.Type, "*")
		schema.Properties[f.Name] = &spec.Schema{Type: mapFieldType(token)}
		if !optional {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema
}

// mapFieldType maps a declared type token to a JSON schema type. Anything
// outside the table, nested structs and collections included, falls back
// to "string".
func mapFieldType(token string) string {
	switch token {
	case "string":
		return "string"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "bool":
		return "boolean"
	default:
		return "string"
	}
}

// ensureSchema inserts the schema for the named type into the component
// table unless it is already present; the first synthesis wins. Types
// missing from the type registry get a generic empty-object schema so every
// $ref in the document resolves. Callers must hold b.mu.
func (b *Builder) ensureSchema(name string) {
	if name == "" {
		return
	}
	if b.doc.Components == nil {
		b.doc.Components = &spec.Components{Schemas: make(map[string]*spec.Schema)}
	}
	if _, ok := b.doc.Components.Schemas[name]; ok {
		return
	}

	def, ok := b.types.Lookup(name)
	if !ok {
		b.doc.Components.Schemas[name] = &spec.Schema{Type: "object"}
		return
	}
	b.doc.Components.Schemas[name] = Synthesize(def)
}
