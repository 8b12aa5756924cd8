package registry

import "sync"

// TypeKind distinguishes struct-like types, whose fields are synthesized
// into object schemas, from opaque types such as enums.
type TypeKind int

const (
	KindStruct TypeKind = iota
	KindOpaque
)

// Field is one declared struct field: its name and declared type token.
// A leading "*" on the type token marks the field optional.
type Field struct {
	Name string
	Type string
}

// TypeDef describes one data type for schema synthesis.
type TypeDef struct {
	Name   string
	Kind   TypeKind
	Fields []Field
}

// TypeRegistry maps canonical type names to their definitions. Registration
// is idempotent with first write wins, so re-registering a name is a silent
// no-op.
type TypeRegistry struct {
	mu    sync.Mutex
	types map[string]TypeDef
}

// NewTypeRegistry returns an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]TypeDef)}
}

// Register stores a type definition unless the name is already present.
func (tr *TypeRegistry) Register(def TypeDef) {
	if def.Name == "" {
		return
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if _, ok := tr.types[def.Name]; ok {
		return
	}
	tr.types[def.Name] = def
}

// Lookup returns the definition registered under name.
func (tr *TypeRegistry) Lookup(name string) (TypeDef, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	def, ok := tr.types[name]
	if !ok {
		return TypeDef{}, false
	}
	if def.Fields != nil {
		def.Fields = append([]Field(nil), def.Fields...)
	}
	return def, true
}
