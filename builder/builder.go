// Package builder assembles OpenAPI 3.0 documents from registered routes.
// Each route registration looks up the handler's documentation in a
// registry, synthesizes one operation, and folds any referenced type
// schemas into the shared component table. The document is queryable at any
// point; reads return deep-copied snapshots.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/melito/stonehm/registry"
	"github.com/melito/stonehm/spec"
)

// RouteInfo records one route registration: the original path template, the
// HTTP method and the documentation snapshot resolved at registration time.
type RouteInfo struct {
	Path   string
	Method string
	Doc    registry.HandlerDoc
}

// Builder accumulates route registrations into an OpenAPI document.
//
// Registration methods are safe for concurrent use; all mutation happens
// under an internal lock and Document() clones under the same lock, so
// readers never observe a half-built operation.
type Builder struct {
	mu       sync.Mutex
	doc      *spec.Document
	routes   []RouteInfo
	handlers *registry.Registry
	types    *registry.TypeRegistry
}

// New creates a Builder for an API with the given title and version.
func New(title, version string, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Builder{
		doc: &spec.Document{
			OpenAPI: spec.Version,
			Info: spec.Info{
				Title:       title,
				Description: cfg.description,
				Version:     version,
			},
			Paths: make(spec.Paths),
		},
		handlers: cfg.handlers,
		types:    cfg.types,
	}
}

// Route registers a route for the given HTTP method, path template and
// handler name. The method is case-insensitive; methods other than GET,
// PUT, POST, DELETE and PATCH are ignored. An unknown handler name is not
// an error: the route still gets a minimal operation with defaults.
func (b *Builder) Route(method, path, handlerName string) *Builder {
	method = strings.ToUpper(method)
	switch method {
	case "GET", "PUT", "POST", "DELETE", "PATCH":
	default:
		return b
	}

	doc := b.handlers.Lookup(handlerName)
	translated := TranslatePath(path)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes = append(b.routes, RouteInfo{Path: path, Method: method, Doc: doc})

	b.ensureSchema(doc.RequestBodyType)
	b.ensureSchema(doc.ResponseType)
	b.ensureSchema(doc.ErrorType)

	item, ok := b.doc.Paths[translated]
	if !ok {
		item = &spec.PathItem{}
		b.doc.Paths[translated] = item
	}
	item.SetOperation(method, buildOperation(method, path, translated, doc))
	return b
}

// Get registers a GET route.
func (b *Builder) Get(path, handlerName string) *Builder {
	return b.Route("GET", path, handlerName)
}

// Post registers a POST route.
func (b *Builder) Post(path, handlerName string) *Builder {
	return b.Route("POST", path, handlerName)
}

// Put registers a PUT route.
func (b *Builder) Put(path, handlerName string) *Builder {
	return b.Route("PUT", path, handlerName)
}

// Delete registers a DELETE route.
func (b *Builder) Delete(path, handlerName string) *Builder {
	return b.Route("DELETE", path, handlerName)
}

// Patch registers a PATCH route.
func (b *Builder) Patch(path, handlerName string) *Builder {
	return b.Route("PATCH", path, handlerName)
}

// Document returns a deep copy of the document built so far.
func (b *Builder) Document() *spec.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.Clone()
}

// Operation returns a copy of the operation registered for the given method
// and path template, or nil when none exists. The path may use either :name
// or {name} parameter syntax.
func (b *Builder) Operation(method, path string) *spec.Operation {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.doc.Paths[TranslatePath(path)]
	if !ok {
		return nil
	}
	return item.Operation(strings.ToUpper(method)).Clone()
}

// Routes returns a copy of the registration log in registration order.
func (b *Builder) Routes() []RouteInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RouteInfo(nil), b.routes...)
}

// MarshalJSON returns the current document as pretty-printed JSON.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return b.Document().JSON()
}

// MarshalYAML returns the current document as YAML.
func (b *Builder) MarshalYAML() ([]byte, error) {
	return b.Document().YAML()
}

// WriteFile writes the document to path, choosing the format from the file
// extension: .yaml and .yml produce YAML, everything else JSON.
func (b *Builder) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = b.MarshalYAML()
	default:
		data, err = b.MarshalJSON()
	}
	if err != nil {
		return fmt.Errorf("builder: marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("builder: write %s: %w", path, err)
	}
	return nil
}
