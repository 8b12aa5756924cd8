// Package registry holds the name-keyed tables that the specification
// builder pulls from: handler documentation records and type definitions for
// schema synthesis. Both tables are populated during application bootstrap
// and read many times afterward, so writes are serialized under a mutex and
// reads hand out copies.
package registry

import (
	"fmt"
	"sync"

	"github.com/melito/stonehm/docparse"
	"github.com/melito/stonehm/signature"
)

// HandlerDoc is the merged documentation of a single handler: the parsed
// doc comment plus the types inferred from the handler's signature.
type HandlerDoc struct {
	Name            string
	Summary         string
	Description     string
	Tags            []string
	Parameters      []docparse.Parameter
	RequestBody     *docparse.RequestBody
	RequestBodyType string
	ResponseType    string
	ErrorType       string
	Responses       []docparse.Response
}

// Registry maps handler names to their documentation. Each handler is
// registered exactly once; lookups for unknown names return an empty record
// rather than an error, so undocumented routes still produce minimal
// operations.
type Registry struct {
	mu       sync.Mutex
	handlers map[string]HandlerDoc
}

// New returns an empty handler registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]HandlerDoc)}
}

// Register stores a handler's documentation. It fails on an empty or
// duplicate handler name and on any documented response status outside
// 100-599. A failed registration leaves the registry untouched.
func (r *Registry) Register(doc HandlerDoc) error {
	if doc.Name == "" {
		return fmt.Errorf("registry: %w", ErrEmptyHandlerName)
	}
	for _, resp := range doc.Responses {
		if resp.Status < 100 || resp.Status > 599 {
			return fmt.Errorf("registry: handler %q: status %d: %w", doc.Name, resp.Status, ErrStatusOutOfRange)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[doc.Name]; ok {
		return fmt.Errorf("registry: handler %q: %w", doc.Name, ErrDuplicateHandler)
	}
	r.handlers[doc.Name] = doc
	return nil
}

// RegisterHandler parses raw doc comment lines, infers types from the
// signature description and registers the combined record under name.
func (r *Registry) RegisterHandler(name string, docLines []string, params []signature.Param, ret *signature.TypeExpr, tags ...string) error {
	docs := docparse.Parse(docLines)
	types := signature.Extract(params, ret)
	return r.Register(HandlerDoc{
		Name:            name,
		Summary:         docs.Summary,
		Description:     docs.Description,
		Tags:            tags,
		Parameters:      docs.Parameters,
		RequestBody:     docs.RequestBody,
		RequestBodyType: types.RequestBody,
		ResponseType:    types.Response,
		ErrorType:       types.Error,
		Responses:       docs.Responses,
	})
}

// Lookup returns the documentation registered under name, or an empty
// record when the name is unknown. The returned record is a copy.
func (r *Registry) Lookup(name string) HandlerDoc {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.handlers[name]
	if !ok {
		return HandlerDoc{Name: name}
	}
	return doc.clone()
}

// Len reports the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

func (d HandlerDoc) clone() HandlerDoc {
	out := d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	if d.Parameters != nil {
		out.Parameters = append([]docparse.Parameter(nil), d.Parameters...)
	}
	if d.RequestBody != nil {
		rb := *d.RequestBody
		out.RequestBody = &rb
	}
	if d.Responses != nil {
		out.Responses = make([]docparse.Response, len(d.Responses))
		for i, resp := range d.Responses {
			out.Responses[i] = resp
			if resp.Content != nil {
				c := *resp.Content
				out.Responses[i].Content = &c
			}
			if resp.Examples != nil {
				out.Responses[i].Examples = append([]docparse.Example(nil), resp.Examples...)
			}
		}
	}
	return out
}
