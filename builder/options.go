package builder

import "github.com/melito/stonehm/registry"

// Option configures a Builder instance. Options are applied by New.
type Option func(*config)

type config struct {
	description string
	handlers    *registry.Registry
	types       *registry.TypeRegistry
}

func defaultConfig() *config {
	return &config{
		handlers: registry.New(),
		types:    registry.NewTypeRegistry(),
	}
}

// WithDescription sets the document's info description.
func WithDescription(description string) Option {
	return func(cfg *config) {
		cfg.description = description
	}
}

// WithHandlers sets the handler documentation registry consulted during
// route registration. The default is an empty registry, which makes every
// route an undocumented minimal operation.
func WithHandlers(r *registry.Registry) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.handlers = r
		}
	}
}

// WithTypes sets the type registry used for schema synthesis. Types missing
// from the registry fall back to a generic empty-object schema.
func WithTypes(tr *registry.TypeRegistry) Option {
	return func(cfg *config) {
		if tr != nil {
			cfg.types = tr
		}
	}
}
