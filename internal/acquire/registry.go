package acquire

import (
	"github.com/rotisserie/eris"

	"github.com/sucheet2000/medical-desert-california/internal/config"
)

// Registry maps source names to their implementations.
type Registry struct {
	sources map[string]Source
	order   []string // insertion order for deterministic iteration
}

// NewRegistry creates a registry populated with all three sources.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{
		sources: make(map[string]Source),
	}

	r.Register(&CDCPlaces{cfg: cfg})
	r.Register(&USDAFoodAccess{cfg: cfg})
	r.Register(&NPPESSample{cfg: cfg})

	return r
}

// Register adds a source to the registry.
func (r *Registry) Register(s Source) {
	name := s.Name()
	r.sources[name] = s
	r.order = append(r.order, name)
}

// Get returns a source by name.
func (r *Registry) Get(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, eris.Errorf("acquire: unknown source %q", name)
	}
	return s, nil
}

// Select returns the named sources, or all sources in registration order
// when names is empty.
func (r *Registry) Select(names []string) ([]Source, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	result := make([]Source, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// All returns all sources in registration order.
func (r *Registry) All() []Source {
	result := make([]Source, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.sources[name])
	}
	return result
}
