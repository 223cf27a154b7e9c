package llm

import (
	"fmt"
	"sort"
)

// Registry maps backend identifiers to their completion endpoints. The table
// is static configuration, read-only after construction.
type Registry struct {
	urls map[string]string
	def  string
}

func NewRegistry(backends map[string]string, defaultName string) (*Registry, error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("no backends configured")
	}
	if _, ok := backends[defaultName]; !ok {
		return nil, fmt.Errorf("default backend %q is not in the configured table", defaultName)
	}
	urls := make(map[string]string, len(backends))
	for name, u := range backends {
		urls[name] = u
	}
	return &Registry{urls: urls, def: defaultName}, nil
}

// Resolve returns the endpoint for name. An unrecognized name resolves to the
// default backend's endpoint rather than failing; front-ends rely on this.
func (r *Registry) Resolve(name string) string {
	if u, ok := r.urls[name]; ok {
		return u
	}
	return r.urls[r.def]
}

// Default returns the designated default backend identifier.
func (r *Registry) Default() string { return r.def }

// Names returns the configured identifiers in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.urls))
	for name := range r.urls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
