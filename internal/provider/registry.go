package provider

import "fmt"

// Registry resolves the implementation for a persisted provider name
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Kind()] = p
	}
	return r
}

// For returns the provider registered for kind
func (r *Registry) For(kind string) (Provider, error) {
	p, ok := r.providers[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownProvider)
	}
	return p, nil
}
