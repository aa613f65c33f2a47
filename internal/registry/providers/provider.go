// Package providers implements the portal adapters. Every adapter runs the
// same pipeline (validate, cache lookup, rate limit, simulated fetch under the
// portal timeout, cache store) around a portal-specific search.
package providers

import (
	"context"
	"fmt"

	"proplink/internal/registry/models"
	"proplink/internal/registry/sources"
)

// Provider is the interface every portal adapter implements.
type Provider interface {
	// Source names the portal.
	Source() sources.Name

	// Config returns the static portal configuration.
	Config() sources.Config

	// Search runs one lookup. Failures are reported inside the envelope,
	// never as a Go error, so callers can aggregate partial results.
	Search(ctx context.Context, params map[string]string) *models.SourceResponse

	// Health reports whether the portal is accepting calls.
	Health(ctx context.Context) error
}

// Registry maintains the registered adapters.
type Registry struct {
	providers map[sources.Name]Provider
}

// NewRegistry registers the given adapters.
func NewRegistry(ps ...Provider) (*Registry, error) {
	r := &Registry{providers: make(map[sources.Name]Provider, len(ps))}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider is required")
	}
	name := p.Source()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.providers[name] = p
	return nil
}

// Get retrieves a provider by source name.
func (r *Registry) Get(name sources.Name) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// All returns registered providers in precedence order.
func (r *Registry) All() []Provider {
	out := make([]Provider, 0, len(r.providers))
	for _, n := range sources.All {
		if p, ok := r.providers[n]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Dataset is the full portal dataset the adapters search.
type Dataset interface {
	DorisData
	DlrData
	CersaiData
	Mca21Data
}

// NewDefaultRegistry builds one adapter per configured portal, each with the
// same options.
func NewDefaultRegistry(configs *sources.Registry, data Dataset, xref CrossReference, opts ...Option) (*Registry, error) {
	if configs == nil {
		return nil, fmt.Errorf("source registry is required")
	}
	r := &Registry{providers: make(map[sources.Name]Provider, len(sources.All))}
	for _, name := range configs.Names() {
		cfg := configs.MustGet(name)
		var (
			a   *Adapter
			err error
		)
		switch name {
		case sources.DORIS:
			a, err = NewDoris(cfg, data, opts...)
		case sources.DLR:
			a, err = NewDlr(cfg, data, xref, opts...)
		case sources.CERSAI:
			a, err = NewCersai(cfg, data, opts...)
		case sources.MCA21:
			a, err = NewMca21(cfg, data, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("building %s adapter: %w", name, err)
		}
		if err := r.Register(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}
