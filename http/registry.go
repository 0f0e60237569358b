package http

import (
	"sync"

	"github.com/fwojciec/pagesum"
)

// Ensure Registry implements pagesum.ProviderRegistry at compile time.
var _ pagesum.ProviderRegistry = (*Registry)(nil)

// Registry holds providers keyed by ID.
type Registry struct {
	mu        sync.RWMutex
	providers map[pagesum.ProviderID]pagesum.Provider
	order     []pagesum.ProviderID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[pagesum.ProviderID]pagesum.Provider)}
}

// NewDefaultRegistry creates a registry with every built-in provider
// pointed at its public API.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGeminiProvider())
	r.Register(NewOpenAIProvider())
	r.Register(NewClaudeProvider())
	r.Register(NewLlamaProvider())
	return r
}

// Register adds p, replacing any provider with the same ID.
func (r *Registry) Register(p pagesum.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.ID()
	if _, ok := r.providers[id]; !ok {
		r.order = append(r.order, id)
	}
	r.providers[id] = p
}

// Lookup returns the provider registered under id.
func (r *Registry) Lookup(id pagesum.ProviderID) (pagesum.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	return p, ok
}

// List returns registered IDs in registration order.
func (r *Registry) List() []pagesum.ProviderID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pagesum.ProviderID, len(r.order))
	copy(out, r.order)
	return out
}
