package mock

import "github.com/fwojciec/pagesum"

var _ pagesum.ProviderRegistry = (*ProviderRegistry)(nil)

// ProviderRegistry is a mock implementation of pagesum.ProviderRegistry.
type ProviderRegistry struct {
	LookupFn   func(id pagesum.ProviderID) (pagesum.Provider, bool)
	RegisterFn func(p pagesum.Provider)
	ListFn     func() []pagesum.ProviderID
}

func (r *ProviderRegistry) Lookup(id pagesum.ProviderID) (pagesum.Provider, bool) {
	return r.LookupFn(id)
}

func (r *ProviderRegistry) Register(p pagesum.Provider) {
	r.RegisterFn(p)
}

func (r *ProviderRegistry) List() []pagesum.ProviderID {
	return r.ListFn()
}
