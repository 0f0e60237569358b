package mock

import (
	"context"
	"net/http"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Provider = (*Provider)(nil)

// Provider is a mock implementation of pagesum.Provider.
type Provider struct {
	IDFn           func() pagesum.ProviderID
	NewRequestFn   func(ctx context.Context, prompt, credential string) (*http.Request, error)
	ParseSummaryFn func(body []byte) (string, bool)
}

func (p *Provider) ID() pagesum.ProviderID {
	return p.IDFn()
}

func (p *Provider) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	return p.NewRequestFn(ctx, prompt, credential)
}

func (p *Provider) ParseSummary(body []byte) (string, bool) {
	return p.ParseSummaryFn(body)
}
