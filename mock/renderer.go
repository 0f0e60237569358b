package mock

import "github.com/fwojciec/pagesum"

var _ pagesum.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pagesum.Renderer.
type Renderer struct {
	RenderFn func(r pagesum.Result) error
}

func (r *Renderer) Render(res pagesum.Result) error {
	return r.RenderFn(res)
}
