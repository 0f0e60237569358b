package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.Tab = (*Tab)(nil)

// Tab is a mock implementation of pagesum.Tab.
type Tab struct {
	URLFn    func() string
	InjectFn func(ctx context.Context) error
	SendFn   func(ctx context.Context, msg pagesum.Message) (*pagesum.Response, error)
	CloseFn  func() error
}

func (t *Tab) URL() string {
	return t.URLFn()
}

func (t *Tab) Inject(ctx context.Context) error {
	return t.InjectFn(ctx)
}

func (t *Tab) Send(ctx context.Context, msg pagesum.Message) (*pagesum.Response, error) {
	return t.SendFn(ctx, msg)
}

func (t *Tab) Close() error {
	return t.CloseFn()
}

var _ pagesum.TabSource = (*TabSource)(nil)

// TabSource is a mock implementation of pagesum.TabSource.
type TabSource struct {
	ActiveTabFn func(ctx context.Context, target string) (pagesum.Tab, error)
}

func (s *TabSource) ActiveTab(ctx context.Context, target string) (pagesum.Tab, error) {
	return s.ActiveTabFn(ctx, target)
}
