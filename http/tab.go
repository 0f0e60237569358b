package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Ensure TabSource implements pagesum.TabSource at compile time.
var _ pagesum.TabSource = (*TabSource)(nil)

// TabSource opens pages with a plain HTTP fetch. Scripts on the page never
// run and stylesheets are not evaluated, so visibility is judged from
// markup alone.
type TabSource struct {
	fetcher   pagesum.Fetcher
	extractor pagesum.TextExtractor
}

// NewTabSource creates a TabSource that loads pages with fetcher and
// answers messages with extractor.
func NewTabSource(fetcher pagesum.Fetcher, extractor pagesum.TextExtractor) *TabSource {
	return &TabSource{fetcher: fetcher, extractor: extractor}
}

// ActiveTab fetches target and returns it as a tab.
// Pages that refuse scripts are returned unloaded; their Inject fails.
func (s *TabSource) ActiveTab(ctx context.Context, target string) (pagesum.Tab, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "No active tab found.")
	}

	tab := &Tab{url: target, extractor: s.extractor}
	if !scriptable(target) {
		return tab, nil
	}

	html, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "Could not load %s: %v", target, err)
	}
	tab.html = html
	tab.loaded = true
	return tab, nil
}

// Ensure Tab implements pagesum.Tab at compile time.
var _ pagesum.Tab = (*Tab)(nil)

// Tab is a statically fetched page.
type Tab struct {
	url       string
	html      string
	loaded    bool
	injected  bool
	extractor pagesum.TextExtractor
}

// URL returns the address of the page.
func (t *Tab) URL() string {
	return t.url
}

// Inject marks the content script as loaded. Restricted and non-HTTP pages
// refuse it.
func (t *Tab) Inject(ctx context.Context) error {
	if t.injected {
		return nil
	}
	if !t.loaded {
		return pagesum.Errorf(pagesum.EINJECTION, "This page doesn't allow content scripts. Try a different site.")
	}
	t.injected = true
	return nil
}

// Send answers msg from the fetched HTML.
func (t *Tab) Send(ctx context.Context, msg pagesum.Message) (*pagesum.Response, error) {
	if !t.injected {
		return nil, pagesum.Errorf(pagesum.EEXTRACTION, "content script not loaded in %s", t.url)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pagesum.HandleMessage(t.extractor, t.html, msg)
}

// Close is a no-op; a fetched page holds no resources.
func (t *Tab) Close() error {
	return nil
}

// scriptable reports whether a browser would let a content script run on u.
func scriptable(u string) bool {
	if pagesum.IsRestrictedURL(u) {
		return false
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
