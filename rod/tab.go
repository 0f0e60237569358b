package rod

import (
	"context"

	"github.com/fwojciec/pagesum"
	"github.com/go-rod/rod"
)

// stampScript marks elements the way the layout engine sees them so the
// serialized HTML carries visibility. Running it twice is harmless.
const stampScript = `(hiddenAttr, displayAttr) => {
	for (const el of document.querySelectorAll('[' + hiddenAttr + '],[' + displayAttr + ']')) {
		el.removeAttribute(hiddenAttr);
		el.removeAttribute(displayAttr);
	}
	for (const el of document.querySelectorAll('body *')) {
		if (getComputedStyle(el).display === 'none') {
			el.setAttribute(displayAttr, 'none');
		}
	}
	for (const el of document.querySelectorAll('p, div')) {
		if (el.offsetParent === null) {
			el.setAttribute(hiddenAttr, '');
		}
	}
	window.__pagesumInjected = true;
	return true;
}`

// Ensure Tab implements pagesum.Tab at compile time.
var _ pagesum.Tab = (*Tab)(nil)

// Tab is a page loaded in Chrome.
type Tab struct {
	page      *rod.Page
	url       string
	extractor pagesum.TextExtractor
	injected  bool
}

// URL returns the address the tab was opened with.
func (t *Tab) URL() string {
	return t.url
}

// Inject runs the content script in the page.
func (t *Tab) Inject(ctx context.Context) error {
	if t.page == nil || pagesum.IsRestrictedURL(t.url) {
		return pagesum.Errorf(pagesum.EINJECTION, "This page doesn't allow content scripts. Try a different site.")
	}
	if _, err := t.page.Context(ctx).Eval(stampScript, pagesum.HiddenAttr, pagesum.DisplayAttr); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return pagesum.Errorf(pagesum.EINJECTION, "This page doesn't allow content scripts. Try a different site.")
	}
	t.injected = true
	return nil
}

// Send answers msg from the page's current DOM.
func (t *Tab) Send(ctx context.Context, msg pagesum.Message) (*pagesum.Response, error) {
	if !t.injected {
		return nil, pagesum.Errorf(pagesum.EEXTRACTION, "content script not loaded in %s", t.url)
	}
	html, err := t.page.Context(ctx).HTML()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, pagesum.Errorf(pagesum.EEXTRACTION, "reading page: %v", err)
	}
	return pagesum.HandleMessage(t.extractor, html, msg)
}

// Close closes the page.
func (t *Tab) Close() error {
	if t.page == nil {
		return nil
	}
	return t.page.Close()
}
