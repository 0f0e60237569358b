// Package rod provides a live-browser TabSource backed by headless Chrome.
// Pages are navigated and loaded in a real browser so script-rendered
// content and stylesheet visibility are both available to extraction.
package rod

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/pagesum"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements pagesum.TabSource at compile time.
var _ pagesum.TabSource = (*Browser)(nil)

// Browser opens tabs in a headless Chrome instance.
//
// Browser is safe for concurrent use.
type Browser struct {
	extractor pagesum.TextExtractor
	bin       string

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithBin sets the Chrome executable. By default rod finds a local
// installation or downloads one.
func WithBin(path string) Option {
	return func(b *Browser) {
		b.bin = path
	}
}

// NewBrowser launches headless Chrome. Messages sent to its tabs are
// answered with extractor. Close must be called when the Browser is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(extractor pagesum.TextExtractor, opts ...Option) (*Browser, error) {
	b := &Browser{extractor: extractor}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// ActiveTab opens target in a new tab and waits for it to load.
// Restricted pages are not navigated; their Inject fails.
func (b *Browser) ActiveTab(ctx context.Context, target string) (pagesum.Tab, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "No active tab found.")
	}
	if pagesum.IsRestrictedURL(target) {
		return &Tab{url: target}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.closed.Load() {
		return nil, pagesum.Errorf(pagesum.EINVALID, "browser is closed")
	}

	b.mu.Lock()
	browser := b.browser
	b.mu.Unlock()
	if browser == nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "browser is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "Could not open tab: %v", err)
	}

	tab := &Tab{page: page, url: target, extractor: b.extractor}
	p := page.Context(ctx)
	if err := p.Navigate(target); err != nil {
		_ = page.Close()
		return nil, navigationError(ctx, target, err)
	}
	if err := p.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, navigationError(ctx, target, err)
	}
	return tab, nil
}

// Close shuts down Chrome. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// launch starts Chrome with stability flags.
func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if b.bin != "" {
		l = l.Bin(b.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return nil
}

// navigationError keeps cancellation visible to callers and reports
// everything else as a missing target.
func navigationError(ctx context.Context, target string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return pagesum.Errorf(pagesum.ENOTARGET, "Could not load %s: %v", target, err)
}
