package pagesum

import (
	"context"
	"strings"
)

// Tab is a loaded page that can host the content script.
type Tab interface {
	// URL returns the address of the loaded page.
	URL() string

	// Inject loads the content script into the page. Injecting twice is a
	// no-op. Returns EINJECTION when the page refuses scripts.
	Inject(ctx context.Context) error

	// Send delivers msg to the injected content script and returns its
	// response.
	Send(ctx context.Context, msg Message) (*Response, error)

	// Close releases the page.
	Close() error
}

// TabSource resolves the page a summarize action targets.
type TabSource interface {
	// ActiveTab loads the page identified by target.
	// Returns ENOTARGET when target is empty or cannot be loaded.
	ActiveTab(ctx context.Context, target string) (Tab, error)
}

// restrictedPrefixes are pages browsers never let extensions script.
var restrictedPrefixes = []string{
	"about:",
	"chrome:",
	"chrome-extension:",
	"chrome-search:",
	"devtools:",
	"edge:",
	"view-source:",
	"https://chrome.google.com/webstore",
	"https://chromewebstore.google.com",
}

// IsRestrictedURL reports whether a browser refuses content scripts on u.
func IsRestrictedURL(u string) bool {
	u = strings.ToLower(strings.TrimSpace(u))
	for _, prefix := range restrictedPrefixes {
		if strings.HasPrefix(u, prefix) {
			return true
		}
	}
	return false
}
