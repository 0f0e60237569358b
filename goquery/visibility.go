package goquery

import (
	"strings"

	"github.com/fwojciec/pagesum"
	"golang.org/x/net/html"
)

// isVisible reports whether n has a layout parent: it is attached to the
// document, neither it nor an ancestor is display:none, and the browser
// did not stamp it as lacking an offsetParent.
//
// Without a live browser only inline styles and the hidden attribute are
// visible to us; stylesheet rules are not evaluated.
func isVisible(n *html.Node) bool {
	if hasAttr(n, pagesum.HiddenAttr) {
		return false
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.DocumentNode {
			return true
		}
		if cur.Type == html.ElementNode && !isRendered(cur) {
			return false
		}
	}
	return false
}

// isRendered reports whether the element itself generates a box.
func isRendered(n *html.Node) bool {
	switch n.Data {
	case "head", "script", "style", "template", "noscript":
		return false
	}
	if hasAttr(n, "hidden") {
		return false
	}
	if v, ok := attr(n, pagesum.DisplayAttr); ok && strings.EqualFold(v, "none") {
		return false
	}
	if style, ok := attr(n, "style"); ok && inlineDisplayNone(style) {
		return false
	}
	return true
}

// inlineDisplayNone reports whether a style attribute sets display:none.
func inlineDisplayNone(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			value = strings.ToLower(strings.TrimSpace(value))
			if value == "none" || strings.HasPrefix(value, "none ") || strings.HasPrefix(value, "none!") {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}
