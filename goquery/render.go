package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Line breaks required around elements when rendering text.
var (
	paragraphElements = map[string]bool{"p": true}

	blockElements = map[string]bool{
		"address": true, "article": true, "aside": true, "blockquote": true,
		"dd": true, "details": true, "dialog": true, "div": true, "dl": true,
		"dt": true, "fieldset": true, "figcaption": true, "figure": true,
		"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
		"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
		"hr": true, "li": true, "main": true, "nav": true, "ol": true,
		"pre": true, "section": true, "summary": true, "table": true,
		"tr": true, "ul": true, "caption": true,
	}

	cellElements = map[string]bool{"td": true, "th": true}
)

// renderedText approximates the innerText of n: hidden subtrees are
// skipped, whitespace is collapsed outside <pre>, and block boundaries
// become line breaks.
func renderedText(n *html.Node) string {
	w := &textWriter{atLineStart: true}
	w.walk(n, false)
	return w.String()
}

// textWriter accumulates rendered text. Line breaks requested by block
// boundaries are deferred and merged so adjacent blocks never produce more
// breaks than the largest request, and none appear at the edges. Inline
// separators are deferred too and dropped at line breaks, so the builder
// is only ever appended to.
type textWriter struct {
	b           strings.Builder
	pending     int
	sep         string
	started     bool
	atLineStart bool
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.ElementNode:
		if !isRendered(n) {
			return
		}
		switch {
		case n.Data == "br":
			w.newline()
			return
		case n.Data == "pre" || n.Data == "textarea":
			pre = true
		}
	}

	name := ""
	if n.Type == html.ElementNode {
		name = n.Data
	}
	w.open(name)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}
	w.close(name)
}

func (w *textWriter) open(name string) {
	switch {
	case paragraphElements[name]:
		w.require(2)
	case blockElements[name]:
		w.require(1)
	}
}

func (w *textWriter) close(name string) {
	switch {
	case paragraphElements[name]:
		w.require(2)
	case blockElements[name]:
		w.require(1)
	case cellElements[name]:
		w.flush()
		w.sep += "\t"
	}
}

// require asks for at least n line breaks before the next text.
func (w *textWriter) require(n int) {
	if n > w.pending {
		w.pending = n
	}
}

// newline writes a hard line break from <br>.
func (w *textWriter) newline() {
	w.flush()
	w.sep = ""
	w.b.WriteByte('\n')
	w.started = true
	w.atLineStart = true
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		if s != "" {
			w.write(s)
		}
		return
	}
	s = collapseSpaces(s)
	if rest, ok := strings.CutPrefix(s, " "); ok {
		w.space()
		s = rest
	}
	trailing := strings.HasSuffix(s, " ")
	s = strings.TrimSuffix(s, " ")
	if s != "" {
		w.write(s)
	}
	if trailing {
		w.space()
	}
}

// space defers a single space until the next text on the same line.
func (w *textWriter) space() {
	if w.pending == 0 && !w.atLineStart && w.sep == "" {
		w.sep = " "
	}
}

func (w *textWriter) write(s string) {
	w.flush()
	w.b.WriteString(w.sep)
	w.sep = ""
	w.b.WriteString(s)
	w.started = true
	w.atLineStart = strings.HasSuffix(s, "\n")
}

// flush emits deferred line breaks if text has already been written.
// Separators waiting before the break are discarded.
func (w *textWriter) flush() {
	if w.pending == 0 {
		return
	}
	if w.started {
		w.b.WriteString(strings.Repeat("\n", w.pending))
		w.atLineStart = true
	}
	w.sep = ""
	w.pending = 0
}

// String returns the rendered text with trailing spaces removed from lines.
func (w *textWriter) String() string {
	lines := strings.Split(w.b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// collapseSpaces replaces every run of HTML whitespace with one space.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				b.WriteByte(' ')
				space = true
			}
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}
