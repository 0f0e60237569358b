package pagesum

// TextExtractor derives plain text from a rendered HTML document.
type TextExtractor interface {
	// ExtractText returns the best-effort visible text of the page.
	// Returns ENOTFOUND when the page has no extractable text.
	ExtractText(html string) (string, error)
}

// Attributes stamped onto elements by the in-page content script so that
// extractors working on serialized HTML see what the browser laid out.
const (
	// HiddenAttr marks elements without a layout parent
	// (offsetParent === null).
	HiddenAttr = "data-pagesum-hidden"

	// DisplayAttr carries the computed display value "none" for elements
	// that are not rendered at all.
	DisplayAttr = "data-pagesum-display"
)
