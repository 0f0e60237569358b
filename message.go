package pagesum

import "errors"

// MessageGetArticleText asks the page for its extracted text.
// It is the only message type understood by the content side.
const MessageGetArticleText = "GET_ARTICLE_TEXT"

// Message is sent from the orchestrator to a page.
type Message struct {
	Type string `json:"type"`
}

// Response is the page's answer to a Message.
// Text is nil when the page has no extractable text.
type Response struct {
	Text *string `json:"text"`
}

// HandleMessage answers msg on behalf of a page whose rendered document is
// html. It is the content-side half of the messaging protocol.
func HandleMessage(extractor TextExtractor, html string, msg Message) (*Response, error) {
	if msg.Type != MessageGetArticleText {
		return nil, Errorf(EINVALID, "unknown message type %q", msg.Type)
	}

	text, err := extractor.ExtractText(html)
	if ErrorCode(err) == ENOTFOUND {
		return &Response{}, nil
	} else if err != nil {
		return nil, err
	}
	return &Response{Text: &text}, nil
}

// errNoText is used by Response.TextOrError.
var errNoText = errors.New("response carries no text")

// TextOrError returns the response text, or an error when the response is
// nil or carries no usable text.
func (r *Response) TextOrError() (string, error) {
	if r == nil || r.Text == nil || *r.Text == "" {
		return "", errNoText
	}
	return *r.Text, nil
}
