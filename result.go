package pagesum

// Result is the outcome of one summarize action: either a summary or an
// error, never both.
type Result struct {
	Summary string
	Err     error
}

// OK reports whether the action produced a summary.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the plain text shown for the result.
func (r Result) Message() string {
	if r.Err != nil {
		return FormatError(r.Err)
	}
	return r.Summary
}

// Renderer displays results. Each call replaces what was shown before.
type Renderer interface {
	Render(r Result) error
}
