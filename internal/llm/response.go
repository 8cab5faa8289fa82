package llm

import (
	"fmt"
	"strings"
)

// responseKind tags the shape a provider returned its text in.
type responseKind int

const (
	kindDirect responseKind = iota
	kindFragments
	kindOpaque
)

// Response is the normalized model output. Providers return text in one of
// three shapes: a direct string, a sequence of text fragments, or an opaque
// payload that is only stringifiable. Callers flatten it with Text() at the
// boundary so core logic only ever sees a plain string.
type Response struct {
	text      string
	fragments []string
	kind      responseKind
}

// Direct wraps a plain text response.
func Direct(text string) Response {
	return Response{kind: kindDirect, text: text}
}

// Fragments wraps a multi-part response whose parts concatenate into the
// full text.
func Fragments(parts []string) Response {
	return Response{kind: kindFragments, fragments: parts}
}

// Opaque wraps a payload with no recognized text field; its string form is
// used as-is.
func Opaque(v any) Response {
	return Response{kind: kindOpaque, text: fmt.Sprint(v)}
}

// Text flattens the response to a single string.
func (r Response) Text() string {
	if r.kind == kindFragments {
		return strings.Join(r.fragments, "")
	}
	return r.text
}

// Empty reports whether the flattened text is blank.
func (r Response) Empty() bool {
	return strings.TrimSpace(r.Text()) == ""
}
