// Package markdown renders the long-form copy (offering details, about text)
// from Markdown to sanitized HTML.
package markdown

import (
	"bytes"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md     = goldmark.New()
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Render writes the sanitized HTML for source to w.
func Render(w io.Writer, source string) error {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return err
	}
	_, err := policy.SanitizeReader(&buf).WriteTo(w)
	return err
}

// HTML returns the sanitized HTML for source. Conversion errors yield the
// escaped source as a single paragraph.
func HTML(source string) string {
	var buf bytes.Buffer
	if err := Render(&buf, source); err != nil {
		return "<p>" + policy.Sanitize(source) + "</p>"
	}
	return buf.String()
}
