// Package markdown renders the short inline markdown used in item
// descriptions. Output always passes through a bluemonday policy before it
// is handed to a view.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer converts inline markdown to sanitized HTML or plain text. It is
// safe for concurrent use once constructed.
type Renderer struct {
	md     goldmark.Markdown
	html   *bluemonday.Policy
	strict *bluemonday.Policy
}

// New builds a renderer with the default policies.
func New() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return &Renderer{
		md:     goldmark.New(),
		html:   policy,
		strict: bluemonday.StrictPolicy(),
	}
}

// RenderInline returns sanitized HTML for src without the surrounding
// paragraph element.
func (r *Renderer) RenderInline(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	return r.html.Sanitize(r.convert(src))
}

// ToText strips all markup and returns the readable text of src.
func (r *Renderer) ToText(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	text := r.strict.Sanitize(r.convert(src))
	return strings.TrimSpace(html.UnescapeString(text))
}

func (r *Renderer) convert(src string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}
	return unwrapParagraph(buf.String())
}

func unwrapParagraph(out string) string {
	out = strings.TrimSpace(out)
	if !strings.HasPrefix(out, "<p>") || !strings.HasSuffix(out, "</p>") {
		return out
	}
	inner := out[len("<p>") : len(out)-len("</p>")]
	if strings.Contains(inner, "<p>") {
		return out
	}
	return inner
}
