// Package markdown renders staff-authored markdown and strips markup from
// user-authored text.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	rich   *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md:     md,
		rich:   rich,
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *Renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// ToHTMLSanitized renders markdown and keeps only user-generated-content safe
// markup (no scripts, no event handlers, nofollow links).
func (r *Renderer) ToHTMLSanitized(markdown string) (string, error) {
	out, err := r.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return r.rich.Sanitize(out), nil
}

// StripTags removes all markup and leaves the text content.
func (r *Renderer) StripTags(text string) string {
	return r.strict.Sanitize(text)
}
