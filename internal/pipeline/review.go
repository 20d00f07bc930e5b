package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/reasonandrage/letterbox/internal/assets"
)

// ReviewTitlePrefix starts both the commit message and the pull request title.
const ReviewTitlePrefix = "Add letter: "

var (
	// ErrReviewRender indicates the review body template failed to execute.
	ErrReviewRender = errors.New("review template rendering failed")

	// ErrHTMLConversion indicates Goldmark failed to render the review body.
	ErrHTMLConversion = errors.New("HTML conversion failed")
)

// ReviewData is the view passed to the review body template.
type ReviewData struct {
	Title string
	Date  string // as submitted, not reformatted
}

// ReviewComposer builds the texts attached to the pull request.
type ReviewComposer struct {
	body *template.Template
	md   goldmark.Markdown
}

// NewReviewComposer parses the review body template from loader.
func NewReviewComposer(loader assets.AssetLoader) (*ReviewComposer, error) {
	content, err := loader.LoadTemplate(assets.ReviewTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading review template: %w", err)
	}

	tmpl, err := template.New(assets.ReviewTemplate).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing review template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // "**Title:**" and "**Date:**" sit on consecutive lines
			html.WithXHTML(),
			// WithUnsafe is not set: raw HTML in a submitted title is omitted from previews.
		),
	)

	return &ReviewComposer{body: tmpl, md: md}, nil
}

// Title returns the pull request title, also used as the commit message.
func (c *ReviewComposer) Title(title string) string {
	return ReviewTitlePrefix + title
}

// Body renders the pull request body in markdown.
func (c *ReviewComposer) Body(title, date string) (string, error) {
	var buf bytes.Buffer
	if err := c.body.Execute(&buf, ReviewData{Title: title, Date: date}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReviewRender, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// RenderHTML converts a review body to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting when ctx is done.
func (c *ReviewComposer) RenderHTML(ctx context.Context, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(body), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
