package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/reasonandrage/letterbox/internal/assets"
	"github.com/reasonandrage/letterbox/internal/dateutil"
)

// ContentIndent is the column at which converted content lines are embedded
// inside the entry block.
const ContentIndent = 20

// ErrLetterRender indicates the entry template failed to execute.
var ErrLetterRender = errors.New("letter template rendering failed")

// htmlEscaper escapes in a single pass, so the "&" it emits is never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// LetterData is the view passed to the entry template.
type LetterData struct {
	Title string // HTML-escaped
	Date  string // already formatted, e.g. 3/5/24
	Body  string // converted content, every line indented
}

// LetterFormatter wraps converted content and metadata into an entry block.
type LetterFormatter struct {
	tmpl       *template.Template
	loc        *time.Location
	dateFormat string
}

// NewLetterFormatter parses the entry template from loader. Dates are read
// in loc (nil means UTC) and printed as dateutil.LetterDateFormat.
func NewLetterFormatter(loader assets.AssetLoader, loc *time.Location) (*LetterFormatter, error) {
	content, err := loader.LoadTemplate(assets.LetterTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading letter template: %w", err)
	}

	// text/template: the title is escaped explicitly and content is trusted markup
	tmpl, err := template.New(assets.LetterTemplate).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing letter template: %w", err)
	}

	if loc == nil {
		loc = time.UTC
	}
	return &LetterFormatter{tmpl: tmpl, loc: loc, dateFormat: dateutil.LetterDateFormat}, nil
}

// Format renders one entry block. It is pure: the same inputs always give
// the same bytes. Returns an error wrapping dateutil.ErrInvalidDate for an
// unparsable date.
func (f *LetterFormatter) Format(title, date, content string) (string, error) {
	formattedDate, err := dateutil.FormatDate(date, f.dateFormat, f.loc)
	if err != nil {
		return "", err
	}

	data := LetterData{
		Title: EscapeHTML(title),
		Date:  formattedDate,
		Body:  IndentLines(ConvertMarkup(content), ContentIndent),
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLetterRender, err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// EscapeHTML escapes &, <, >, " and ' for embedding text in markup.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// IndentLines prefixes every line of s with n spaces, keeping line order.
func IndentLines(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
