package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// "- item" or "* item": marker, at least one space, then content
	listItemPattern = regexp.MustCompile(`^[-*]\s+(.+)$`)

	// **bold**, non-greedy
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ConvertMarkup converts the supported markdown subset to HTML.
//
// Each non-blank line becomes one <p>, consecutive list items share one
// <ul>, and blank lines only separate blocks. Output lines keep the input
// order and are joined with "\n". Text is not HTML-escaped.
func ConvertMarkup(content string) string {
	lines := strings.Split(normalizeLineEndings(content), "\n")
	result := make([]string, 0, len(lines))
	inList := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if m := listItemPattern.FindStringSubmatch(line); m != nil {
			if !inList {
				result = append(result, "<ul>")
				inList = true
			}
			result = append(result, "<li>"+FormatInline(m[1])+"</li>")
			continue
		}

		if inList {
			result = append(result, "</ul>")
			inList = false
		}
		if line != "" {
			result = append(result, "<p>"+FormatInline(line)+"</p>")
		}
	}

	if inList {
		result = append(result, "</ul>")
	}

	return strings.Join(result, "\n")
}

// FormatInline applies **bold** then *italic* substitution to one line.
// Bold runs first so its asterisks are gone before italics are matched.
func FormatInline(line string) string {
	line = boldPattern.ReplaceAllString(line, "<strong>$1</strong>")
	return replaceItalics(line)
}

// replaceItalics wraps *text* in <em> when text holds no asterisk and
// neither delimiter touches another asterisk.
func replaceItalics(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	i := 0
	for i < len(s) {
		if s[i] != '*' || (i > 0 && s[i-1] == '*') {
			b.WriteByte(s[i])
			i++
			continue
		}

		// The closing delimiter is the next asterisk, since text may not contain one
		end := strings.IndexByte(s[i+1:], '*')
		if end <= 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		closeIdx := i + 1 + end
		if closeIdx+1 < len(s) && s[closeIdx+1] == '*' {
			b.WriteByte(s[i])
			i++
			continue
		}

		b.WriteString("<em>")
		b.WriteString(s[i+1 : closeIdx])
		b.WriteString("</em>")
		i = closeIdx + 1
	}

	return b.String()
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
