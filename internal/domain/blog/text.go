package blog

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	excerptRunes    = 150
	runesPerMinute  = 200
	excerptEllipsis = "..."
)

var stripPolicy = bluemonday.StrictPolicy()

// PlainText removes every HTML tag from s and unescapes entities.
func PlainText(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// ReadingTime estimates minutes to read content at 200 characters a minute,
// never less than one.
func ReadingTime(content string) int {
	n := utf8.RuneCountInString(PlainText(content)) / runesPerMinute
	if n < 1 {
		return 1
	}
	return n
}

// DeriveExcerpt builds an excerpt from content: the first 150 characters of
// the plain text, with an ellipsis when truncated.
func DeriveExcerpt(content string) string {
	clean := strings.TrimSpace(PlainText(content))
	r := []rune(clean)
	if len(r) > excerptRunes {
		return string(r[:excerptRunes]) + excerptEllipsis
	}
	return clean
}
