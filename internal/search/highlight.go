// highlight.go wraps query terms in marker strings for display.
//
// Separated from engine.go: highlighting is a pure text transform over a
// result's display text and never consults the index.
package search

import (
	"regexp"
	"strings"
)

// Default highlight markers.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// Highlight wraps every occurrence of each whitespace-separated query
// term in text with the default markers. Matching is case-insensitive
// and literal; terms are quoted, never interpreted as patterns.
func Highlight(text, query string) string {
	return HighlightWith(text, query, MarkOpen, MarkClose)
}

// HighlightWith is Highlight with caller-chosen markers. Terms are
// applied cumulatively in order, so a term that also matches inside an
// earlier term's markers will mark there too; callers wanting plain
// terminal output pass ANSI escapes as markers.
func HighlightWith(text, query, open, close string) string {
	for _, term := range strings.Fields(query) {
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, open+"${0}"+close)
	}
	return text
}
