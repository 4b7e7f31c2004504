// Package htmlsanitize strips markup from externally supplied text.
// Member names, group descriptions, and donation notes arrive from
// admin forms and bulk imports; everything stored from those fields
// goes through Strip first.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML, returning plain text with surrounding
// whitespace trimmed.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// IsPlainText reports whether s contains no markup (no matched angle
// brackets). A lone "<" or ">" is still plain text.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}
