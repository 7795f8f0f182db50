package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveControlChars drops every control character, tabs and line breaks included.
// Console input never carries meaningful control characters in a field value.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CollapseWhitespace replaces runs of whitespace with one space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// NFC converts s to Unicode normalization form C so visually equal names
// compare equal byte for byte.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Unquote strips one pair of matching surrounding double or single quotes.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Line is the pipeline applied to every raw console value.
var Line = Compose(RemoveControlChars, Trim)

// Name is the pipeline applied to person names before validation and indexing.
var Name = Compose(RemoveControlChars, NFC, CollapseWhitespace)
