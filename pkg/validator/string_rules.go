package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    CodeRequired,
		},
	}
}

// LenBetween validates the rune length of the trimmed value against [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(strings.TrimSpace(value))
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Code:    CodeLength,
			Params: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}

// Matches validates the trimmed value against re. description is used in the
// error message ("must contain <description>").
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain " + description,
			Code:    CodePattern,
			Params:  map[string]any{"pattern": re.String()},
		},
	}
}
