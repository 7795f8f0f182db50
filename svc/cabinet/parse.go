package cabinet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// DateFormats are the layouts accepted for a date of birth.
var DateFormats = []string{
	"2006-1-2",
	"1/2/2006",
	"2006-Jan-2",
	"2006.1.2",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var dateParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats:  DateFormats,
}

// ParseDate parses a calendar date in one of DateFormats.
// The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	t, err := dateParser.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return truncateDate(t), nil
}

// ParseGender accepts exactly one letter in any case.
// Whether the letter is allowed is up to the rule set.
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
	return Gender(unicode.ToUpper(r)), nil
}

func ParseReviews(s string) (int16, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidReviews, strings.TrimSpace(s))
	}
	return int16(n), nil
}

func ParseSalary(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidSalary, strings.TrimSpace(s))
	}
	return d, nil
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
