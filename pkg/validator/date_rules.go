package validator

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateBetween validates that value falls within [from, to] comparing calendar
// dates only, so any time of day on either bound is accepted.
func DateBetween(field string, value, from, to time.Time) Rule {
	return Rule{
		Check: func() bool {
			d := truncateDay(value)
			return !d.Before(truncateDay(from)) && !d.After(truncateDay(to))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be between %s and %s", from.Format(dateLayout), to.Format(dateLayout)),
			Code:    CodeDateRange,
			Params: map[string]any{
				"from": from.Format(dateLayout),
				"to":   to.Format(dateLayout),
			},
		},
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
