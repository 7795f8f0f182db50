package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func NonNegativeDecimal(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsNegative()
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be negative",
			Code:    CodeNonNegative,
		},
	}
}

// DecimalBetween validates that value lies within [min, max].
func DecimalBetween(field string, value, min, max decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %s and %s", min.String(), max.String()),
			Code:    CodeRange,
			Params: map[string]any{
				"min": min.String(),
				"max": max.String(),
			},
		},
	}
}

func MinDecimal(field string, value, min decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.GreaterThanOrEqual(min)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %s", min.String()),
			Code:    CodeRange,
			Params:  map[string]any{"min": min.String()},
		},
	}
}
