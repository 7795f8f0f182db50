package validator

import "fmt"

// Min validates that value >= min.
func Min[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Code:    CodeRange,
			Params:  map[string]any{"min": min},
		},
	}
}

// Between validates that value lies within [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Code:    CodeRange,
			Params: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}

func NonNegative[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be negative",
			Code:    CodeNonNegative,
		},
	}
}
