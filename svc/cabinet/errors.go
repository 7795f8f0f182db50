package cabinet

import "errors"

var (
	ErrValidation     = errors.New("record validation failed")
	ErrRecordNotFound = errors.New("record not found")

	// Input parsing errors
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidGender      = errors.New("invalid gender")
	ErrInvalidReviews     = errors.New("invalid number of reviews")
	ErrInvalidSalary      = errors.New("invalid salary")
	ErrUnknownSearchField = errors.New("unknown search field")

	// Rule set errors
	ErrUnknownRuleSet = errors.New("unknown validation rule set")
	ErrInvalidRuleSet = errors.New("invalid validation rule set")
)
