package validator

// Codes attached to ValidationError.Code so callers can branch without
// parsing messages.
const (
	CodeRequired    = "required"
	CodeLength      = "length"
	CodeRange       = "range"
	CodeDateRange   = "date_range"
	CodeChoice      = "choice"
	CodePattern     = "pattern"
	CodeNonNegative = "non_negative"
)
