package validator_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/filecabinet/pkg/validator"
)

func TestLenBetween(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"too short", "A", false},
		{"lower bound", "An", true},
		{"upper bound", strings.Repeat("a", 60), true},
		{"too long", strings.Repeat("a", 61), false},
		{"trimmed before counting", "  A  ", false},
		{"counts runes not bytes", "Ёж", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(validator.LenBetween("firstName", tt.value, 2, 60))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^[A-Za-z]+$`)

	assert.NoError(t, validator.Apply(validator.Matches("name", " Anna ", re, "only letters")))

	err := validator.Apply(validator.Matches("name", "Anna1", re, "only letters"))
	verrs := validator.ExtractValidationErrors(err)
	if assert.Len(t, verrs, 1) {
		assert.Equal(t, "must contain only letters", verrs[0].Message)
		assert.Equal(t, validator.CodePattern, verrs[0].Code)
	}
}

func TestDateBetween(t *testing.T) {
	from := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value time.Time
		valid bool
	}{
		{"before lower bound", time.Date(1949, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"lower bound inclusive", from, true},
		{"inside", time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"upper bound inclusive with time of day", time.Date(2000, 12, 31, 23, 59, 0, 0, time.UTC), true},
		{"after upper bound", time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(validator.DateBetween("dateOfBirth", tt.value, from, to))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	err := validator.Apply(validator.DateBetween("dateOfBirth", time.Time{}, from, to))
	assert.EqualError(t, err, "validation failed: dateOfBirth: date must be between 1950-01-01 and 2000-12-31")
}

func TestNumericRules(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.NonNegative("reviews", int16(0))))
	assert.Error(t, validator.Apply(validator.NonNegative("reviews", int16(-1))))

	assert.NoError(t, validator.Apply(validator.Between("reviews", 10, 0, 10)))
	assert.Error(t, validator.Apply(validator.Between("reviews", 11, 0, 10)))
	assert.Error(t, validator.Apply(validator.Between("reviews", -1, 0, 10)))

	assert.NoError(t, validator.Apply(validator.Min("reviews", 0, 0)))
	assert.Error(t, validator.Apply(validator.Min("reviews", -5, 0)))
}

func TestDecimalRules(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.NonNegativeDecimal("salary", decimal.Zero)))
	assert.Error(t, validator.Apply(validator.NonNegativeDecimal("salary", decimal.RequireFromString("-0.01"))))

	min := decimal.Zero
	max := decimal.NewFromInt(1000)
	assert.NoError(t, validator.Apply(validator.DecimalBetween("salary", decimal.RequireFromString("1000.00"), min, max)))

	err := validator.Apply(validator.DecimalBetween("salary", decimal.RequireFromString("1000.01"), min, max))
	assert.EqualError(t, err, "validation failed: salary: must be between 0 and 1000")

	floor := decimal.NewFromInt(500)
	assert.NoError(t, validator.Apply(validator.MinDecimal("salary", decimal.RequireFromString("500.00"), floor)))
	err = validator.Apply(validator.MinDecimal("salary", decimal.RequireFromString("499.99"), floor))
	assert.EqualError(t, err, "validation failed: salary: must be at least 500")
}

func TestOneOfFold(t *testing.T) {
	allowed := []string{"M", "W"}

	for _, v := range []string{"M", "m", "W", "w"} {
		assert.NoError(t, validator.Apply(validator.OneOfFold("gender", v, allowed)), v)
	}
	for _, v := range []string{"", "F", "MW"} {
		assert.Error(t, validator.Apply(validator.OneOfFold("gender", v, allowed)), v)
	}
}
