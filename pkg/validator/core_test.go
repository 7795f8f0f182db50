package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filecabinet/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "firstName", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "salary", Message: "must not be negative"})

		assert.Equal(t, "validation failed: firstName: is required; salary: must not be negative", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "firstName", Message: "too short"},
		{Field: "firstName", Message: "bad characters"},
		{Field: "gender", Message: "unknown"},
	}

	assert.True(t, errs.Has("firstName"))
	assert.False(t, errs.Has("lastName"))
	assert.Equal(t, []string{"too short", "bad characters"}, errs.Get("firstName"))
	assert.Equal(t, []string{"firstName", "gender"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("firstName", "Anna"),
			validator.Min("reviews", 3, 0),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("firstName", " "),
			validator.LenBetween("firstName", " ", 2, 60),
			validator.Min("reviews", -1, 0),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, validator.CodeRequired, verrs[0].Code)
		assert.Equal(t, validator.CodeLength, verrs[1].Code)
		assert.Equal(t, validator.CodeRange, verrs[2].Code)
	})
}

func TestApplyFirst(t *testing.T) {
	err := validator.ApplyFirst(
		validator.Required("firstName", ""),
		validator.LenBetween("firstName", "", 2, 60),
		validator.Min("reviews", -1, 0),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.Equal(t, "firstName", verrs[0].Field)
	assert.Equal(t, validator.CodeRequired, verrs[0].Code)
	assert.Equal(t, "reviews", verrs[1].Field)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.Apply(validator.Required("lastName", ""))
		err := fmt.Errorf("create record: %w", inner)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "lastName", verrs[0].Field)
		assert.True(t, validator.IsValidationError(err))
	})
}
