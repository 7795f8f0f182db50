package validator

import (
	"fmt"
	"strings"
)

// OneOfFold validates that value equals one of allowed under Unicode case folding.
func OneOfFold(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if strings.EqualFold(value, a) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			Code:    CodeChoice,
			Params:  map[string]any{"allowed": allowed},
		},
	}
}
