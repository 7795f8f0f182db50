// Package validator provides small, composable validation rules for the
// record fields handled by the file cabinet: strings with rune-based length
// bounds, calendar dates, integers, decimals and case-insensitive choices.
//
// Every helper returns a Rule value: a deferred Check function paired with
// the ValidationError reported when the check fails. Rules are evaluated by
// Apply (all rules) or ApplyFirst (first failure per field), which collect
// failures into ValidationErrors. ValidationErrors implements error, so a
// failed validation can be returned, wrapped and later recovered with
// ExtractValidationErrors or errors.As.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.LenBetween("firstName", p.FirstName, 2, 60),
//	    validator.DateBetween("dateOfBirth", p.DateOfBirth, minDate, time.Now()),
//	    validator.NonNegativeDecimal("salary", p.Salary),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        fmt.Println(f, verrs.Get(f))
//	    }
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
