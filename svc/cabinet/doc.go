// Package cabinet is the in-memory file cabinet: person records, the rule
// sets that validate them and the Store that owns them.
//
// # Records
//
// A Record carries an id, first and last name, date of birth, gender, number
// of reviews and salary. Params is the same data without the id and is what
// callers pass to Store.Create and Store.Edit. Ids are assigned sequentially
// as count+1 and never change. Records cannot be deleted.
//
// # Store
//
// Store keeps records in creation order plus three secondary indexes (first
// name, last name, date of birth). Each index maps a key to a set of record
// ids. Name keys are case-folded and NFC-normalised, so lookups are
// case-insensitive. Create and Edit validate first and then update the list
// and all three indexes in a single step, so an edited record is never found
// under its old values:
//
//	store := cabinet.NewStore(cabinet.DefaultRuleSet())
//	id, err := store.Create(cabinet.Params{
//	    FirstName:       "Anna",
//	    LastName:        "Ray",
//	    DateOfBirth:     time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
//	    Gender:          cabinet.GenderMan,
//	    NumberOfReviews: 3,
//	    Salary:          decimal.NewFromInt(1000),
//	})
//	if errors.Is(err, cabinet.ErrValidation) {
//	    // validator.ExtractValidationErrors(err) lists the offending fields
//	}
//	records := store.FindByFirstName("anna")
//
// Queries return copies. An absent key yields an empty slice, never an error.
//
// # Rule sets
//
// RuleSet implements Validator. DefaultRuleSet and CustomRuleSet are the two
// built-in policies; LoadRuleSet applies YAML overrides on top of the custom
// one:
//
//	name: strict
//	first_name: {min: 2, max: 20}
//	date_of_birth: {from: "1970-01-01"}
//	salary: {max: "250000"}
//
// ResolveValidator picks the rule set for a configured RuleSetKind.
//
// # Parsing
//
// ParseDate, ParseGender, ParseReviews and ParseSalary turn console input
// into Params fields. Dates are parsed with github.com/jinzhu/now using the
// layouts in DateFormats and are always midnight UTC.
package cabinet
