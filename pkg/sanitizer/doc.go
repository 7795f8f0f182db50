// Package sanitizer cleans raw console input before it reaches validation.
//
// Helpers are plain func(string) string values so they can be chained with
// Apply or bound into reusable pipelines with Compose. Line and Name are the
// two pipelines the shell uses for generic values and person names.
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.CollapseWhitespace)
//	clean("  Anna \t Maria\n") // "Anna Maria"
package sanitizer
