package cabinet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/filecabinet/pkg/validator"
)

// clock reads the local wall time. "Today" is the user's calendar date.
var clock = time.Now

// Validator checks a candidate record before the store mutates anything.
type Validator interface {
	Validate(p Params) error
}

// RuleSetKind selects one of the built-in rule sets.
type RuleSetKind string

const (
	RuleSetDefault RuleSetKind = "default"
	RuleSetCustom  RuleSetKind = "custom"
)

// ParseRuleSetKind is case-insensitive. An empty value selects the default set.
func ParseRuleSetKind(s string) (RuleSetKind, error) {
	switch kind := RuleSetKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "":
		return RuleSetDefault, nil
	case RuleSetDefault, RuleSetCustom:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRuleSet, s)
	}
}

// LengthRange bounds the rune count of a trimmed string.
type LengthRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DateRange bounds a date of birth. A zero To means "today".
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r *DateRange) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.From != "" {
		from, err := ParseDate(raw.From)
		if err != nil {
			return err
		}
		r.From = from
	}
	if raw.To != "" {
		to, err := ParseDate(raw.To)
		if err != nil {
			return err
		}
		r.To = to
	}
	return nil
}

func (r DateRange) bounds(now time.Time) (time.Time, time.Time) {
	to := r.To
	if to.IsZero() {
		to = now
	}
	return r.From, to
}

// ReviewRange bounds the number of reviews. A zero Max means no upper bound.
type ReviewRange struct {
	Min int16 `yaml:"min"`
	Max int16 `yaml:"max"`
}

// SalaryRange bounds the salary. A zero Max means no upper bound.
type SalaryRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (r *SalaryRange) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Min string `yaml:"min"`
		Max string `yaml:"max"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Min != "" {
		d, err := ParseSalary(raw.Min)
		if err != nil {
			return err
		}
		r.Min = d
	}
	if raw.Max != "" {
		d, err := ParseSalary(raw.Max)
		if err != nil {
			return err
		}
		r.Max = d
	}
	return nil
}

// RuleSet is a Validator built from field bounds.
// Use DefaultRuleSet, CustomRuleSet or LoadRuleSet to get a ready one.
type RuleSet struct {
	Name            string      `yaml:"name"`
	FirstName       LengthRange `yaml:"first_name"`
	LastName        LengthRange `yaml:"last_name"`
	NamePattern     string      `yaml:"name_pattern"`
	NamePatternHint string      `yaml:"name_pattern_hint"`
	DateOfBirth     DateRange   `yaml:"date_of_birth"`
	Genders         []string    `yaml:"genders"`
	NumberOfReviews ReviewRange `yaml:"number_of_reviews"`
	Salary          SalaryRange `yaml:"salary"`

	namePattern *regexp.Regexp
}

// DefaultRuleSet: names of 2 to 60 characters, born between 1950-01-01 and
// today, gender M or W, non-negative reviews and salary.
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{
		Name:        string(RuleSetDefault),
		FirstName:   LengthRange{Min: 2, Max: 60},
		LastName:    LengthRange{Min: 2, Max: 60},
		DateOfBirth: DateRange{From: time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)},
		Genders:     []string{GenderMan.String(), GenderWoman.String()},
	}
	_ = rs.compile()
	return rs
}

// CustomRuleSet is stricter than the default one: shorter names made of
// letters only, born from 1960-01-01, at most 1000 reviews and a salary cap.
func CustomRuleSet() *RuleSet {
	rs := &RuleSet{
		Name:            string(RuleSetCustom),
		FirstName:       LengthRange{Min: 2, Max: 30},
		LastName:        LengthRange{Min: 2, Max: 30},
		NamePattern:     `^\p{L}[\p{L} '\-]*$`,
		NamePatternHint: "only letters, spaces, hyphens and apostrophes",
		DateOfBirth:     DateRange{From: time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)},
		Genders:         []string{GenderMan.String(), GenderWoman.String()},
		NumberOfReviews: ReviewRange{Min: 0, Max: 1000},
		Salary:          SalaryRange{Min: decimal.Zero, Max: decimal.NewFromInt(1_000_000)},
	}
	_ = rs.compile()
	return rs
}

// LoadRuleSet reads YAML overrides on top of CustomRuleSet. Keys missing
// from the file keep the built-in custom values. Unknown keys are rejected.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	rs := CustomRuleSet()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRuleSet, path, err)
	}

	if err := rs.compile(); err != nil {
		return nil, err
	}
	return rs, nil
}

// ResolveValidator maps the configured kind to a rule set. rulesFile only
// applies to the custom kind.
func ResolveValidator(kind RuleSetKind, rulesFile string) (*RuleSet, error) {
	switch kind {
	case RuleSetDefault, "":
		return DefaultRuleSet(), nil
	case RuleSetCustom:
		if rulesFile != "" {
			return LoadRuleSet(rulesFile)
		}
		return CustomRuleSet(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleSet, kind)
	}
}

func (rs *RuleSet) compile() error {
	rules := []validator.Rule{
		validator.Min("first_name.min", rs.FirstName.Min, 1),
		validator.Min("first_name.max", rs.FirstName.Max, rs.FirstName.Min),
		validator.Min("last_name.min", rs.LastName.Min, 1),
		validator.Min("last_name.max", rs.LastName.Max, rs.LastName.Min),
		validator.NonNegative("number_of_reviews.min", rs.NumberOfReviews.Min),
		validator.NonNegativeDecimal("salary.min", rs.Salary.Min),
		{
			Check: func() bool { return len(rs.Genders) > 0 },
			Error: validator.ValidationError{Field: "genders", Message: "must not be empty", Code: validator.CodeRequired},
		},
	}
	if !rs.DateOfBirth.To.IsZero() {
		rules = append(rules, validator.Rule{
			Check: func() bool { return !rs.DateOfBirth.To.Before(rs.DateOfBirth.From) },
			Error: validator.ValidationError{Field: "date_of_birth.to", Message: "must not be before from", Code: validator.CodeDateRange},
		})
	}
	if rs.NumberOfReviews.Max != 0 {
		rules = append(rules, validator.Min("number_of_reviews.max", rs.NumberOfReviews.Max, rs.NumberOfReviews.Min))
	}
	if !rs.Salary.Max.IsZero() {
		rules = append(rules, validator.MinDecimal("salary.max", rs.Salary.Max, rs.Salary.Min))
	}
	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	rs.namePattern = nil
	if rs.NamePattern != "" {
		re, err := regexp.Compile(rs.NamePattern)
		if err != nil {
			return fmt.Errorf("%w: name pattern: %w", ErrInvalidRuleSet, err)
		}
		rs.namePattern = re
		if rs.NamePatternHint == "" {
			rs.NamePatternHint = "characters matching " + rs.NamePattern
		}
	}
	return nil
}

// Validate reports every failing field of p, at most one reason per field.
func (rs *RuleSet) Validate(p Params) error {
	var rules []validator.Rule
	for _, f := range Fields {
		rules = append(rules, rs.fieldRules(f, p)...)
	}
	return validator.ApplyFirst(rules...)
}

// CheckField validates a single field of p.
func (rs *RuleSet) CheckField(field Field, p Params) error {
	return validator.ApplyFirst(rs.fieldRules(field, p)...)
}

func (rs *RuleSet) fieldRules(field Field, p Params) []validator.Rule {
	name := string(field)
	switch field {
	case FieldFirstName:
		return rs.nameRules(name, p.FirstName, rs.FirstName)
	case FieldLastName:
		return rs.nameRules(name, p.LastName, rs.LastName)
	case FieldDateOfBirth:
		from, to := rs.DateOfBirth.bounds(truncateDate(clock()))
		return []validator.Rule{validator.DateBetween(name, p.DateOfBirth, from, to)}
	case FieldGender:
		return []validator.Rule{validator.OneOfFold(name, p.Gender.String(), rs.Genders)}
	case FieldNumberOfReviews:
		if rs.NumberOfReviews.Max == 0 {
			if rs.NumberOfReviews.Min == 0 {
				return []validator.Rule{validator.NonNegative(name, p.NumberOfReviews)}
			}
			return []validator.Rule{validator.Min(name, p.NumberOfReviews, rs.NumberOfReviews.Min)}
		}
		return []validator.Rule{validator.Between(name, p.NumberOfReviews, rs.NumberOfReviews.Min, rs.NumberOfReviews.Max)}
	case FieldSalary:
		if rs.Salary.Max.IsZero() {
			if rs.Salary.Min.IsZero() {
				return []validator.Rule{validator.NonNegativeDecimal(name, p.Salary)}
			}
			return []validator.Rule{validator.MinDecimal(name, p.Salary, rs.Salary.Min)}
		}
		return []validator.Rule{validator.DecimalBetween(name, p.Salary, rs.Salary.Min, rs.Salary.Max)}
	default:
		return nil
	}
}

func (rs *RuleSet) nameRules(field, value string, bounds LengthRange) []validator.Rule {
	rules := []validator.Rule{
		validator.Required(field, value),
		validator.LenBetween(field, value, bounds.Min, bounds.Max),
	}
	if rs.namePattern != nil {
		rules = append(rules, validator.Matches(field, value, rs.namePattern, rs.NamePatternHint))
	}
	return rules
}

