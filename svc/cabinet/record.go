package cabinet

import (
	"strconv"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/filecabinet/pkg/sanitizer"
)

// DateLayout is the display format of a date of birth (e.g. 1990-May-01).
const DateLayout = "2006-Jan-02"

// Gender is a single upper-case letter.
type Gender rune

const (
	GenderMan   Gender = 'M'
	GenderWoman Gender = 'W'
)

func (g Gender) String() string {
	if g == 0 {
		return ""
	}
	return string(g)
}

// Field names a record field. The values double as validation error fields
// and export element names.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldDateOfBirth     Field = "dateOfBirth"
	FieldGender          Field = "gender"
	FieldNumberOfReviews Field = "numberOfReviews"
	FieldSalary          Field = "salary"
)

// Fields lists record fields in prompt and export order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldDateOfBirth,
	FieldGender,
	FieldNumberOfReviews,
	FieldSalary,
}

// Params holds the mutable fields of a record. It is the candidate passed to
// Store.Create, Store.Edit and validators.
type Params struct {
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	Gender          Gender
	NumberOfReviews int16
	Salary          decimal.Decimal
}

// Record is a stored person entry.
type Record struct {
	ID              int
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	Gender          Gender
	NumberOfReviews int16
	Salary          decimal.Decimal
}

// Params returns the mutable fields of r.
func (r Record) Params() Params {
	return Params{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		DateOfBirth:     r.DateOfBirth,
		Gender:          r.Gender,
		NumberOfReviews: r.NumberOfReviews,
		Salary:          r.Salary,
	}
}

// Values renders the record as display strings in the order
// id, first name, last name, date of birth, gender, reviews, salary.
func (r Record) Values() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.FirstName,
		r.LastName,
		r.DateOfBirth.Format(DateLayout),
		r.Gender.String(),
		strconv.Itoa(int(r.NumberOfReviews)),
		r.Salary.StringFixed(2),
	}
}

func (r *Record) set(p Params) {
	r.FirstName = p.FirstName
	r.LastName = p.LastName
	r.DateOfBirth = p.DateOfBirth
	r.Gender = p.Gender
	r.NumberOfReviews = p.NumberOfReviews
	r.Salary = p.Salary
}

// normalize cleans names, drops the time of day from the date of birth and
// upper-cases the gender.
func (p Params) normalize() Params {
	p.FirstName = sanitizer.Name(p.FirstName)
	p.LastName = sanitizer.Name(p.LastName)
	if !p.DateOfBirth.IsZero() {
		p.DateOfBirth = truncateDate(p.DateOfBirth)
	}
	p.Gender = Gender(unicode.ToUpper(rune(p.Gender)))
	return p
}
