package shell

import (
	"context"

	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/pkg/sanitizer"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

type fieldPrompt struct {
	field  cabinet.Field
	prompt string
	parse  func(text string, p *cabinet.Params) error
}

var fieldPrompts = []fieldPrompt{
	{cabinet.FieldFirstName, "First name: ", func(text string, p *cabinet.Params) error {
		p.FirstName = sanitizer.Name(text)
		return nil
	}},
	{cabinet.FieldLastName, "Last name: ", func(text string, p *cabinet.Params) error {
		p.LastName = sanitizer.Name(text)
		return nil
	}},
	{cabinet.FieldDateOfBirth, "Date of birth: ", func(text string, p *cabinet.Params) (err error) {
		p.DateOfBirth, err = cabinet.ParseDate(text)
		return err
	}},
	{cabinet.FieldGender, "Gender (M/W): ", func(text string, p *cabinet.Params) (err error) {
		p.Gender, err = cabinet.ParseGender(text)
		return err
	}},
	{cabinet.FieldNumberOfReviews, "Number of reviews: ", func(text string, p *cabinet.Params) (err error) {
		p.NumberOfReviews, err = cabinet.ParseReviews(text)
		return err
	}},
	{cabinet.FieldSalary, "Salary: ", func(text string, p *cabinet.Params) (err error) {
		p.Salary, err = cabinet.ParseSalary(text)
		return err
	}},
}

// readParams asks for every field in order. A field is asked again until
// it parses and passes the field checker. End of input or Ctrl-C cancels.
func (s *Shell) readParams(ctx context.Context) (cabinet.Params, error) {
	var p cabinet.Params
	for _, fp := range fieldPrompts {
		for {
			if err := ctx.Err(); err != nil {
				return cabinet.Params{}, err
			}

			text, err := s.readLine(fp.prompt)
			if err != nil {
				if isEndOfInput(err) {
					return cabinet.Params{}, errCanceled
				}
				return cabinet.Params{}, err
			}

			if err := fp.parse(sanitizer.Line(text), &p); err != nil {
				s.logger.DebugContext(ctx, "field rejected", logger.Field(string(fp.field)), logger.Error(err))
				s.println(err)
				continue
			}
			if err := s.checker.CheckField(fp.field, p); err != nil {
				s.logger.DebugContext(ctx, "field rejected", logger.Field(string(fp.field)), logger.Error(err))
				s.printError(err)
				continue
			}
			break
		}
	}
	return p, nil
}
