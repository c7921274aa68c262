package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTitle requires at least three characters once surrounding whitespace is trimmed
func ValidateTitle(s string) error {
	if err := validate.Var(strings.TrimSpace(s), "min=3"); err != nil {
		return errors.New("Todo must be at least 3 characters long")
	}
	return nil
}

// ValidateDueDate accepts an empty string or a calendar date in YYYY-MM-DD form
func ValidateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if err := validate.Var(s, "len=10,datetime="+DateLayout); err != nil {
		return errors.New("Please use YYYY-MM-DD format")
	}
	return nil
}

// Validate checks every field of f
func Validate(f Fields) error {
	f.Title = strings.TrimSpace(f.Title)
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Title":
				return ValidateTitle(f.Title)
			case "Priority":
				return fmt.Errorf("unknown priority %q: use High, Medium or Low", f.Priority)
			}
		}
		return err
	}
	if d, ok := f.DueDate.Get(); ok {
		return ValidateDueDate(d)
	}
	return nil
}
