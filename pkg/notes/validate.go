package notes

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTitle requires at least three characters once surrounding whitespace is trimmed
func ValidateTitle(s string) error {
	if err := validate.Var(strings.TrimSpace(s), "min=3"); err != nil {
		return errors.New("Title must be at least 3 characters long")
	}
	return nil
}

// ValidateContent rejects an empty note
func ValidateContent(s string) error {
	if err := validate.Var(s, "min=1"); err != nil {
		return errors.New("Note cannot be empty")
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
			case "Content":
				return ValidateContent(f.Content)
			}
		}
		return err
	}
	return nil
}
