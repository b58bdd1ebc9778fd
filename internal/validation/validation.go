// Package validation holds the field-level rules for contact submissions.
// The client form enforces its own copy of these rules for UX; this package
// is the server-side authority.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts the simple local@domain.tld shape: no whitespace, no
// second "@", at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateName returns a user-facing message for the first violated rule,
// or "" when the name is acceptable. Length rules apply to the trimmed value.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if err := validate.Var(trimmed, "required,min=2,max=100"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "required":
				return "Name is required"
			case "min":
				return "Name must be at least 2 characters"
			case "max":
				return "Name must be less than 100 characters"
			}
		}
		return "Name is invalid"
	}
	return ""
}

// ValidateEmail returns a user-facing message for the first violated rule,
// or "" when the email is acceptable. The shape check runs on the trimmed
// value; the length cap applies to the raw input, matching the column width.
func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if err := validate.Var(trimmed, "required,contact_email"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	}
	if len(email) > 100 {
		return "Email must be less than 100 characters"
	}
	return ""
}

// NormalizeName trims surrounding whitespace.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeEmail trims surrounding whitespace and lowercases, so that
// "A@B.com" and " a@b.com " refer to the same address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
