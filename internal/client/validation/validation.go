// Package validation enforces the client-side form contracts before any
// service call is made. Each Validate function is pure: it maps form
// fields to user-facing messages and returns an empty map when the form
// is acceptable.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Matches local@domain.tld, ASCII only, case-insensitive.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// SignUpForm is the sign-up page input.
type SignUpForm struct {
	Name     string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,basic_email"`
	Password string `validate:"required,min=8,max=32"`
}

// SignInForm is the login page input.
type SignInForm struct {
	Email    string `validate:"required,basic_email"`
	Password string `validate:"required,min=8,max=32"`
}

// NoteForm is the note create/edit input. Content is optional.
type NoteForm struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"omitempty,max=5000"`
}

// messages maps struct field and failed rule to the message shown next
// to the field, mirroring the web forms.
var messages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"min":      "Name must be at least 3 characters",
		"max":      "Name must be at most 32 characters",
	},
	"Email": {
		"required":    "Email is required",
		"basic_email": "Invalid email address",
	},
	"Password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
		"max":      "Password must be at most 32 characters",
	},
	"Title": {
		"required": "Title is required",
		"max":      "Title must be at most 200 characters",
	},
	"Content": {
		"max": "Content must be at most 5000 characters",
	},
}

// fieldKeys maps struct fields to the lowercase keys callers render by.
var fieldKeys = map[string]string{
	"Name":     "name",
	"Email":    "email",
	"Password": "password",
	"Title":    "title",
	"Content":  "content",
}

func ValidateSignUp(f SignUpForm) map[string]string {
	return run(f)
}

func ValidateSignIn(f SignInForm) map[string]string {
	return run(f)
}

func ValidateNote(f NoteForm) map[string]string {
	return run(f)
}

func run(form any) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs
	}
	for _, fe := range fieldErrs {
		key, ok := fieldKeys[fe.StructField()]
		if !ok {
			key = fe.StructField()
		}
		if _, seen := errs[key]; seen {
			continue
		}
		if msg, ok := messages[fe.StructField()][fe.Tag()]; ok {
			errs[key] = msg
		} else {
			errs[key] = "Invalid value"
		}
	}
	return errs
}
