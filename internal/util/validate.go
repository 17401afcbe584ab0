package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FormatValidationErrors turns validator output into one readable line.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	var msg string
	for i, e := range validationErrors {
		if i > 0 {
			msg += "; "
		}
		switch e.Tag() {
		case "required":
			msg += e.Field() + " is required"
		case "email":
			msg += e.Field() + " must be a valid email"
		case "oneof":
			msg += e.Field() + " must be one of: " + e.Param()
		case "min":
			msg += e.Field() + " must be at least " + e.Param() + " characters"
		case "max":
			msg += e.Field() + " must be at most " + e.Param() + " characters"
		default:
			msg += e.Field() + " is invalid"
		}
	}
	return msg
}
