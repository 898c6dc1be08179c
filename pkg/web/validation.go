package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GetErrorMsg renders a single field validation error into a client message.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field must be at least " + fe.Param()
	case "max":
		return " field must not exceed " + fe.Param()
	case "datetime":
		return " field must match the format " + fe.Param()
	default:
		return fmt.Sprintf(" field is invalid (%s)", fe.Tag())
	}
}

// BindingError converts a gin binding err into a response envelope,
// naming the first offending field when the err carries validation details.
func BindingError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return Response{OK: false, Message: field.Field() + GetErrorMsg(field)}
	}

	return Response{OK: false, Message: err.Error()}
}
