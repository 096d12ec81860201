package dto

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages turns a binding error into field-level messages keyed
// by the JSON field name, so clients see which field failed and why.
func ValidationMessages(err error) map[string]string {
	messages := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["detail"] = "Invalid request body"
		return messages
	}

	for _, fieldError := range validationErrors {
		field := toSnakeCase(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			messages[field] = "This field is required"
		case "email":
			messages[field] = "Enter a valid email address"
		case "eqfield":
			messages[field] = "Passwords do not match"
		case "min":
			messages[field] = fmt.Sprintf("Must be at least %s", fieldError.Param())
		case "max":
			messages[field] = fmt.Sprintf("Must be at most %s", fieldError.Param())
		default:
			messages[field] = "Invalid value"
		}
	}
	return messages
}

func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
