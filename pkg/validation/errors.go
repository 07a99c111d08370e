package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to the labels shown to visitors
var FieldLabels = map[string]string{
	"name":      "Name",
	"firstName": "First name",
	"lastName":  "Last name",
	"email":     "Email",
	"subject":   "Subject",
	"message":   "Message",
}

// FieldErrors converts validator.ValidationErrors into one message per field.
// The first failing rule of a field wins.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		fields[e.Field()] = formatSingleError(e)
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "single_line":
		return fmt.Sprintf("%s must not contain line breaks", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
