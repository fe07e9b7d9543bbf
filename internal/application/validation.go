package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts flag and argument names to readable words
// (e.g., "first_dir" -> "first directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"first_dir":  "first directory",
		"second_dir": "second directory",
		"copy_dir":   "copy directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateArgCount checks the number of positional arguments
func ValidateArgCount(args []string, names ...string) error {
	if len(args) < len(names) {
		missing := names[len(args):]
		return &ValidationError{
			Field:   "arguments",
			Message: fmt.Sprintf("missing required argument(s): %s", strings.Join(missing, ", ")),
		}
	}
	if len(args) > len(names) {
		return &ValidationError{
			Field:   "arguments",
			Message: fmt.Sprintf("expected %d arguments, got %d", len(names), len(args)),
		}
	}
	return nil
}
