package request

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Details flattens an ozzo validation error into "field: message" strings
// in stable field order, for error payloads carrying a detail list.
func Details(err error) []string {
	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %v", field, fieldErrs[field]))
	}

	return details
}
