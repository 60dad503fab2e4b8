// internal/common/validation/validation.go
package validation

import (
	"fmt"
	"strings"
)

// ValidationError is one field-scoped validation failure. Errors are
// collected, never thrown; a request yields the full list at once.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes shared by all validators.
const (
	CodeMissingRequired = "MISSING_REQUIRED"
	CodeInvalidType     = "INVALID_TYPE"
	CodeInvalidEnum     = "INVALID_ENUM_VALUE"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeInvalidShape    = "INVALID_SHAPE"
)

type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewResult builds a Result from a collected error list.
func NewResult(errs []ValidationError) *Result {
	return &Result{Valid: len(errs) == 0, Errors: errs}
}

// GetErrorMessages returns a simple list of "field: message" strings.
func (r *Result) GetErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for a specific field.
func (r *Result) HasErrors(field string) bool {
	for _, err := range r.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a field, including nested paths.
func (r *Result) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range r.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") || strings.HasPrefix(err.Field, field+"[") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// Enum checks value against the declared literals. Returns nil when valid.
func Enum(field, value string, allowed ...string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("value must be one of %v", allowed),
	}
}

// IntRange checks an integer bound (inclusive). Returns nil when valid.
func IntRange(field string, value, min, max int) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("value must be between %d and %d", min, max),
		}
	}
	return nil
}

// IntOneOf checks an integer against a closed set. Returns nil when valid.
func IntOneOf(field string, value int, allowed ...int) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("value must be one of %v", allowed),
	}
}
