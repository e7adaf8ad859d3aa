package errors

import (
	"net/http"
	"strings"
)

// FieldIssue describes a single field-level validation violation.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is an AppError carrying the full list of field violations.
// Structural validation always runs before any store access, and callers get
// every violation at once rather than just the first.
type ValidationError struct {
	issues []FieldIssue
}

// NewValidationError creates a validation error from the collected issues.
func NewValidationError(issues []FieldIssue) *ValidationError {
	return &ValidationError{issues: issues}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.issues))
	for _, issue := range e.issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Validation failed"
}

// Details returns the full list of field issues
func (e *ValidationError) Details() any {
	return e.issues
}

// Issues exposes the field violations for callers that need them typed.
func (e *ValidationError) Issues() []FieldIssue {
	return e.issues
}
