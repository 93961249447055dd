// Package errors provides application-level error types and utilities.
// Every failure mode exposed over HTTP is a tagged AppError so the
// error-to-status mapping is defined once and reused everywhere.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeConflict           ErrorType = "conflict"
	ErrorTypeUnauthenticated    ErrorType = "unauthenticated"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeConsistency        ErrorType = "consistency_error"
	ErrorTypeInternal           ErrorType = "internal_error"
	ErrorTypeDelivery           ErrorType = "delivery_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: firstDetail(details),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: firstDetail(details),
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
		Code:    http.StatusConflict,
		Details: firstDetail(details),
	}
}

// NewUnauthenticatedError creates an error for requests with no usable session.
func NewUnauthenticatedError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthenticated,
		Message: message,
		Code:    http.StatusUnauthorized,
		Details: firstDetail(details),
	}
}

// NewSessionExpiredError creates an error for a session past its expiry.
// Distinct from plain unauthenticated so clients can prompt a re-login
// instead of treating the cookie as a bad credential.
func NewSessionExpiredError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeSessionExpired,
		Message: message,
		Code:    http.StatusUnauthorized,
		Details: firstDetail(details),
	}
}

// NewInvalidCredentialsError creates an error for a failed login. The
// message must not distinguish unknown user from wrong password.
func NewInvalidCredentialsError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: message,
		Code:    http.StatusUnauthorized,
		Details: firstDetail(details),
	}
}

// NewConsistencyError creates an error for a mutation that affected an
// unexpected number of rows. The write "succeeded" mechanically, so this
// signals a race or logic bug rather than ordinary user error.
func NewConsistencyError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeConsistency,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: firstDetail(details),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: firstDetail(details),
	}
}

// NewDeliveryError creates an error for a mail-relay failure. Never
// surfaced to HTTP callers; the notification worker logs and retries.
func NewDeliveryError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeDelivery,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: firstDetail(details),
	}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err carries the given error type.
func IsType(err error, t ErrorType) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Type == t
	}
	return false
}

func IsNotFound(err error) bool       { return IsType(err, ErrorTypeNotFound) }
func IsValidation(err error) bool     { return IsType(err, ErrorTypeValidation) }
func IsSessionExpired(err error) bool { return IsType(err, ErrorTypeSessionExpired) }
func IsConsistency(err error) bool    { return IsType(err, ErrorTypeConsistency) }

// CheckExactlyOneRow converts an affected-row count into a consistency
// error unless exactly one row changed. Deliberate paranoia against
// silent data corruption on single-row mutations.
func CheckExactlyOneRow(rowsAffected int64, operation string) error {
	switch {
	case rowsAffected < 1:
		return NewConsistencyError(fmt.Sprintf("%s affected no rows", operation))
	case rowsAffected > 1:
		return NewConsistencyError(fmt.Sprintf("%s affected %d rows, expected exactly one", operation, rowsAffected))
	default:
		return nil
	}
}

func firstDetail(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
