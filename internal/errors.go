package internal

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeAuthRejected ErrorType = "AUTHENTICATION_REJECTED"
	ErrorTypeValidation   ErrorType = "VALIDATION_REJECTED"
	ErrorTypeTransport    ErrorType = "TRANSPORT_FAILURE"
	ErrorTypeRemote       ErrorType = "REMOTE_ERROR"
)

// AppError is the single error shape crossing package boundaries. No error
// kind is fatal to the running client: authentication rejections resolve to a
// session reset, everything else to a transient notice.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewAuthRejectedError() *AppError {
	return &AppError{
		Type:       ErrorTypeAuthRejected,
		Message:    "Your session has expired. Please log in again.",
		StatusCode: http.StatusUnauthorized,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewTransportError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Cause:   cause,
	}
}

func NewRemoteError(message string, statusCode int) *AppError {
	return &AppError{
		Type:       ErrorTypeRemote,
		Message:    message,
		StatusCode: statusCode,
	}
}

// IsAuthRejected reports whether err came from a 401. Feature code uses this
// only to stay silent: the session interceptor owns the user-facing handling.
func IsAuthRejected(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeAuthRejected
	}
	return false
}

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
