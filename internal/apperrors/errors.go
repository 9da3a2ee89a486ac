package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
// Message is safe to show to users; Err is logged, never rendered.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation reports a malformed or missing field. It is raised before any
// external call or persistence.
func Validation(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Upstream wraps a failed third-party call (AI provider, image storage).
// The provider error is kept for logging only.
func Upstream(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "internal server error", err)
}

func codeOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}

func IsValidation(err error) bool { return codeOf(err) == http.StatusBadRequest }

func IsNotFound(err error) bool { return codeOf(err) == http.StatusNotFound }

func IsUpstream(err error) bool { return codeOf(err) == http.StatusBadGateway }

// From returns err as *Error, wrapping unknown errors as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
