package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}

	// ErrInvalidCredentials is returned on a failed staff login
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}

	// ErrCafeClosed is returned when an ordering operation is attempted
	// outside the configured day and evening serving windows
	ErrCafeClosed = &AppError{Code: http.StatusForbidden, Message: "Cafe is closed"}

	// ErrEmptyOrder is returned when a bill is requested for an empty cart
	ErrEmptyOrder = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cannot generate a bill for an empty order"}

	// ErrSessionNotFound is returned for an unknown or expired order session
	ErrSessionNotFound = &AppError{Code: http.StatusNotFound, Message: "Order session not found"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewUnknownItemError reports a cart mutation naming an item that does not
// exist in the active catalog. The engine never silently drops such items.
func NewUnknownItemError(item string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Item %q is not on the menu", item),
	}
}

// NewCatalogLoadError wraps a failure to read or parse a menu file.
// Fatal for order-taking; callers may still offer browse-only access.
func NewCatalogLoadError(file string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: fmt.Sprintf("Menu file %q could not be loaded", file),
		cause:   cause,
	}
}

// NewConfigLoadError wraps an invalid operating-hours or timezone
// configuration. No session is possible; the caller should abort startup.
func NewConfigLoadError(detail string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Invalid configuration: " + detail,
		cause:   cause,
	}
}

// NewInvalidTransitionError reports an order-session operation that is not
// legal in the session's current state.
func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("Cannot move order from %s to %s", from, to),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
