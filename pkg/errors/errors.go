package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client or gateway error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so clones compare equal to their base.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Local validation failures.
var (
	ErrMissingField     = New("MISSING_FIELD", http.StatusBadRequest, "required field is missing")
	ErrInvalidNumber    = New("INVALID_NUMBER", http.StatusBadRequest, "value must be a positive integer")
	ErrInvalidFormat    = New("INVALID_FORMAT", http.StatusBadRequest, "value has an invalid format")
	ErrInvalidDate      = New("INVALID_DATE", http.StatusBadRequest, "date must use the YYYY-MM-DD format")
	ErrInvalidTime      = New("INVALID_TIME", http.StatusBadRequest, "time must use the HH:MM 24-hour format")
	ErrInvalidSelection = New("INVALID_SELECTION", http.StatusBadRequest, "a valid option must be selected")
	ErrDuplicate        = New("DUPLICATE", http.StatusConflict, "record already exists")
)

// Gateway and controller failures.
var (
	ErrGateway       = New("GATEWAY_ERROR", http.StatusBadGateway, "gateway error")
	ErrTransport     = New("TRANSPORT_ERROR", 0, "gateway request failed")
	ErrInvalidState  = New("INVALID_STATE", 0, "operation not allowed in the current state")
	ErrAborted       = New("ABORTED", 0, "operation cancelled")
	ErrNotFound      = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden     = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized  = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict      = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation    = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal      = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss     = New("CACHE_MISS", 0, "cache miss")
	ErrNotLoggedIn   = New("NOT_LOGGED_IN", http.StatusUnauthorized, "no active session")
	ErrSessionActive = New("SESSION_ACTIVE", 0, "session already started")
)

var validationCodes = map[string]struct{}{
	ErrMissingField.Code:     {},
	ErrInvalidNumber.Code:    {},
	ErrInvalidFormat.Code:    {},
	ErrInvalidDate.Code:      {},
	ErrInvalidTime.Code:      {},
	ErrInvalidSelection.Code: {},
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Invalid clones a validation error bound to a form field.
func Invalid(err *Error, field, message string) *Error {
	clone := Clone(err, message)
	if clone != nil {
		clone.Field = field
	}
	return clone
}

// Gateway builds an error carrying the gateway's own message verbatim.
func Gateway(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Code: ErrGateway.Code, Status: status, Message: message}
}

// IsValidation reports whether err is a local form validation failure.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	_, ok := validationCodes[e.Code]
	return ok
}

