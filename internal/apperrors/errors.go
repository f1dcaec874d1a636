package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation    Kind = "VALIDATION_ERROR"
	KindNotFound      Kind = "NOT_FOUND"
	KindCapacity      Kind = "CAPACITY_EXCEEDED"
	KindDuplicateJoin Kind = "DUPLICATE_JOIN"
	KindInvalidState  Kind = "INVALID_STATE"
	KindNoDefault     Kind = "NO_DEFAULT_RIDER"
	KindDuplicateKey  Kind = "DUPLICATE_KEY"
	KindStore         Kind = "STORE_ERROR"
)

// Error is the single error type crossing the service boundary. Handlers map
// Kind to a status code; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
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

// Is matches on Kind so callers can compare against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) StatusCode() int {
	return StatusFor(e.Kind)
}

var (
	ErrValidation    = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrCapacity      = &Error{Kind: KindCapacity, Message: "not enough seats available"}
	ErrDuplicateJoin = &Error{Kind: KindDuplicateJoin, Message: "phone number already joined this ride"}
	ErrInvalidState  = &Error{Kind: KindInvalidState, Message: "invalid state transition"}
	ErrNoDefault     = &Error{Kind: KindNoDefault, Message: "no default delivery rider configured"}
	ErrDuplicateKey  = &Error{Kind: KindDuplicateKey, Message: "duplicate key"}
	ErrStore         = &Error{Kind: KindStore, Message: "store failure"}
)

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Capacity(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCapacity, Message: fmt.Sprintf(format, args...)}
}

func DuplicateJoin(phone string) *Error {
	return &Error{Kind: KindDuplicateJoin, Message: fmt.Sprintf("phone %s has already joined this ride", phone)}
}

func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func NoDefaultRider() *Error {
	return &Error{Kind: KindNoDefault, Message: ErrNoDefault.Message}
}

func DuplicateKey(message string, err error) *Error {
	return &Error{Kind: KindDuplicateKey, Message: message, Err: err}
}

func Store(operation string, err error) *Error {
	return &Error{Kind: KindStore, Message: "failed to " + operation, Err: err}
}

// KindOf returns the Kind of err, or KindStore for anything unclassified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindCapacity, KindDuplicateJoin, KindInvalidState, KindNoDefault:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateKey:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
