package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation   Code = "validation"
	CodeConflict     Code = "conflict"
	CodeNotFound     Code = "not_found"
	CodeNotModified  Code = "not_modified"
	CodeUnauthorized Code = "unauthorized"
	CodeStorage      Code = "storage"
)

// Error is the application error surfaced across package boundaries.
// Field carries field-level detail for validation failures; Err keeps
// the underlying cause for logging but is never serialized to callers.
type Error struct {
	Code    Code
	Message string
	Field   string
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

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a field-scoped validation error.
func Validationf(field, format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...), Field: field}
}

// Storage wraps an underlying persistence failure. The cause is kept
// for logs only; callers see the generic message.
func Storage(message string, err error) *Error {
	return &Error{Code: CodeStorage, Message: message, Err: err}
}

// NotModified signals a conditional fetch whose fingerprint still
// matches; it is a control-flow outcome, not a failure.
var NotModified = &Error{Code: CodeNotModified, Message: "not modified"}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStorage
}

func Is(err error, code Code) bool {
	return GetCode(err) == code
}
