// Package serrors provides semantic errors: every error the application
// surfaces carries a Kind sentinel (NOT_FOUND, CONFLICT, ...) that callers
// match with errors.Is and the API layer maps onto HTTP statuses.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel marking a semantic error category. Kinds are comparable
// values created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a semantic error kind with the given stable name. The name
// doubles as the machine-readable code in API payloads.
func NewKind(name string) Kind { return kind{s: name} }

// The kinds used across the application.
var (
	// ErrNotFound marks lookups of entities that do not exist or are deleted.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized marks missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden marks authenticated callers lacking permission.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest marks invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict marks state conflicts, such as duplicate names or writes of
	// derived values.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal marks unexpected failures.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout marks operations that ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable marks temporarily unusable dependencies.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited marks throttled calls.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error is a semantic error: a Kind sentinel plus an optional message and an
// optional wrapped cause. errors.Is and errors.As match against both the kind
// and the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an Error of the given kind with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an Error of the given kind that wraps a cause, with a
// formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an Error carrying nothing but the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "<msg>: <cause>", whichever parts are present, falling back
// to the kind name.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap exposes the wrapped cause to the errors package.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As matches target against the kind sentinel and the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }
