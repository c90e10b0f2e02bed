package ast

import (
	"errors"
	"fmt"
)

// ErrorKind labels the recoverable failure conditions the toolkit reports.
type ErrorKind string

const (
	ErrInvalidIdentifier        ErrorKind = "InvalidIdentifier"
	ErrDuplicateArgumentName    ErrorKind = "DuplicateArgumentName"
	ErrNotACall                 ErrorKind = "NotACall"
	ErrIndexOutOfRange          ErrorKind = "IndexOutOfRange"
	ErrNameNotFound             ErrorKind = "NameNotFound"
	ErrMalformedVariadicBinding ErrorKind = "MalformedVariadicBinding"
	ErrInvalidReplacementType   ErrorKind = "InvalidReplacementType"
	ErrMaxDepthExceeded         ErrorKind = "MaxDepthExceeded"
)

// Error is the structured error value returned across the toolkit. Path is
// populated by traversals that know the offending node's position; it is
// empty for constructor and accessor failures.
type Error struct {
	Kind    ErrorKind
	Message string
	Path    Path
}

func (e *Error) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewError builds a structured error for the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return newError(kind, format, args...)
}

// ErrorAt attaches a node path to a structured error, wrapping foreign
// errors as needed.
func ErrorAt(path Path, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		if len(e.Path) > 0 {
			return e
		}
		return &Error{Kind: e.Kind, Message: e.Message, Path: path}
	}
	return &Error{Kind: ErrorKind("Unknown"), Message: err.Error(), Path: path}
}

// KindOf reports the structured kind of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is a structured error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
