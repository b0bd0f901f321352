package iot

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("iot: not found")
	ErrConflict = errors.New("iot: conflict")
	ErrInvalid  = errors.New("iot: invalid input")
)

// Error carries a caller facing message and one of the sentinel kinds above,
// test the kind with errors.Is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func notFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) error {
	return &Error{kind: ErrInvalid, msg: fmt.Sprintf(format, args...)}
}
