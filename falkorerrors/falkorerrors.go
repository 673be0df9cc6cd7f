// Package falkorerrors provides the client's error type: a closed
// ErrorKind plus a traceback that accumulates one entry per call-stack
// level a caller chooses to Wrap at, in the style of the teacher repo's
// yaerrors package.
package falkorerrors

import (
	"fmt"
	"strings"

	"github.com/falkordb/falkordb-go/falkorlog"
)

type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log falkorlog.Logger) Error
	Code() ErrorKind
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type falkorError struct {
	code      ErrorKind
	cause     error
	traceback string
}

// FromError wraps cause with the given kind and an initial context message.
func FromError(code ErrorKind, cause error, wrap string) Error {
	return &falkorError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog behaves like FromError but also logs the message at
// error level through log.
func FromErrorWithLog(code ErrorKind, cause error, wrap string, log falkorlog.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &falkorError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString builds an Error from a plain message with no underlying cause.
func FromString(code ErrorKind, msg string) Error {
	return &falkorError{
		code:      code,
		cause:     fmt.Errorf("%s", msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog behaves like FromString but also logs the message at
// error level through log.
func FromStringWithLog(code ErrorKind, msg string, log falkorlog.Logger) Error {
	log.Error(msg)

	return &falkorError{
		code:      code,
		cause:     fmt.Errorf("%s", msg), //nolint:err113
		traceback: msg,
	}
}

func (e *falkorError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%s%s%s", e.code, codeSeparate, e.traceback)
}

func (e *falkorError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

func (e *falkorError) UnwrapLastError() string {
	safetyCheck(&e)

	end := strings.Index(e.traceback, errorSeparate)
	if end == -1 {
		return e.traceback
	}

	return e.traceback[:end]
}

// Wrap prepends msg to the traceback. Call this at every level that
// returns the error upward so the final message reads outside-in.
func (e *falkorError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = fmt.Sprintf("%s%s%s", msg, errorSeparate, e.traceback)

	return e
}

func (e *falkorError) WrapWithLog(msg string, log falkorlog.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

func (e *falkorError) Code() ErrorKind {
	safetyCheck(&e)

	return e.code
}

func safetyCheck(err **falkorError) {
	if *err == nil {
		*err = &falkorError{
			code:      UnknownType,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
