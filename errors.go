package whisper

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an operation failed. It is a closed set: no
// other value is ever produced by this package.
type ErrorKind int

const (
	IoError ErrorKind = iota
	ParseError
	InvalidTimeRange
	InvalidTimeStart
	InvalidTimeEnd
	NoArchiveAvailable
	CorruptDatabase
)

func (k ErrorKind) String() string {
	switch k {
	case IoError:
		return "io error"
	case ParseError:
		return "parse error"
	case InvalidTimeRange:
		return "invalid time range"
	case InvalidTimeStart:
		return "invalid time start"
	case InvalidTimeEnd:
		return "invalid time end"
	case NoArchiveAvailable:
		return "no archive available"
	case CorruptDatabase:
		return "corrupt database"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every exported function in this
// package. Kind identifies which of the closed set of failure modes
// occurred; Field, when non-empty, names the record field a Parser
// failure occurred on. Cause, when non-nil, wraps an underlying error
// (an I/O error, or ErrShortBuffer for truncation).
type Error struct {
	Kind  ErrorKind
	Field string
	msg   string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: field %q: %v", e.Kind, e.Field, e.unwrapOrMsg())
	case e.msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) unwrapOrMsg() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &whisper.Error{Kind: whisper.NoArchiveAvailable})
// (the shape sentinelByKind below builds), or compare two *Error values
// directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrShortBuffer is wrapped by ParseError failures caused by truncated
// input, mirroring io.ErrShortBuffer's role in the teacher's decoders.
var ErrShortBuffer = errors.New("whisper: short buffer")

func newIoError(cause error) *Error {
	return &Error{Kind: IoError, Cause: cause}
}

func newParseError(field string, cause error) *Error {
	return &Error{Kind: ParseError, Field: field, Cause: cause}
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// sentinelByKind returns a bare *Error carrying only a Kind, suitable as
// the target of errors.Is when a caller only cares which kind occurred.
func sentinelByKind(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}
