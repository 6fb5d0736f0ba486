// Package ierr defines the error taxonomy shared by every core package.
// It lives under internal/ so both the internal pixel/convert/
// resample/codec packages and the root imagetorque package can build and
// inspect these errors without an import cycle; the root package re-exports
// the types under its own names.
package ierr

import "errors"

// Kind categorises what went wrong: a bad argument, a shape mismatch
// between buffers, an unsupported format, malformed data, an I/O
// failure, or use of a disposed buffer.
type Kind int

const (
	InvalidArgument Kind = iota
	ShapeMismatch
	UnsupportedFormat
	InvalidData
	IoFailure
	Disposed
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case ShapeMismatch:
		return "ShapeMismatch"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case InvalidData:
		return "InvalidData"
	case IoFailure:
		return "IoFailure"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// Error is the sum type every core failure surfaces as: a Kind plus the
// operation that failed and, optionally, an underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Op != "" {
		s += ": " + e.Op
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an Error around an existing cause.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether err is an *Error of the given kind, anywhere in its
// causal chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
