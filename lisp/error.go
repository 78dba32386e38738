package lisp

import (
	"errors"
	"fmt"
)

// ErrorKind classifies evaluation errors.
type ErrorKind int

// Possible ErrorKind values
const (
	ErrInternal ErrorKind = iota
	ErrVariableNotFound
	ErrArity
	ErrType
	ErrInvalidParameter
	ErrNotApplicable
	ErrUnsupported
	ErrDivideByZero
	ErrReleased
)

var errorKindStrings = []string{
	ErrInternal:         "internal-error",
	ErrVariableNotFound: "variable-not-found",
	ErrArity:            "arity-error",
	ErrType:             "type-error",
	ErrInvalidParameter: "invalid-parameter",
	ErrNotApplicable:    "not-applicable",
	ErrUnsupported:      "unsupported",
	ErrDivideByZero:     "division-by-zero",
	ErrReleased:         "released-value",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrInternal]
	}
	return errorKindStrings[k]
}

// Error is an evaluation error.  Op names the primitive which failed, if any.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return e.Op + ": " + e.Msg
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// berrf returns an error raised by the named primitive.
func berrf(op string, kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Msg:  fmt.Sprintf(format, v...),
	}
}

// KindOf returns the ErrorKind of err.  Errors which did not originate from
// the evaluator are ErrInternal.
func KindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return ErrInternal
}
