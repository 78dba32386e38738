package lisp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	lerr := Errorf(ErrVariableNotFound, "unbound symbol: %s", "x")
	assert.Equal(t, "unbound symbol: x", lerr.Error())
	assert.Equal(t, ErrVariableNotFound, KindOf(lerr))

	lerr = berrf("car", ErrType, "argument is not a list: %v", TypeInt)
	assert.Equal(t, "car: argument is not a list: integer", lerr.Error())

	wrapped := fmt.Errorf("line 1: %w", lerr)
	assert.Equal(t, ErrType, KindOf(wrapped))
	assert.Equal(t, ErrInternal, KindOf(fmt.Errorf("other")))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "arity-error", ErrArity.String())
	assert.Equal(t, "internal-error", ErrorKind(100).String())
}
