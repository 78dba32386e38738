package lisp_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/bmatsuo/minilisp/lisp"
	"github.com/bmatsuo/minilisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(t *testing.T, stdout, stderr *bytes.Buffer) *lisp.Interpreter {
	in, err := lisp.New(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithLogger(lisp.NewLogger(stderr, slog.LevelDebug)),
		lisp.WithPrint(true),
	)
	require.NoError(t, err)
	return in
}

func TestLoad(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := newTestInterpreter(t, &stdout, &stderr)

	err := in.LoadString("test.lisp", `
; define and use a function
(set 'sq (lambda (x) (* x x)))
(sq 12)
`)
	require.NoError(t, err)
	assert.Equal(t, "(lambda (x) (* x x))\n144\n", stdout.String())
	assert.Contains(t, stderr.String(), "released evaluation memory")
	assert.Contains(t, stderr.String(), "generation=2")
	assert.Equal(t, uint64(2), in.Memory.Generation())
	assert.Equal(t, 0, in.Memory.Len())
}

func TestLoadErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := newTestInterpreter(t, &stdout, &stderr)

	err := in.LoadBytes("test.lisp", []byte("(car 1) (+ 1 2) (undefined)"))
	if assert.Error(t, err) {
		assert.Equal(t, "test.lisp: 2 of 3 expressions failed", err.Error())
	}
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), `level=ERROR msg="evaluation failed" kind=type-error`)
	assert.Contains(t, stderr.String(), "kind=variable-not-found")

	err = in.LoadString("bad.lisp", "(car '(1)")
	if assert.Error(t, err) {
		assert.True(t, strings.HasPrefix(err.Error(), "bad.lisp: "), err.Error())
	}
}

func TestLoadNoReader(t *testing.T) {
	in, err := lisp.New(lisp.WithStderr(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Error(t, in.LoadString("test.lisp", "1"))
}

func TestExecNoPrint(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := newTestInterpreter(t, &stdout, &stderr)
	in.Print = false

	v, err := parser.ParseValue([]byte("(cons 1 ())"))
	require.NoError(t, err)
	require.NoError(t, in.Exec(v))
	assert.Empty(t, stdout.String())
}

func TestAddPrimitives(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := newTestInterpreter(t, &stdout, &stderr)

	err := in.AddPrimitives(&lisp.Primitive{Name: "car"})
	assert.Error(t, err)

	second := &lisp.Primitive{
		Name: "second",
		Fn: func(in *lisp.Interpreter, env *lisp.Env, args *lisp.Value) (*lisp.Value, error) {
			cells, ok := args.Slice()
			if !ok || len(cells) != 1 {
				return nil, lisp.Errorf(lisp.ErrArity, "second: expected 1 argument")
			}
			v, evalErr := in.Eval(cells[0])
			if evalErr != nil {
				return nil, evalErr
			}
			return v.Cdr.Car, nil
		},
	}
	require.NoError(t, in.AddPrimitives(second))
	require.NoError(t, in.LoadString("test.lisp", "(second '(1 2 3))"))
	assert.Equal(t, "2\n", stdout.String())
}

func TestRegisterDefaultPrimitive(t *testing.T) {
	hasAnswer := func() bool {
		for _, p := range lisp.DefaultPrimitives() {
			if p.Name == "answer" {
				return true
			}
		}
		return false
	}
	if !hasAnswer() {
		lisp.RegisterDefaultPrimitive("answer", func(in *lisp.Interpreter, env *lisp.Env, args *lisp.Value) (*lisp.Value, error) {
			return in.Memory.Int(42), nil
		})
	}
	assert.True(t, hasAnswer())

	var stdout, stderr bytes.Buffer
	in := newTestInterpreter(t, &stdout, &stderr)
	require.NoError(t, in.LoadString("test.lisp", "(answer)"))
	assert.Equal(t, "42\n", stdout.String())
}
