// Package lisptest runs sequences of lisp expressions against an
// interpreter the same way the REPL does: each expression is evaluated, its
// result printed and the evaluation memory released before the next one.
package lisptest

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bmatsuo/minilisp/lisp"
	"github.com/bmatsuo/minilisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Interpreter.  A failed expression has the error
// message as its result.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewInterpreter returns an interpreter that prints results to stdout and
// discards its log.
func NewInterpreter(stdout io.Writer, configs ...lisp.Config) (*lisp.Interpreter, error) {
	base := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithPrint(true),
		lisp.WithLogger(lisp.NewLogger(io.Discard, slog.LevelError)),
	}
	return lisp.New(append(base, configs...)...)
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters.
// After every expression the root environment is checked for values that
// were released with the evaluation memory.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var buf bytes.Buffer
		in, err := NewInterpreter(&buf)
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			v, err := parser.ParseValue([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			buf.Reset()
			var result string
			err = in.Exec(v)
			if err != nil {
				result = err.Error()
			} else {
				result = strings.TrimSuffix(buf.String(), "\n")
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			for _, msg := range ReleasedReachable(in.Env) {
				t.Errorf("test %d %q: expr %d: %s", i, test.Name, j, msg)
			}
		}
	}
}

// ReleasedReachable walks everything reachable from env and describes each
// released node it finds.  The result is empty when env is safe to use.
func ReleasedReachable(env *lisp.Env) []string {
	var w walker
	w.env(env, "env")
	return w.found
}

type walker struct {
	found []string
}

func (w *walker) env(env *lisp.Env, path string) {
	i := 0
	for b := env.Front(); b != nil; b = b.Next() {
		bpath := fmt.Sprintf("%s[%d]", path, i)
		if b.Released() {
			w.found = append(w.found, fmt.Sprintf("%s: released binding", bpath))
			return
		}
		name := "?"
		if b.Name != nil {
			name = b.Name.Name
		}
		bpath = fmt.Sprintf("%s(%s)", bpath, name)
		w.value(b.Name, bpath+".name")
		w.value(b.Value, bpath+".value")
		i++
	}
}

func (w *walker) value(v *lisp.Value, path string) {
	for ; v != nil; v = v.Cdr {
		if v.Released() {
			w.found = append(w.found, fmt.Sprintf("%s: released value", path))
			return
		}
		if v.Closure != nil {
			w.value(v.Closure.Params, path+".params")
			w.value(v.Closure.Body, path+".body")
			w.env(&v.Closure.Captured, path+".captured")
		}
		w.value(v.Car, path+".car")
		path += ".cdr"
	}
}
