package lisp

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Interpreter owns a root environment and the Memory arena used to evaluate
// top-level expressions in that environment.  An Interpreter must only be
// used by one goroutine at a time.
type Interpreter struct {
	Env    *Env
	Memory *Memory
	Reader Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Print  bool
}

// New returns an Interpreter with the default primitives bound in its root
// environment.
func New(configs ...Config) (*Interpreter, error) {
	in := &Interpreter{
		Env:    NewEnv(),
		Memory: NewMemory(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, config := range configs {
		err := config(in)
		if err != nil {
			return nil, err
		}
	}
	if in.Logger == nil {
		in.Logger = NewLogger(in.Stderr, slog.LevelInfo)
	}
	err := in.AddPrimitives()
	if err != nil {
		return nil, err
	}
	return in, nil
}

// NewLogger returns a text logger that omits timestamps, suitable for
// interactive sessions.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// AddPrimitives binds the given primitives to their names in the root
// environment.  When called with no arguments AddPrimitives adds the
// DefaultPrimitives.
func (in *Interpreter) AddPrimitives(prims ...*Primitive) error {
	if len(prims) == 0 {
		prims = DefaultPrimitives()
	}
	for _, p := range prims {
		if _, ok := in.Env.Lookup(p.Name); ok {
			return fmt.Errorf("symbol already defined: %s", p.Name)
		}
		in.Env.Put(Atom(p.Name), Prim(p))
	}
	return nil
}

// Eval evaluates v in the root environment.  Values allocated during
// evaluation are tracked by in.Memory and remain valid until the next call to
// in.Memory.ReleaseAll.
func (in *Interpreter) Eval(v *Value) (*Value, error) {
	return in.eval(in.Env, v)
}

// Exec runs one turn of the interpreter.  The expression is evaluated, its
// result printed if printing is enabled, and then every value tracked during
// the turn is released.  Evaluation errors are logged and returned.  The
// expression is owned by the turn and is released along with everything
// else, so it must not be used again.
func (in *Interpreter) Exec(expr *Value) error {
	in.Memory.TrackRecursive(expr)
	v, err := in.Eval(expr)
	if err != nil {
		in.Logger.Error("evaluation failed",
			"kind", KindOf(err),
			"err", err)
	} else if in.Print {
		fmt.Fprintln(in.Stdout, v)
	}
	n := in.Memory.ReleaseAll()
	in.Logger.Debug("released evaluation memory",
		"tracked", n,
		"generation", in.Memory.Generation())
	return err
}

// Load reads source from r and executes each top-level expression in turn.
// Evaluation errors do not stop the load.  Load returns an error if the
// source cannot be parsed or if any expression failed.
func (in *Interpreter) Load(name string, r io.Reader) error {
	if in.Reader == nil {
		return fmt.Errorf("no reader configured")
	}
	exprs, err := in.Reader.Read(name, r)
	if err != nil {
		return err
	}
	nfail := 0
	for _, expr := range exprs {
		if in.Exec(expr) != nil {
			nfail++
		}
	}
	if nfail > 0 {
		return fmt.Errorf("%s: %d of %d expressions failed", name, nfail, len(exprs))
	}
	return nil
}

// LoadString executes the expressions in source.  See Load.
func (in *Interpreter) LoadString(name, source string) error {
	return in.Load(name, strings.NewReader(source))
}

// LoadBytes executes the expressions in source.  See Load.
func (in *Interpreter) LoadBytes(name string, source []byte) error {
	return in.Load(name, bytes.NewReader(source))
}
