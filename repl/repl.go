package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatsuo/minilisp/lisp"
	"github.com/bmatsuo/minilisp/parser"
	"github.com/chzyer/readline"
)

// Option configures RunRepl.
type Option func(*config)

type config struct {
	historyFile string
	lispConfigs []lisp.Config
}

// WithHistoryFile makes the repl persist input lines to path.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// WithLisp passes configs through to the interpreter created by RunRepl.
func WithLisp(configs ...lisp.Config) Option {
	return func(c *config) {
		c.lispConfigs = append(c.lispConfigs, configs...)
	}
}

// RunRepl runs a simple repl.  Each complete expression read is evaluated as
// its own turn and its value is printed.  Input continues on following lines
// while an expression is incomplete.
func RunRepl(prompt string, opts ...Option) error {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	configs := append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithPrint(true),
	}, c.lispConfigs...)
	in, err := lisp.New(configs...)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: c.historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		if parser.Incomplete(line) {
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		eval(in, line)
	}
	if !errors.Is(err, io.EOF) {
		return err
	}
	errln("done")
	return nil
}

// eval executes every expression in line.  Evaluation errors have already
// been logged by the interpreter when Exec returns them.
func eval(in *lisp.Interpreter, line []byte) {
	exprs, _, err := parser.ParseValues(line)
	if err != nil {
		errlnf("syntax error: %v", err)
		return
	}
	for _, expr := range exprs {
		_ = in.Exec(expr)
	}
}

func errlnf(format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		errf(format, v...)
		return
	}
	errf(format+"\n", v...)
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
