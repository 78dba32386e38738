package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures an Interpreter.
type Config func(in *Interpreter) error

// WithStdout returns a Config that makes the interpreter print results to w
// instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(in *Interpreter) error {
		in.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes the default logger write to w
// instead of os.Stderr.  WithStderr has no effect when WithLogger is also
// used.
func WithStderr(w io.Writer) Config {
	return func(in *Interpreter) error {
		in.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that makes the interpreter report evaluation
// errors to logger.
func WithLogger(logger *slog.Logger) Config {
	return func(in *Interpreter) error {
		in.Logger = logger
		return nil
	}
}

// WithReader returns a Config that makes the interpreter use r to parse
// source streams.  There is no default Reader.
func WithReader(r Reader) Config {
	return func(in *Interpreter) error {
		in.Reader = r
		return nil
	}
}

// WithPrint returns a Config that controls whether the result of each
// top-level expression is printed.
func WithPrint(print bool) Config {
	return func(in *Interpreter) error {
		in.Print = print
		return nil
	}
}
