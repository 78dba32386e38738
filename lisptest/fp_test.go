package lisptest

import "testing"

func TestPartialApplication(t *testing.T) {
	tests := TestSuite{
		{"partial evaluation", TestSequence{
			{"(set 'f (lambda (x y) (+ x y)))", "(lambda (x y) (+ x y))"},
			{"(set 'add-5 (f 5))", "(lambda (y) (+ x y))"},
			{"(add-5 100)", "105"},
			{"(add-5 1)", "6"},
			{"(((lambda (x y) (+ x y)) 1) 2)", "3"},
			{"(f 1 2 3)", "closure expects 2 arguments (got 3)"},
			{"(add-5 1 2)", "closure expects 1 argument (got 2)"},
		}},
		{"curried application", TestSequence{
			{"(set 'g (lambda (a b c) (cons a (cons b (cons c ())))))", "(lambda (a b c) (cons a (cons b (cons c ()))))"},
			{"(((g 1) 2) 3)", "(1 2 3)"},
			{"((g 1 2) 3)", "(1 2 3)"},
			{"((g 1) 2 3)", "(1 2 3)"},
			{"(set 'h (g 'x))", "(lambda (b c) (cons a (cons b (cons c ()))))"},
			{"(set 'a 'ignored)", "ignored"},
			{"(h 'y 'z)", "(x y z)"},
		}},
		{"closures as arguments", TestSequence{
			{"(set 'twice (lambda (fn x) (fn (fn x))))", "(lambda (fn x) (fn (fn x)))"},
			{"(twice (lambda (n) (* n 3)) 2)", "18"},
			{"(set 'twice-cdr (twice cdr))", "(lambda (x) (fn (fn x)))"},
			{"(twice-cdr '(1 2 3 4))", "(3 4)"},
		}},
	}
	RunTestSuite(t, tests)
}
