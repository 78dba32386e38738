package lisptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"parameters shadow captures", TestSequence{
			{"(set 'x 8)", "8"},
			{"(set 'double (lambda (x) (+ x x)))", "(lambda (x) (+ x x))"},
			{"(double 7)", "14"},
			{"x", "8"},
		}},
		{"capture at creation", TestSequence{
			{"(set 'y 10)", "10"},
			{"(set 'add-y (lambda (n) (+ n y)))", "(lambda (n) (+ n y))"},
			{"(set 'y 20)", "20"},
			{"(add-y 1)", "11"},
		}},
		{"nested closures", TestSequence{
			{"(((lambda (x) (lambda () (+ x 2))) 3))", "5"},
			{"(set 'adder (lambda (n) (lambda (m) (+ n m))))", "(lambda (n) (lambda (m) (+ n m)))"},
			{"(set 'add-3 (adder 3))", "(lambda (m) (+ n m))"},
			{"(add-3 4)", "7"},
		}},
		{"recursion", TestSequence{
			{"(set 'fact (lambda (n) (cond ((= n 0) 1) (t (* n (fact (- n 1)))))))",
				"(lambda (n) (cond ((= n 0) 1) (t (* n (fact (- n 1))))))"},
			{"(fact 5)", "120"},
			{"(fact 10)", "3628800"},
			{"(set 'len (lambda (l) (cond ((eq l ()) 0) (t (+ 1 (len (cdr l)))))))",
				"(lambda (l) (cond ((eq l ()) 0) (t (+ 1 (len (cdr l))))))"},
			{"(len '(a b c d))", "4"},
		}},
		{"set inside a closure", TestSequence{
			// new bindings made by the body are discarded with the call
			{"((lambda (z) (set 'w z)) 5)", "5"},
			{"w", "unbound symbol: w"},
			// captured variables are copies owned by the closure
			{"(set 'counter 0)", "0"},
			{"(set 'bump (lambda () (set 'counter (+ counter 1))))", "(lambda () (set (quote counter) (+ counter 1)))"},
			{"(bump)", "1"},
			{"(bump)", "1"},
			{"counter", "0"},
			// variables bound after the closure was created are reached
			// through the caller's environment
			{"(set 'inc (lambda () (set 'late (+ late 1))))", "(lambda () (set (quote late) (+ late 1)))"},
			{"(set 'late 1)", "1"},
			{"(inc)", "2"},
			{"late", "2"},
		}},
		{"parameter rebinding", TestSequence{
			{"(set 'g (lambda (p) (cond ((set 'p (cdr p)) p))))", "(lambda (p) (cond ((set (quote p) (cdr p)) p)))"},
			{"(set 'l '(1 2 3))", "(1 2 3)"},
			{"(g l)", "(2 3)"},
			{"l", "(1 2 3)"},
		}},
	}
	RunTestSuite(t, tests)
}
