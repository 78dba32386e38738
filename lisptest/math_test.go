package lisptest

import "testing"

func TestArithmetic(t *testing.T) {
	tests := TestSuite{
		{"integers", TestSequence{
			{"(+ 1 2)", "3"},
			{"(- 1 2)", "-1"},
			{"(* 6 7)", "42"},
			{"(/ 7 2)", "3"},
			{"(/ -7 2)", "-3"},
			{"(% 7 3)", "1"},
			{"(% -7 3)", "1"},
			{"(% 7 -3)", "1"},
			{"(mod -7 3)", "1"},
			{"(+ 2147483647 1)", "-2147483648"},
		}},
		{"floats", TestSequence{
			{"(+ 1 1.5)", "2.5"},
			{"(- 0.5 1)", "-0.5"},
			{"(* 2 0.75)", "1.5"},
			{"(* 2 2.0)", "4.0"},
			{"(/ 7 2.0)", "3.5"},
			{"(% 7.5 2)", "1.5"},
			{"(% -7.5 2)", "1.5"},
		}},
		{"comparison", TestSequence{
			{"(= 1 1)", "t"},
			{"(= 1 1.0)", "t"},
			{"(= 5 1)", "()"},
			{"(< 1 2)", "t"},
			{"(< 2 1)", "()"},
			{"(<= 1 1)", "t"},
			{"(> 2.5 2)", "t"},
			{"(>= 1 1.5)", "()"},
			{"(>= 2 2)", "t"},
		}},
		{"errors", TestSequence{
			{"(/ 1 0)", "/: division by zero"},
			{"(% 1 0)", "%: division by zero"},
			{"(+ 1)", "+: expected 2 arguments (got 1)"},
			{"(+ 1 2 3)", "+: expected 2 arguments (got 3)"},
			{"(+ 1 'a)", "+: argument 2 is not a number: a"},
			{"(< '(1) 2)", "<: argument 1 is not a number: (1)"},
		}},
	}
	RunTestSuite(t, tests)
}
