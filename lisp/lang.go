package lisp

// TruthSymbol is the atom that evaluates to itself and represents a true
// condition.  The empty list is the only false value.
const TruthSymbol = "t"

// QuoteSymbol names the primitive that the reader's ' shorthand expands to.
const QuoteSymbol = "quote"
