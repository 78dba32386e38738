// Package parser provides a lisp reader built from goparsec combinators.
//
//	expr     := '(' <expr>* ')' | "'" <expr> | <number> | <symbol> | <comment>
//	number   := [+-]? (<digits> <fraction>? | <fraction>) <exponent>?
//	fraction := '.' <digits>
//	exponent := ('e' | 'E') [+-]? <digits>
//	symbol   := <letter or one of _+-*/=<>!&~%?:$^@#> <symbol char>*
//	comment  := ';' <any char but newline>*
//
// Symbol chars after the first may also be digits or '.'.  The quote
// shorthand 'x is read as (quote x).
package parser

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/bmatsuo/minilisp/lisp"
	parsec "github.com/prataprc/goparsec"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeList
	nodeQuote
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeList:    "LIST",
	nodeQuote:   "QUOTE",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// parseError is produced in place of a value when a term cannot be
// converted.  It propagates to the root of the expression.
type parseError struct {
	err error
}

type reader struct{}

// NewReader returns a lisp.Reader to use in a lisp.Interpreter.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.Value, error) {
	text, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, _, err := ParseValues(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// ParseValues parses values from text and returns them.  The number of bytes
// read is returned along with any error that was encountered in parsing.
// Unconsumed input other than whitespace results in io.ErrUnexpectedEOF.
func ParseValues(text []byte) ([]*lisp.Value, int, error) {
	var v []*lisp.Value
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		lval, err := getValue(root)
		if err != nil {
			return v, s.GetCursor(), err
		}
		if lval != nil {
			v = append(v, lval)
		}
		root, s = parser(s)
	}
	cursor := s.GetCursor()
	if len(bytes.TrimSpace(text[cursor:])) != 0 {
		return v, cursor, fmt.Errorf("syntax error at offset %d: %w", cursor, io.ErrUnexpectedEOF)
	}
	return v, cursor, nil
}

// ParseValue parses text which must contain exactly one expression.
func ParseValue(text []byte) (*lisp.Value, error) {
	v, _, err := ParseValues(text)
	if err != nil {
		return nil, err
	}
	if len(v) != 1 {
		return nil, fmt.Errorf("expected one expression (got %d)", len(v))
	}
	return v[0], nil
}

// Incomplete returns true if text contains an expression which has been
// opened but not closed.  Parentheses inside comments are ignored.
func Incomplete(text []byte) bool {
	depth := 0
	for _, line := range strings.Split(string(text), "\n") {
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		depth += strings.Count(line, "(") - strings.Count(line, ")")
	}
	if depth > 0 {
		return true
	}
	trimmed := bytes.TrimSpace(text)
	return len(trimmed) > 0 && trimmed[len(trimmed)-1] == '\''
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	decimal := parsec.Token(`[+-]?([0-9]+([.][0-9]+)?|[.][0-9]+)([eE][+-]?[0-9]+)?`, "DECIMAL")
	symbol := parsec.Token(`(?:\pL|[_+\-*/\=<>!&~%?:$^@#])(?:\pL|[0-9]|[_+\-*/\=<>!&~%?:$^@#.])*`, "SYMBOL")
	term := parsec.OrdChoice(astNode(nodeTerm), // terminal token
		decimal,
		symbol, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	list := parsec.And(astNode(nodeList), openP, exprList, closeP)
	quote := parsec.And(astNode(nodeQuote), q, &expr)
	expr = parsec.OrdChoice(nil, comment, term, list, quote)
	return expr
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return &parseError{fmt.Errorf("unexpected term: %T", nodes[0])}
		}
		switch term.Name {
		case "DECIMAL":
			return parseNumber(term.Value)
		case "SYMBOL":
			return lisp.Atom(term.Value)
		}
		return &parseError{fmt.Errorf("unknown token: %s", term.Name)}
	case nodeList:
		// We don't want terminal parsec nodes '(' and ')', or comments
		var cells []*lisp.Value
		for _, c := range nodes {
			switch c := c.(type) {
			case *lisp.Value:
				cells = append(cells, c)
			case *parseError:
				return c
			}
		}
		return lisp.List(cells...)
	case nodeQuote:
		for _, c := range nodes[1:] {
			switch c := c.(type) {
			case *lisp.Value:
				return lisp.List(lisp.Atom(lisp.QuoteSymbol), c)
			case *parseError:
				return c
			}
		}
		return &parseError{fmt.Errorf("quote is not followed by an expression")}
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func parseNumber(text string) parsec.ParsecNode {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return &parseError{fmt.Errorf("bad number: %v (%s)", err, text)}
		}
		return lisp.Float(float32(f))
	}
	x, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return &parseError{fmt.Errorf("bad number: %v (%s)", err, text)}
	}
	return lisp.Int(int32(x))
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getValue(root parsec.ParsecNode) (*lisp.Value, error) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil, nil
	}
	switch node := nodes[0].(type) {
	case *lisp.Value:
		return node, nil
	case *parseError:
		return nil, node.err
	default:
		// we can be here if there is only a comment on a line
		return nil, nil
	}
}
