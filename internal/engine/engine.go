// Package engine parses a filter expression into a typed tree via a
// shunting-yard discipline, resolves its types, and evaluates it
// against rows.
package engine

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/ast"
	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/lexer"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// Headers resolves an identifier to a zero-based column index, or -1
// if the identifier is unrecognised.
type Headers interface {
	IndexOf(name string) int
}

// Expression is a parsed, type-resolved filter predicate ready for
// repeated evaluation against rows.
type Expression struct {
	ok   bool
	err  diagnostics.ParseError
	root ast.Node
}

// New lexes and parses expr against headers, then runs type
// resolution. Callers must check Ok before calling Evaluate.
func New(expr string, headers Headers) *Expression {
	lx := lexer.New(expr)
	if !lx.Ok() {
		return &Expression{ok: false, err: lx.Error()}
	}

	root, err := parse(lx, headers)
	if !err.IsEmpty() {
		return &Expression{ok: false, err: err}
	}

	var typeErr diagnostics.ParseError
	if root.ValidateTypes(&typeErr) == ast.ERROR {
		return &Expression{ok: false, err: typeErr}
	}

	return &Expression{ok: true, root: root}
}

// Ok reports whether construction succeeded.
func (e *Expression) Ok() bool { return e.ok }

// Error returns the parse or type-resolution error, or the empty
// ParseError on success.
func (e *Expression) Error() diagnostics.ParseError { return e.err }

// Evaluate runs the expression against row. Callers must only call
// this on a successfully constructed Expression.
func (e *Expression) Evaluate(row ast.Row) value.Value {
	return e.root.Evaluate(row, ast.UNKNOWN)
}

// TreeString renders the parsed tree for debugging.
func (e *Expression) TreeString() string {
	return e.root.String()
}

type mode int

const (
	expectOperand mode = iota
	expectOperator
)

// parse runs the shunting-yard loop over lx's token queue, building
// the expression tree against headers.
func parse(lx *lexer.Lexer, headers Headers) (ast.Node, diagnostics.ParseError) {
	var operators []token.Token
	var operands []ast.Node
	m := expectOperand

	for {
		tok := lx.Pop()

		if m == expectOperand {
			switch {
			case tok.Kind == token.IDENTIFIER:
				idx := headers.IndexOf(tok.Literal)
				if idx < 0 {
					return nil, diagnostics.NewParseErrorAt(
						fmt.Sprintf("Identifier %q not found in headers", tok.Literal), tok.Range,
					)
				}
				operands = append(operands, ast.NewColumnRef(tok, idx))
				m = expectOperator

			case tok.Kind == token.NUMBER || tok.Kind == token.STRING:
				operands = append(operands, ast.NewLiteral(tok))
				m = expectOperator

			case tok.Kind == token.MINUS:
				tok.Unary = true
				operators = append(operators, tok)

			case tok.Kind == token.OPEN_PAREN:
				operators = append(operators, tok)

			case tok.Kind == token.END:
				return nil, diagnostics.NewParseErrorAt("Unexpected end of expression", tok.Range)

			default:
				return nil, diagnostics.NewParseErrorAt("Unexpected operator", tok.Range)
			}
			continue
		}

		// expectOperator
		switch tok.Kind {
		case token.CLOSE_PAREN:
			for {
				if len(operators) == 0 {
					return nil, diagnostics.NewParseErrorAt("No matching open brace for close brace", tok.Range)
				}
				top := operators[len(operators)-1]
				if top.Kind == token.OPEN_PAREN {
					operators = operators[:len(operators)-1]
					break
				}
				operators = operators[:len(operators)-1]
				var err diagnostics.ParseError
				operands, err = applyAndPop(top, operands)
				if !err.IsEmpty() {
					return nil, err
				}
			}

		case token.END:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == token.OPEN_PAREN {
					return nil, diagnostics.NewParseErrorAt("Unmatched bracket", top.Range)
				}
				operators = operators[:len(operators)-1]
				var err diagnostics.ParseError
				operands, err = applyAndPop(top, operands)
				if !err.IsEmpty() {
					return nil, err
				}
			}
			return operands[len(operands)-1], diagnostics.NoParseError

		case token.IDENTIFIER, token.NUMBER, token.STRING, token.OPEN_PAREN:
			return nil, diagnostics.NewParseErrorAt("Unexpected operand", tok.Range)

		default:
			for len(operators) > 0 && operators[len(operators)-1].Precedence() >= tok.Precedence() {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				var err diagnostics.ParseError
				operands, err = applyAndPop(top, operands)
				if !err.IsEmpty() {
					return nil, err
				}
			}
			operators = append(operators, tok)
			m = expectOperand
		}
	}
}

// applyAndPop builds the node for opTok from the top of operands
// (one for a unary operator, two for a binary one) and pushes the
// result back onto operands.
func applyAndPop(opTok token.Token, operands []ast.Node) ([]ast.Node, diagnostics.ParseError) {
	if opTok.Unary {
		operand := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		operands = append(operands, ast.NewUnaryMinus(opTok, operand))
		return operands, diagnostics.NoParseError
	}

	rhs := operands[len(operands)-1]
	lhs := operands[len(operands)-2]
	operands = operands[:len(operands)-2]

	var node ast.Node
	switch opTok.Kind {
	case token.PLUS:
		node = ast.NewPlusBinary(opTok, lhs, rhs)
	case token.MINUS, token.TIMES, token.DIVIDE:
		node = ast.NewArithmeticBinary(opTok, opTok.Kind, lhs, rhs)
	case token.AND, token.OR:
		node = ast.NewLogicalBinary(opTok, opTok.Kind, lhs, rhs)
	case token.LT, token.LTE, token.EQ, token.NEQ, token.GT, token.GTE:
		node = ast.NewComparisonBinary(opTok, opTok.Kind, lhs, rhs)
	default:
		panic("engine: applyAndPop given non-operator kind " + opTok.Kind.Name())
	}

	return append(operands, node), diagnostics.NoParseError
}
