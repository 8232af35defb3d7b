package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// ArithmeticBinary covers the non-plus arithmetic operators MINUS,
// TIMES, and DIVIDE. Both operands are coerced to NUMBER and the node
// always validates to NUMBER.
type ArithmeticBinary struct {
	opTok token.Token
	kind  token.Kind
	lhs   Node
	rhs   Node
}

// NewArithmeticBinary constructs a binary MINUS, TIMES, or DIVIDE node.
func NewArithmeticBinary(opTok token.Token, kind token.Kind, lhs, rhs Node) *ArithmeticBinary {
	return &ArithmeticBinary{opTok: opTok, kind: kind, lhs: lhs, rhs: rhs}
}

func (b *ArithmeticBinary) validateOperand(n Node, err *diagnostics.ParseError) NodeType {
	t := n.ValidateTypes(err)
	if t == ERROR {
		return ERROR
	}
	if t == UNKNOWN {
		if !n.SetType(NUMBER, err) {
			return ERROR
		}
		return NUMBER
	}
	if t != NUMBER {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Cannot coerce expression into a %s", t), n.Position(),
		)
		return ERROR
	}
	return NUMBER
}

func (b *ArithmeticBinary) ValidateTypes(err *diagnostics.ParseError) NodeType {
	if b.validateOperand(b.lhs, err) == ERROR {
		return ERROR
	}
	if b.validateOperand(b.rhs, err) == ERROR {
		return ERROR
	}
	return NUMBER
}

func (b *ArithmeticBinary) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if t != NUMBER {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Cannot coerce expression into a %s", t), b.Position(),
		)
		return false
	}
	return true
}

func (b *ArithmeticBinary) Evaluate(row Row, hint NodeType) value.Value {
	lv := b.lhs.Evaluate(row, NUMBER)
	if lv.IsError() {
		return lv
	}
	rv := b.rhs.Evaluate(row, NUMBER)
	if rv.IsError() {
		return rv
	}
	if lv.Tag() != value.NUMBER {
		return value.Errorf("Left hand side of operator at %d: expected number, got %s", b.opTok.Range.Begin, lv.Tag())
	}
	if rv.Tag() != value.NUMBER {
		return value.Errorf("Right hand side of operator at %d: expected number, got %s", b.opTok.Range.Begin, rv.Tag())
	}

	l, r := lv.AsNumber(), rv.AsNumber()
	switch b.kind {
	case token.MINUS:
		return value.Number(l - r)
	case token.TIMES:
		return value.Number(l * r)
	case token.DIVIDE:
		return value.Number(l / r) // IEEE-754 semantics: division by zero yields Inf/NaN, not an error
	default:
		panic("ast: ArithmeticBinary given non-arithmetic kind " + b.kind.Name())
	}
}

func (b *ArithmeticBinary) CanBeNumber(row Row) bool {
	return true
}

func (b *ArithmeticBinary) Position() diagnostics.Range {
	return b.opTok.Range
}

func (b *ArithmeticBinary) String() string {
	return "(" + b.kind.Glyph() + " " + b.lhs.String() + " " + b.rhs.String() + "):number"
}
