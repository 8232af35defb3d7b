package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// UnaryMinus negates a single numeric operand. Its NodeType is always
// NUMBER.
type UnaryMinus struct {
	opTok   token.Token
	operand Node
}

// NewUnaryMinus constructs a UnaryMinus node from the unary MINUS
// token and its single operand.
func NewUnaryMinus(opTok token.Token, operand Node) *UnaryMinus {
	return &UnaryMinus{opTok: opTok, operand: operand}
}

func (u *UnaryMinus) ValidateTypes(err *diagnostics.ParseError) NodeType {
	ot := u.operand.ValidateTypes(err)
	if ot == ERROR {
		return ERROR
	}
	if ot == UNKNOWN {
		if !u.operand.SetType(NUMBER, err) {
			return ERROR
		}
		ot = NUMBER
	}
	if ot != NUMBER {
		*err = diagnostics.NewParseErrorWithSecondary(
			fmt.Sprintf("Unary minus expects a number, not a %s", ot),
			u.opTok.Range, u.operand.Position(),
		)
		return ERROR
	}
	return NUMBER
}

func (u *UnaryMinus) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if t != NUMBER {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Expression cannot be coerced into a %s", t), u.Position(),
		)
		return false
	}
	return true
}

func (u *UnaryMinus) Evaluate(row Row, hint NodeType) value.Value {
	v := u.operand.Evaluate(row, NUMBER)
	if v.IsError() {
		return v
	}
	if v.Tag() != value.NUMBER {
		return value.Errorf(
			"The unary operator at %d expects arguments of type number (got %s)",
			u.opTok.Range.Begin, v.Tag(),
		)
	}
	return value.Number(-v.AsNumber())
}

func (u *UnaryMinus) CanBeNumber(row Row) bool {
	return true
}

func (u *UnaryMinus) Position() diagnostics.Range {
	return u.opTok.Range
}

func (u *UnaryMinus) String() string {
	return "(- " + u.operand.String() + "):number"
}
