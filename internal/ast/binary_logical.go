package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// LogicalBinary covers AND and OR. Both operands must be BOOL; the
// node always validates to BOOL and short-circuits at evaluation time.
type LogicalBinary struct {
	opTok token.Token
	kind  token.Kind
	lhs   Node
	rhs   Node
}

// NewLogicalBinary constructs an AND or OR node.
func NewLogicalBinary(opTok token.Token, kind token.Kind, lhs, rhs Node) *LogicalBinary {
	return &LogicalBinary{opTok: opTok, kind: kind, lhs: lhs, rhs: rhs}
}

func (b *LogicalBinary) validateOperand(n Node, err *diagnostics.ParseError) NodeType {
	t := n.ValidateTypes(err)
	if t == ERROR {
		return ERROR
	}
	if t != BOOL {
		*err = diagnostics.NewParseErrorWithSecondary(
			fmt.Sprintf("The arguments to '%s' must be boolean, not %s", b.kind.Glyph(), t),
			b.opTok.Range, n.Position(),
		)
		return ERROR
	}
	return BOOL
}

func (b *LogicalBinary) ValidateTypes(err *diagnostics.ParseError) NodeType {
	if b.validateOperand(b.lhs, err) == ERROR {
		return ERROR
	}
	if b.validateOperand(b.rhs, err) == ERROR {
		return ERROR
	}
	return BOOL
}

func (b *LogicalBinary) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if t != BOOL {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Cannot coerce expression into a %s", t), b.Position(),
		)
		return false
	}
	return true
}

func (b *LogicalBinary) Evaluate(row Row, hint NodeType) value.Value {
	lv := b.lhs.Evaluate(row, BOOL)
	if lv.IsError() {
		return lv
	}
	if lv.Tag() != value.BOOLEAN {
		return value.Errorf("Left hand side of operator at %d: expected boolean, got %s", b.opTok.Range.Begin, lv.Tag())
	}

	if b.kind == token.AND && !lv.AsBoolean() {
		return lv // short-circuit: false && _ is false without evaluating RHS
	}
	if b.kind == token.OR && lv.AsBoolean() {
		return lv // short-circuit: true || _ is true without evaluating RHS
	}

	rv := b.rhs.Evaluate(row, BOOL)
	if rv.IsError() {
		return rv
	}
	if rv.Tag() != value.BOOLEAN {
		return value.Errorf("Right hand side of operator at %d: expected boolean, got %s", b.opTok.Range.Begin, rv.Tag())
	}
	return rv
}

func (b *LogicalBinary) CanBeNumber(row Row) bool {
	return false
}

func (b *LogicalBinary) Position() diagnostics.Range {
	return b.opTok.Range
}

func (b *LogicalBinary) String() string {
	return "(" + b.kind.Glyph() + " " + b.lhs.String() + " " + b.rhs.String() + "):bool"
}
