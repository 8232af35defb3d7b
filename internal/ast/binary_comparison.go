package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// ComparisonBinary covers LT, LTE, EQ, NEQ, GT, GTE. The node always
// validates to BOOL; its operands may stay STRING or NUMBER and the
// choice of numeric-vs-lexicographic comparison is made per row.
type ComparisonBinary struct {
	opTok token.Token
	kind  token.Kind
	lhs   Node
	rhs   Node
}

// NewComparisonBinary constructs a comparison node.
func NewComparisonBinary(opTok token.Token, kind token.Kind, lhs, rhs Node) *ComparisonBinary {
	return &ComparisonBinary{opTok: opTok, kind: kind, lhs: lhs, rhs: rhs}
}

func (b *ComparisonBinary) ValidateTypes(err *diagnostics.ParseError) NodeType {
	lt := b.lhs.ValidateTypes(err)
	if lt == ERROR {
		return ERROR
	}
	rt := b.rhs.ValidateTypes(err)
	if rt == ERROR {
		return ERROR
	}

	if lt == UNKNOWN && rt != UNKNOWN {
		if !b.lhs.SetType(rt, err) {
			return ERROR
		}
		lt = rt
	} else if rt == UNKNOWN && lt != UNKNOWN {
		if !b.rhs.SetType(lt, err) {
			return ERROR
		}
		rt = lt
	}

	if lt != UNKNOWN && rt != UNKNOWN && lt != rt {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("'%s' expects arguments of the same type (got a %s and a %s)", b.kind.Glyph(), lt, rt),
			b.opTok.Range,
		)
		return ERROR
	}
	return BOOL
}

func (b *ComparisonBinary) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if t != BOOL {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Cannot coerce expression into a %s", t), b.Position(),
		)
		return false
	}
	return true
}

func (b *ComparisonBinary) Evaluate(row Row, hint NodeType) value.Value {
	if b.lhs.CanBeNumber(row) && b.rhs.CanBeNumber(row) {
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
		return value.Boolean(compareNumbers(b.kind, lv.AsNumber(), rv.AsNumber()))
	}

	lv := b.lhs.Evaluate(row, STRING)
	if lv.IsError() {
		return lv
	}
	rv := b.rhs.Evaluate(row, STRING)
	if rv.IsError() {
		return rv
	}
	return value.Boolean(compareStrings(b.kind, lv.AsString(), rv.AsString()))
}

func compareNumbers(kind token.Kind, l, r float64) bool {
	switch kind {
	case token.LT:
		return l < r
	case token.LTE:
		return l <= r
	case token.EQ:
		return l == r
	case token.NEQ:
		return l != r
	case token.GT:
		return l > r
	case token.GTE:
		return l >= r
	default:
		panic("ast: compareNumbers given non-comparison kind " + kind.Name())
	}
}

func compareStrings(kind token.Kind, l, r string) bool {
	switch kind {
	case token.LT:
		return l < r
	case token.LTE:
		return l <= r
	case token.EQ:
		return l == r
	case token.NEQ:
		return l != r
	case token.GT:
		return l > r
	case token.GTE:
		return l >= r
	default:
		panic("ast: compareStrings given non-comparison kind " + kind.Name())
	}
}

func (b *ComparisonBinary) CanBeNumber(row Row) bool {
	return false
}

func (b *ComparisonBinary) Position() diagnostics.Range {
	return b.opTok.Range
}

func (b *ComparisonBinary) String() string {
	return "(" + b.kind.Glyph() + " " + b.lhs.String() + " " + b.rhs.String() + "):bool"
}
