package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// PlusBinary is the single overloaded operator in the language: its
// NodeType is NUMBER or STRING depending on its operands, decided at
// validation time when possible and deferred to per-row evaluation
// otherwise.
type PlusBinary struct {
	opTok          token.Token
	lhs            Node
	rhs            Node
	calculatedType NodeType // UNKNOWN until both operands agree, or a hint locks it in
}

// NewPlusBinary constructs a PLUS node.
func NewPlusBinary(opTok token.Token, lhs, rhs Node) *PlusBinary {
	return &PlusBinary{opTok: opTok, lhs: lhs, rhs: rhs, calculatedType: UNKNOWN}
}

func validatePlusOperand(t NodeType, n Node, err *diagnostics.ParseError) bool {
	if t == STRING || t == NUMBER || t == UNKNOWN {
		return true
	}
	*err = diagnostics.NewParseErrorAt(
		fmt.Sprintf("Arguments to + should be strings or numbers, not %s)", t), n.Position(),
	)
	return false
}

func (b *PlusBinary) ValidateTypes(err *diagnostics.ParseError) NodeType {
	lt := b.lhs.ValidateTypes(err)
	if lt == ERROR {
		return ERROR
	}
	rt := b.rhs.ValidateTypes(err)
	if rt == ERROR {
		return ERROR
	}
	if !validatePlusOperand(lt, b.lhs, err) {
		return ERROR
	}
	if !validatePlusOperand(rt, b.rhs, err) {
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
		combined := diagnostics.NewRange(b.lhs.Position().Begin, b.rhs.Position().End)
		*err = diagnostics.NewParseErrorWithSecondary(
			fmt.Sprintf("The + operator expects its arguments to be the same type, got a %s and a %s", lt, rt),
			b.opTok.Range, combined,
		)
		return ERROR
	}

	if lt == UNKNOWN && rt == UNKNOWN {
		b.calculatedType = UNKNOWN
		return UNKNOWN
	}
	b.calculatedType = lt
	return lt
}

func (b *PlusBinary) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if b.calculatedType != UNKNOWN {
		if t == b.calculatedType {
			return true
		}
		*err = wrongTypeError(t, b.calculatedType, b.Position())
		return false
	}
	if t != STRING && t != NUMBER {
		*err = diagnostics.NewParseErrorAt(
			fmt.Sprintf("Cannot coerce expression into a %s", t), b.Position(),
		)
		return false
	}
	if !b.lhs.SetType(t, err) {
		return false
	}
	if !b.rhs.SetType(t, err) {
		return false
	}
	b.calculatedType = t
	return true
}

func (b *PlusBinary) Evaluate(row Row, hint NodeType) value.Value {
	effective := b.calculatedType
	if effective == UNKNOWN {
		switch {
		case hint == NUMBER || hint == STRING:
			effective = hint
		case b.lhs.CanBeNumber(row) && b.rhs.CanBeNumber(row):
			effective = NUMBER
		default:
			effective = STRING
		}
	}

	if effective == NUMBER {
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
		return value.Number(lv.AsNumber() + rv.AsNumber())
	}

	lv := b.lhs.Evaluate(row, STRING)
	if lv.IsError() {
		return lv
	}
	rv := b.rhs.Evaluate(row, STRING)
	if rv.IsError() {
		return rv
	}
	return value.String(lv.AsString() + rv.AsString())
}

func (b *PlusBinary) CanBeNumber(row Row) bool {
	if b.calculatedType == NUMBER {
		return true
	}
	if b.calculatedType == STRING {
		return false
	}
	return b.lhs.CanBeNumber(row) && b.rhs.CanBeNumber(row)
}

func (b *PlusBinary) Position() diagnostics.Range {
	return b.opTok.Range
}

func (b *PlusBinary) String() string {
	return "(+ " + b.lhs.String() + " " + b.rhs.String() + "):" + b.calculatedType.String()
}
