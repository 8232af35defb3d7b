package ast

import (
	"strconv"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// ColumnRef is an identifier node resolved against the header table
// at parse time. Its NodeType defaults to UNKNOWN and is fixed by the
// first SetType call it receives during type resolution, mirroring
// the fact that a column's concrete type is only known per row.
type ColumnRef struct {
	tok      token.Token
	index    int
	resolved NodeType
}

// NewColumnRef constructs a ColumnRef for an IDENTIFIER token already
// resolved to a column index.
func NewColumnRef(tok token.Token, index int) *ColumnRef {
	return &ColumnRef{tok: tok, index: index, resolved: UNKNOWN}
}

// Index returns the zero-based column index this reference resolves to.
func (c *ColumnRef) Index() int { return c.index }

func (c *ColumnRef) ValidateTypes(err *diagnostics.ParseError) NodeType {
	return c.resolved
}

func (c *ColumnRef) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if c.resolved == UNKNOWN {
		c.resolved = t
		return true
	}
	if c.resolved == t {
		return true
	}
	*err = wrongTypeError(t, c.resolved, c.tok.Range)
	return false
}

func (c *ColumnRef) Evaluate(row Row, hint NodeType) value.Value {
	field := row.Field(c.index)
	if hint == NUMBER {
		if n, ok := field.AsNumber(); ok {
			return value.Number(n)
		}
		return value.String(field.AsString())
	}
	return value.String(field.AsString())
}

func (c *ColumnRef) CanBeNumber(row Row) bool {
	switch c.resolved {
	case NUMBER:
		return true
	case STRING:
		return false
	default: // UNKNOWN
		_, ok := row.Field(c.index).AsNumber()
		return ok
	}
}

func (c *ColumnRef) Position() diagnostics.Range {
	return c.tok.Range
}

func (c *ColumnRef) String() string {
	return c.tok.Literal + "~" + strconv.Itoa(c.index) + ":" + c.resolved.String()
}
