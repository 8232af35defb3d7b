package ast

import (
	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
	"github.com/plnu/csvfilter/internal/value"
)

// Literal is a number or string constant. Its NodeType is fixed at
// construction from the originating token's kind.
type Literal struct {
	tok      token.Token
	nodeType NodeType
	val      value.Value
}

// NewLiteral constructs a Literal from a NUMBER or STRING token.
// Numbers are parsed eagerly; the lexer guarantees a NUMBER token's
// literal text is always well-formed, so parse failure here would
// indicate a lexer bug rather than a user error.
func NewLiteral(tok token.Token) *Literal {
	switch tok.Kind {
	case token.NUMBER:
		n := mustParseFloat(tok.Literal)
		return &Literal{tok: tok, nodeType: NUMBER, val: value.Number(n)}
	case token.STRING:
		return &Literal{tok: tok, nodeType: STRING, val: value.String(tok.Literal)}
	default:
		panic("ast: NewLiteral given non-literal token kind " + tok.Kind.Name())
	}
}

func (l *Literal) ValidateTypes(err *diagnostics.ParseError) NodeType {
	return l.nodeType
}

func (l *Literal) SetType(t NodeType, err *diagnostics.ParseError) bool {
	if t == l.nodeType {
		return true
	}
	*err = wrongTypeError(t, l.nodeType, l.tok.Range)
	return false
}

func (l *Literal) Evaluate(row Row, hint NodeType) value.Value {
	return l.val
}

func (l *Literal) CanBeNumber(row Row) bool {
	return l.nodeType == NUMBER
}

func (l *Literal) Position() diagnostics.Range {
	return l.tok.Range
}

func (l *Literal) String() string {
	return l.tok.Literal + ":" + l.nodeType.String()
}
