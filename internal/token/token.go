package token

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
)

// Token is the unit produced by the lexer and consumed by the parser:
// a kind, the source range it spans, its literal text, and a mutable
// Unary flag that is only ever meaningful for a MINUS token.
//
// For IDENTIFIER/STRING/NUMBER, Literal is the semantic content (the
// identifier name, the decoded string, the digit run). For operator
// and bracket kinds, Literal is the source glyph.
type Token struct {
	Kind    Kind
	Range   diagnostics.Range
	Literal string

	// Unary is set by the parser, not the lexer: a MINUS token is
	// lexed identically whether it turns out to be unary or binary,
	// and the parser flips this flag once it decides which role the
	// token plays during shunting-yard construction.
	Unary bool
}

// New creates a token whose literal is the kind's fixed glyph. It is
// the common path for operators and brackets.
func New(kind Kind, r diagnostics.Range) Token {
	return Token{Kind: kind, Range: r, Literal: kind.Glyph()}
}

// NewLiteral creates a token carrying explicit literal text, used for
// IDENTIFIER, NUMBER, and STRING tokens whose content is not fixed by
// their kind.
func NewLiteral(kind Kind, literal string, r diagnostics.Range) Token {
	return Token{Kind: kind, Range: r, Literal: literal}
}

// NewEnd creates the END sentinel token at position n (the input
// length), whose range is [n, n+1) per the lexer contract.
func NewEnd(n int) Token {
	return Token{Kind: END, Range: diagnostics.NewRange(n, n+1)}
}

// Precedence returns this token's operator-precedence value, higher
// binds tighter. Unary MINUS (precedence 8) is distinguished from
// binary MINUS (precedence 6) via the Unary flag; OPEN_PAREN always
// reports 0 so that no operator ever displaces it from the operator
// stack except a matching CLOSE_PAREN or END.
func (t Token) Precedence() int {
	if t.Kind == MINUS && t.Unary {
		return 8
	}
	if t.Kind == OPEN_PAREN {
		return 0
	}
	return basePrecedence[t.Kind]
}

// String renders the token for debug output.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind.Name(), t.Literal, t.Range.String())
}
