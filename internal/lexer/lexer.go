// Package lexer turns a filter expression string into the finite,
// eagerly-computed token queue the parser consumes.
package lexer

import (
	"strings"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
)

// Lexer lexes its input eagerly at construction time. Once built, it
// offers a read-only queue: Ok/Error report whether lexing succeeded,
// and Pop drains tokens one at a time, repeating the END token
// forever once reached.
type Lexer struct {
	tokens []token.Token
	cursor int
	ok     bool
	err    diagnostics.ParseError
}

// New lexes input to completion and returns the resulting Lexer.
// Callers must check Ok before relying on Pop.
func New(input string) *Lexer {
	s := &scanner{input: input}
	tokens, err := s.run()
	if !err.IsEmpty() {
		return &Lexer{ok: false, err: err}
	}
	return &Lexer{tokens: tokens, ok: true}
}

// Ok reports whether the input lexed successfully.
func (l *Lexer) Ok() bool { return l.ok }

// Error returns the lexical error, or the empty ParseError on success.
func (l *Lexer) Error() diagnostics.ParseError { return l.err }

// Pop returns the next token, advancing the cursor. Once the END
// token has been reached, Pop keeps returning it without advancing
// further, since END is never consumed from the queue.
func (l *Lexer) Pop() token.Token {
	t := l.tokens[l.cursor]
	if l.cursor < len(l.tokens)-1 {
		l.cursor++
	}
	return t
}

// IsIdentifier reports whether s is non-empty, begins with an
// identifier-start character, and consists entirely of
// identifier-continuation characters thereafter.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentContinue(rune(s[i])) {
			return false
		}
	}
	return true
}

// MakeValidIdentifier derives an identifier from arbitrary text.
// Empty input becomes "_". If the first character is not a valid
// start character, "_" is prepended (the original first character is
// kept if it is at least a valid continuation character, otherwise it
// is dropped). Every subsequent character that is not a valid
// continuation character is replaced with "_".
func MakeValidIdentifier(s string) string {
	if s == "" {
		return "_"
	}

	var b strings.Builder
	first := rune(s[0])
	rest := s[1:]
	if isIdentStart(first) {
		b.WriteRune(first)
	} else {
		b.WriteByte('_')
		if isIdentContinue(first) {
			b.WriteRune(first)
		}
	}
	for i := 0; i < len(rest); i++ {
		c := rune(rest[i])
		if isIdentContinue(c) {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isIdentStart(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isIdentContinue(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
