package lexer

import (
	"strings"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/token"
)

// scanner walks the input string one byte at a time, producing the
// full token slice in a single pass. The expression grammar is ASCII
// only (identifiers, digits, and a fixed operator set), so byte
// indexing doubles as the character range used in diagnostics.
type scanner struct {
	input string
	pos   int // index of the current character
	read  int // index of the next character
	ch    byte
}

func (s *scanner) init() {
	s.read = 0
	s.advance()
}

// advance moves the scan position forward by one byte. ch is 0 at
// end-of-input, mirroring the lexer's own NUL/EOF sentinel idiom.
func (s *scanner) advance() {
	if s.read >= len(s.input) {
		s.ch = 0
		s.pos = s.read
		return
	}
	s.ch = s.input[s.read]
	s.pos = s.read
	s.read++
}

func (s *scanner) peek() byte {
	if s.read >= len(s.input) {
		return 0
	}
	return s.input[s.read]
}

func (s *scanner) run() ([]token.Token, diagnostics.ParseError) {
	s.init()

	var tokens []token.Token
	for {
		s.skipWhitespace()

		if s.ch == 0 {
			tokens = append(tokens, token.NewEnd(len(s.input)))
			return tokens, diagnostics.NoParseError
		}

		tok, err := s.next()
		if !err.IsEmpty() {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (s *scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.advance()
	}
}

func (s *scanner) next() (token.Token, diagnostics.ParseError) {
	start := s.pos

	switch {
	case isIdentStart(rune(s.ch)):
		return s.scanIdentifier(start), diagnostics.NoParseError
	case isDigit(rune(s.ch)):
		return s.scanNumber(start)
	}

	switch s.ch {
	case '+':
		s.advance()
		return token.New(token.PLUS, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '-':
		s.advance()
		return token.New(token.MINUS, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '*':
		s.advance()
		return token.New(token.TIMES, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '/':
		s.advance()
		return token.New(token.DIVIDE, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '(':
		s.advance()
		return token.New(token.OPEN_PAREN, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case ')':
		s.advance()
		return token.New(token.CLOSE_PAREN, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '<':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return token.New(token.LTE, diagnostics.NewRange(start, start+2)), diagnostics.NoParseError
		}
		return token.New(token.LT, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '>':
		s.advance()
		if s.ch == '=' {
			s.advance()
			return token.New(token.GTE, diagnostics.NewRange(start, start+2)), diagnostics.NoParseError
		}
		return token.New(token.GT, diagnostics.NewRange(start, start+1)), diagnostics.NoParseError
	case '=':
		return s.scanTwoCharOperator(start, '=', token.EQ)
	case '!':
		return s.scanTwoCharOperator(start, '=', token.NEQ)
	case '&':
		return s.scanTwoCharOperator(start, '&', token.AND)
	case '|':
		return s.scanTwoCharOperator(start, '|', token.OR)
	case '"':
		return s.scanString(start)
	}

	return token.Token{}, diagnostics.NewParseErrorAt(
		"Unexpected token",
		diagnostics.NewRange(start, start+1),
	)
}

// scanTwoCharOperator consumes the current character and, if it is
// immediately followed by expectSecond, emits kind over the two-byte
// span. A single unmatched character is a lexical error naming the
// two-character form the author probably intended.
func (s *scanner) scanTwoCharOperator(start int, expectSecond byte, kind token.Kind) (token.Token, diagnostics.ParseError) {
	first := s.ch
	s.advance()
	if s.ch == expectSecond {
		s.advance()
		return token.New(kind, diagnostics.NewRange(start, start+2)), diagnostics.NoParseError
	}
	return token.Token{}, diagnostics.NewParseErrorAt(
		"Unrecognised token. Did you mean '"+string(first)+string(expectSecond)+"'?",
		diagnostics.NewRange(start, start+1),
	)
}

func (s *scanner) scanIdentifier(start int) token.Token {
	for isIdentContinue(rune(s.ch)) {
		s.advance()
	}
	literal := s.input[start:s.pos]
	return token.NewLiteral(token.IDENTIFIER, literal, diagnostics.NewRange(start, s.pos))
}

func (s *scanner) scanNumber(start int) (token.Token, diagnostics.ParseError) {
	for isDigit(rune(s.ch)) {
		s.advance()
	}
	if s.ch == '.' {
		if !isDigit(rune(s.peek())) {
			return token.Token{}, diagnostics.NewParseErrorAt(
				"Expected digits after decimal place",
				diagnostics.NewRange(s.pos, s.pos+1),
			)
		}
		s.advance() // consume '.'
		for isDigit(rune(s.ch)) {
			s.advance()
		}
	}
	literal := s.input[start:s.pos]
	return token.NewLiteral(token.NUMBER, literal, diagnostics.NewRange(start, s.pos)), diagnostics.NoParseError
}

// scanString consumes a double-quoted string literal. The backslash
// is an escape only immediately before a closing quote; everywhere
// else it is an ordinary character preserved verbatim.
func (s *scanner) scanString(start int) (token.Token, diagnostics.ParseError) {
	s.advance() // consume opening quote

	var b strings.Builder
	for {
		if s.ch == 0 {
			return token.Token{}, diagnostics.NewParseErrorAt(
				"Unterminated string constant",
				diagnostics.NewRange(start, s.pos),
			)
		}
		if s.ch == '"' {
			s.advance()
			return token.NewLiteral(token.STRING, b.String(), diagnostics.NewRange(start, s.pos)), diagnostics.NoParseError
		}
		if s.ch == '\\' && s.peek() == '"' {
			b.WriteByte('"')
			s.advance()
			s.advance()
			continue
		}
		b.WriteByte(s.ch)
		s.advance()
	}
}
