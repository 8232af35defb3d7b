package ast

import "strconv"

// mustParseFloat parses a NUMBER token's literal text, which the
// lexer guarantees is a well-formed, unsigned decimal run (an
// optional '.' followed by at least one digit). A failure here means
// the lexer produced a malformed NUMBER token.
func mustParseFloat(literal string) float64 {
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		panic("ast: lexer produced malformed NUMBER literal " + strconv.Quote(literal))
	}
	return n
}
