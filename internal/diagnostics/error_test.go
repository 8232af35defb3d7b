package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseError_EmptyEquality tests that any two empty ParseErrors
// compare equal regardless of how they were constructed.
func TestParseError_EmptyEquality(t *testing.T) {
	a := NoParseError
	b := NewParseError()
	var c ParseError

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.True(t, a.IsEmpty())
	assert.True(t, c.IsEmpty())
}

// TestParseError_PrimaryOnly tests a ParseError built with just a message and primary range.
func TestParseError_PrimaryOnly(t *testing.T) {
	e := NewParseErrorAt("Unmatched bracket", NewRange(0, 1))

	assert.False(t, e.IsEmpty())
	assert.False(t, e.HasSecondary())
	assert.Equal(t, "Unmatched bracket", e.Error())
}

// TestParseError_WithSecondary tests equality with both ranges populated.
func TestParseError_WithSecondary(t *testing.T) {
	a := NewParseErrorWithSecondary("msg", NewRange(4, 5), NewRange(0, 7))
	b := NewParseErrorWithSecondary("msg", NewRange(4, 5), NewRange(0, 7))
	c := NewParseErrorWithSecondary("msg", NewRange(4, 5), NewRange(0, 8))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.HasSecondary())
}

// TestParseError_NotEqualToEmpty tests that a populated error never
// equals the empty sentinel.
func TestParseError_NotEqualToEmpty(t *testing.T) {
	e := NewParseErrorAt("boom", NewRange(0, 1))
	assert.False(t, e.Equal(NoParseError))
}

// TestParseError_UnderlinePrimaryOnly reproduces scenario 6's
// unmatched-bracket diagnostic: a caret under the opening brace and
// nothing else.
func TestParseError_UnderlinePrimaryOnly(t *testing.T) {
	e := NewParseErrorAt("Unmatched bracket", NewRange(0, 1))
	assert.Equal(t, "^", e.Underline())
}

// TestParseError_UnderlinePrimaryAndSecondary reproduces scenario 4's
// type-mismatch diagnostic for `"a" + 1`: '^' under the operator,
// '~' under the combined operand span.
func TestParseError_UnderlinePrimaryAndSecondary(t *testing.T) {
	e := NewParseErrorWithSecondary("mismatch", NewRange(4, 5), NewRange(0, 7))
	assert.Equal(t, "~~~~^~~", e.Underline())
}
