package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestField_Dequote tests surrounding-quote stripping and doubled
// inner quote collapsing.
func TestField_Dequote(t *testing.T) {
	assert.Equal(t, "plain", NewField("plain").AsString())
	assert.Equal(t, "has, comma", NewField(`"has, comma"`).AsString())
	assert.Equal(t, `say "hi"`, NewField(`"say ""hi"""`).AsString())
}

// TestField_AsNumber_Basic tests ordinary decimal parsing.
func TestField_AsNumber_Basic(t *testing.T) {
	n, ok := NewField("20").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 20.0, n)
}

// TestField_AsNumber_LeadingWhitespace tests that leading whitespace
// is permitted before the numeral.
func TestField_AsNumber_LeadingWhitespace(t *testing.T) {
	n, ok := NewField(" 32").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 32.0, n)
}

// TestField_AsNumber_TrailingWhitespaceRejected tests that, unlike
// leading whitespace, any trailing content at all invalidates the
// parse.
func TestField_AsNumber_TrailingWhitespaceRejected(t *testing.T) {
	_, ok := NewField(" 123 ").AsNumber()
	assert.False(t, ok)
}

// TestField_AsNumber_Hex tests strtod-style hex integer recognition.
func TestField_AsNumber_Hex(t *testing.T) {
	n, ok := NewField("0x5").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)
}

// TestField_AsNumber_NonNumeric tests that ordinary text is rejected.
func TestField_AsNumber_NonNumeric(t *testing.T) {
	_, ok := NewField("abc").AsNumber()
	assert.False(t, ok)
}

// TestField_AsNumber_QuotedNeverNumber tests that a field still
// starting with a quote after dequoting (`"""5"` dequotes to `"5`) is
// never treated as numeric.
func TestField_AsNumber_QuotedNeverNumber(t *testing.T) {
	_, ok := NewField(`"""5"`).AsNumber()
	assert.False(t, ok)
}

// TestField_AsNumber_Memoised tests that repeated calls against the
// same field handle return the identical result without re-parsing
// (observable only via the stable return value here).
func TestField_AsNumber_Memoised(t *testing.T) {
	f := NewField("10")
	n1, ok1 := f.AsNumber()
	n2, ok2 := f.AsNumber()
	assert.Equal(t, n1, n2)
	assert.Equal(t, ok1, ok2)
}

// TestField_AsNumber_Fraction tests a decimal fractional literal.
func TestField_AsNumber_Fraction(t *testing.T) {
	n, ok := NewField("3.14").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.14, n)
}

// TestField_AsNumber_Exponent tests scientific-notation literals.
func TestField_AsNumber_Exponent(t *testing.T) {
	n, ok := NewField("1e3").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 1000.0, n)
}

// TestField_AsNumber_NegativeSign tests a leading sign before the
// numeral.
func TestField_AsNumber_NegativeSign(t *testing.T) {
	n, ok := NewField("-5").AsNumber()
	assert.True(t, ok)
	assert.Equal(t, -5.0, n)
}
