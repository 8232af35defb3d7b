// Package value implements the tagged-variant runtime datum produced
// by expression tree evaluation.
package value

import (
	"fmt"

	"github.com/spf13/cast"
)

// Tag identifies which payload a Value currently holds.
type Tag int

const (
	NUMBER Tag = iota
	BOOLEAN
	STRING
	ERROR
)

func (t Tag) String() string {
	switch t {
	case NUMBER:
		return "number"
	case BOOLEAN:
		return "boolean"
	case STRING:
		return "string"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// Value is a tagged variant over {number, boolean, string, error}.
// Only the field matching Tag is meaningful; accessors assert Tag
// before reading. A Value is deliberately small and copyable, but the
// Reset* methods exist so a tree node may reuse one Value across row
// evaluations instead of allocating a fresh one each time.
type Value struct {
	tag    Tag
	number float64
	str    string
}

// Number constructs a NUMBER value.
func Number(n float64) Value { return Value{tag: NUMBER, number: n} }

// Boolean constructs a BOOLEAN value.
func Boolean(b bool) Value {
	if b {
		return Value{tag: BOOLEAN, number: 1}
	}
	return Value{tag: BOOLEAN, number: 0}
}

// String constructs a STRING value.
func String(s string) Value { return Value{tag: STRING, str: s} }

// Error constructs an ERROR value carrying a human-readable message.
func Error(message string) Value { return Value{tag: ERROR, str: message} }

// Errorf is a convenience wrapper around Error using fmt.Sprintf.
func Errorf(format string, args ...any) Value {
	return Error(fmt.Sprintf(format, args...))
}

// Tag reports the value's current tag.
func (v Value) Tag() Tag { return v.tag }

// IsError reports whether this value is an ERROR.
func (v Value) IsError() bool { return v.tag == ERROR }

// AsNumber returns the NUMBER payload. Panics if Tag is not NUMBER.
func (v Value) AsNumber() float64 {
	v.assert(NUMBER)
	return v.number
}

// AsBoolean returns the BOOLEAN payload. Panics if Tag is not BOOLEAN.
func (v Value) AsBoolean() bool {
	v.assert(BOOLEAN)
	return v.number != 0
}

// AsString returns the STRING payload. Panics if Tag is not STRING.
func (v Value) AsString() string {
	v.assert(STRING)
	return v.str
}

// ErrorMessage returns the ERROR payload. Panics if Tag is not ERROR.
func (v Value) ErrorMessage() string {
	v.assert(ERROR)
	return v.str
}

func (v Value) assert(want Tag) {
	if v.tag != want {
		panic(fmt.Sprintf("value: expected %s, got %s", want, v.tag))
	}
}

// ResetToNumber mutates v in place to a NUMBER value, reusing its
// storage. This exists so tree nodes can avoid allocating a new Value
// on every row evaluation.
func (v *Value) ResetToNumber(n float64) { v.tag, v.number, v.str = NUMBER, n, "" }

// ResetToBoolean mutates v in place to a BOOLEAN value.
func (v *Value) ResetToBoolean(b bool) {
	n := 0.0
	if b {
		n = 1
	}
	v.tag, v.number, v.str = BOOLEAN, n, ""
}

// ResetToString mutates v in place to a STRING value.
func (v *Value) ResetToString(s string) { v.tag, v.number, v.str = STRING, 0, s }

// ResetToError mutates v in place to an ERROR value.
func (v *Value) ResetToError(message string) { v.tag, v.number, v.str = ERROR, 0, message }

// Render renders the value's payload as text, used by diagnostics
// that need to display a runtime scalar regardless of its tag.
func (v Value) Render() string {
	switch v.tag {
	case NUMBER:
		return cast.ToString(v.number)
	case BOOLEAN:
		return cast.ToString(v.number != 0)
	case STRING:
		return v.str
	case ERROR:
		return v.str
	default:
		return ""
	}
}
