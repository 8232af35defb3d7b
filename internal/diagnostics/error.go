package diagnostics

// ParseError carries a human-readable message plus one or two source
// ranges: a primary range (the feature principally blamed) and an
// optional secondary range (a related feature, typically an operand
// when the primary range points at an operator).
//
// The zero value is the "no error" sentinel: every empty ParseError
// compares equal to every other empty ParseError, regardless of how
// it was constructed, since none of them carry meaningful content.
type ParseError struct {
	Message      string
	Primary      Range
	Secondary    Range
	hasPrimary   bool
	hasSecondary bool
}

// NoParseError is the zero-value sentinel indicating success.
var NoParseError = ParseError{}

// NewParseError constructs an empty ParseError, equivalent to NoParseError.
func NewParseError() ParseError {
	return ParseError{}
}

// NewParseErrorAt constructs a ParseError with a message and primary range.
func NewParseErrorAt(message string, primary Range) ParseError {
	return ParseError{Message: message, Primary: primary, hasPrimary: true}
}

// NewParseErrorWithSecondary constructs a ParseError with a message, a
// primary range, and a secondary range.
func NewParseErrorWithSecondary(message string, primary, secondary Range) ParseError {
	return ParseError{
		Message:      message,
		Primary:      primary,
		Secondary:    secondary,
		hasPrimary:   true,
		hasSecondary: true,
	}
}

// IsEmpty reports whether this is the "no error" sentinel.
func (e ParseError) IsEmpty() bool {
	return !e.hasPrimary && e.Message == ""
}

// HasSecondary reports whether a secondary range was supplied.
func (e ParseError) HasSecondary() bool {
	return e.hasSecondary
}

// Equal reports component-wise equality, treating any two empty
// ParseErrors as equal regardless of their unused range fields.
func (e ParseError) Equal(other ParseError) bool {
	if e.IsEmpty() && other.IsEmpty() {
		return true
	}
	if e.Message != other.Message || e.hasPrimary != other.hasPrimary || e.hasSecondary != other.hasSecondary {
		return false
	}
	if e.hasPrimary && e.Primary != other.Primary {
		return false
	}
	if e.hasSecondary && e.Secondary != other.Secondary {
		return false
	}
	return true
}

// Error implements the standard error interface so a ParseError can be
// returned and formatted wherever Go code expects an error value.
func (e ParseError) Error() string {
	return e.Message
}

// Underline renders a marker line to print beneath the source
// expression: '^' under the primary range, '~' under the secondary
// range (if any), and a space everywhere else.
func (e ParseError) Underline() string {
	end := e.Primary.End
	if e.hasSecondary && e.Secondary.End > end {
		end = e.Secondary.End
	}

	marker := make([]byte, end)
	for i := range marker {
		switch {
		case e.hasPrimary && i >= e.Primary.Begin && i < e.Primary.End:
			marker[i] = '^'
		case e.hasSecondary && i >= e.Secondary.Begin && i < e.Secondary.End:
			marker[i] = '~'
		default:
			marker[i] = ' '
		}
	}
	return string(marker)
}
