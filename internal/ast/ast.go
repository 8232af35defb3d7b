// Package ast defines the filter expression tree: the polymorphic Node
// contract (type validation, per-row evaluation, structural
// rendering) and its five concrete variants.
package ast

import (
	"fmt"

	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/value"
)

// NodeType is the static type tag of a subtree, resolved during the
// post-parse type-resolution pass.
type NodeType int

const (
	UNKNOWN NodeType = iota
	STRING
	NUMBER
	BOOL
	ERROR
)

func (t NodeType) String() string {
	switch t {
	case UNKNOWN:
		return "unknown"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case BOOL:
		return "bool"
	case ERROR:
		return "error"
	default:
		return "invalid"
	}
}

// Field is the per-column accessor a Row exposes; it is the row-level
// collaborator contract the expression tree consumes when evaluating
// a column reference.
type Field interface {
	// AsString returns the field's raw, dequoted text.
	AsString() string
	// AsNumber attempts a strtod-style numeric parse of the field,
	// reporting false when the entire content does not parse as a
	// number.
	AsNumber() (float64, bool)
}

// Row exposes fields by zero-based column index. Column indices
// stored in ColumnRef nodes are always valid for any Row the parser
// is asked to evaluate; this is enforced by the collaborator that
// reads data records, not by the tree itself.
type Row interface {
	Field(i int) Field
}

// Node is the contract every expression tree variant implements.
type Node interface {
	// ValidateTypes runs this node's (and its descendants') share of
	// the post-parse type-resolution pass, returning the node's
	// resolved NodeType or ERROR on failure, in which case err is
	// populated.
	ValidateTypes(err *diagnostics.ParseError) NodeType

	// SetType asserts a type hint pushed down from a parent node.
	// It returns false and populates err if the hint is incompatible
	// with what this node has already resolved to.
	SetType(t NodeType, err *diagnostics.ParseError) bool

	// Evaluate computes this node's Value against row, given a type
	// hint from the caller (UNKNOWN if the caller has no preference).
	Evaluate(row Row, hint NodeType) value.Value

	// CanBeNumber reports whether this node's current value, for the
	// given row, can be treated as a number. Used by comparison and
	// plus nodes to decide between numeric and string evaluation.
	CanBeNumber(row Row) bool

	// Position returns the source range principally associated with
	// this node, used when the node is blamed in a diagnostic.
	Position() diagnostics.Range

	// String renders the subtree for debug output (tree_string).
	String() string
}

// wrongTypeError builds the "expected X, got Y" message shared by
// Literal.SetType and ColumnRef.SetType.
func wrongTypeError(want, got NodeType, at diagnostics.Range) diagnostics.ParseError {
	return diagnostics.NewParseErrorAt(
		fmt.Sprintf("Operand is the wrong type - expected a %s, but got a %s", want, got),
		at,
	)
}
