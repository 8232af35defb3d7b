package row

import "github.com/plnu/csvfilter/internal/ast"

// Row wraps one CSV data record, splitting it lazily into Field
// handles on first access to each column. It implements ast.Row.
type Row struct {
	record []string
	fields []*Field
}

// New wraps a CSV data record. The caller guarantees record's length
// matches the header it was read against.
func New(record []string) *Row {
	return &Row{record: record, fields: make([]*Field, len(record))}
}

// Field returns the handle for column i, constructing it on first
// access and reusing it on subsequent calls so AsNumber's memoisation
// is visible across the lifetime of the row.
func (r *Row) Field(i int) ast.Field {
	if r.fields[i] == nil {
		r.fields[i] = NewField(r.record[i])
	}
	return r.fields[i]
}
