// Package csvio wraps encoding/csv with the header-aware reading and
// column-projecting writing the command-line tool needs.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Reader reads a header record followed by a stream of data records,
// rejecting any data record whose field count does not match the
// header's.
type Reader struct {
	csv     *csv.Reader
	Headers []string
}

// NewReader wraps r, reading the comma-delimited header record
// immediately. It returns an error if the input is empty or
// malformed.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked explicitly below, for a clearer error message

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return &Reader{csv: cr, Headers: header}, nil
}

// Read returns the next data record. It returns io.EOF when the
// input is exhausted, and an error if a record's field count does
// not match the header's.
func (r *Reader) Read() ([]string, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}
	if len(record) != len(r.Headers) {
		return nil, fmt.Errorf("record has %d fields, want %d (matching the header)", len(record), len(r.Headers))
	}
	return record, nil
}
