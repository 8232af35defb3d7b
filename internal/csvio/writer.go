package csvio

import (
	"encoding/csv"
	"io"
)

// Writer writes the header for a selected set of output columns
// followed by one CSV record per surviving row, limited to those
// columns in the given order.
type Writer struct {
	csv     *csv.Writer
	columns []int
}

// NewWriter wraps w, using delimiter as the output field separator.
// columns names the selected output column indices, in order, and
// headers supplies the original names to label them.
func NewWriter(w io.Writer, delimiter rune, headers []string, columns []int) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = headers[col]
	}
	if err := cw.Write(row); err != nil {
		return nil, err
	}
	return &Writer{csv: cw, columns: columns}, nil
}

// Write projects record onto the selected output columns and writes
// it as one CSV record.
func (w *Writer) Write(record []string) error {
	row := make([]string, len(w.columns))
	for i, col := range w.columns {
		row[i] = record[col]
	}
	return w.csv.Write(row)
}

// Flush flushes any buffered output.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
