// Package headers turns a CSV header record into the identifier
// table the lexer and the expression engine resolve column references
// against.
package headers

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/plnu/csvfilter/internal/lexer"
)

// Table maps original column names and synthesised aliases to
// zero-based column indices.
type Table struct {
	names   []string // original names, in file order
	aliases []string // Alias(i) for each column, in file order
	index   map[string]int
}

// New builds a Table from a CSV header record, assigning an alias to
// every column: the original name itself when it is a valid,
// unique identifier, otherwise a name derived from it via
// lexer.MakeValidIdentifier, de-duplicated with a numeric suffix.
func New(names []string) *Table {
	t := &Table{
		names:   append([]string(nil), names...),
		aliases: make([]string, len(names)),
		index:   make(map[string]int, len(names)),
	}

	for i, name := range names {
		alias := t.assign(name)
		t.aliases[i] = alias
		t.index[alias] = i
		if name != alias {
			if _, taken := t.index[name]; !taken {
				t.index[name] = i
			}
		}
	}
	return t
}

// assign picks a free alias for name against the columns already
// registered in t.index.
func (t *Table) assign(name string) string {
	if lexer.IsIdentifier(name) {
		if _, taken := t.index[name]; !taken {
			return name
		}
	}

	candidate := lexer.MakeValidIdentifier(name)
	if _, taken := t.index[candidate]; !taken {
		return candidate
	}
	for suffix := 1; ; suffix++ {
		next := candidate + strconv.Itoa(suffix)
		if _, taken := t.index[next]; !taken {
			return next
		}
	}
}

// IndexOf returns the zero-based column index for name (original or
// alias), or -1 if name is not recognised.
func (t *Table) IndexOf(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	return -1
}

// Alias returns the identifier used to render column i in debug
// output.
func (t *Table) Alias(i int) string {
	return t.aliases[i]
}

// Name returns the original column name at index i.
func (t *Table) Name(i int) string {
	return t.names[i]
}

// Len returns the number of columns.
func (t *Table) Len() int {
	return len(t.names)
}

// ResolveColumns resolves an output column selection (original names
// or aliases) to column indices, in the given order. An empty want
// selects every column in file order. The second return value names
// the first requested column that does not exist, or "" on success.
func (t *Table) ResolveColumns(want []string) ([]int, string) {
	if len(want) == 0 {
		all := make([]int, t.Len())
		for i := range all {
			all[i] = i
		}
		return all, ""
	}

	resolved := make([]int, 0, len(want))
	for _, name := range want {
		i := t.IndexOf(name)
		if i < 0 {
			return nil, name
		}
		resolved = append(resolved, i)
	}
	return resolved, ""
}

// Duplicates returns the requested column names that appear more than
// once in want, in first-occurrence order. The command-line tool uses
// this to warn about a redundant -columns selection.
func Duplicates(want []string) []string {
	seen := lo.Uniq(want)
	var dupes []string
	for _, name := range seen {
		if lo.Count(want, name) > 1 {
			dupes = append(dupes, name)
		}
	}
	return dupes
}
