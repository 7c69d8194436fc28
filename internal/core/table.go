package core

// table.go provides the column-level operations the entity cleaners chain
// together. Every operation returns a new Table and leaves its receiver
// untouched, so a cleaner reads as a fixed sequence of filters.
//
// Operations check column presence instead of assuming a fixed record shape:
// a source file may lack any optional column.

import (
	"strconv"
	"strings"
)

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) Table {
	return Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Has reports whether col is one of the table's columns.
func (t Table) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Present returns the subset of cols that exist in the table, in the order given.
func (t Table) Present(cols ...string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if t.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Select projects the table onto cols, skipping any that are absent.
func (t Table) Select(cols ...string) Table {
	keep := t.Present(cols...)
	out := Table{Columns: keep, Rows: make([]Row, len(t.Rows))}
	for i, row := range t.Rows {
		r := make(Row, len(keep))
		for _, c := range keep {
			r[c] = row[c]
		}
		out.Rows[i] = r
	}
	return out
}

// DedupeBy drops rows whose values on cols repeat an earlier row, keeping the
// first occurrence. With no cols, all columns are compared. Missing values
// compare equal to each other.
func (t Table) DedupeBy(cols ...string) Table {
	if len(cols) == 0 {
		cols = t.Columns
	}

	seen := make(map[string]struct{}, len(t.Rows))
	out := Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		k := rowKey(row, cols)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Rename applies fn to every column name.
func (t Table) Rename(fn func(string) string) Table {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = fn(c)
	}

	out := Table{Columns: names, Rows: make([]Row, len(t.Rows))}
	for i, row := range t.Rows {
		r := make(Row, len(names))
		for j, c := range t.Columns {
			r[names[j]] = row[c]
		}
		out.Rows[i] = r
	}
	return out
}

// Map replaces every value of col with fn(value). Absent columns are left alone.
func (t Table) Map(col string, fn func(Cell) Cell) Table {
	if !t.Has(col) {
		return t
	}

	out := Table{Columns: t.Columns, Rows: make([]Row, len(t.Rows))}
	for i, row := range t.Rows {
		r := make(Row, len(row))
		for k, v := range row {
			r[k] = v
		}
		r[col] = fn(row[col])
		out.Rows[i] = r
	}
	return out
}

// DropMissing drops rows holding the missing marker in any of cols.
// A column absent from the table counts as missing on every row.
func (t Table) DropMissing(cols ...string) Table {
	out := Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if hasMissing(row, cols) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Values returns the CSV encoding of every row, in column order.
func (t Table) Values() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			rec[j] = row[c].String()
		}
		out[i] = rec
	}
	return out
}

func hasMissing(row Row, cols []string) bool {
	for _, c := range cols {
		if !row[c].Valid() {
			return true
		}
	}
	return false
}

func rowKey(row Row, cols []string) string {
	var b strings.Builder
	for _, c := range cols {
		k := row[c].key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
