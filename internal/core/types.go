package core

import "github.com/jackc/pgx/v5/pgtype"

// FieldType represents the type a column holds after cleaning.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
	FieldInteger
)

// FieldSpec describes a single raw column of an entity file.
type FieldSpec struct {
	Name     string    // Raw column header name, e.g. "Airport ID"
	Type     FieldType // Type after cleaning
	Required bool      // Rows missing this value are dropped by the cleaner
	Keep     bool      // Column survives the cleaner's projection
}

// Cell is a single table value. A cell whose Valid reports false is the
// missing marker: absent, or failed to parse. It is distinct from a present
// empty string.
type Cell struct {
	Type  FieldType
	Text  pgtype.Text
	Int   pgtype.Int8
	Float pgtype.Float8
}

// TextCell wraps raw text in a present cell, even when s is empty.
func TextCell(s string) Cell {
	return Cell{Type: FieldText, Text: pgtype.Text{String: s, Valid: true}}
}

// MissingCell returns the missing marker for the given type.
func MissingCell(t FieldType) Cell {
	return Cell{Type: t}
}

// Valid reports whether the cell holds a value.
func (c Cell) Valid() bool {
	switch c.Type {
	case FieldInteger:
		return c.Int.Valid
	case FieldNumeric:
		return c.Float.Valid
	default:
		return c.Text.Valid
	}
}

// String returns the CSV encoding of the cell. Missing cells encode as "".
func (c Cell) String() string {
	if !c.Valid() {
		return ""
	}
	switch c.Type {
	case FieldInteger:
		return formatInt(c.Int.Int64)
	case FieldNumeric:
		if c.Int.Valid {
			return formatFloat(float64(c.Int.Int64))
		}
		return formatFloat(c.Float.Float64)
	default:
		return c.Text.String
	}
}

// key is used for duplicate detection. Missing cells and empty text share
// one key, since both are written as an empty field; that key never collides
// with a non-empty value.
func (c Cell) key() string {
	if !c.Valid() || (c.Type == FieldText && c.Text.String == "") {
		return "\x00"
	}
	return "\x01" + c.String()
}

// Row maps a column name to its value.
type Row map[string]Cell

// Table is an ordered set of columns and the rows holding them. Every row
// carries a cell for every column.
type Table struct {
	Columns []string
	Rows    []Row
}

// EntityInfo contains display and dispatch information about an entity.
type EntityInfo struct {
	Key      string // Unique identifier: "airports"
	FileName string // Raw and cleaned file name: "airports.csv"
	Match    string // Substring identifying the entity in a file name: "airport"
	Order    int    // Dispatch precedence; lower matches first
}

// CleanFunc turns a raw table into its cleaned form. It never fails: invalid
// values become missing markers and are dropped or kept per entity rules.
type CleanFunc func(Table) Table

// EntityDefinition contains everything needed to clean one entity file.
type EntityDefinition struct {
	Info       EntityInfo
	FieldSpecs []FieldSpec
	Clean      CleanFunc
}

// Columns returns the expected raw column names in order.
func (d EntityDefinition) Columns() []string {
	cols := make([]string, len(d.FieldSpecs))
	for i, spec := range d.FieldSpecs {
		cols[i] = spec.Name
	}
	return cols
}

// Kept returns the names of specs that survive an entity's projection.
func Kept(specs []FieldSpec) []string {
	var out []string
	for _, spec := range specs {
		if spec.Keep {
			out = append(out, spec.Name)
		}
	}
	return out
}

// Required returns the names of specs whose values must be present.
func Required(specs []FieldSpec) []string {
	var out []string
	for _, spec := range specs {
		if spec.Required {
			out = append(out, spec.Name)
		}
	}
	return out
}
