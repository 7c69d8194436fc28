// Package tables registers the airport, airline and route cleaners with the
// core registry. Import this package to ensure all entities are registered.
package tables

import "github.com/JonMunkholm/flightgraph/internal/core"

// normalizeAll maps raw column names to their cleaned form.
func normalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = core.NormalizeColumnName(n)
	}
	return out
}

// numericColumns returns the cleaned names of kept columns that hold numbers
// after cleaning, integers included.
func numericColumns(specs []core.FieldSpec) []string {
	var out []string
	for _, spec := range specs {
		if spec.Keep && spec.Type != core.FieldText {
			out = append(out, core.NormalizeColumnName(spec.Name))
		}
	}
	return out
}

// integerColumns returns the cleaned names of kept integer columns.
func integerColumns(specs []core.FieldSpec) []string {
	var out []string
	for _, spec := range specs {
		if spec.Keep && spec.Type == core.FieldInteger {
			out = append(out, core.NormalizeColumnName(spec.Name))
		}
	}
	return out
}

// castIntegers casts every listed column that exists to a nullable integer.
func castIntegers(t core.Table, cols ...string) core.Table {
	for _, col := range cols {
		t = t.Map(col, core.ToInteger)
	}
	return t
}

// coerceNumeric applies numeric coercion to every listed column that exists.
func coerceNumeric(t core.Table, cols ...string) core.Table {
	for _, col := range cols {
		t = t.Map(col, core.ToNumeric)
	}
	return t
}
