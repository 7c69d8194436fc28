package core

// convert.go provides total conversion functions from raw CSV text to typed
// cells.
//
// These functions handle the messy reality of community-maintained data:
//   - "\N" and other placeholders where a number belongs
//   - Surrounding whitespace
//   - Integral ids written as "3.0"
//
// None of them return errors: anything that fails to parse becomes a
// pgtype value with Valid=false, which the cleaners treat as the missing marker.

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// numericRegex validates that a string is a plain decimal literal.
// Matches integers, decimals, and scientific notation; rejects hex, NaN, Inf.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ToFloat8 converts a string to pgtype.Float8.
// Returns invalid for empty, non-numeric, NaN, and infinite input.
func ToFloat8(s string) pgtype.Float8 {
	s = strings.TrimSpace(s)
	if !numericRegex.MatchString(s) {
		return pgtype.Float8{Valid: false}
	}

	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: f, Valid: true}
}

// ToInt8 converts a string to pgtype.Int8.
// Integral text is parsed exactly; other numeric text is truncated toward zero.
// Returns invalid for non-numeric input and values outside the int64 range.
func ToInt8(s string) pgtype.Int8 {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return pgtype.Int8{Int64: i, Valid: true}
	}
	return floatToInt8(ToFloat8(s))
}

func floatToInt8(f pgtype.Float8) pgtype.Int8 {
	if !f.Valid {
		return pgtype.Int8{Valid: false}
	}
	t := math.Trunc(f.Float64)
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: int64(t), Valid: true}
}

// ToNumeric coerces a cell to a numeric cell. Integral input additionally
// keeps its exact integer value so a later integer cast is lossless.
func ToNumeric(c Cell) Cell {
	switch c.Type {
	case FieldNumeric:
		return c
	case FieldInteger:
		if !c.Int.Valid {
			return MissingCell(FieldNumeric)
		}
		return Cell{
			Type:  FieldNumeric,
			Int:   c.Int,
			Float: pgtype.Float8{Float64: float64(c.Int.Int64), Valid: true},
		}
	}

	if !c.Text.Valid {
		return MissingCell(FieldNumeric)
	}
	out := Cell{Type: FieldNumeric, Float: ToFloat8(c.Text.String)}
	if !out.Float.Valid {
		return MissingCell(FieldNumeric)
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(c.Text.String), 10, 64); err == nil {
		out.Int = pgtype.Int8{Int64: i, Valid: true}
	}
	return out
}

// ToInteger casts a cell to an integer cell. Missing values stay missing,
// which makes the result a nullable integer.
func ToInteger(c Cell) Cell {
	switch c.Type {
	case FieldInteger:
		return c
	case FieldNumeric:
		if c.Int.Valid {
			return Cell{Type: FieldInteger, Int: c.Int}
		}
		return Cell{Type: FieldInteger, Int: floatToInt8(c.Float)}
	}

	if !c.Text.Valid {
		return MissingCell(FieldInteger)
	}
	return Cell{Type: FieldInteger, Int: ToInt8(c.Text.String)}
}

// NormalizeColumnName lowercases a column name and replaces spaces with
// underscores: "Source airport ID" becomes "source_airport_id".
func NormalizeColumnName(name string) string {
	return strings.ReplaceAll(cases.Lower(language.Und).String(name), " ", "_")
}

// CleanCell removes common CSV artifacts from a header cell:
// - Trims whitespace
// - Removes a leading UTF-8 BOM
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat writes the shortest representation that round-trips, keeping a
// trailing ".0" on integral values so float columns read back as floats.
// Magnitudes of 1e16 and above, or below 1e-4, use exponent form ("1e+300").
func formatFloat(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
