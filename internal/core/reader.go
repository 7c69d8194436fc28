package core

// reader.go loads a raw entity file into a Table of text cells.
//
// Source files inconsistently include a header row, so reading is a
// two-attempt process:
//
//  1. Parse the first row as a header. If every expected column is named
//     there, select exactly those columns by name, in expected order.
//  2. Otherwise re-parse with no header and assign the expected names to the
//     first N columns by position.
//
// No type inference happens here; every value stays text until a cleaner
// coerces it.

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadOptions controls how a raw file is decoded.
type ReadOptions struct {
	Encoding    string // "utf-8" (default), "latin1", or "windows-1252"
	MaxFileSize int64  // Files larger than this are rejected; 0 disables the check
}

// ReadReport describes how a file was read.
type ReadReport struct {
	RawBytes   int64 // Bytes read from disk
	Rows       int
	Positional bool // Header missing or mismatched; columns were assigned by position
}

// HeaderIndex maps cleaned, lowercased column names to their position.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// When a name repeats, the first position wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

// LookupEncoding returns the text encoding registered under name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "utf-8", "utf8":
		// Strips a leading BOM and replaces invalid sequences with U+FFFD.
		return unicode.UTF8BOM, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// ReadFile loads path into a table with exactly the expected columns, or
// fewer when a header-less file is narrower than expected.
func ReadFile(path string, expected []string, opts ReadOptions) (Table, ReadReport, error) {
	var report ReadReport

	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return Table{}, report, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, report, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return Table{}, report, fmt.Errorf("stat %s: %w", path, err)
	}
	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		return Table{}, report, fmt.Errorf("%w: %s is %d bytes (limit %d)",
			ErrFileTooLarge, path, info.Size(), opts.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, report, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	counter := &countingReader{reader: f}
	data, err := io.ReadAll(transform.NewReader(counter, enc.NewDecoder()))
	if err != nil {
		return Table{}, report, fmt.Errorf("decode %s: %w", path, err)
	}
	report.RawBytes = counter.bytesRead

	t, err := Parse(data, expected)
	report.Positional = errors.Is(err, ErrHeaderMismatch)
	if err != nil && !report.Positional {
		return Table{}, report, fmt.Errorf("parse %s: %w", path, err)
	}
	report.Rows = t.Len()
	return t, report, nil
}

// Parse reads decoded CSV data using the header-then-positional strategy.
// A non-nil table is returned together with ErrHeaderMismatch when the
// positional fallback was used.
func Parse(data []byte, expected []string) (Table, error) {
	if t, ok := parseWithHeader(data, expected); ok {
		return t, nil
	}

	t, err := parsePositional(data, expected)
	if err != nil {
		return Table{}, err
	}
	return t, ErrHeaderMismatch
}

// countingReader tracks the bytes pulled through it.
type countingReader struct {
	reader    io.Reader
	bytesRead int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.bytesRead += int64(n)
	return n, err
}

func newCSVReader(data []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// parseWithHeader reports false when the data cannot be read as a header
// plus rows, or when the header lacks any expected column.
func parseWithHeader(data []byte, expected []string) (Table, bool) {
	records, err := newCSVReader(data).ReadAll()
	if err != nil || len(records) == 0 {
		return Table{}, false
	}

	header := records[0]
	idx := MakeHeaderIndex(header)

	positions := make([]int, len(expected))
	for i, name := range expected {
		pos, ok := idx[strings.ToLower(CleanCell(name))]
		if !ok {
			return Table{}, false
		}
		positions[i] = pos
	}

	t := NewTable(expected...)
	t.Rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		// A row wider than its header cannot be assigned to columns.
		if len(rec) > len(header) {
			return Table{}, false
		}
		row := make(Row, len(expected))
		for i, name := range expected {
			row[name] = cellAt(rec, positions[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, true
}

func parsePositional(data []byte, expected []string) (Table, error) {
	records, err := newCSVReader(data).ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return NewTable(expected...), nil
	}

	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	cols := expected
	if width < len(cols) {
		cols = cols[:width]
	}

	t := NewTable(cols...)
	t.Rows = make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(cols))
		for j, name := range cols {
			row[name] = cellAt(rec, j)
		}
		t.Rows[i] = row
	}
	return t, nil
}

func cellAt(rec []string, pos int) Cell {
	if pos >= len(rec) {
		return MissingCell(FieldText)
	}
	return TextCell(rec[pos])
}
