package core

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes t to path as CSV with a header row and no index column.
// The file is written to a temporary sibling and renamed into place, so a
// failed run never leaves a truncated cleaned file behind.
func WriteFile(path string, t Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrWriteOutput, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWriteOutput, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // No-op once renamed

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: header: %w", ErrWriteOutput, err)
	}
	if err := w.WriteAll(t.Values()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: rows: %w", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrWriteOutput, tmpPath, err)
	}

	// CreateTemp uses 0600; cleaned files are meant to be read by the loader.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrWriteOutput, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
