// Package pipeline drives a cleaning run: for every configured raw file it
// reads, dispatches to the matching entity cleaner, and writes the cleaned
// file, one file at a time.
//
// No per-file condition aborts a run. A missing or unreadable file is
// reported and skipped; the remaining files are processed as usual.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/flightgraph/internal/core"
	"github.com/JonMunkholm/flightgraph/internal/logging"
	"github.com/google/uuid"
)

// FileSpec names one raw file and the raw columns expected in it.
type FileSpec struct {
	Name    string
	Columns []string
}

// DefaultFiles returns the file table for every registered entity, in
// dispatch order.
func DefaultFiles() []FileSpec {
	defs := core.All()
	files := make([]FileSpec, len(defs))
	for i, def := range defs {
		files[i] = FileSpec{Name: def.Info.FileName, Columns: def.Columns()}
	}
	return files
}

// Options configures a run.
type Options struct {
	InputDir  string
	OutputDir string
	Files     []FileSpec
	Read      core.ReadOptions
	Status    io.Writer // Human-readable status lines; nil discards them
}

// Status is the outcome of one file.
type Status string

const (
	StatusCleaned       Status = "cleaned"
	StatusPassedThrough Status = "passed_through"
	StatusSkipped       Status = "skipped"
	StatusFailed        Status = "failed"
)

// Result describes what happened to one configured file.
type Result struct {
	File       string
	Entity     string // Empty when no entity matched the file name
	InputPath  string
	OutputPath string
	Status     Status
	Bytes      int64 // Raw input size
	RowsIn     int
	RowsOut    int
	Positional bool // Header missing or mismatched
	Err        error
	Duration   time.Duration
}

// Run processes every file in opts.Files sequentially. It returns an error
// only when ctx is cancelled; per-file failures are reported in the results.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	out := opts.Status
	if out == nil {
		out = io.Discard
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)
	logger.Info("cleaning run started",
		"input_dir", opts.InputDir,
		"output_dir", opts.OutputDir,
		"files", len(opts.Files),
	)

	results := make([]Result, 0, len(opts.Files))
	for _, spec := range opts.Files {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("run cancelled before %s: %w", spec.Name, err)
		}
		results = append(results, processFile(ctx, opts, spec, out))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaning complete. Clean CSVs ready for import")
	logger.Info("cleaning run finished", "files", len(results))

	return results, nil
}

func processFile(ctx context.Context, opts Options, spec FileSpec, out io.Writer) Result {
	start := time.Now()
	res := Result{
		File:       spec.Name,
		InputPath:  filepath.Join(opts.InputDir, spec.Name),
		OutputPath: filepath.Join(opts.OutputDir, spec.Name),
	}
	logger := logging.WithFields(ctx, "file", spec.Name)

	fmt.Fprintf(out, "Cleaning %s...\n", spec.Name)

	if filepath.Base(spec.Name) != spec.Name || strings.Contains(spec.Name, "..") {
		return finish(res, start, StatusFailed, fmt.Errorf("%w: %q", core.ErrInvalidFileName, spec.Name), out, logger)
	}

	raw, report, err := core.ReadFile(res.InputPath, spec.Columns, opts.Read)
	if err != nil {
		return finish(res, start, StatusSkipped, err, out, logger)
	}
	res.Bytes = report.RawBytes
	res.RowsIn = report.Rows
	res.Positional = report.Positional
	if report.Positional {
		logger.Info("header not recognized, columns assigned by position",
			"code", core.Classify(core.ErrHeaderMismatch).Code,
			"columns", len(raw.Columns),
		)
	}

	cleaned := raw
	status := StatusPassedThrough
	if def, ok := core.Match(spec.Name); ok {
		res.Entity = def.Info.Key
		cleaned = def.Clean(raw)
		status = StatusCleaned
	} else {
		issue := core.Classify(core.ErrUnknownEntity)
		fmt.Fprintln(out, issue)
		logger.Warn("no cleaner for file", "code", issue.Code)
	}
	res.RowsOut = cleaned.Len()

	if err := core.WriteFile(res.OutputPath, cleaned); err != nil {
		return finish(res, start, StatusFailed, err, out, logger)
	}

	fmt.Fprintf(out, "Cleaned file written: %s (%d rows)\n", res.OutputPath, res.RowsOut)
	return finish(res, start, status, nil, out, logger)
}

// finish records the outcome of a file, printing a status line for failures.
func finish(res Result, start time.Time, status Status, err error, out io.Writer, logger *slog.Logger) Result {
	res.Status = status
	res.Err = err
	res.Duration = time.Since(start)

	if err != nil {
		issue := core.Classify(err)
		path := res.InputPath
		if errors.Is(err, core.ErrWriteOutput) {
			path = res.OutputPath
		}
		fmt.Fprintf(out, "%s, skipping: %s [%s]\n", issue.Message, path, issue.Code)
		logger.Warn("file not cleaned", "status", status, "code", issue.Code, "error", err)
		return res
	}

	logger.Info("file processed",
		"status", status,
		"bytes", res.Bytes,
		"rows_in", res.RowsIn,
		"rows_out", res.RowsOut,
		"duration", res.Duration,
	)
	return res
}
