package core

// errors.go classifies pipeline errors into short coded issues so every
// status line carries a stable reference.
//
//	FILE001 - Input file not found; the file is skipped
//	FILE002 - Input file exceeds the configured size limit; the file is skipped
//	FILE003 - Input encoding is not supported
//	FILE004 - File name is not a plain name inside the input directory
//	CSV001  - Header missing or mismatched; the file was read positionally
//	ENT001  - File name matches no entity; rows pass through uncleaned
//	IO001   - Cleaned file could not be written
//	ERR000  - Anything else
//
// None of these abort a run.

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrInputNotFound       = errors.New("input file not found")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrInvalidFileName     = errors.New("invalid file name")
	ErrHeaderMismatch      = errors.New("header mismatch")
	ErrUnknownEntity       = errors.New("unknown entity")
	ErrWriteOutput         = errors.New("write output")
)

// Issue describes a classified pipeline error.
type Issue struct {
	Code    string // Stable reference, e.g. "FILE001"
	Message string // What happened
}

func (i Issue) String() string {
	if i.Code == "" {
		return ""
	}
	return fmt.Sprintf("%s [%s]", i.Message, i.Code)
}

type issueRule struct {
	target error
	issue  Issue
}

// issueRules are checked in order with errors.Is; the first match wins.
var issueRules = []issueRule{
	{ErrInputNotFound, Issue{Code: "FILE001", Message: "File not found"}},
	{fs.ErrNotExist, Issue{Code: "FILE001", Message: "File not found"}},
	{ErrFileTooLarge, Issue{Code: "FILE002", Message: "File too large"}},
	{ErrUnsupportedEncoding, Issue{Code: "FILE003", Message: "Unsupported encoding"}},
	{ErrInvalidFileName, Issue{Code: "FILE004", Message: "Invalid file name"}},
	{ErrHeaderMismatch, Issue{Code: "CSV001", Message: "Header not recognized, read positionally"}},
	{ErrUnknownEntity, Issue{Code: "ENT001", Message: "No cleaner for file, passed through"}},
	{ErrWriteOutput, Issue{Code: "IO001", Message: "Could not write cleaned file"}},
}

var defaultIssue = Issue{Code: "ERR000", Message: "Unexpected error"}

// Classify maps an error to its Issue. Returns the zero Issue for nil.
func Classify(err error) Issue {
	if err == nil {
		return Issue{}
	}
	for _, rule := range issueRules {
		if errors.Is(err, rule.target) {
			return rule.issue
		}
	}
	return defaultIssue
}
