// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Exit codes, one per error kind, so scripts can branch on failure causes.
// Per prd006-reports R4.1.
const (
	ExitOK      = 0
	ExitGeneric = 1
	ExitFile    = 2
	ExitWrite   = 3
	ExitBraces  = 4
	ExitConvert = 5
)

// FileError indicates an input file that is missing, unreadable, or not in
// the expected format.
type FileError struct {
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *FileError) Unwrap() error { return e.Cause }

// WriteError indicates a failure to emit an output artifact.
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WriteError) Unwrap() error { return e.Cause }

// BraceImbalanceError indicates that conversion was requested while the
// brace audit still reports a nonzero residual depth. Imbalance is the
// signed residue: positive means unclosed opens, negative means stray
// closers.
type BraceImbalanceError struct {
	Imbalance int
	Message   string
}

func (e *BraceImbalanceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("brace imbalance %+d: %s", e.Imbalance, e.Message)
	}
	return fmt.Sprintf("brace imbalance %+d", e.Imbalance)
}

// ConversionError indicates an external converter failure: the binary is
// missing, or it exited nonzero. Stderr carries the tool's captured
// diagnostics; ToolExitCode is the tool's own exit code when it ran.
type ConversionError struct {
	Message      string
	ToolExitCode int
	Stderr       string
	Cause        error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// ExitCode maps an error to the process exit code for its kind. Unknown
// errors (including usage errors) map to ExitGeneric; nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		fileErr  *FileError
		writeErr *WriteError
		braceErr *BraceImbalanceError
		convErr  *ConversionError
	)
	switch {
	case errors.As(err, &fileErr):
		return ExitFile
	case errors.As(err, &writeErr):
		return ExitWrite
	case errors.As(err, &braceErr):
		return ExitBraces
	case errors.As(err, &convErr):
		return ExitConvert
	default:
		return ExitGeneric
	}
}
