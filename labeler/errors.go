package labeler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult signals that the current filters match zero comments.
// Informational, never fatal.
var ErrEmptyResult = errors.New("no comments match the current filters")

// ErrInvalidLabel is returned when a label outside {1,2,3} is assigned.
var ErrInvalidLabel = errors.New("label must be 1, 2 or 3")

// MissingColumnError reports required columns absent from an input file.
type MissingColumnError struct {
	File    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column(s): %s", e.File, strings.Join(e.Columns, ", "))
}

// ReadError wraps a failure to read or parse a previously saved output
// file. Callers recover by starting with an empty label store.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read labels %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failed save. The label store is left unchanged so
// the user can retry.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write labels %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
