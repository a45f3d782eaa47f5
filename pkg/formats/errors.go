package formats

import (
	"errors"
	"fmt"
	"io/fs"
)

// Parse errors.
var (
	ErrFaceCorners  = errors.New("face must have exactly 3 corners")
	ErrFaceIndex    = errors.New("face index out of range")
	ErrMissingField = errors.New("missing field")
	ErrBadNumber    = errors.New("invalid number")
)

// ParseError describes a malformed line in a text asset.
type ParseError struct {
	File string // file name, or "" when parsing an anonymous reader
	Line int    // 1-based line number
	Text string // offending line
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	name := e.File
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v (%q)", name, e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadStatus classifies the outcome of a Load call.
type LoadStatus int

// Load status values.
const (
	LoadOK        LoadStatus = iota // file read and parsed
	LoadMissing                     // file absent or unreadable
	LoadMalformed                   // file read but contents invalid
)

// String returns a human-readable status name.
func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// Status classifies an error returned by one of the Load functions.
func Status(err error) LoadStatus {
	if err == nil {
		return LoadOK
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return LoadMalformed
	}
	var pathErr *fs.PathError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &pathErr) {
		return LoadMissing
	}
	return LoadMalformed
}
