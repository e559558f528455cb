package gpx

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when a track path does not resolve to a readable regular file.
// Errors carrying it also wrap the underlying fs error, if any.
var ErrFileNotFound = errors.New("track file not found")

// ValidationError is returned when a document fails schema validation
// and processing was not forced.
type ValidationError struct {
	Name        string
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("invalid GPX file %s", e.Name)
	}
	first := e.Diagnostics[0]
	return fmt.Sprintf("invalid GPX file %s: %d schema violation(s), first at line %d: %s",
		e.Name, len(e.Diagnostics), first.Line, first.Message)
}

// ParseError is returned when a required value of a retained trackpoint
// is missing or malformed. Extraction does not attempt to recover.
type ParseError struct {
	Name string

	// Index is the position of the offending trkpt among all trkpt elements, or -1
	// if the document itself could not be parsed.
	Index int

	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parse GPX file %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("parse GPX file %s: trkpt %d: %s %q: %v", e.Name, e.Index, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errMissing = errors.New("missing")
	errRange   = errors.New("out of range")
)
