package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an id that is not in the collection
var ErrNotFound = errors.New("record not found")

// IOError reports a backing file that could not be created, read or written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a backing file whose contents are not a JSON array of records
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
