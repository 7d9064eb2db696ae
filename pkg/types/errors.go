package types

import "errors"

// Store operation errors.
var (
	// ErrNotFound is returned when an update or lookup targets a row
	// that does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrParentNotFound is returned when an insert references a parent
	// row that does not exist.
	ErrParentNotFound = errors.New("referenced parent does not exist")

	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Boundary validation errors.
var (
	// ErrInvalidTimestamp is returned when a caller-supplied date-time
	// string cannot be parsed. Nothing is written in that case.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)
