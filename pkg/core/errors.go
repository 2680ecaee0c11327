package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an ID does not match any note in the
	// collection.
	ErrNotFound = errors.New("note not found")

	// ErrCorrupted classifies repository reads that found a file but could
	// not make sense of it. The store resets to an empty collection.
	ErrCorrupted = errors.New("notes file is corrupted or invalid")

	// ErrMisplaced is returned by a Misplacer when there was no file to
	// lose in the first place.
	ErrMisplaced = errors.New("no notes file to misplace")
)
