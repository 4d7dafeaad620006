package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyText    = errors.New("note text is required")

	// Editor errors
	ErrNoPath = errors.New("no file selected")
)
