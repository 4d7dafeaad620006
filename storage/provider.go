package storage

import "errors"

// ErrNotUTF8 is returned when a file's content is not valid UTF-8 text
var ErrNotUTF8 = errors.New("file is not valid UTF-8 text")

// TextStore is the interface for plain-text note files
type TextStore interface {
	// Read returns the full content of the file at path
	Read(path string) (string, error)

	// Write replaces the file at path with content, creating it if needed
	Write(path, content string) error

	// List returns the names of the text files in the store's directory
	List() ([]string, error)

	// Resolve maps a user-supplied path or bare name to a file path
	Resolve(name string) string
}
