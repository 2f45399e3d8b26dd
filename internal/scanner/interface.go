package scanner

import "errors"

var (
	// ErrNotFound is returned when the input directory does not exist.
	ErrNotFound = errors.New("directory not found")
	// ErrNotADirectory is returned when the input path is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// Scanner lists candidate transcript files in a directory.
type Scanner interface {
	List(dir string) ([]string, error)
	Match(name string) bool
}
