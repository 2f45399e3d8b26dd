package scanner

import "strings"

type implScanner struct {
	extension      string
	reservedPrefix string
}

// New creates a Scanner accepting files with extension (case-insensitive)
// whose names do not start with reservedPrefix.
func New(extension, reservedPrefix string) Scanner {
	return &implScanner{
		extension:      strings.ToLower(extension),
		reservedPrefix: reservedPrefix,
	}
}
