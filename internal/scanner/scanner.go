package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the sorted names of candidate files directly inside dir.
func (s *implScanner) List(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotADirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !s.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Match reports whether a base file name is a transcript candidate.
func (s *implScanner) Match(name string) bool {
	name = filepath.Base(name)
	if s.reservedPrefix != "" && strings.HasPrefix(name, s.reservedPrefix) {
		return false
	}
	return strings.ToLower(filepath.Ext(name)) == s.extension
}
