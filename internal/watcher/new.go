package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/kb-organizer/internal/logger"
)

// Options narrows which events trigger the handler.
type Options struct {
	// Match reports whether a changed file is relevant. Nil matches everything.
	Match func(name string) bool
	// Ignore lists paths whose events are dropped, typically the build outputs.
	Ignore []string
	// Debounce is the quiet period before the handler runs.
	Debounce time.Duration
}

// New creates a Watcher on inputDir that calls handler after changes settle.
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}

	ignore := make(map[string]struct{}, len(opts.Ignore))
	for _, p := range opts.Ignore {
		ignore[absPath(p)] = struct{}{}
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		match:    opts.Match,
		ignore:   ignore,
		debounce: opts.Debounce,
	}, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return filepath.Clean(abs)
	}
	return filepath.Clean(p)
}
