package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler rebuilds whatever depends on the watched directory.
type EventHandler func(ctx context.Context, dir string) error
