package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

// ErrNoTranscripts is returned when the input directory holds no candidate files.
var ErrNoTranscripts = errors.New("no transcript files found")

// Result describes one completed build.
type Result struct {
	Found      int
	Analyzed   int
	Failed     int
	Categories domain.CategoryAssignment
	Outputs    []string
	Summary    string
}

// Processor builds the knowledge base for a transcript directory.
type Processor interface {
	Process(ctx context.Context, dir string) (Result, error)
}
