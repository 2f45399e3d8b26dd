package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

// Summarizer produces a short LLM-written digest for one category.
type Summarizer interface {
	Summarize(ctx context.Context, category string, records []domain.TranscriptRecord) (string, error)
}
