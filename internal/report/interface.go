package report

import (
	"time"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

// Input is everything a render needs. Records are the successfully analyzed
// transcripts in scan order; Digests is optional, keyed by category.
type Input struct {
	Records     []domain.TranscriptRecord
	Categories  domain.CategoryAssignment
	Digests     map[string]string
	GeneratedAt time.Time
}

// Builder renders the knowledge base documents.
type Builder interface {
	Markdown(in Input) string
	Index(in Input) string
	Summary(in Input) string
}
