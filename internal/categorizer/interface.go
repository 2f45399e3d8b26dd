package categorizer

import "github.com/nguyentantai21042004/kb-organizer/internal/domain"

// Score is one category's keyword hit total for a body.
type Score struct {
	Category string
	Value    int
}

// Categorizer assigns each transcript to its best-scoring category.
type Categorizer interface {
	Score(body string) []Score
	Categorize(records []domain.TranscriptRecord) domain.CategoryAssignment
}
