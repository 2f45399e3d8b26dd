package categorizer

import (
	"strings"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

// Score returns every category's score for body, in table order.
func (c *implCategorizer) Score(body string) []Score {
	lower := strings.ToLower(body)
	scores := make([]Score, len(c.table))
	for i, cat := range c.table {
		total := 0
		for _, kw := range cat.Keywords {
			total += strings.Count(lower, kw)
		}
		scores[i] = Score{Category: cat.Name, Value: total}
	}
	return scores
}

// Categorize groups records by best category, keeping input order within
// each group. The first category in table order wins a tie; a best score of
// zero means Uncategorized.
func (c *implCategorizer) Categorize(records []domain.TranscriptRecord) domain.CategoryAssignment {
	assigned := make(domain.CategoryAssignment)
	for _, rec := range records {
		name := best(c.Score(rec.Body))
		assigned[name] = append(assigned[name], rec)
	}
	return assigned
}

func best(scores []Score) string {
	winner := domain.Uncategorized
	top := 0
	for _, s := range scores {
		if s.Value > top {
			winner = s.Category
			top = s.Value
		}
	}
	return winner
}
