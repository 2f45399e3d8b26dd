package domain

import "sort"

// Uncategorized holds transcripts that matched no category keyword.
const Uncategorized = "Uncategorized"

// TranscriptRecord is the analysis result for a single transcript file.
// Empty VideoID or SourceURL means the header did not carry the field.
type TranscriptRecord struct {
	FileName      string
	VideoID       string
	SourceURL     string
	WordCount     int
	CharCount     int
	KeywordCounts map[string]int
	Body          string
}

// CategoryKeywords lists the match substrings for one category.
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

// KeywordTable is the ordered category configuration. Order matters: it is
// the tie-break order when two categories score the same.
type KeywordTable []CategoryKeywords

// CategoryAssignment groups transcripts by category. Each analyzed transcript
// appears in exactly one list, in scan order.
type CategoryAssignment map[string][]TranscriptRecord

// Names returns the category names in lexicographic order.
func (a CategoryAssignment) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total returns the number of assigned transcripts.
func (a CategoryAssignment) Total() int {
	total := 0
	for _, records := range a {
		total += len(records)
	}
	return total
}
