package analyzer

import "github.com/nguyentantai21042004/kb-organizer/internal/domain"

// Analyzer turns raw transcript files into records.
type Analyzer interface {
	Analyze(fileName string, raw []byte) domain.TranscriptRecord
	AnalyzeFile(path string) (domain.TranscriptRecord, error)
}
