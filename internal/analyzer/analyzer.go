package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

const (
	videoIDLabel = "Video ID:"
	urlLabel     = "URL:"
)

// AnalyzeFile reads path and analyzes its contents.
func (a *implAnalyzer) AnalyzeFile(path string) (domain.TranscriptRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TranscriptRecord{}, fmt.Errorf("read transcript: %w", err)
	}
	return a.Analyze(filepath.Base(path), raw), nil
}

// Analyze parses header metadata, isolates the body and counts terms.
func (a *implAnalyzer) Analyze(fileName string, raw []byte) domain.TranscriptRecord {
	content := decode(raw)
	videoID, url := a.parseHeader(content)
	body := a.extractBody(content)

	return domain.TranscriptRecord{
		FileName:      fileName,
		VideoID:       videoID,
		SourceURL:     url,
		WordCount:     len(strings.Fields(body)),
		CharCount:     utf8.RuneCountInString(body),
		KeywordCounts: a.counter.Count(body),
		Body:          body,
	}
}

// parseHeader looks for labelled metadata in the first headerLines lines.
func (a *implAnalyzer) parseHeader(content string) (videoID, url string) {
	if a.headerLines <= 0 {
		return "", ""
	}

	lines := strings.SplitN(content, "\n", a.headerLines+1)
	if len(lines) > a.headerLines {
		lines = lines[:a.headerLines]
	}

	for _, line := range lines {
		if v, ok := strings.CutPrefix(line, videoIDLabel); ok {
			videoID = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(line, urlLabel); ok {
			url = strings.TrimSpace(v)
		}
	}
	return videoID, url
}

// extractBody returns the text after the separator run, or all of content
// when there is none.
func (a *implAnalyzer) extractBody(content string) string {
	if a.separator == "" {
		return content
	}

	idx := strings.Index(content, a.separator)
	if idx == -1 {
		return content
	}

	rest := content[idx+len(a.separator):]
	rest = strings.TrimLeft(rest, a.sepChar)
	return strings.TrimSpace(rest)
}

// decode converts raw bytes to UTF-8. A BOM selects UTF-8 or UTF-16;
// otherwise input is read as UTF-8 with invalid bytes replaced by U+FFFD.
func decode(raw []byte) string {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(out)
}
