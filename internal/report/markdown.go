package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

const ruleWidth = 80

type termCount struct {
	term  string
	count int
}

// Markdown renders the full knowledge base document.
func (b *implBuilder) Markdown(in Input) string {
	var sb strings.Builder
	names := in.Categories.Names()

	fmt.Fprintf(&sb, "# %s\n\n", b.opts.Title)
	fmt.Fprintf(&sb, "**Generated from %d video transcripts**\n\n", len(in.Records))
	if !in.GeneratedAt.IsZero() {
		fmt.Fprintf(&sb, "_Generated %s_\n\n", in.GeneratedAt.Format("2006-01-02 15:04"))
	}
	sb.WriteString("---\n\n")

	sb.WriteString("## Table of Contents\n\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- [%s](#%s) (%d transcripts)\n", name, anchor(name), len(in.Categories[name]))
	}
	sb.WriteString("\n---\n\n")

	b.writeOverview(&sb, in, len(names))

	for _, name := range names {
		b.writeCategory(&sb, name, in.Categories[name], in.Digests[name])
	}

	return sb.String()
}

func (b *implBuilder) writeOverview(sb *strings.Builder, in Input, categories int) {
	var words, chars int
	totals := make(map[string]int)
	for _, rec := range in.Records {
		words += rec.WordCount
		chars += rec.CharCount
		for term, n := range rec.KeywordCounts {
			totals[term] += n
		}
	}

	sb.WriteString("## Overview Statistics\n\n")
	fmt.Fprintf(sb, "- **Total Transcripts:** %s\n", humanize.Comma(int64(len(in.Records))))
	fmt.Fprintf(sb, "- **Total Words:** %s\n", humanize.Comma(int64(words)))
	fmt.Fprintf(sb, "- **Total Characters:** %s\n", humanize.Comma(int64(chars)))
	fmt.Fprintf(sb, "- **Categories:** %d\n\n", categories)

	sb.WriteString("### Most Frequent Key Terms\n\n")
	sb.WriteString("| Term | Occurrences |\n")
	sb.WriteString("|------|-------------|\n")
	for _, tc := range topTerms(totals, b.opts.TopTerms) {
		fmt.Fprintf(sb, "| %s | %s |\n", tc.term, humanize.Comma(int64(tc.count)))
	}
	sb.WriteString("\n---\n\n")
}

func (b *implBuilder) writeCategory(sb *strings.Builder, name string, records []domain.TranscriptRecord, digest string) {
	fmt.Fprintf(sb, "## %s\n\n", name)
	if digest = strings.TrimSpace(digest); digest != "" {
		fmt.Fprintf(sb, "**Summary:** %s\n\n", digest)
	}
	fmt.Fprintf(sb, "**%d transcripts in this category**\n\n", len(records))

	for i, rec := range records {
		fmt.Fprintf(sb, "### %s - Transcript %d\n\n", name, i+1)
		sb.WriteString(sourceLine(rec))
		fmt.Fprintf(sb, "**Stats:** %s words | %s characters\n\n",
			humanize.Comma(int64(rec.WordCount)), humanize.Comma(int64(rec.CharCount)))

		if terms := topTerms(rec.KeywordCounts, b.opts.TopTermsPerFile); len(terms) > 0 {
			parts := make([]string, len(terms))
			for j, tc := range terms {
				parts[j] = fmt.Sprintf("%s (%d)", tc.term, tc.count)
			}
			fmt.Fprintf(sb, "**Key Terms Found:** %s\n\n", strings.Join(parts, ", "))
		}

		sb.WriteString("**Transcript:**\n\n")
		text, truncated := excerpt(rec.Body, b.opts.ExcerptLimit)
		sb.WriteString("> " + strings.ReplaceAll(text, "\n", "\n> "))
		if truncated {
			sb.WriteString("...\n\n")
			fmt.Fprintf(sb, "*[Full transcript: %s characters]*\n\n", humanize.Comma(int64(rec.CharCount)))
		} else {
			sb.WriteString("\n\n")
		}

		sb.WriteString("---\n\n")
	}
}

// Index renders the plain-text index grouped by category.
func (b *implBuilder) Index(in Input) string {
	var sb strings.Builder

	sb.WriteString("KNOWLEDGE BASE INDEX\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	for _, name := range in.Categories.Names() {
		records := in.Categories[name]
		fmt.Fprintf(&sb, "\n%s (%d transcripts)\n", strings.ToUpper(name), len(records))
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, rec := range records {
			fmt.Fprintf(&sb, "  - %s", rec.FileName)
			if rec.SourceURL != "" {
				fmt.Fprintf(&sb, " | %s", rec.SourceURL)
			}
			fmt.Fprintf(&sb, " | %s words\n", humanize.Comma(int64(rec.WordCount)))
		}
	}

	return sb.String()
}

// sourceLine prefers a link built from the video id and URL, then the bare
// video id, then the file name.
func sourceLine(rec domain.TranscriptRecord) string {
	switch {
	case rec.SourceURL != "":
		label := rec.VideoID
		if label == "" {
			label = rec.SourceURL
		}
		return fmt.Sprintf("**Source:** [%s](%s)\n\n", label, rec.SourceURL)
	case rec.VideoID != "":
		return fmt.Sprintf("**Video ID:** %s\n\n", rec.VideoID)
	default:
		return fmt.Sprintf("**File:** %s\n\n", rec.FileName)
	}
}

// anchor mirrors the heading slug markdown renderers generate.
func anchor(category string) string {
	slug := strings.ToLower(category)
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "&", "")
}

// topTerms sorts by descending count, then term, and keeps the first n.
func topTerms(counts map[string]int, n int) []termCount {
	terms := make([]termCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, termCount{term: term, count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].count != terms[j].count {
			return terms[i].count > terms[j].count
		}
		return terms[i].term < terms[j].term
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// excerpt cuts body to limit characters.
func excerpt(body string, limit int) (string, bool) {
	if utf8.RuneCountInString(body) <= limit {
		return body, false
	}
	return string([]rune(body)[:limit]), true
}
