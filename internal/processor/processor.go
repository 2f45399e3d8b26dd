package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
	"github.com/nguyentantai21042004/kb-organizer/internal/report"
	"github.com/nguyentantai21042004/kb-organizer/internal/summarizer"
)

// Process scans dir, analyzes and categorizes every candidate transcript and
// writes the report artifacts. Unreadable files are logged and skipped.
func (p *implProcessor) Process(ctx context.Context, dir string) (Result, error) {
	startTime := time.Now()

	names, err := p.scanner.List(dir)
	if err != nil {
		return Result{}, fmt.Errorf("scan transcripts: %w", err)
	}
	if len(names) == 0 {
		return Result{}, fmt.Errorf("%w in: %s", ErrNoTranscripts, dir)
	}

	p.logger.Info(ctx, "Analyzing %d transcript files...", len(names))

	records := make([]domain.TranscriptRecord, 0, len(names))
	failed := 0
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		rec, err := p.analyzer.AnalyzeFile(filepath.Join(dir, name))
		if err != nil {
			p.logger.Error(ctx, "Error analyzing %s: %v", name, err)
			failed++
			continue
		}
		p.logger.Debug(ctx, "Analyzed: %s (%d words)", name, rec.WordCount)
		records = append(records, rec)
	}

	p.logger.Info(ctx, "Successfully analyzed %d transcripts", len(records))

	categories := p.categorizer.Categorize(records)
	p.logger.Info(ctx, "Categorized into %d categories", len(categories))

	in := report.Input{
		Records:     records,
		Categories:  categories,
		Digests:     p.digest(ctx, categories),
		GeneratedAt: p.now(),
	}

	outputs, err := p.writeOutputs(ctx, in)
	if err != nil {
		return Result{}, err
	}

	p.logger.Info(ctx, "Knowledge base built in %s", time.Since(startTime))

	return Result{
		Found:      len(names),
		Analyzed:   len(records),
		Failed:     failed,
		Categories: categories,
		Outputs:    outputs,
		Summary:    p.builder.Summary(in),
	}, nil
}

// digest asks the summarizer for one digest per category. Failures only
// cost that category its digest.
func (p *implProcessor) digest(ctx context.Context, categories domain.CategoryAssignment) map[string]string {
	if p.digester == nil {
		return nil
	}

	digests := make(map[string]string)
	for _, name := range categories.Names() {
		if name == domain.Uncategorized {
			continue
		}
		text, err := p.digester.Summarize(ctx, name, categories[name])
		if err != nil {
			if errors.Is(err, summarizer.ErrNoAPIKeys) {
				return nil
			}
			p.logger.Warn(ctx, "Failed to summarize %s: %v", name, err)
			continue
		}
		digests[name] = text
	}
	return digests
}
