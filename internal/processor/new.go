package processor

import (
	"time"

	"github.com/nguyentantai21042004/kb-organizer/internal/analyzer"
	"github.com/nguyentantai21042004/kb-organizer/internal/categorizer"
	"github.com/nguyentantai21042004/kb-organizer/internal/config"
	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
	"github.com/nguyentantai21042004/kb-organizer/internal/logger"
	"github.com/nguyentantai21042004/kb-organizer/internal/report"
	"github.com/nguyentantai21042004/kb-organizer/internal/scanner"
	"github.com/nguyentantai21042004/kb-organizer/internal/summarizer"
)

type implProcessor struct {
	cfg         *config.Config
	scanner     scanner.Scanner
	analyzer    analyzer.Analyzer
	categorizer categorizer.Categorizer
	builder     report.Builder
	digester    summarizer.Summarizer
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Processor from a validated config. digester may be nil.
func New(cfg *config.Config, log logger.Logger, digester summarizer.Summarizer) Processor {
	return &implProcessor{
		cfg:     cfg,
		scanner: scanner.New(cfg.Scanner.Extension, cfg.Scanner.ReservedPrefix),
		analyzer: analyzer.New(analyzer.Options{
			Terms:           cfg.Analyzer.Terms,
			HeaderLines:     cfg.Analyzer.HeaderLines,
			SeparatorChar:   cfg.Analyzer.SeparatorChar,
			SeparatorLength: cfg.Analyzer.SeparatorLength,
		}),
		categorizer: categorizer.New(toKeywordTable(cfg.Categories)),
		builder: report.New(report.Options{
			Title:           cfg.Report.Title,
			ExcerptLimit:    cfg.Report.ExcerptLimit,
			TopTerms:        cfg.Report.TopTerms,
			TopTermsPerFile: cfg.Report.TopTermsPerFile,
		}),
		digester: digester,
		logger:   log,
		now:      time.Now,
	}
}

// toKeywordTable keeps config order; nil means the built-in table.
func toKeywordTable(cfg []config.CategoryConfig) domain.KeywordTable {
	if len(cfg) == 0 {
		return nil
	}
	table := make(domain.KeywordTable, 0, len(cfg))
	for _, cat := range cfg {
		table = append(table, domain.CategoryKeywords{
			Name:     cat.Name,
			Keywords: cat.Keywords,
		})
	}
	return table
}
