package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/kb-organizer/internal/config"
	"github.com/nguyentantai21042004/kb-organizer/internal/report"
)

// OutputPaths returns the artifact paths a build with cfg writes: the
// markdown report, its index and, when enabled, the docx rendition.
func OutputPaths(cfg *config.Config) []string {
	base := strings.TrimSuffix(cfg.Report.Output, filepath.Ext(cfg.Report.Output))
	paths := []string{cfg.Report.Output, base + "_index.txt"}
	if cfg.Report.Docx {
		paths = append(paths, base+".docx")
	}
	return paths
}

// writeOutputs renders and writes every artifact, returning their paths.
func (p *implProcessor) writeOutputs(ctx context.Context, in report.Input) ([]string, error) {
	paths := OutputPaths(p.cfg)

	if dir := filepath.Dir(paths[0]); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	markdown := p.builder.Markdown(in)

	p.logger.Info(ctx, "Creating consolidated knowledge base: %s", paths[0])
	if err := os.WriteFile(paths[0], []byte(markdown), 0644); err != nil {
		return nil, fmt.Errorf("write knowledge base: %w", err)
	}

	p.logger.Info(ctx, "Creating index: %s", paths[1])
	if err := os.WriteFile(paths[1], []byte(p.builder.Index(in)), 0644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	if len(paths) > 2 {
		p.logger.Info(ctx, "Creating docx: %s", paths[2])
		if err := report.WriteDocx(p.cfg.Report.Title, markdown, paths[2]); err != nil {
			return nil, fmt.Errorf("write docx: %w", err)
		}
	}

	return paths, nil
}
