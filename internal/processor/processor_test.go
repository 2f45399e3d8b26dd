package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nguyentantai21042004/kb-organizer/internal/config"
	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
	"github.com/nguyentantai21042004/kb-organizer/internal/logger"
	"github.com/nguyentantai21042004/kb-organizer/internal/scanner"
	"github.com/nguyentantai21042004/kb-organizer/internal/summarizer"
)

var separator = strings.Repeat("=", 40)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Report.Output = filepath.Join(t.TempDir(), "out", "knowledge_base.md")
	require.NoError(t, cfg.Validate())
	return cfg
}

func writeTranscript(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

type fakeDigester struct {
	digests map[string]string
	fail    map[string]bool
	calls   []string
}

func (f *fakeDigester) Summarize(ctx context.Context, category string, records []domain.TranscriptRecord) (string, error) {
	f.calls = append(f.calls, category)
	if f.fail[category] {
		return "", errors.New("boom")
	}
	return f.digests[category], nil
}

func TestProcessScenario(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", "Video ID: 123\nURL: http://x\n"+separator+"\nprocurement procurement vendor")
	cfg := testConfig(t)

	res, err := New(cfg, logger.NewNop(), nil).Process(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Found)
	assert.Equal(t, 1, res.Analyzed)
	assert.Zero(t, res.Failed)
	require.Len(t, res.Categories["Procurement"], 1)

	rec := res.Categories["Procurement"][0]
	assert.Equal(t, 3, rec.WordCount)
	assert.Equal(t, map[string]int{"procurement": 2, "vendor": 1}, rec.KeywordCounts)

	assert.Equal(t, OutputPaths(cfg), res.Outputs)
	require.Len(t, res.Outputs, 2)

	md, err := os.ReadFile(res.Outputs[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "**Source:** [123](http://x)")
	assert.Contains(t, string(md), "- [Procurement](#procurement) (1 transcripts)")

	idx, err := os.ReadFile(res.Outputs[1])
	require.NoError(t, err)
	assert.Contains(t, string(idx), "  - a.txt | http://x | 3 words\n")
	assert.True(t, strings.HasSuffix(res.Outputs[1], "knowledge_base_index.txt"))

	assert.Contains(t, res.Summary, "Procurement")
}

func TestProcessEmptyDirectory(t *testing.T) {
	cfg := testConfig(t)

	_, err := New(cfg, logger.NewNop(), nil).Process(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNoTranscripts)

	for _, path := range OutputPaths(cfg) {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s should not exist", path)
	}
}

func TestProcessOnlyReservedFiles(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "_notes.txt", separator+"\nprocurement")
	cfg := testConfig(t)

	_, err := New(cfg, logger.NewNop(), nil).Process(context.Background(), dir)
	assert.ErrorIs(t, err, ErrNoTranscripts)

	_, statErr := os.Stat(cfg.Report.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessMissingDirectory(t *testing.T) {
	_, err := New(testConfig(t), logger.NewNop(), nil).Process(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, scanner.ErrNotFound)
}

func TestProcessFileInsteadOfDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", "x")

	_, err := New(testConfig(t), logger.NewNop(), nil).Process(context.Background(), filepath.Join(dir, "a.txt"))
	assert.ErrorIs(t, err, scanner.ErrNotADirectory)
}

func TestProcessSkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "good.txt", separator+"\npayroll payroll")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing-target"), filepath.Join(dir, "broken.txt")))

	core, logs := observer.New(zapcore.ErrorLevel)
	res, err := New(testConfig(t), logger.NewFromZap(zap.New(core)), nil).Process(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Found)
	assert.Equal(t, 1, res.Analyzed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Categories.Total())
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "broken.txt")
}

func TestProcessPartitionInvariant(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "1.txt", separator+"\nprocurement supplier")
	writeTranscript(t, dir, "2.txt", separator+"\nthe candidate applicant pipeline")
	writeTranscript(t, dir, "3.txt", separator+"\nnothing to see")
	writeTranscript(t, dir, "4.txt", "no separator but payroll and benefits")

	res, err := New(testConfig(t), logger.NewNop(), nil).Process(context.Background(), dir)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, name := range res.Categories.Names() {
		for _, rec := range res.Categories[name] {
			seen[rec.FileName]++
		}
	}
	assert.Equal(t, map[string]int{"1.txt": 1, "2.txt": 1, "3.txt": 1, "4.txt": 1}, seen)
	assert.Len(t, res.Categories[domain.Uncategorized], 1)
	assert.Equal(t, "3.txt", res.Categories[domain.Uncategorized][0].FileName)
}

func TestProcessCustomKeywordTable(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", separator+"\nkubernetes helm")
	cfg := testConfig(t)
	cfg.Categories = []config.CategoryConfig{
		{Name: "Platform", Keywords: []string{"kubernetes"}},
		{Name: "Tooling", Keywords: []string{"helm"}},
	}

	res, err := New(cfg, logger.NewNop(), nil).Process(context.Background(), dir)
	require.NoError(t, err)

	assert.Len(t, res.Categories["Platform"], 1)
}

func TestProcessWithDigests(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", separator+"\nprocurement")
	writeTranscript(t, dir, "b.txt", separator+"\npayroll")
	writeTranscript(t, dir, "c.txt", separator+"\nquiet")
	cfg := testConfig(t)

	digester := &fakeDigester{
		digests: map[string]string{"Procurement": "All about buying."},
		fail:    map[string]bool{"HRIS & HR Systems": true},
	}

	res, err := New(cfg, logger.NewNop(), digester).Process(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"HRIS & HR Systems", "Procurement"}, digester.calls)
	md, err := os.ReadFile(res.Outputs[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "**Summary:** All about buying.")
}

func TestProcessDigesterWithoutKeys(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", separator+"\nprocurement")

	res, err := New(testConfig(t), logger.NewNop(), summarizer.New(nil, "", logger.NewNop())).Process(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Analyzed)
}

func TestProcessWritesDocx(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", separator+"\nprocurement")
	cfg := testConfig(t)
	cfg.Report.Docx = true

	res, err := New(cfg, logger.NewNop(), nil).Process(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, res.Outputs, 3)
	assert.True(t, strings.HasSuffix(res.Outputs[2], "knowledge_base.docx"))
	_, err = os.Stat(res.Outputs[2])
	assert.NoError(t, err)
}

func TestProcessGeneratedAt(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", separator+"\nprocurement")
	cfg := testConfig(t)

	p := New(cfg, logger.NewNop(), nil).(*implProcessor)
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) }

	res, err := p.Process(context.Background(), dir)
	require.NoError(t, err)

	md, err := os.ReadFile(res.Outputs[0])
	require.NoError(t, err)
	assert.Contains(t, string(md), "_Generated 2026-01-02 03:04_")
}

func TestProcessCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(t), logger.NewNop(), nil).Process(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutputPaths(t *testing.T) {
	cfg := &config.Config{Report: config.ReportConfig{Output: "kb/report.md", Docx: true}}

	assert.Equal(t, []string{"kb/report.md", "kb/report_index.txt", "kb/report.docx"}, OutputPaths(cfg))
}
