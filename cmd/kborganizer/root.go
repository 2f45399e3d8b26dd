package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/kb-organizer/internal/config"
	"github.com/nguyentantai21042004/kb-organizer/internal/logger"
	"github.com/nguyentantai21042004/kb-organizer/internal/processor"
	"github.com/nguyentantai21042004/kb-organizer/internal/scanner"
	"github.com/nguyentantai21042004/kb-organizer/internal/summarizer"
	"github.com/nguyentantai21042004/kb-organizer/internal/watcher"
)

var errUsage = errors.New("missing transcript directory")

type options struct {
	configPath string
	output     string
	logLevel   string
	docx       bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "kborganizer <transcript_directory>",
		Short: "Consolidate transcript files into a categorized knowledge base",
		Long: `kborganizer reads every .txt transcript in a directory, counts key terms,
assigns each transcript to its best-matching topic and writes a markdown
knowledge base (knowledge_base.md) plus a plain-text index.`,
		Example: "  kborganizer transcripts/\n  kborganizer transcripts/ --config kb.yaml --watch",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "knowledge base output path (default knowledge_base.md)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.docx, "docx", false, "also write a .docx rendition")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild whenever transcripts change")

	return cmd
}

func run(cmd *cobra.Command, opts *options, dir string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.output != "" {
		cfg.Report.Output = opts.output
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.docx {
		cfg.Report.Docx = true
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	var digester summarizer.Summarizer
	if len(cfg.Gemini.APIKeys) > 0 {
		digester = summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	}

	proc := processor.New(cfg, log, digester)
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := build(ctx, proc, dir, out); err != nil && !errors.Is(err, processor.ErrNoTranscripts) {
		return err
	}

	if !opts.watch {
		return nil
	}
	return watch(ctx, cfg, proc, log, dir, out)
}

// build runs one pipeline pass and prints its summary. An empty directory is
// reported but is not an error.
func build(ctx context.Context, proc processor.Processor, dir string, out io.Writer) error {
	res, err := proc.Process(ctx, dir)
	switch {
	case errors.Is(err, scanner.ErrNotFound):
		return fmt.Errorf("directory '%s' not found", dir)
	case errors.Is(err, scanner.ErrNotADirectory):
		return fmt.Errorf("'%s' is not a directory", dir)
	case errors.Is(err, processor.ErrNoTranscripts):
		fmt.Fprintf(out, "No transcript files found in: %s\n", dir)
		return err
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Analyzed %d of %d transcripts (%d failed)\n", res.Analyzed, res.Found, res.Failed)
	for _, path := range res.Outputs {
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
	fmt.Fprintln(out, res.Summary)
	return nil
}

func watch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, dir string, out io.Writer) error {
	match := scanner.New(cfg.Scanner.Extension, cfg.Scanner.ReservedPrefix).Match

	w, err := watcher.New(dir, func(ctx context.Context, dir string) error {
		if err := build(ctx, proc, dir, out); err != nil && !errors.Is(err, processor.ErrNoTranscripts) {
			return err
		}
		return nil
	}, log, watcher.Options{
		Match:    match,
		Ignore:   processor.OutputPaths(cfg),
		Debounce: cfg.Watch.Debounce,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s for changes. Press Ctrl+C to stop", dir)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	return nil
}
