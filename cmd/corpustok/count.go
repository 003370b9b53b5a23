package main

import (
	"github.com/spf13/cobra"

	"corpustok/internal/config"
	"corpustok/internal/logger"
	"corpustok/internal/pipeline"
	"corpustok/internal/report"
	"corpustok/internal/tokenizer"
)

func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [dir]",
		Short: "Count tokens in every archive of a directory",
		Long: `Count tokens in every archive of a directory.

The directory defaults to input.dir from the config ("Files"). Only files
directly inside it that match one of the patterns (default "*.txt") are read.
Files ending in .gz or .zst are decompressed first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCount,
	}

	addInputFlags(cmd)
	cmd.Flags().Int("batch-size", config.DefaultBatchSize, "Number of instances per tokenizer batch")
	cmd.Flags().StringSlice("pattern", []string{config.DefaultPattern}, "File name glob (repeatable)")
	cmd.Flags().String("format", "table", "Output format: table | json")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		cfg.Input.Dir = args[0]
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, cmd.ErrOrStderr())

	// The model is loaded before any file is looked at.
	tok, err := tokenizer.Load(tokenizer.Options{
		Model:         cfg.Tokenizer.Model,
		SentenceModel: cfg.Tokenizer.SentenceModel,
	})
	if err != nil {
		return err
	}

	log.Debug("Tokenizer loaded", "model", tok.Model(), "config", cfg.String())

	runner, err := pipeline.NewRunner(cfg, tok, log)
	if err != nil {
		return err
	}

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), cfg.Output.Format, summary)
}
