package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpustok/internal/config"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpustok",
		Short: "Estimate the token size of newspaper article archives",
		Long: `corpustok reads article archives (instances separated by "<***>"),
strips metadata header lines such as "NASLOV:" or "AUTOR(I):", tokenizes the
remaining text and reports token counts per file and in total.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug | info | warn | error")

	cmd.AddCommand(newCountCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "corpustok", version)
		},
	}
}

func execute() error {
	return newRootCommand().Execute()
}

// loadConfig reads --config (or the defaults) and applies every flag the user
// set on cmd on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if path != "" {
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	overrides := []struct {
		name  string
		apply func() error
	}{
		{"log-level", func() (err error) {
			cfg.Logging.Level, err = flags.GetString("log-level")
			return err
		}},
		{"model", func() (err error) {
			cfg.Tokenizer.Model, err = flags.GetString("model")
			return err
		}},
		{"sentence-model", func() (err error) {
			cfg.Tokenizer.SentenceModel, err = flags.GetString("sentence-model")
			return err
		}},
		{"batch-size", func() (err error) {
			cfg.Tokenizer.BatchSize, err = flags.GetInt("batch-size")
			return err
		}},
		{"pattern", func() (err error) {
			cfg.Input.Patterns, err = flags.GetStringSlice("pattern")
			return err
		}},
		{"encoding", func() (err error) {
			cfg.Input.Encoding, err = flags.GetString("encoding")
			return err
		}},
		{"sentinel", func() (err error) {
			cfg.Input.Sentinel, err = flags.GetString("sentinel")
			return err
		}},
		{"format", func() (err error) {
			cfg.Output.Format, err = flags.GetString("format")
			return err
		}},
		{"no-progress", func() error {
			noProgress, err := flags.GetBool("no-progress")
			cfg.Logging.ShowProgress = !noProgress

			return err
		}},
	}

	for _, o := range overrides {
		if flags.Lookup(o.name) == nil || !flags.Changed(o.name) {
			continue
		}

		if err := o.apply(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// addInputFlags registers the flags shared by commands that read archives
// with a tokenizer.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", config.DefaultModel, "Tokenizer model: uax29 | estimate | tiktoken/<encoding>")
	cmd.Flags().String("sentence-model", "", "Path to Punkt training data (JSON) for sentence counts")
	cmd.Flags().String("encoding", config.DefaultEncoding, "Text encoding of the archives (e.g. utf-8, windows-1250)")
	cmd.Flags().String("sentinel", config.DefaultSentinel, "Marker separating article instances")
}
