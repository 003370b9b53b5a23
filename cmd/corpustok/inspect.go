package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"corpustok/internal/archive"
	"corpustok/internal/normalizer"
	"corpustok/internal/tokenizer"
	"corpustok/pkg/utils"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the cleaned text and token count of each instance in one archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	addInputFlags(cmd)
	cmd.Flags().Int("width", 100, "Truncate cleaned text to this many columns (0 = no limit)")
	cmd.Flags().Int("limit", 0, "Show at most this many instances (0 = all)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	tok, err := tokenizer.Load(tokenizer.Options{
		Model:         cfg.Tokenizer.Model,
		SentenceModel: cfg.Tokenizer.SentenceModel,
	})
	if err != nil {
		return err
	}

	reader, err := archive.NewReader(cfg.Input.Encoding)
	if err != nil {
		return err
	}

	processor, err := normalizer.NewProcessor(normalizer.Options{
		Sentinel: cfg.Input.Sentinel,
		Tags:     cfg.Normalizer.MetadataTags,
	})
	if err != nil {
		return err
	}

	content, err := reader.ReadAll(args[0])
	if err != nil {
		return err
	}

	instances := processor.Instances(content)
	if limit > 0 && limit < len(instances) {
		instances = instances[:limit]
	}

	cleaned := make([]string, len(instances))
	for i, inst := range instances {
		cleaned[i] = processor.Clean(inst)
	}

	docs, err := tok.Pipe(cleaned, cfg.Tokenizer.BatchSize, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := 0

	for i, inst := range instances {
		total += docs[i].Len()

		var fields []string
		for _, h := range processor.Headers(inst) {
			fields = append(fields, h[0]+" "+h[1])
		}

		fmt.Fprintf(out, "#%d  tokens=%d", i+1, docs[i].Len())
		if docs[i].Sentences > 0 {
			fmt.Fprintf(out, " sentences=%d", docs[i].Sentences)
		}
		fmt.Fprintln(out)

		if len(fields) > 0 {
			fmt.Fprintf(out, "    meta: %s\n", utils.TruncateString(strings.Join(fields, " | "), width))
		}

		fmt.Fprintf(out, "    text: %s\n", utils.TruncateString(utils.NormalizeWhitespace(cleaned[i]), width))
	}

	fmt.Fprintf(out, "%d instance(s), %d token(s) [%s]\n", len(instances), total, tok.Model())

	return nil
}
