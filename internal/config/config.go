// Package config provides configuration management for the token counter.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"corpustok/pkg/metadata"
)

// Configuration validation errors.
var (
	ErrMissingInputDir     = errors.New("input.dir is required")
	ErrNoPatterns          = errors.New("input.patterns must contain at least one pattern")
	ErrInvalidPattern      = errors.New("input.patterns contains an invalid glob")
	ErrEmptySentinel       = errors.New("input.sentinel must not be empty")
	ErrNoMetadataTags      = errors.New("normalizer.metadata_tags must contain at least one tag")
	ErrBlankMetadataTag    = errors.New("normalizer.metadata_tags must not contain blank tags")
	ErrMissingModel        = errors.New("tokenizer.model is required")
	ErrInvalidBatchSize    = errors.New("tokenizer.batch_size must be at least 1")
	ErrInvalidOutputFormat = errors.New("output.format must be 'table' or 'json'")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Defaults.
const (
	DefaultInputDir  = "Files"
	DefaultPattern   = "*.txt"
	DefaultEncoding  = "utf-8"
	DefaultSentinel  = "<***>"
	DefaultModel     = "uax29"
	DefaultBatchSize = 500
)

// Config represents the complete token counter configuration.
type Config struct {
	Input      InputConfig      `yaml:"input" toml:"input"`
	Normalizer NormalizerConfig `yaml:"normalizer" toml:"normalizer"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer" toml:"tokenizer"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// InputConfig describes where archives are found and how they are decoded.
type InputConfig struct {
	Dir      string   `yaml:"dir" toml:"dir"`
	Patterns []string `yaml:"patterns" toml:"patterns"`
	Encoding string   `yaml:"encoding" toml:"encoding"`
	Sentinel string   `yaml:"sentinel" toml:"sentinel"`
}

// NormalizerConfig holds the metadata tags stripped from each instance.
type NormalizerConfig struct {
	MetadataTags []string `yaml:"metadata_tags" toml:"metadata_tags"`
}

// TokenizerConfig selects the tokenizer model.
type TokenizerConfig struct {
	Model         string `yaml:"model" toml:"model"`
	SentenceModel string `yaml:"sentence_model" toml:"sentence_model"`
	BatchSize     int    `yaml:"batch_size" toml:"batch_size"`
}

// OutputConfig defines report output.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level" toml:"level"`
	ShowProgress bool   `yaml:"show_progress" toml:"show_progress"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	tags := make([]string, len(metadata.DefaultTags))
	copy(tags, metadata.DefaultTags)

	return &Config{
		Input: InputConfig{
			Dir:      DefaultInputDir,
			Patterns: []string{DefaultPattern},
			Encoding: DefaultEncoding,
			Sentinel: DefaultSentinel,
		},
		Normalizer: NormalizerConfig{
			MetadataTags: tags,
		},
		Tokenizer: TokenizerConfig{
			Model:     DefaultModel,
			BatchSize: DefaultBatchSize,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return ErrMissingInputDir
	}

	if len(c.Input.Patterns) == 0 {
		return ErrNoPatterns
	}

	for i, pattern := range c.Input.Patterns {
		if _, err := filepath.Match(pattern, ""); err != nil || pattern == "" {
			return fmt.Errorf("%w: patterns[%d] %q", ErrInvalidPattern, i, pattern)
		}
	}

	if c.Input.Sentinel == "" {
		return ErrEmptySentinel
	}

	if len(c.Normalizer.MetadataTags) == 0 {
		return ErrNoMetadataTags
	}

	for i, tag := range c.Normalizer.MetadataTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: metadata_tags[%d]", ErrBlankMetadataTag, i)
		}
	}

	if c.Tokenizer.Model == "" {
		return ErrMissingModel
	}

	if c.Tokenizer.BatchSize < 1 {
		return ErrInvalidBatchSize
	}

	if c.Output.Format != "table" && c.Output.Format != "json" {
		return ErrInvalidOutputFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Dir: %s, Patterns: %v, Model: %s, BatchSize: %d}",
		c.Input.Dir,
		c.Input.Patterns,
		c.Tokenizer.Model,
		c.Tokenizer.BatchSize,
	)
}
