package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, name)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// validConfigYAML is a complete valid configuration.
const validConfigYAML = `
input:
  dir: "./dumps"
  patterns: ["*.txt", "*.txt.gz"]
  encoding: "windows-1250"
  sentinel: "<***>"
normalizer:
  metadata_tags: ["NASLOV:", "DATUM:"]
tokenizer:
  model: "tiktoken/cl100k_base"
  batch_size: 64
output:
  format: "json"
logging:
  level: "debug"
  show_progress: false
`

const validConfigTOML = `
[input]
dir = "./dumps"
patterns = ["*.txt"]

[tokenizer]
model = "estimate"
batch_size = 10
`

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig failed validation: %v", err)
	}

	if cfg.Input.Dir != DefaultInputDir {
		t.Errorf("Expected dir %q, got %q", DefaultInputDir, cfg.Input.Dir)
	}

	if len(cfg.Normalizer.MetadataTags) != 8 {
		t.Errorf("Expected 8 default metadata tags, got %d", len(cfg.Normalizer.MetadataTags))
	}

	if cfg.Tokenizer.BatchSize != 500 {
		t.Errorf("Expected batch size 500, got %d", cfg.Tokenizer.BatchSize)
	}
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "config.yaml", validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Input.Dir != "./dumps" {
		t.Errorf("Expected dir './dumps', got '%s'", cfg.Input.Dir)
	}

	if len(cfg.Input.Patterns) != 2 {
		t.Errorf("Expected 2 patterns, got %d", len(cfg.Input.Patterns))
	}

	if cfg.Input.Encoding != "windows-1250" {
		t.Errorf("Expected encoding 'windows-1250', got '%s'", cfg.Input.Encoding)
	}

	if len(cfg.Normalizer.MetadataTags) != 2 {
		t.Errorf("Expected 2 metadata tags, got %d", len(cfg.Normalizer.MetadataTags))
	}

	if cfg.Tokenizer.Model != "tiktoken/cl100k_base" {
		t.Errorf("Expected model 'tiktoken/cl100k_base', got '%s'", cfg.Tokenizer.Model)
	}

	if cfg.Tokenizer.BatchSize != 64 {
		t.Errorf("Expected batch size 64, got %d", cfg.Tokenizer.BatchSize)
	}

	if cfg.Logging.ShowProgress {
		t.Error("Expected show_progress to be false")
	}
}

func TestLoadConfig_PartialYAMLKeepsDefaults(t *testing.T) {
	configPath := createTempConfigFile(t, "config.yml", "tokenizer:\n  model: estimate\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Tokenizer.Model != "estimate" {
		t.Errorf("Expected model 'estimate', got '%s'", cfg.Tokenizer.Model)
	}

	if cfg.Tokenizer.BatchSize != DefaultBatchSize {
		t.Errorf("Expected default batch size, got %d", cfg.Tokenizer.BatchSize)
	}

	if cfg.Input.Sentinel != DefaultSentinel {
		t.Errorf("Expected default sentinel, got %q", cfg.Input.Sentinel)
	}
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	configPath := createTempConfigFile(t, "config.toml", validConfigTOML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Tokenizer.Model != "estimate" {
		t.Errorf("Expected model 'estimate', got '%s'", cfg.Tokenizer.Model)
	}

	if cfg.Tokenizer.BatchSize != 10 {
		t.Errorf("Expected batch size 10, got %d", cfg.Tokenizer.BatchSize)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("Expected default format 'table', got '%s'", cfg.Output.Format)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "config.yaml", "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configPath := createTempConfigFile(t, "config.toml", "[input\ndir = ")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid TOML, got nil")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	configPath := createTempConfigFile(t, "config.yaml", "tokenizer:\n  batch_size: 0\n")

	_, err := LoadConfig(configPath)
	if !errors.Is(err, ErrInvalidBatchSize) {
		t.Fatalf("Expected ErrInvalidBatchSize, got %v", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"Missing dir", func(c *Config) { c.Input.Dir = "" }, ErrMissingInputDir},
		{"No patterns", func(c *Config) { c.Input.Patterns = nil }, ErrNoPatterns},
		{"Bad glob", func(c *Config) { c.Input.Patterns = []string{"[a-"} }, ErrInvalidPattern},
		{"Empty glob", func(c *Config) { c.Input.Patterns = []string{""} }, ErrInvalidPattern},
		{"Empty sentinel", func(c *Config) { c.Input.Sentinel = "" }, ErrEmptySentinel},
		{"No tags", func(c *Config) { c.Normalizer.MetadataTags = []string{} }, ErrNoMetadataTags},
		{"Blank tag", func(c *Config) { c.Normalizer.MetadataTags = []string{"NASLOV:", " "} }, ErrBlankMetadataTag},
		{"Missing model", func(c *Config) { c.Tokenizer.Model = "" }, ErrMissingModel},
		{"Zero batch", func(c *Config) { c.Tokenizer.BatchSize = 0 }, ErrInvalidBatchSize},
		{"Bad format", func(c *Config) { c.Output.Format = "xml" }, ErrInvalidOutputFormat},
		{"Bad level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tokenizer.Model = "estimate"

	configPath := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Tokenizer.Model != "estimate" {
		t.Errorf("Expected model 'estimate', got '%s'", loaded.Tokenizer.Model)
	}

	if strings.Join(loaded.Normalizer.MetadataTags, ",") != strings.Join(cfg.Normalizer.MetadataTags, ",") {
		t.Errorf("Metadata tags changed after round trip: %v", loaded.Normalizer.MetadataTags)
	}
}

func TestDefaultConfig_DoesNotShareTags(t *testing.T) {
	a := DefaultConfig()
	a.Normalizer.MetadataTags[0] = "CHANGED:"

	b := DefaultConfig()
	if b.Normalizer.MetadataTags[0] == "CHANGED:" {
		t.Error("DefaultConfig returned shared metadata tag slice")
	}
}

func TestConfig_String(t *testing.T) {
	s := DefaultConfig().String()
	if !strings.Contains(s, "Model: uax29") {
		t.Errorf("String() = %q, want model in output", s)
	}
}
