package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type" env:"SUMMARIZER"`
	NumSentences int    `yaml:"num_sentences" env:"NUM_SENTENCES"`
}

// SegmenterConfig selects the sentence boundary detector.
type SegmenterConfig struct {
	Type string `yaml:"type" env:"SEGMENTER"`
}

// NormalizerConfig selects the stop-word list and the word reducer.
type NormalizerConfig struct {
	StopWords string `yaml:"stopwords" env:"STOPWORDS"`
	Reducer   string `yaml:"reducer" env:"REDUCER"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "NLU_"

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment variables prefixed with NLU_ override file values.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/nlu/config.yaml.
// If neither exists, it writes defaults to ~/.config/nlu/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, "", err
	}
	applyConfigDefaults(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown component selectors and a non-positive sentence count.
func (c *AppConfig) Validate() error {
	if err := oneOf("summarizer.type", c.Summarizer.Type, "frequency"); err != nil {
		return err
	}
	if c.Summarizer.NumSentences <= 0 {
		return fmt.Errorf("summarizer.num_sentences must be positive, got %d", c.Summarizer.NumSentences)
	}
	if err := oneOf("segmenter.type", c.Segmenter.Type, "punkt", "regex"); err != nil {
		return err
	}
	if err := oneOf("normalizer.stopwords", c.Normalizer.StopWords, "builtin", "snowball"); err != nil {
		return err
	}
	if err := oneOf("normalizer.reducer", c.Normalizer.Reducer, "lemma", "stem", "none"); err != nil {
		return err
	}
	if err := oneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	return oneOf("logging.format", c.Logging.Format, "text", "json")
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q (allowed: %v)", field, value, allowed)
}

func applyEnv(cfg *AppConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nlu", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Summarizer: SummarizerConfig{Type: "frequency", NumSentences: 3},
		Segmenter:  SegmenterConfig{Type: "punkt"},
		Normalizer: NormalizerConfig{StopWords: "builtin", Reducer: "lemma"},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.NumSentences == 0 {
		cfg.Summarizer.NumSentences = 3
	}
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = "punkt"
	}
	if cfg.Normalizer.StopWords == "" {
		cfg.Normalizer.StopWords = "builtin"
	}
	if cfg.Normalizer.Reducer == "" {
		cfg.Normalizer.Reducer = "lemma"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
