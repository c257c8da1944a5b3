package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *defaultConfig() {
		t.Errorf("Load() = %+v, want defaults %+v", *cfg, *defaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "summarizer:\n  num_sentences: 5\nsegmenter:\n  type: regex\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Summarizer.NumSentences != 5 {
		t.Errorf("NumSentences = %d, want 5", cfg.Summarizer.NumSentences)
	}
	if cfg.Segmenter.Type != "regex" {
		t.Errorf("Segmenter.Type = %q, want regex", cfg.Segmenter.Type)
	}
	if cfg.Normalizer.Reducer != "lemma" {
		t.Errorf("Normalizer.Reducer = %q, want lemma", cfg.Normalizer.Reducer)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("normalizer:\n  reducer: lemma\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NLU_REDUCER", "stem")
	t.Setenv("NLU_NUM_SENTENCES", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Normalizer.Reducer != "stem" {
		t.Errorf("Normalizer.Reducer = %q, want stem", cfg.Normalizer.Reducer)
	}
	if cfg.Summarizer.NumSentences != 7 {
		t.Errorf("NumSentences = %d, want 7", cfg.Summarizer.NumSentences)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("summarizer: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := defaultConfig()
	want.Normalizer.StopWords = "snowball"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", *got, *want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{name: "unknown segmenter", mutate: func(c *AppConfig) { c.Segmenter.Type = "spacy" }, wantErr: "segmenter.type"},
		{name: "unknown reducer", mutate: func(c *AppConfig) { c.Normalizer.Reducer = "porter" }, wantErr: "normalizer.reducer"},
		{name: "zero sentences", mutate: func(c *AppConfig) { c.Summarizer.NumSentences = 0 }, wantErr: "num_sentences"},
		{name: "bad log format", mutate: func(c *AppConfig) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := defaultConfig()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, test.wantErr)
			}
		})
	}
}
