package main

import (
	"fmt"
	"log/slog"
	"os"

	"nlu/internal/config"
	"nlu/internal/logging"
	"nlu/internal/segmenter"
	"nlu/internal/service"
	"nlu/internal/summarizer"
	"nlu/internal/textnorm"
	"nlu/internal/wordproc"
)

// app holds the components assembled once per process from configuration.
type app struct {
	cfg *config.AppConfig
	log *slog.Logger
	svc *service.NLUService
}

func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if flagConfig == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(flagConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	seg, err := segmenter.New(cfg.Segmenter.Type)
	if err != nil {
		return nil, err
	}
	stopWords, err := textnorm.NewStopWords(cfg.Normalizer.StopWords)
	if err != nil {
		return nil, err
	}
	words, err := wordproc.New()
	if err != nil {
		return nil, err
	}
	reducer, err := words.Reducer(cfg.Normalizer.Reducer)
	if err != nil {
		return nil, err
	}
	normalizer := textnorm.New(textnorm.NewPolicy(stopWords, reducer))

	var sum *summarizer.FrequencySummarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer(seg, normalizer)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}
	log.Debug("Components initialized",
		"segmenter", cfg.Segmenter.Type,
		"stopwords", cfg.Normalizer.StopWords,
		"reducer", cfg.Normalizer.Reducer)

	return &app{cfg: cfg, log: log, svc: service.NewNLUService(sum, words, log)}, nil
}
