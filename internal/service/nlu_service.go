package service

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"nlu/internal/domain"
	"nlu/internal/morphology"
	"nlu/internal/summarizer"
	"nlu/internal/tokenizer"
)

// WordProcessor reduces words to their stem and lemma.
type WordProcessor interface {
	ProcessList(words []string) []domain.ProcessedWord
}

// NLUService wires the text tools behind one facade used by the CLI and TUI.
type NLUService struct {
	summarizer domain.Summarizer
	words      WordProcessor
	log        *slog.Logger
}

func NewNLUService(summarizer domain.Summarizer, words WordProcessor, log *slog.Logger) *NLUService {
	if log == nil {
		log = slog.Default()
	}
	return &NLUService{summarizer: summarizer, words: words, log: log}
}

// LoadDocuments expands glob patterns and reads .txt, .md, .html and .htm
// files. HTML is reduced to the visible text of its body.
func (s *NLUService) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			ext := strings.ToLower(filepath.Ext(m))
			if ext != ".txt" && ext != ".md" && ext != ".html" && ext != ".htm" {
				s.log.Debug("Skipping unsupported file", "path", m)
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			content := string(data)
			if ext == ".html" || ext == ".htm" {
				if content, err = htmlText(data); err != nil {
					return nil, fmt.Errorf("parse %s: %w", m, err)
				}
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: content})
			s.log.Debug("Loaded document", "path", m, "bytes", len(data))
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no supported documents found")
	}
	return documents, nil
}

// SummarizeDocuments summarizes the loaded documents as one text. Each
// document is closed with a period when it lacks final punctuation so its
// last sentence never runs into the next document's first.
func (s *NLUService) SummarizeDocuments(documents []domain.Document, numSentences int) (domain.SummaryOutput, error) {
	contents := make([]string, 0, len(documents))
	for _, d := range documents {
		c := strings.TrimSpace(d.Content)
		if c == "" {
			continue
		}
		if end := strings.TrimRight(c, "\"')]”’"); end == "" || !strings.ContainsAny(end[len(end)-1:], ".!?") {
			c += "."
		}
		contents = append(contents, c)
	}
	return s.SummarizeExtractive(strings.Join(contents, "\n\n"), numSentences)
}

// SummarizeExtractive runs the frequency summarizer and describes the result.
func (s *NLUService) SummarizeExtractive(text string, numSentences int) (domain.SummaryOutput, error) {
	summary, err := s.summarizer.Summarize(text, numSentences)
	if err != nil {
		return domain.SummaryOutput{}, err
	}
	out := domain.SummaryOutput{
		OriginalTextLength: utf8.RuneCountInString(text),
		Summary:            summary,
		SummaryLength:      utf8.RuneCountInString(summary),
		Method:             summarizer.Method,
	}
	s.log.Info("Summary built",
		"sentences", numSentences,
		"originalLength", out.OriginalTextLength,
		"summaryLength", out.SummaryLength)
	return out, nil
}

func (s *NLUService) Tokenize(text string) domain.TokenizerOutput {
	tokens := tokenizer.Tokenize(text)
	return domain.TokenizerOutput{OriginalText: text, Tokens: tokens, TokenCount: len(tokens)}
}

func (s *NLUService) ProcessWords(words []string) []domain.ProcessedWord {
	return s.words.ProcessList(words)
}

func (s *NLUService) AnalyzeMorphology(words []string) []domain.MorphologyResult {
	return morphology.AnalyzeList(words)
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.TrimSpace(body.Text()), nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
