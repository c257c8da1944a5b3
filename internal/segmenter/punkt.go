// Package segmenter splits documents into ordered sentences.
package segmenter

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"nlu/internal/domain"
)

// PunktSegmenter detects sentence boundaries with the English punkt model,
// which knows about abbreviations, decimals and quotation marks.
// It is safe for concurrent use once constructed.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the bundled English punkt training data.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSegmenter{tokenizer: tokenizer}, nil
}

// Segment returns the sentences of text in input order.
func (s *PunktSegmenter) Segment(text string) []domain.Sentence {
	var texts []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			texts = append(texts, t)
		}
	}
	return indexed(texts, text)
}

// indexed numbers the sentence texts from 0. With no sentences found the
// whole trimmed input becomes the only sentence, which may be empty.
func indexed(texts []string, original string) []domain.Sentence {
	if len(texts) == 0 {
		return []domain.Sentence{{Index: 0, Text: strings.TrimSpace(original)}}
	}
	out := make([]domain.Sentence, len(texts))
	for i, t := range texts {
		out[i] = domain.Sentence{Index: i, Text: t}
	}
	return out
}
