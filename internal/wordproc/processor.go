// Package wordproc reduces single words to their stem and lemma.
package wordproc

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"

	"nlu/internal/domain"
	"nlu/internal/textnorm"
)

// Processor stems with the Snowball English algorithm and lemmatizes with
// an English lemma dictionary. The dictionary is loaded once in New and
// only read afterwards, so a Processor is safe for concurrent use.
type Processor struct {
	lemmatizer *golem.Lemmatizer
}

// New loads the English lemma dictionary.
func New() (*Processor, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return &Processor{lemmatizer: l}, nil
}

// Stem returns the Snowball stem of a lowercase word.
func (p *Processor) Stem(word string) string {
	return english.Stem(word, true)
}

// Lemma returns the dictionary base form of word, or word itself when the
// dictionary has no entry for it.
func (p *Processor) Lemma(word string) string {
	if lemma := p.lemmatizer.Lemma(word); lemma != "" {
		return lemma
	}
	return word
}

// Process trims and lowercases word and reports both reductions.
func (p *Processor) Process(word string) domain.ProcessedWord {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return domain.ProcessedWord{}
	}
	return domain.ProcessedWord{
		Original:   word,
		Stemmed:    p.Stem(word),
		Lemmatized: p.Lemma(word),
	}
}

// ProcessList processes every non-blank word.
func (p *Processor) ProcessList(words []string) []domain.ProcessedWord {
	out := make([]domain.ProcessedWord, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, p.Process(w))
	}
	return out
}

type reducerFunc func(string) string

func (f reducerFunc) Reduce(word string) string { return f(word) }

// Reducer exposes one of the reductions to the text normalizer:
// "lemma" (default), "stem" or "none".
func (p *Processor) Reducer(mode string) (textnorm.Reducer, error) {
	switch mode {
	case "lemma", "":
		return reducerFunc(p.Lemma), nil
	case "stem":
		return reducerFunc(p.Stem), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown reducer: %s", mode)
	}
}
