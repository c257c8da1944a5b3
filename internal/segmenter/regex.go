package segmenter

import (
	"regexp"
	"strings"

	"nlu/internal/domain"
)

// RegexSegmenter splits on runs of '.', '!' and '?'. It over-splits on
// abbreviations and decimals; use PunktSegmenter unless the input is known
// to be plain prose.
type RegexSegmenter struct {
	splitter *regexp.Regexp
}

func NewRegexSegmenter() *RegexSegmenter {
	return &RegexSegmenter{
		splitter: regexp.MustCompile(`[^.!?]+[.!?]+`),
	}
}

func (s *RegexSegmenter) Segment(text string) []domain.Sentence {
	var texts []string
	last := 0
	for _, loc := range s.splitter.FindAllStringIndex(text, -1) {
		if t := strings.TrimSpace(text[loc[0]:loc[1]]); t != "" {
			texts = append(texts, t)
		}
		last = loc[1]
	}
	// Trailing text without a terminator is still a sentence.
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		texts = append(texts, tail)
	}
	return indexed(texts, text)
}
