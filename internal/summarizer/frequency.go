// Package summarizer implements frequency-based extractive summarization.
package summarizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"nlu/internal/domain"
)

// Method names the algorithm in summary records.
const Method = "Frequency-Based Extractive"

// ErrInvalidArgument is returned when the requested sentence count is not
// positive.
var ErrInvalidArgument = errors.New("invalid argument")

// FrequencySummarizer ranks sentences by the mean document-wide frequency
// of their normalized words. It holds only read-only collaborators and is
// safe for concurrent use.
type FrequencySummarizer struct {
	segmenter  domain.Segmenter
	normalizer domain.Normalizer
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(segmenter domain.Segmenter, normalizer domain.Normalizer) *FrequencySummarizer {
	return &FrequencySummarizer{segmenter: segmenter, normalizer: normalizer}
}

// Summarize returns the numSentences most salient sentences of text, in
// document order, joined by a single space. Text with no more than
// numSentences sentences is returned unchanged.
func (s *FrequencySummarizer) Summarize(text string, numSentences int) (string, error) {
	if numSentences <= 0 {
		return "", fmt.Errorf("%w: num_sentences must be positive, got %d", ErrInvalidArgument, numSentences)
	}
	sentences := s.segmenter.Segment(text)
	if len(sentences) <= numSentences {
		return text, nil
	}

	freq := BuildFrequencies(s.normalizer.Normalize(text))

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, 0, len(sentences))
	for _, sent := range sentences {
		score, ok := Score(s.normalizer.Normalize(sent.Text), freq)
		if !ok {
			continue
		}
		scores = append(scores, scored{sent.Index, score})
	}
	// Equal scores keep document order.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].idx < scores[j].idx
	})
	if numSentences > len(scores) {
		numSentences = len(scores)
	}

	selected := make([]int, numSentences)
	for i := 0; i < numSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, sentences[idx].Text)
	}
	return strings.Join(out, " "), nil
}

// BuildFrequencies counts every normalized token of a document.
func BuildFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

// Score is the mean frequency of a sentence's tokens; tokens absent from
// freq count as zero. A sentence without tokens cannot be scored and ok is
// false.
func Score(tokens []string, freq map[string]int) (score float64, ok bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	sum := 0
	for _, tok := range tokens {
		sum += freq[tok]
	}
	return float64(sum) / float64(len(tokens)), true
}
