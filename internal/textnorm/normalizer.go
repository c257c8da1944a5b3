// Package textnorm reduces free text to normalized word tokens: lowercase,
// letters only, stop words removed, each word reduced to its base form.
package textnorm

import (
	"strings"
	"unicode"
)

// Reducer maps a word to its base form. Implementations return the word
// unchanged when they know no reduction for it.
type Reducer interface {
	Reduce(word string) string
}

type identity struct{}

func (identity) Reduce(word string) string { return word }

// Policy is the immutable pair of stop-word set and reducer that decides
// what survives normalization. The zero value keeps every word as is.
type Policy struct {
	stopWords StopWords
	reducer   Reducer
}

// NewPolicy combines a stop-word set and a reducer. Either may be nil.
func NewPolicy(stopWords StopWords, reducer Reducer) Policy {
	if reducer == nil {
		reducer = identity{}
	}
	return Policy{stopWords: stopWords, reducer: reducer}
}

func (p Policy) isStopWord(word string) bool {
	return p.stopWords != nil && p.stopWords.IsStopWord(word)
}

func (p Policy) reduce(word string) string {
	if p.reducer == nil {
		return word
	}
	if base := p.reducer.Reduce(word); base != "" {
		return base
	}
	return word
}

// Normalizer applies a Policy to text. It holds no mutable state and is
// safe for concurrent use.
type Normalizer struct {
	policy Policy
}

func New(policy Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Normalize lowercases text, deletes every rune that is neither an ASCII
// letter nor whitespace, splits on whitespace, drops stop words and reduces
// the rest. A word whose base form is itself a stop word ("others" to
// "other") is dropped too, so normalizing the output again changes nothing.
// Deleted punctuation joins its neighbours: "AI-driven" becomes "aidriven".
func (n *Normalizer) Normalize(text string) []string {
	words := strings.Fields(lettersOnly(strings.ToLower(text)))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n.policy.isStopWord(w) {
			continue
		}
		base := n.policy.reduce(w)
		if base != w && n.policy.isStopWord(base) {
			continue
		}
		out = append(out, base)
	}
	return out
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}
