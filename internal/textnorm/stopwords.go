package textnorm

import (
	"fmt"

	"github.com/kljensen/snowball/english"
)

// StopWords reports whether a lowercase word is excluded from scoring.
type StopWords interface {
	IsStopWord(word string) bool
}

// WordSet is a fixed stop-word set. It is read-only after construction.
type WordSet map[string]struct{}

// NewWordSet builds a set from the given words.
func NewWordSet(words ...string) WordSet {
	m := make(WordSet, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func (s WordSet) IsStopWord(word string) bool {
	_, ok := s[word]
	return ok
}

// snowballStopWords uses the stop-word list shipped with the Snowball
// English stemmer.
type snowballStopWords struct{}

func (snowballStopWords) IsStopWord(word string) bool {
	return english.IsStopWord(word)
}

// NewStopWords returns the stop-word source selected by name
// ("builtin" or "snowball"). An empty name selects builtin.
func NewStopWords(name string) (StopWords, error) {
	switch name {
	case "builtin", "":
		return DefaultStopWords(), nil
	case "snowball":
		return snowballStopWords{}, nil
	default:
		return nil, fmt.Errorf("unknown stop-word list: %s", name)
	}
}

// DefaultStopWords returns the curated English list: articles, pronouns,
// auxiliaries, common prepositions and conjunctions, and the contraction
// fragments left behind once apostrophes are stripped.
func DefaultStopWords() WordSet {
	return NewWordSet(
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
		"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
		"during", "before", "after", "above", "below", "to", "from", "up", "down",
		"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
		"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
		"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
		"don", "should", "now", "d", "ll", "m", "o", "re", "ve", "y",
		"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
		"ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
	)
}
