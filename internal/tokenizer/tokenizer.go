// Package tokenizer performs basic whitespace tokenization.
package tokenizer

import "strings"

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stripper = strings.NewReplacer(pairs()...)

func pairs() []string {
	out := make([]string, 0, 2*len(punctuation))
	for _, c := range punctuation {
		out = append(out, string(c), "")
	}
	return out
}

// Tokenize lowercases text, deletes ASCII punctuation and splits on
// whitespace. Unlike text normalization, digits and stop words are kept.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Fields(stripper.Replace(strings.ToLower(text)))
}
