// Package morphology splits English words into prefix, root and suffix
// using a small fixed affix table.
package morphology

import (
	"sort"
	"strings"

	"nlu/internal/domain"
)

const (
	posUnknown  = "Unknown"
	posBaseForm = "Base Form (Noun/Verb/Adjective)"
)

var prefixes = []string{"un", "re", "pre", "dis", "anti"}

type suffixRule struct {
	suffix   string
	function string
}

var suffixRules = []suffixRule{
	{"ing", "Verb (present participle) / Gerund"},
	{"ed", "Verb (past tense) / Adjective"},
	{"s", "Noun (plural) / Verb (3rd person singular)"},
	{"ly", "Adverb"},
	{"tion", "Noun"},
	{"able", "Adjective"},
	{"er", "Noun (agent) / Adjective (comparative)"},
	{"est", "Adjective (superlative)"},
	{"ness", "Noun"},
	{"ful", "Adjective"},
	{"ship", "Noun"},
}

// longest suffix first; equal lengths keep table order
var sortedSuffixRules = func() []suffixRule {
	rules := append([]suffixRule(nil), suffixRules...)
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].suffix) > len(rules[j].suffix)
	})
	return rules
}()

// Analyze strips at most one prefix and one suffix from word. The prefix
// is matched first, so the suffix is looked for in what remains.
func Analyze(word string) domain.MorphologyResult {
	if strings.TrimSpace(word) == "" {
		return domain.MorphologyResult{InferredPOS: posUnknown}
	}
	res := domain.MorphologyResult{OriginalWord: word}
	rest := strings.ToLower(strings.TrimSpace(word))

	for _, p := range prefixes {
		if strings.HasPrefix(rest, p) && len(rest) > len(p) {
			res.Prefix = p
			rest = rest[len(p):]
			break
		}
	}

	for _, r := range sortedSuffixRules {
		if strings.HasSuffix(rest, r.suffix) && len(rest) > len(r.suffix) {
			res.Suffix = r.suffix
			res.SuffixFunction = r.function
			rest = rest[:len(rest)-len(r.suffix)]
			break
		}
	}

	res.Root = rest
	if res.Suffix != "" {
		res.InferredPOS = strings.SplitN(res.SuffixFunction, " ", 2)[0]
	} else {
		res.InferredPOS = posBaseForm
	}
	return res
}

// AnalyzeList analyzes each word in order, blank ones included.
func AnalyzeList(words []string) []domain.MorphologyResult {
	out := make([]domain.MorphologyResult, len(words))
	for i, w := range words {
		out[i] = Analyze(w)
	}
	return out
}
