package domain

// SummaryOutput describes the result of one summarization call.
// Lengths are counted in runes.
type SummaryOutput struct {
	OriginalTextLength int    `json:"original_text_length"`
	Summary            string `json:"summary"`
	SummaryLength      int    `json:"summary_length"`
	Method             string `json:"method"`
}

// TokenizerOutput is the result of basic tokenization.
type TokenizerOutput struct {
	OriginalText string   `json:"original_text"`
	Tokens       []string `json:"tokens"`
	TokenCount   int      `json:"token_count"`
}

// ProcessedWord holds the stemmed and lemmatized forms of a word.
type ProcessedWord struct {
	Original   string `json:"original"`
	Stemmed    string `json:"stemmed"`
	Lemmatized string `json:"lemmatized"`
}

// MorphologyResult is a rule-based affix breakdown of a single word.
// Prefix, Suffix and SuffixFunction are empty when nothing matched.
type MorphologyResult struct {
	OriginalWord   string `json:"original_word"`
	Prefix         string `json:"prefix,omitempty"`
	Root           string `json:"root"`
	Suffix         string `json:"suffix,omitempty"`
	SuffixFunction string `json:"suffix_function,omitempty"`
	InferredPOS    string `json:"inferred_pos"`
}
