package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Sentence is one segment of a document. Index is its 0-based position in
// the document's sentence sequence; Text is the original surface form.
type Sentence struct {
	Index int
	Text  string
}

// Segmenter splits raw text into ordered sentences.
type Segmenter interface {
	Segment(text string) []Sentence
}

// Normalizer turns free text into normalized word tokens.
type Normalizer interface {
	Normalize(text string) []string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, numSentences int) (string, error)
}
