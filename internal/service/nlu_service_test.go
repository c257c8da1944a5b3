package service

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"nlu/internal/domain"
	"nlu/internal/segmenter"
	"nlu/internal/summarizer"
	"nlu/internal/textnorm"
)

type stubSummarizer struct {
	calls   int
	lastIn  string
	summary string
	err     error
}

func (s *stubSummarizer) Summarize(text string, _ int) (string, error) {
	s.calls++
	s.lastIn = text
	return s.summary, s.err
}

type echoWords struct{}

func (echoWords) ProcessList(words []string) []domain.ProcessedWord {
	out := make([]domain.ProcessedWord, len(words))
	for i, w := range words {
		out[i] = domain.ProcessedWord{Original: w, Stemmed: w, Lemmatized: w}
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNLUService_LoadDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Plain text.")
	writeFile(t, dir, "b.html", `<html><head><style>p { color: red }</style></head>`+
		`<body><p>Hello world.</p><script>track()</script></body></html>`)
	writeFile(t, dir, "c.bin", "ignored")

	svc := NewNLUService(&stubSummarizer{}, echoWords{}, discardLogger())
	docs, err := svc.LoadDocuments([]string{filepath.Join(dir, "*")})
	if err != nil {
		t.Fatalf("LoadDocuments() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("LoadDocuments() returned %d documents, want 2", len(docs))
	}

	byName := map[string]string{}
	for _, d := range docs {
		if d.ID == "" {
			t.Errorf("document %s has no ID", d.Path)
		}
		byName[filepath.Base(d.Path)] = d.Content
	}
	if byName["a.txt"] != "Plain text." {
		t.Errorf("a.txt content = %q", byName["a.txt"])
	}
	if byName["b.html"] != "Hello world." {
		t.Errorf("b.html content = %q", byName["b.html"])
	}
}

func TestNLUService_LoadDocumentsNoneFound(t *testing.T) {
	svc := NewNLUService(&stubSummarizer{}, echoWords{}, discardLogger())
	if _, err := svc.LoadDocuments([]string{filepath.Join(t.TempDir(), "*.txt")}); err == nil {
		t.Error("LoadDocuments() error = nil, want error")
	}
}

func TestNLUService_SummarizeExtractive(t *testing.T) {
	stub := &stubSummarizer{summary: "Ünïcode summary."}
	svc := NewNLUService(stub, echoWords{}, discardLogger())

	got, err := svc.SummarizeExtractive("Ünïcode summary. Another sentence.", 1)
	if err != nil {
		t.Fatalf("SummarizeExtractive() error = %v", err)
	}
	want := domain.SummaryOutput{
		OriginalTextLength: 34,
		Summary:            "Ünïcode summary.",
		SummaryLength:      16,
		Method:             summarizer.Method,
	}
	if got != want {
		t.Errorf("SummarizeExtractive() = %+v, want %+v", got, want)
	}
}

func TestNLUService_SummarizeExtractivePropagatesError(t *testing.T) {
	stub := &stubSummarizer{err: summarizer.ErrInvalidArgument}
	svc := NewNLUService(stub, echoWords{}, discardLogger())

	if _, err := svc.SummarizeExtractive("text", 0); !errors.Is(err, summarizer.ErrInvalidArgument) {
		t.Errorf("SummarizeExtractive() error = %v, want ErrInvalidArgument", err)
	}
}

func TestNLUService_SummarizeDocumentsJoinsContent(t *testing.T) {
	tests := []struct {
		name string
		docs []domain.Document
		want string
	}{
		{
			name: "terminated documents",
			docs: []domain.Document{{Content: "First."}, {Content: "Second!\n"}},
			want: "First.\n\nSecond!",
		},
		{
			name: "unterminated document closed",
			docs: []domain.Document{{Content: "Notes without an ending\n"}, {Content: "Next file starts here."}},
			want: "Notes without an ending.\n\nNext file starts here.",
		},
		{
			name: "quoted ending kept",
			docs: []domain.Document{{Content: `She said "stop."`}, {Content: "Then silence."}},
			want: "She said \"stop.\"\n\nThen silence.",
		},
		{
			name: "blank document skipped",
			docs: []domain.Document{{Content: "Only one."}, {Content: "  \n"}},
			want: "Only one.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stub := &stubSummarizer{summary: "s"}
			svc := NewNLUService(stub, echoWords{}, discardLogger())
			if _, err := svc.SummarizeDocuments(test.docs, 1); err != nil {
				t.Fatalf("SummarizeDocuments() error = %v", err)
			}
			if stub.lastIn != test.want {
				t.Errorf("summarizer received %q, want %q", stub.lastIn, test.want)
			}
		})
	}
}

func TestNLUService_SummarizeDocumentsKeepsBoundaries(t *testing.T) {
	seg, err := segmenter.NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter() error = %v", err)
	}
	normalizer := textnorm.New(textnorm.NewPolicy(textnorm.DefaultStopWords(), nil))
	svc := NewNLUService(summarizer.NewFrequencySummarizer(seg, normalizer), echoWords{}, discardLogger())
	docs := []domain.Document{
		{Content: "Cats chase mice\n"},
		{Content: "Dogs chase cats. Birds sing songs. Fish swim."},
	}

	got, err := svc.SummarizeDocuments(docs, 1)
	if err != nil {
		t.Fatalf("SummarizeDocuments() error = %v", err)
	}
	if got.Summary != "Cats chase mice." && got.Summary != "Dogs chase cats." {
		t.Errorf("Summary = %q, want a single whole sentence", got.Summary)
	}
}

func TestNLUService_Tokenize(t *testing.T) {
	svc := NewNLUService(&stubSummarizer{}, echoWords{}, discardLogger())
	got := svc.Tokenize("Hello, World!")
	want := domain.TokenizerOutput{OriginalText: "Hello, World!", Tokens: []string{"hello", "world"}, TokenCount: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %+v, want %+v", got, want)
	}
}

func TestNLUService_WordTools(t *testing.T) {
	svc := NewNLUService(&stubSummarizer{}, echoWords{}, discardLogger())

	processed := svc.ProcessWords([]string{"cats"})
	if len(processed) != 1 || processed[0].Original != "cats" {
		t.Errorf("ProcessWords() = %+v", processed)
	}

	morph := svc.AnalyzeMorphology([]string{"quickly"})
	if len(morph) != 1 || morph[0].Suffix != "ly" {
		t.Errorf("AnalyzeMorphology() = %+v", morph)
	}
}
