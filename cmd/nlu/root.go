package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nlu/internal/domain"
	"nlu/internal/tui"
)

var (
	flagConfig    string
	flagSentences int
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:           "nlu",
	Short:         "Extractive summarization and word-level text tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize files (or stdin) by sentence word frequency",
	Long: `Summarize selects the most salient sentences of the input by how often
their normalized words occur across the whole text, and prints them in
their original order. Without file arguments the text is read from stdin.

Examples:
  nlu summarize article.txt -n 3
  cat notes.md | nlu summarize --json`,
	RunE: runSummarize,
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <text>",
	Short: "Lowercase, strip punctuation and split text into tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := a.svc.Tokenize(strings.Join(args, " "))
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out.Tokens, " "))
		return nil
	},
}

var wordsCmd = &cobra.Command{
	Use:   "words <word>...",
	Short: "Show the stem and lemma of each word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := a.svc.ProcessWords(args)
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]any{"results": out})
		}
		for _, w := range out {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tstem=%s\tlemma=%s\n", w.Original, w.Stemmed, w.Lemmatized)
		}
		return nil
	},
}

var morphCmd = &cobra.Command{
	Use:   "morph <word>...",
	Short: "Split each word into prefix, root and suffix",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out := a.svc.AnalyzeMorphology(args)
		if flagJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]any{"results": out})
		}
		for _, r := range out {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tprefix=%s\troot=%s\tsuffix=%s\tpos=%s\n",
				r.OriginalWord, r.Prefix, r.Root, r.Suffix, r.InferredPOS)
		}
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui <files...>",
	Short: "Browse a summary of files and analyze words interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		docs, err := a.svc.LoadDocuments(args)
		if err != nil {
			return err
		}
		a.log.Info("Starting TUI", "documents", len(docs))
		m := tui.New(a.svc, docs, a.cfg.Summarizer.NumSentences)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional; uses ~/.config/nlu/config.yaml if not provided)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")

	summarizeCmd.Flags().IntVarP(&flagSentences, "sentences", "n", 0, "Number of sentences in the summary (default from config)")

	rootCmd.AddCommand(summarizeCmd, tokenizeCmd, wordsCmd, morphCmd, tuiCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	n := a.cfg.Summarizer.NumSentences
	if cmd.Flags().Changed("sentences") {
		n = flagSentences
	}

	var out domain.SummaryOutput
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, err = a.svc.SummarizeExtractive(string(data), n)
		if err != nil {
			return err
		}
	} else {
		docs, err := a.svc.LoadDocuments(args)
		if err != nil {
			return err
		}
		out, err = a.svc.SummarizeDocuments(docs, n)
		if err != nil {
			return err
		}
	}

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
