package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nlu/internal/domain"
)

// NLUPort is the TUI-facing subset of the NLU service.
type NLUPort interface {
	SummarizeDocuments(documents []domain.Document, numSentences int) (domain.SummaryOutput, error)
	ProcessWords(words []string) []domain.ProcessedWord
	AnalyzeMorphology(words []string) []domain.MorphologyResult
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service      NLUPort
	documents    []domain.Document
	numSentences int
	summary      domain.SummaryOutput
	input        textinput.Model
	viewport     viewport.Model
	analysis     string
	status       string
	ready        bool
}

// New creates a new TUI model showing a summary of documents.
func New(service NLUPort, documents []domain.Document, numSentences int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type words and press Enter to analyze"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if numSentences <= 0 {
		numSentences = 1
	}
	m := Model{service: service, documents: documents, numSentences: numSentences, input: ti, viewport: vp}
	m.resummarize()
	return m
}

// showsWholeText reports whether the current summary already covers every
// sentence, which happens once the requested count reaches the segmented one.
func (m Model) showsWholeText() bool {
	return m.summary.OriginalTextLength > 0 && m.summary.SummaryLength >= m.summary.OriginalTextLength
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + 1 + qh + 1 // header, summary, status; spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			words := strings.Fields(m.input.Value())
			if len(words) > 0 {
				m.analysis = renderAnalysis(m.service.ProcessWords(words), m.service.AnalyzeMorphology(words))
				m.status = fmt.Sprintf("Analyzed %d word(s)", len(words))
				m.input.SetValue("")
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "up":
			if m.showsWholeText() {
				m.status = "All sentences shown"
				return m, nil
			}
			m.numSentences++
			m.resummarize()
			m.viewport.SetContent(m.renderContent())
			return m, nil
		case "down":
			if m.numSentences > 1 {
				m.numSentences--
				m.resummarize()
				m.viewport.SetContent(m.renderContent())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("NLU Toolkit")
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		fmt.Sprintf("%s · %d sentence(s) · %d → %d chars · ↑/↓ to adjust",
			m.summary.Method, m.numSentences, m.summary.OriginalTextLength, m.summary.SummaryLength))
	body := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + meta + "\n" + body + "\n" + input + "\n" + status
}

func (m *Model) resummarize() {
	out, err := m.service.SummarizeDocuments(m.documents, m.numSentences)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.summary = out
	m.status = fmt.Sprintf("Summarized %d document(s)", len(m.documents))
}

func (m Model) renderContent() string {
	var b strings.Builder
	b.WriteString(summaryStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(m.summary.Summary)
	if m.analysis != "" {
		b.WriteString("\n\n")
		b.WriteString(m.analysis)
	}
	return b.String()
}

func renderAnalysis(processed []domain.ProcessedWord, morph []domain.MorphologyResult) string {
	var b strings.Builder
	b.WriteString(summaryStyle.Render("Words"))
	for i, p := range processed {
		fmt.Fprintf(&b, "\n%s  stem=%s  lemma=%s", highlightStyle.Render(p.Original), p.Stemmed, p.Lemmatized)
		if i < len(morph) {
			r := morph[i]
			fmt.Fprintf(&b, "  [%s|%s|%s] %s", r.Prefix, r.Root, r.Suffix, r.InferredPOS)
		}
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle   = lipgloss.NewStyle().Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
