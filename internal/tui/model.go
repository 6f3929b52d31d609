package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textkit/internal/domain"
)

// TextPort is the TUI-facing subset of the text service.
type TextPort interface {
	Summarize(text string, sentenceCount int) (*domain.Summary, error)
	Sentiment(text string) (domain.Sentiment, []domain.SentenceSentiment, error)
	Tag(text string) ([]domain.TaggedToken, error)
	Spell(text string) domain.Correction
}

// Tab identifies a dashboard page.
type Tab int

const (
	SentimentTab Tab = iota
	SpellingTab
	TaggingTab
	SummaryTab
)

var tabTitles = []string{"Sentiment Analysis", "Spelling Correction", "Part of Speech", "Text Summarization"}

const inputHeight = 6

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	service   TextPort
	tabs      []tab
	active    Tab
	viewport  viewport.Model
	sentences int
	status    string
	ready     bool
	width     int
}

type tab struct {
	input  textarea.Model
	output string
}

// New creates a dashboard. initial, when not empty, replaces the sample
// text of every tab; sentences is the starting summary length.
func New(service TextPort, initial string, sentences int) Model {
	if sentences < 1 {
		sentences = 1
	}
	m := Model{
		service:   service,
		viewport:  viewport.New(0, 0),
		sentences: sentences,
		status:    "ctrl+r run · tab switch · alt+↑/↓ sentences · ctrl+c quit",
	}
	for i := range tabTitles {
		ta := textarea.New()
		ta.Placeholder = "Enter text"
		ta.CharLimit = 0
		ta.ShowLineNumbers = false
		ta.SetHeight(inputHeight)
		text := samples[i]
		if initial != "" {
			text = initial
		}
		ta.SetValue(text)
		m.tabs = append(m.tabs, tab{input: ta})
	}
	m.tabs[m.active].input.Focus()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		for i := range m.tabs {
			m.tabs[i].input.SetWidth(max(20, msg.Width-4))
		}
		_, oh := outputBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + inputHeight + ih + 1 // tabs + title, input, status
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-oh)
		m.viewport.SetContent(m.current().output)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.switchTab(1)
			return m, nil
		case "shift+tab":
			m.switchTab(-1)
			return m, nil
		case "ctrl+r":
			m.run()
			return m, nil
		case "alt+up":
			m.sentences++
			m.status = fmt.Sprintf("Summary length: %d sentences", m.sentences)
			return m, nil
		case "alt+down":
			if m.sentences > 1 {
				m.sentences--
			}
			m.status = fmt.Sprintf("Summary length: %d sentences", m.sentences)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.tabs[m.active].input, cmd = m.tabs[m.active].input.Update(msg)
	return m, cmd
}

// View renders the dashboard layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var titles []string
	for i, t := range tabTitles {
		style := tabStyle
		if Tab(i) == m.active {
			style = activeTabStyle
		}
		titles = append(titles, style.Render(t))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, titles...)
	title := lipgloss.NewStyle().Bold(true).Render("Natural Language Processing")
	input := inputBoxStyle.Render(m.current().input.View())
	output := outputBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	return title + "\n" + header + "\n" + input + "\n" + output + "\n" + status
}

// Active returns the selected tab.
func (m Model) Active() Tab { return m.active }

// Output returns the rendered result of the selected tab.
func (m Model) Output() string { return m.current().output }

// Status returns the status line.
func (m Model) Status() string { return m.status }

func (m *Model) current() *tab { return &m.tabs[m.active] }

func (m *Model) switchTab(delta int) {
	m.tabs[m.active].input.Blur()
	n := len(m.tabs)
	m.active = Tab((int(m.active) + delta + n) % n)
	m.tabs[m.active].input.Focus()
	m.viewport.SetContent(m.current().output)
	m.viewport.GotoTop()
}

func (m *Model) run() {
	text := strings.TrimSpace(m.current().input.Value())
	if text == "" {
		m.status = "Nothing to analyze."
		return
	}
	var (
		out string
		err error
	)
	switch m.active {
	case SentimentTab:
		var overall domain.Sentiment
		var sentences []domain.SentenceSentiment
		overall, sentences, err = m.service.Sentiment(text)
		out = renderSentiment(overall, sentences)
	case SpellingTab:
		out = renderCorrection(m.service.Spell(text))
	case TaggingTab:
		var tags []domain.TaggedToken
		tags, err = m.service.Tag(text)
		out = renderTags(tags)
	case SummaryTab:
		var sum *domain.Summary
		sum, err = m.service.Summarize(text, m.sentences)
		if err == nil {
			out = renderSummary(sum, max(20, m.width-4))
		}
	}
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = tabTitles[m.active] + " done."
	m.current().output = out
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("12")).Underline(true)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	outputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var samples = []string{
	"With England 3-2 up in extra time of the World Cup final, striker Geoff Hurst charged up the field. " +
		"Wolstenholme uttered the immortal words. It is now! It's four! " +
		"The years have passed with no more English success on the international stage, which is sad.",
	"i made sume istake",
	"I am on the phone",
	"Cats are of three types: house cats, farm cats and feral cats. House cats are the cats we pet in our houses. " +
		"Cats become good friends of humans. Unlike dogs, cats are not very active around their owners. " +
		"Cats are omnivores. Cats are very lazy creatures. They usually spend their time napping and sleeping in warm places.",
}
