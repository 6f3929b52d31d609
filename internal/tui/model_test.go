package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textkit/internal/domain"
)

type fakePort struct {
	lastCount int
	err       error
}

func (f *fakePort) Summarize(text string, n int) (*domain.Summary, error) {
	f.lastCount = n
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Summary{
		Text:        "Cats eat fish.",
		Frequencies: []domain.WordCount{{Word: "cats", Count: 2}, {Word: "fish", Count: 1}},
	}, nil
}

func (f *fakePort) Sentiment(text string) (domain.Sentiment, []domain.SentenceSentiment, error) {
	s := domain.Sentiment{Polarity: 0.75, Label: domain.Positive}
	return s, []domain.SentenceSentiment{{Sentence: "Great day.", Sentiment: s}}, nil
}

func (f *fakePort) Tag(text string) ([]domain.TaggedToken, error) {
	return []domain.TaggedToken{{Text: "phone", Tag: "NN"}}, nil
}

func (f *fakePort) Spell(text string) domain.Correction {
	return domain.Correction{
		Original:  "sume day",
		Corrected: "some day",
		Changes:   []domain.Change{{Index: 0, Original: "sume", Corrected: "some"}},
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	runKey      = tea.KeyMsg{Type: tea.KeyCtrlR}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestTabsCycle(t *testing.T) {
	m := send(t, New(&fakePort{}, "", 3), tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, SentimentTab, m.Active())

	m = send(t, m, tabKey, tabKey, tabKey)
	assert.Equal(t, SummaryTab, m.Active())
	m = send(t, m, tabKey)
	assert.Equal(t, SentimentTab, m.Active())
	m = send(t, m, shiftTabKey)
	assert.Equal(t, SummaryTab, m.Active())
}

func TestRunEachTab(t *testing.T) {
	port := &fakePort{}
	m := send(t, New(port, "", 3), tea.WindowSizeMsg{Width: 100, Height: 40})

	m = send(t, m, runKey)
	assert.Contains(t, m.Output(), "+0.75 (positive)")
	assert.Contains(t, m.Output(), "Great day.")

	m = send(t, m, tabKey, runKey)
	assert.Contains(t, m.Output(), "some day")

	m = send(t, m, tabKey, runKey)
	assert.Contains(t, m.Output(), "noun, singular or mass")

	m = send(t, m, tabKey, runKey)
	assert.Contains(t, m.Output(), "Cats eat fish.")
	assert.Contains(t, m.Output(), "cats")
	assert.Equal(t, 3, port.lastCount)
}

func TestSentenceCount(t *testing.T) {
	port := &fakePort{}
	m := New(port, "", 1)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp, Alt: true}, tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	m = send(t, m, shiftTabKey, runKey)
	assert.Equal(t, 3, port.lastCount)
}

func TestRunError(t *testing.T) {
	m := New(&fakePort{err: errors.New("document contains no words")}, "the", 2)
	m = send(t, m, shiftTabKey, runKey)
	assert.Equal(t, "Error: document contains no words", m.Status())
	assert.Empty(t, m.Output())
}

func TestViewBeforeReady(t *testing.T) {
	assert.Equal(t, "Loading...", New(&fakePort{}, "", 1).View())
}

func TestRenderChart(t *testing.T) {
	out := renderChart([]domain.WordCount{{Word: "cats", Count: 4}, {Word: "fish", Count: 1}}, 30)
	assert.Contains(t, out, "cats")
	assert.Contains(t, out, "█ 1")
	assert.Empty(t, renderChart(nil, 30))
}
