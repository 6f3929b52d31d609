package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"textkit/internal/domain"
	"textkit/internal/spelling"
	"textkit/internal/tagger"
)

// maxChartRows bounds the frequency chart.
const maxChartRows = 15

var (
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var labelFaces = map[domain.SentimentLabel]string{
	domain.Positive: "😄",
	domain.Negative: "😢",
	domain.Neutral:  "😐",
}

func renderSentiment(overall domain.Sentiment, sentences []domain.SentenceSentiment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %s %+.2f (%s)\n\n", labelFaces[overall.Label], overall.Polarity, overall.Label)
	for _, s := range sentences {
		fmt.Fprintf(&b, "%s %s\n", labelFaces[s.Label], s.Sentence)
	}
	return b.String()
}

func renderCorrection(c domain.Correction) string {
	var b strings.Builder
	b.WriteString(c.Corrected + "\n\n")
	for _, seg := range spelling.Diff(c.Original, c.Corrected) {
		switch seg.Op {
		case spelling.Delete:
			b.WriteString(deleteStyle.Render(seg.Text))
		case spelling.Insert:
			b.WriteString(insertStyle.Render(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	b.WriteString("\n")
	if len(c.Changes) == 0 {
		b.WriteString(mutedStyle.Render("\nNo corrections."))
	}
	return b.String()
}

func renderTags(tags []domain.TaggedToken) string {
	width := 4
	for _, t := range tags {
		width = max(width, len(t.Text))
	}
	var b strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&b, "%-*s  %-5s %s\n", width, t.Text, t.Tag, mutedStyle.Render(tagger.Describe(t.Tag)))
	}
	return b.String()
}

// renderSummary shows the summary followed by a word frequency bar chart.
func renderSummary(sum *domain.Summary, width int) string {
	var b strings.Builder
	b.WriteString(sum.Text)
	b.WriteString("\n\n" + mutedStyle.Render(strings.Repeat("─", min(width, 40))) + "\n")
	b.WriteString(renderChart(sum.Frequencies, width))
	return b.String()
}

func renderChart(rows []domain.WordCount, width int) string {
	if len(rows) == 0 {
		return ""
	}
	rows = rows[:min(len(rows), maxChartRows)]
	label, top := 0, rows[0].Count
	for _, r := range rows {
		label = max(label, len(r.Word))
		top = max(top, r.Count)
	}
	room := max(1, width-label-8)
	var b strings.Builder
	for _, r := range rows {
		bar := max(1, r.Count*room/top)
		fmt.Fprintf(&b, "%-*s %s %d\n", label, r.Word, barStyle.Render(strings.Repeat("█", bar)), r.Count)
	}
	return b.String()
}
