package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textkit/internal/domain"
	"textkit/internal/segmenter"
)

func TestAnalyzeLabels(t *testing.T) {
	a := NewAnalyzer(DefaultThreshold, segmenter.NewRegexSegmenter())
	tests := []struct {
		text  string
		label domain.SentimentLabel
	}{
		{"I love this wonderful day", domain.Positive},
		{"An outstanding, delightful, marvelous film.", domain.Positive},
		{"I adore this splendid place.", domain.Positive},
		{"This is terrible and awful", domain.Negative},
		{"The service was cruel and disappointing.", domain.Negative},
		{"This is not good", domain.Negative},
		{"The table is brown", domain.Neutral},
		{"", domain.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := a.Analyze(tt.text)
			assert.Equal(t, tt.label, got.Label, "polarity %v", got.Polarity)
			assert.GreaterOrEqual(t, got.Polarity, -1.0)
			assert.LessOrEqual(t, got.Polarity, 1.0)
		})
	}
}

func TestPolarityValues(t *testing.T) {
	a := NewAnalyzer(DefaultThreshold, nil)

	// 1.9 / sqrt(1.9^2 + 15)
	assert.InDelta(t, 0.4404, a.Polarity("good"), 1e-3)
	assert.Zero(t, a.Polarity("The table is brown"))
	assert.Zero(t, a.Polarity("   "))
}

func TestPolarityModifiers(t *testing.T) {
	a := NewAnalyzer(DefaultThreshold, nil)
	good := a.Polarity("The food is good")

	assert.Greater(t, a.Polarity("The food is very good"), good)
	assert.Less(t, a.Polarity("The food is not good"), 0.0)
	assert.Greater(t, a.Polarity("The food isn't bad"), 0.0)
}

func TestLabelThreshold(t *testing.T) {
	a := NewAnalyzer(0.5, nil)
	assert.Equal(t, domain.Positive, a.Label(0.5))
	assert.Equal(t, domain.Neutral, a.Label(0.49))
	assert.Equal(t, domain.Negative, a.Label(-0.5))

	assert.Equal(t, domain.Positive, NewAnalyzer(0, nil).Label(DefaultThreshold))
}

func TestAnalyzeSentences(t *testing.T) {
	a := NewAnalyzer(DefaultThreshold, segmenter.NewRegexSegmenter())
	got, err := a.AnalyzeSentences("  The match was great. The referee was awful. It rained.  ")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "The match was great.", got[0].Sentence)
	assert.Equal(t, domain.Positive, got[0].Label)
	assert.Equal(t, domain.Negative, got[1].Label)
	assert.Equal(t, domain.Neutral, got[2].Label)
}

type failingSegmenter struct{}

func (failingSegmenter) Segment(string) ([]string, error) { return nil, errors.New("boom") }

func TestAnalyzeSentencesError(t *testing.T) {
	_, err := NewAnalyzer(DefaultThreshold, failingSegmenter{}).AnalyzeSentences("x")
	assert.Error(t, err)
}
