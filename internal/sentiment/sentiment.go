package sentiment

import (
	"fmt"
	"strings"

	"github.com/jonreiter/govader"

	"textkit/internal/domain"
)

// DefaultThreshold separates positive and negative text from neutral.
const DefaultThreshold = 0.3

// Analyzer scores polarity with the VADER lexicon and rules: booster
// words, negation, "but" shifts, capitalization and punctuation emphasis.
// The compound score is already normalized to [-1, 1].
type Analyzer struct {
	threshold float64
	segmenter domain.SentenceSegmenter
	vader     *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer(threshold float64, segmenter domain.SentenceSegmenter) *Analyzer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Analyzer{
		threshold: threshold,
		segmenter: segmenter,
		vader:     govader.NewSentimentIntensityAnalyzer(),
	}
}

// Analyze scores the whole text.
func (a *Analyzer) Analyze(text string) domain.Sentiment {
	p := a.Polarity(text)
	return domain.Sentiment{Polarity: p, Label: a.Label(p)}
}

// AnalyzeSentences scores every sentence of text separately.
func (a *Analyzer) AnalyzeSentences(text string) ([]domain.SentenceSentiment, error) {
	sentences, err := a.segmenter.Segment(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}
	out := make([]domain.SentenceSentiment, len(sentences))
	for i, s := range sentences {
		out[i] = domain.SentenceSentiment{Sentence: s, Sentiment: a.Analyze(s)}
	}
	return out, nil
}

// Label classifies polarity p against the threshold.
func (a *Analyzer) Label(p float64) domain.SentimentLabel {
	switch {
	case p >= a.threshold:
		return domain.Positive
	case p <= -a.threshold:
		return domain.Negative
	default:
		return domain.Neutral
	}
}

// Polarity returns the VADER compound score of text in [-1, 1]; 0 when
// no opinion word occurs.
func (a *Analyzer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return max(-1, min(1, a.vader.PolarityScores(text).Compound))
}
