package summarizer

import (
	"fmt"
	"strings"

	"textkit/internal/domain"
)

// SentenceSeparator joins the sentences of a summary.
const SentenceSeparator = "\n\n"

// FrequencySummarizer ranks sentences by the summed frequency weight of
// their words (stopwords filtered) and keeps the best ones.
type FrequencySummarizer struct {
	model     *Model
	segmenter domain.SentenceSegmenter
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
// The collaborators are shared read-only across calls.
func NewFrequencySummarizer(tokenizer domain.WordTokenizer, stopwords domain.StopwordSet, segmenter domain.SentenceSegmenter) *FrequencySummarizer {
	return &FrequencySummarizer{
		model:     NewModel(tokenizer, stopwords),
		segmenter: segmenter,
	}
}

// Summarize returns the sentenceCount best sentences of text in ranked
// order, best first, along with the frequency table of the document.
// Equal scores keep document order. A count of zero or less yields an
// empty summary.
func (s *FrequencySummarizer) Summarize(text string, sentenceCount int) (*domain.Summary, error) {
	weights, err := s.model.Build(text)
	if err != nil {
		return nil, err
	}
	summary := &domain.Summary{Frequencies: weights.Table()}
	if sentenceCount <= 0 {
		return summary, nil
	}

	sentences, err := s.segmenter.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}
	cands, err := s.model.scoreSentences(sentences, weights)
	if err != nil {
		return nil, err
	}
	summary.Sentences = topN(cands, sentenceCount)

	texts := make([]string, len(summary.Sentences))
	for i, sent := range summary.Sentences {
		texts[i] = sent.Text
	}
	summary.Text = strings.Join(texts, SentenceSeparator)
	return summary, nil
}
