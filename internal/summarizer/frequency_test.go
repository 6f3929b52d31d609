package summarizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textkit/internal/domain"
	"textkit/internal/segmenter"
	"textkit/internal/stopwords"
)

const catsText = "Cats sleep. Cats eat fish. Dogs bark loudly."

func newTestSummarizer(seg domain.SentenceSegmenter) *FrequencySummarizer {
	if seg == nil {
		seg = segmenter.NewRegexSegmenter()
	}
	return NewFrequencySummarizer(segmenter.NewWordTokenizer(), stopwords.English(), seg)
}

type failingSegmenter struct{ err error }

func (f failingSegmenter) Segment(string) ([]string, error) { return nil, f.err }

type failingTokenizer struct{ err error }

func (f failingTokenizer) Tokenize(string) ([]string, error) { return nil, f.err }

func TestSummarizeRanksByFrequency(t *testing.T) {
	s := newTestSummarizer(nil)

	tests := []struct {
		n    int
		want string
	}{
		{1, "Cats eat fish."},
		// "Cats sleep." and "Dogs bark loudly." tie at 1.5; document order wins.
		{2, "Cats eat fish.\n\nCats sleep."},
		{3, "Cats eat fish.\n\nCats sleep.\n\nDogs bark loudly."},
		{10, "Cats eat fish.\n\nCats sleep.\n\nDogs bark loudly."},
	}
	for _, tt := range tests {
		sum, err := s.Summarize(catsText, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, sum.Text, "n=%d", tt.n)
	}
}

func TestSummarizeScores(t *testing.T) {
	sum, err := newTestSummarizer(nil).Summarize(catsText, 3)
	require.NoError(t, err)
	require.Len(t, sum.Sentences, 3)
	assert.InDelta(t, 2.0, sum.Sentences[0].Score, 1e-9)
	assert.Equal(t, 1, sum.Sentences[0].Position)
	assert.InDelta(t, 1.5, sum.Sentences[1].Score, 1e-9)
	assert.Equal(t, 0, sum.Sentences[1].Position)
	assert.InDelta(t, 1.5, sum.Sentences[2].Score, 1e-9)
}

func TestSummarizeWithPunkt(t *testing.T) {
	seg, err := segmenter.NewPunktSegmenter()
	require.NoError(t, err)
	sum, err := newTestSummarizer(seg).Summarize(catsText, 1)
	require.NoError(t, err)
	assert.Contains(t, []string{"Cats sleep.", "Cats eat fish."}, sum.Text)
}

func TestSummarizeSingleSentence(t *testing.T) {
	text := "Only one Sentence, with Original casing!"
	sum, err := newTestSummarizer(nil).Summarize(text, 5)
	require.NoError(t, err)
	assert.Equal(t, text, sum.Text)
}

func TestSummarizeZeroAndNegativeCount(t *testing.T) {
	s := newTestSummarizer(nil)
	for _, n := range []int{0, -3} {
		sum, err := s.Summarize(catsText, n)
		require.NoError(t, err)
		assert.Empty(t, sum.Text)
		assert.Empty(t, sum.Sentences)
		assert.Len(t, sum.Frequencies, 7)
	}
}

func TestSummarizeCountBound(t *testing.T) {
	s := newTestSummarizer(nil)
	text := catsText + " Birds sing at dawn. Fish swim."
	for n := 0; n <= 7; n++ {
		sum, err := s.Summarize(text, n)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(sum.Sentences), min(n, 5))
		if n > 0 {
			assert.Len(t, strings.Split(sum.Text, SentenceSeparator), len(sum.Sentences))
		}
	}
}

func TestSummarizeMergesRepeatedSentences(t *testing.T) {
	sum, err := newTestSummarizer(nil).Summarize("Cats sleep. Dogs bark. Cats sleep.", 3)
	require.NoError(t, err)
	require.Len(t, sum.Sentences, 2)
	assert.Equal(t, "Cats sleep.", sum.Sentences[0].Text)
	assert.InDelta(t, 4.0, sum.Sentences[0].Score, 1e-9)
	assert.Equal(t, 0, sum.Sentences[0].Position)
}

func TestSummarizeErrors(t *testing.T) {
	s := newTestSummarizer(nil)

	_, err := s.Summarize("The the the.", 1)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = s.Summarize("", 1)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = s.Summarize(" ... !!! ", 1)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	boom := errors.New("boom")
	_, err = NewFrequencySummarizer(failingTokenizer{boom}, stopwords.English(), segmenter.NewRegexSegmenter()).Summarize(catsText, 1)
	assert.ErrorIs(t, err, boom)

	_, err = newTestSummarizer(failingSegmenter{boom}).Summarize(catsText, 1)
	assert.ErrorIs(t, err, boom)
}

func TestFrequencyTable(t *testing.T) {
	sum, err := newTestSummarizer(nil).Summarize(catsText, 1)
	require.NoError(t, err)
	require.Len(t, sum.Frequencies, 7)
	assert.Equal(t, domain.WordCount{Word: "cats", Count: 2}, sum.Frequencies[0])
	assert.Equal(t, domain.WordCount{Word: "bark", Count: 1}, sum.Frequencies[1])
}
