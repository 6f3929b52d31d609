package domain

// WordCount is one row of the frequency table.
type WordCount struct {
	Word  string
	Count int
}

// ScoredSentence is a sentence selected for a summary with its score.
type ScoredSentence struct {
	Text  string
	Score float64
	// Position is the index of the sentence's first occurrence in the document.
	Position int
}

// Summary is the result of an extractive summarization.
type Summary struct {
	Text        string
	Sentences   []ScoredSentence
	Frequencies []WordCount
}

// SentimentLabel classifies a polarity against a threshold.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
)

// Sentiment is the polarity of a piece of text in [-1, 1].
type Sentiment struct {
	Polarity float64
	Label    SentimentLabel
}

// SentenceSentiment pairs a sentence with its sentiment.
type SentenceSentiment struct {
	Sentence string
	Sentiment
}

// TaggedToken is a word with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Change is a single corrected word.
type Change struct {
	Index     int
	Original  string
	Corrected string
}

// Correction is the result of spell checking a text.
type Correction struct {
	Original  string
	Corrected string
	Changes   []Change
}

// Report aggregates all analyses of one document.
type Report struct {
	Summary    *Summary
	Sentiment  Sentiment
	Sentences  []SentenceSentiment
	Tags       []TaggedToken
	Correction Correction
}
