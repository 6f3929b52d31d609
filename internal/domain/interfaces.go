package domain

// WordTokenizer splits text into an ordered sequence of word tokens.
type WordTokenizer interface {
	Tokenize(text string) ([]string, error)
}

// SentenceSegmenter splits text into sentences in document order,
// keeping the original casing and punctuation of each sentence.
type SentenceSegmenter interface {
	Segment(text string) ([]string, error)
}

// StopwordSet answers membership for common function words.
type StopwordSet interface {
	Contains(word string) bool
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(text string, sentenceCount int) (*Summary, error)
}

// SentimentAnalyzer scores text polarity.
type SentimentAnalyzer interface {
	Analyze(text string) Sentiment
	AnalyzeSentences(text string) ([]SentenceSentiment, error)
}

// Tagger assigns part-of-speech tags to words.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// SpellChecker corrects misspelled words.
type SpellChecker interface {
	Correct(text string) Correction
}
