package summarizer

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"textkit/internal/domain"
	"textkit/internal/segmenter"
)

var (
	// ErrEmptyDocument is returned when the text contains no words at all.
	ErrEmptyDocument = errors.New("document contains no words")
	// ErrEmptyVocabulary is returned when every word is a stopword.
	ErrEmptyVocabulary = errors.New("document contains no words besides stopwords")
)

// Model is the lexical frequency model. It is safe for concurrent use as
// long as its tokenizer and stopword set are.
type Model struct {
	tokenizer  domain.WordTokenizer
	stopwords  domain.StopwordSet
	whitespace *regexp.Regexp
	punct      *regexp.Regexp
}

func NewModel(tokenizer domain.WordTokenizer, stopwords domain.StopwordSet) *Model {
	return &Model{
		tokenizer:  tokenizer,
		stopwords:  stopwords,
		whitespace: regexp.MustCompile(`[\s\p{Z}]+`),
		// [:punct:] is exactly the ASCII punctuation class.
		punct: regexp.MustCompile(`[[:punct:]]`),
	}
}

// Normalize collapses whitespace, blanks out punctuation and lowercases.
func (m *Model) Normalize(text string) string {
	text = m.whitespace.ReplaceAllString(text, " ")
	text = m.punct.ReplaceAllString(text, " ")
	// A Caser keeps state, so each call gets its own.
	return cases.Lower(language.English).String(text)
}

// Tokens normalizes text and splits it into words.
func (m *Model) Tokens(text string) ([]string, error) {
	tokens, err := m.tokenizer.Tokenize(m.Normalize(text))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return tokens, nil
}

// Build computes the term weights of text.
func (m *Model) Build(text string) (*TermWeights, error) {
	tokens, err := m.Tokens(text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyDocument
	}
	counts := segmenter.Counts(tokens)
	for tok := range counts {
		if m.stopwords.Contains(tok) {
			delete(counts, tok)
		}
	}
	if len(counts) == 0 {
		return nil, ErrEmptyVocabulary
	}
	maxCount := 0
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}
	weights := make(map[string]float64, len(counts))
	for tok, c := range counts {
		weights[tok] = float64(c) / float64(maxCount)
	}
	return &TermWeights{counts: counts, weights: weights}, nil
}

// TermWeights maps each vocabulary token to its raw count and its weight,
// the count scaled by the largest count in the document.
type TermWeights struct {
	counts  map[string]int
	weights map[string]float64
}

// WeightOf returns the weight of tok, or 0 when tok is not in the vocabulary.
func (w *TermWeights) WeightOf(tok string) float64 {
	return w.weights[tok]
}

// Len is the vocabulary size.
func (w *TermWeights) Len() int { return len(w.counts) }

// Table returns one row per vocabulary token, most frequent first and
// alphabetical among equal counts.
func (w *TermWeights) Table() []domain.WordCount {
	rows := make([]domain.WordCount, 0, len(w.counts))
	for tok, c := range w.counts {
		rows = append(rows, domain.WordCount{Word: tok, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Word < rows[j].Word
	})
	return rows
}
