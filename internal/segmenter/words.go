package segmenter

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// ErrInvalidText is returned for input that is not valid UTF-8.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// WordTokenizer extracts runs of letters, marks and digits. Apostrophes
// and hyphens split words, so "cat-sitting" yields "cat" and "sitting".
type WordTokenizer struct {
	tokenPattern *regexp.Regexp
}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{tokenPattern: regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)}
}

func (t *WordTokenizer) Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	return t.tokenPattern.FindAllString(text, -1), nil
}

// Counts returns the occurrence count of every distinct token.
func Counts(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}
