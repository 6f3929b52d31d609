package segmenter

import (
	"regexp"
	"strings"
)

// RegexSegmenter splits text into sentences on terminal punctuation.
// It knows nothing about abbreviations; prefer PunktSegmenter for prose.
type RegexSegmenter struct {
	splitter *regexp.Regexp
}

func NewRegexSegmenter() *RegexSegmenter {
	return &RegexSegmenter{
		splitter: regexp.MustCompile(`[^.!?]+[.!?]+`),
	}
}

// Segment returns the trimmed sentences of text. Trailing text without
// terminal punctuation becomes the last sentence.
func (s *RegexSegmenter) Segment(text string) ([]string, error) {
	locs := s.splitter.FindAllStringIndex(text, -1)
	var sentences []string
	end := 0
	for _, loc := range locs {
		if sent := strings.TrimSpace(text[loc[0]:loc[1]]); sent != "" {
			sentences = append(sentences, sent)
		}
		end = loc[1]
	}
	if tail := strings.TrimSpace(text[end:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences, nil
}
