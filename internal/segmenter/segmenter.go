package segmenter

import (
	"fmt"

	"textkit/internal/domain"
)

// New returns the sentence segmenter registered under kind.
func New(kind string) (domain.SentenceSegmenter, error) {
	switch kind {
	case "punkt", "":
		return NewPunktSegmenter()
	case "regex":
		return NewRegexSegmenter(), nil
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", kind)
	}
}
