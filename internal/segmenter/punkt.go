package segmenter

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// PunktSegmenter detects sentence boundaries with the pre-trained English
// Punkt model, which handles abbreviations such as "Mr." and "e.g.".
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the English model. Load it once and share it.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSegmenter{tokenizer: t}, nil
}

func (s *PunktSegmenter) Segment(text string) ([]string, error) {
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
