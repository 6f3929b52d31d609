package tagger

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"textkit/internal/domain"
)

// ProseTagger tags words with the averaged perceptron model bundled in prose.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger { return &ProseTagger{} }

// Tag returns the words of text with their Penn Treebank tags, in order.
func (t *ProseTagger) Tag(text string) ([]domain.TaggedToken, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	tokens := doc.Tokens()
	out := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = domain.TaggedToken{Text: tok.Text, Tag: tok.Tag}
	}
	return out, nil
}

// New returns the tagger registered under kind.
func New(kind string) (domain.Tagger, error) {
	switch kind {
	case "prose", "":
		return NewProseTagger(), nil
	default:
		return nil, fmt.Errorf("unknown tagger: %s", kind)
	}
}

// Describe returns a short description of a Penn Treebank tag.
func Describe(tag string) string {
	if d, ok := descriptions[tag]; ok {
		return d
	}
	return "unknown"
}

var descriptions = map[string]string{
	"CC":   "coordinating conjunction",
	"CD":   "cardinal number",
	"DT":   "determiner",
	"EX":   "existential there",
	"FW":   "foreign word",
	"IN":   "preposition or subordinating conjunction",
	"JJ":   "adjective",
	"JJR":  "adjective, comparative",
	"JJS":  "adjective, superlative",
	"LS":   "list item marker",
	"MD":   "modal",
	"NN":   "noun, singular or mass",
	"NNS":  "noun, plural",
	"NNP":  "proper noun, singular",
	"NNPS": "proper noun, plural",
	"PDT":  "predeterminer",
	"POS":  "possessive ending",
	"PRP":  "personal pronoun",
	"PRP$": "possessive pronoun",
	"RB":   "adverb",
	"RBR":  "adverb, comparative",
	"RBS":  "adverb, superlative",
	"RP":   "particle",
	"SYM":  "symbol",
	"TO":   "to",
	"UH":   "interjection",
	"VB":   "verb, base form",
	"VBD":  "verb, past tense",
	"VBG":  "verb, gerund or present participle",
	"VBN":  "verb, past participle",
	"VBP":  "verb, non-3rd person singular present",
	"VBZ":  "verb, 3rd person singular present",
	"WDT":  "wh-determiner",
	"WP":   "wh-pronoun",
	"WP$":  "possessive wh-pronoun",
	"WRB":  "wh-adverb",
	".":    "sentence-final punctuation",
	",":    "comma",
	":":    "colon or ellipsis",
	"(":    "opening parenthesis",
	")":    "closing parenthesis",
	"``":   "opening quotation mark",
	"''":   "closing quotation mark",
	"#":    "pound sign",
	"$":    "dollar sign",
}
