package spelling

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"textkit/internal/domain"
)

//go:embed words.txt
var englishWords string

// Corrector replaces unknown words with the closest dictionary word.
// It is read-only after construction and safe for concurrent use.
type Corrector struct {
	freq        map[string]int
	byLen       map[int][]string
	maxDistance int
	wordPattern *regexp.Regexp
}

// NewCorrector builds a corrector over dict, a word to frequency mapping.
func NewCorrector(dict map[string]int, maxDistance int) *Corrector {
	if maxDistance <= 0 {
		maxDistance = 2
	}
	c := &Corrector{
		freq:        make(map[string]int, len(dict)),
		byLen:       make(map[int][]string),
		maxDistance: maxDistance,
		wordPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
	}
	for w, n := range dict {
		c.add(strings.ToLower(w), n)
	}
	return c
}

// English returns a corrector over the embedded English dictionary,
// extended with the entries of extraFile when it is not empty.
func English(maxDistance int, extraFile string) (*Corrector, error) {
	dict, err := ParseDictionary(strings.NewReader(englishWords))
	if err != nil {
		return nil, err
	}
	if extraFile != "" {
		f, err := os.Open(extraFile)
		if err != nil {
			return nil, fmt.Errorf("open dictionary: %w", err)
		}
		defer f.Close()
		extra, err := ParseDictionary(f)
		if err != nil {
			return nil, err
		}
		for w, n := range extra {
			dict[w] += n
		}
	}
	return NewCorrector(dict, maxDistance), nil
}

// ParseDictionary reads "word count" lines. A missing count means 1;
// blank lines and '#' comments are skipped.
func ParseDictionary(r io.Reader) (map[string]int, error) {
	dict := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		n := 1
		if len(fields) > 1 {
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 0 {
				return nil, fmt.Errorf("dictionary line %d: bad count %q", line, fields[1])
			}
			n = v
		}
		dict[strings.ToLower(fields[0])] += n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return dict, nil
}

func (c *Corrector) add(w string, n int) {
	if _, ok := c.freq[w]; !ok {
		l := utf8.RuneCountInString(w)
		c.byLen[l] = append(c.byLen[l], w)
	}
	c.freq[w] += n
}

// Known reports whether word is in the dictionary, ignoring case.
func (c *Corrector) Known(word string) bool {
	_, ok := c.freq[strings.ToLower(word)]
	return ok
}

// Suggest returns the best replacement for a lowercase word: the word
// itself when known, otherwise the nearest dictionary word within the
// maximum edit distance, preferring frequent and then alphabetically
// first words. ok is false when nothing is close enough.
func (c *Corrector) Suggest(word string) (string, bool) {
	if _, known := c.freq[word]; known {
		return word, true
	}
	best, bestDist, bestFreq := "", c.maxDistance+1, -1
	l := utf8.RuneCountInString(word)
	for n := l - c.maxDistance; n <= l+c.maxDistance; n++ {
		for _, cand := range c.byLen[n] {
			d := levenshtein.ComputeDistance(word, cand)
			if d > c.maxDistance {
				continue
			}
			f := c.freq[cand]
			if d < bestDist || (d == bestDist && (f > bestFreq || (f == bestFreq && cand < best))) {
				best, bestDist, bestFreq = cand, d, f
			}
		}
	}
	return best, best != ""
}

// Correct fixes every unknown word of text, keeping punctuation,
// spacing and the case shape of each word. Words with apostrophes or
// a single letter are left alone.
func (c *Corrector) Correct(text string) domain.Correction {
	out := domain.Correction{Original: text}
	var b strings.Builder
	last := 0
	for i, loc := range c.wordPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		b.WriteString(text[last:loc[0]])
		last = loc[1]

		fixed := word
		if utf8.RuneCountInString(word) > 1 && !strings.ContainsAny(word, "'’") {
			if s, ok := c.Suggest(strings.ToLower(word)); ok {
				fixed = matchCase(word, s)
			}
		}
		if fixed != word {
			out.Changes = append(out.Changes, domain.Change{Index: i, Original: word, Corrected: fixed})
		}
		b.WriteString(fixed)
	}
	b.WriteString(text[last:])
	out.Corrected = b.String()
	return out
}

// matchCase gives s the case shape of like: UPPER, Title or lower.
func matchCase(like, s string) string {
	if strings.ToUpper(like) == like {
		return strings.ToUpper(s)
	}
	r, size := utf8.DecodeRuneInString(like)
	if unicode.IsUpper(r) && size > 0 {
		first, n := utf8.DecodeRuneInString(s)
		return string(unicode.ToUpper(first)) + s[n:]
	}
	return s
}
