package spelling

import (
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff segment.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Segment is a run of text that is unchanged, removed or added.
type Segment struct {
	Op   Op
	Text string
}

var piecePattern = regexp.MustCompile(`\s+|\S+`)

// Diff compares two texts word by word. Every word and whitespace run is
// mapped to one rune so that diffmatchpatch never splits a word.
func Diff(original, corrected string) []Segment {
	var pieces []string
	ids := make(map[string]rune)
	encode := func(s string) []rune {
		parts := piecePattern.FindAllString(s, -1)
		out := make([]rune, len(parts))
		for i, p := range parts {
			r, ok := ids[p]
			if !ok {
				r = pieceRune(len(pieces))
				ids[p] = r
				pieces = append(pieces, p)
			}
			out[i] = r
		}
		return out
	}
	a, b := encode(original), encode(corrected)
	decode := make(map[rune]string, len(pieces))
	for p, r := range ids {
		decode[r] = p
	}

	dmp := diffmatchpatch.New()
	var segs []Segment
	for _, d := range dmp.DiffMainRunes(a, b, false) {
		var sb strings.Builder
		for _, r := range d.Text {
			sb.WriteString(decode[r])
		}
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		if n := len(segs); n > 0 && segs[n-1].Op == op {
			segs[n-1].Text += sb.String()
			continue
		}
		segs = append(segs, Segment{Op: op, Text: sb.String()})
	}
	return segs
}

// pieceRune maps the i-th distinct piece into the private use areas.
func pieceRune(i int) rune {
	const bmp = 0xF8FF - 0xE000 + 1
	if i < bmp {
		return rune(0xE000 + i)
	}
	return rune(0xF0000 + i - bmp)
}

// Markup renders segments in word-diff style: [-removed-]{+added+}.
func Markup(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Op {
		case Delete:
			b.WriteString("[-" + s.Text + "-]")
		case Insert:
			b.WriteString("{+" + s.Text + "+}")
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Side rebuilds one side of the diff: the original for Delete, the
// corrected text for Insert.
func Side(segs []Segment, side Op) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Op == Equal || s.Op == side {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
