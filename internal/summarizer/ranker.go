package summarizer

import (
	"container/heap"

	"textkit/internal/domain"
)

// candidate is a distinct sentence text. Repeated sentences share one
// candidate whose score accumulates and whose position is the first one.
type candidate struct {
	text  string
	score float64
	pos   int
}

// worse orders candidates from least to most preferred: lower score
// first, and among equal scores the later position first.
func worse(a, b candidate) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.pos > b.pos
}

// minHeap keeps the least preferred candidate on top.
type minHeap []candidate

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// scoreSentences sums the term weights of every sentence's words.
func (m *Model) scoreSentences(sentences []string, weights *TermWeights) ([]candidate, error) {
	index := make(map[string]int, len(sentences))
	var cands []candidate
	for i, sent := range sentences {
		tokens, err := m.Tokens(sent)
		if err != nil {
			return nil, err
		}
		score := 0.0
		for _, tok := range tokens {
			score += weights.WeightOf(tok)
		}
		if j, ok := index[sent]; ok {
			cands[j].score += score
			continue
		}
		index[sent] = len(cands)
		cands = append(cands, candidate{text: sent, score: score, pos: i})
	}
	return cands, nil
}

// topN returns the n best candidates, best first, without sorting all of them.
func topN(cands []candidate, n int) []domain.ScoredSentence {
	if n <= 0 {
		return nil
	}
	h := make(minHeap, 0, n+1)
	for _, c := range cands {
		if len(h) < n {
			heap.Push(&h, c)
			continue
		}
		if worse(h[0], c) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}
	out := make([]domain.ScoredSentence, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		c := heap.Pop(&h).(candidate)
		out[i] = domain.ScoredSentence{Text: c.text, Score: c.score, Position: c.pos}
	}
	return out
}
