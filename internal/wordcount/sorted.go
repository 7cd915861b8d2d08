package wordcount

import "container/heap"

// rankedHeap is a min-heap under compare, so Pop yields the highest-ranked entry.
type rankedHeap []WordCount

func (h rankedHeap) Len() int           { return len(h) }
func (h rankedHeap) Less(i, j int) bool { return compare(h[i], h[j]) < 0 }
func (h rankedHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedHeap) Push(x any) { *h = append(*h, x.(WordCount)) }

func (h *rankedHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// rankSorted loads every entry into a priority queue and polls the first limit.
func rankSorted(text string, limit int) []WordCount {
	counts := frequencies(text)

	h := make(rankedHeap, 0, len(counts))
	for w, c := range counts {
		h = append(h, WordCount{Word: w, Count: c})
	}
	heap.Init(&h)

	out := make([]WordCount, 0, min(limit, h.Len()))
	for len(out) < limit && h.Len() > 0 {
		out = append(out, heap.Pop(&h).(WordCount))
	}
	return out
}
