package wordcount

import "slices"

// rankNaive walks the distinct count levels from highest to lowest and emits
// the words of each level in lexical order until limit entries are collected.
func rankNaive(text string, limit int) []WordCount {
	counts := frequencies(text)

	seen := make(map[int]struct{}, len(counts))
	levels := make([]int, 0, len(counts))
	for _, c := range counts {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		levels = append(levels, c)
	}
	slices.Sort(levels)
	slices.Reverse(levels)

	out := make([]WordCount, 0, min(limit, len(counts)))
	for _, level := range levels {
		if len(out) == limit {
			break
		}
		words := make([]string, 0)
		for w, c := range counts {
			if c == level {
				words = append(words, w)
			}
		}
		slices.Sort(words)
		for _, w := range words {
			if len(out) == limit {
				break
			}
			out = append(out, WordCount{Word: w, Count: level})
		}
	}
	return out
}
