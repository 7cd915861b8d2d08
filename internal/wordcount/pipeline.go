package wordcount

import (
	"iter"
	"slices"
)

// rankPipeline expresses the ranking as a chain of iterator stages.
func rankPipeline(text string, limit int) []WordCount {
	ranked := slices.SortedFunc(entries(group(lower(tokens(text)))), compare)
	return slices.AppendSeq(make([]WordCount, 0, min(limit, len(ranked))), take(slices.Values(ranked), limit))
}

func entries(counts map[string]int) iter.Seq[WordCount] {
	return func(yield func(WordCount) bool) {
		for w, c := range counts {
			if !yield(WordCount{Word: w, Count: c}) {
				return
			}
		}
	}
}

// take stops seq after n elements.
func take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}
