package wordcount

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLimit    = errors.New("limit must not be negative")
	ErrUnknownStrategy = errors.New("unknown ranking strategy")
)

// WordCount is a single ranked entry.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Strategy selects one of the equivalent ranking implementations.
type Strategy string

const (
	// Naive groups words by distinct count level, highest level first.
	Naive Strategy = "v1"
	// SortedEviction keeps every entry in a priority queue and polls the first N.
	SortedEviction Strategy = "v2"
	// Pipeline composes lazy iterator stages: split, lowercase, group, sort, take.
	Pipeline Strategy = "v3"
)

// Strategies lists the supported strategies in version order.
var Strategies = []Strategy{Naive, SortedEviction, Pipeline}

// ParseStrategy maps a version label ("v1", "v2", "v3") to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Naive:
		return Naive, nil
	case SortedEviction:
		return SortedEviction, nil
	case Pipeline:
		return Pipeline, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Rank returns the limit most frequent words of text, case-insensitively.
//
// Entries are ordered by count descending and, within equal counts, by word
// ascending. The result holds exactly min(limit, distinct words) entries; ties
// at the cut-off are truncated, never expanded. Every strategy returns the same
// slice for the same input.
func Rank(text string, limit int, s Strategy) ([]WordCount, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	switch s {
	case Naive:
		return rankNaive(text, limit), nil
	case SortedEviction:
		return rankSorted(text, limit), nil
	case Pipeline:
		return rankPipeline(text, limit), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
}

// compare orders entries by count descending, then word ascending.
func compare(a, b WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}
