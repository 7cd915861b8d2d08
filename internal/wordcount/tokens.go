package wordcount

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokens splits text on single spaces. Tokens made only of whitespace, which
// appear when separators repeat, are dropped; punctuation is kept as-is.
func tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range strings.SplitSeq(text, " ") {
			if strings.TrimSpace(tok) == "" {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// lower lowercases every token. A Caser keeps state, so each sequence gets its own.
func lower(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		caser := cases.Lower(language.Und)
		for tok := range seq {
			if !yield(caser.String(tok)) {
				return
			}
		}
	}
}

// group drains seq into a frequency table.
func group(seq iter.Seq[string]) map[string]int {
	counts := make(map[string]int)
	for w := range seq {
		counts[w]++
	}
	return counts
}

// frequencies builds the lowercase word -> count table for text.
func frequencies(text string) map[string]int {
	return group(lower(tokens(text)))
}
