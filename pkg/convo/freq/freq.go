// Package freq ranks the words of a message sequence by occurrence count.
package freq

import (
	"sort"
	"strings"

	"github.com/dmaynor/llm-convo/pkg/convo/stoplist"
	"github.com/dmaynor/llm-convo/pkg/convo/tokenize"
)

// DefaultTopN is the default result-size limit.
const DefaultTopN = 20

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Options configures a common-words analysis.
type Options struct {
	// TopN limits the result size; <= 0 means DefaultTopN.
	TopN int
	// FilterEnglish enables the clean-and-filter pass: alphabetic-only
	// stripping, minimum length, and stopword removal.
	FilterEnglish bool
	// Stops is the stopword set used when FilterEnglish is set; nil means
	// the top-100 English words.
	Stops *stoplist.Set
}

// CommonWords tokenizes each message on whitespace, lowercases, counts
// word occurrences, and returns the TopN most frequent. Ties keep
// first-encountered order, so repeated runs over the same input produce
// identical output.
func CommonWords(messages []string, opts Options) []WordCount {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	stops := opts.Stops
	if stops == nil {
		stops = stoplist.TopEnglish()
	}

	counts := make(map[string]int)
	var order []string // first-encounter order, the tie-break for ranking
	for _, msg := range messages {
		words := tokenize.Split(msg)
		if opts.FilterEnglish {
			words = tokenize.CleanAndFilter(words, stops)
		} else {
			for i, w := range words {
				words[i] = strings.ToLower(w)
			}
		}
		for _, w := range words {
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	ranked := make([]WordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
