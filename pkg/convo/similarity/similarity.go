// Package similarity finds near-duplicate questions: user messages that
// end in a question mark and whose count-vector cosine similarity crosses
// a threshold.
package similarity

import (
	"strings"

	"github.com/dmaynor/llm-convo/pkg/convo/vectorize"
)

// Detection limits.
const (
	// DefaultThreshold is the minimum cosine similarity for a pair.
	DefaultThreshold = 0.5
	// MaxPairs caps the result regardless of how many pairs qualify.
	MaxPairs = 5
)

// Pair is two interrogative messages judged near-duplicates.
type Pair struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Score  float64 `json:"score"`
}

// Questions filters messages to those whose trimmed text ends with '?'.
func Questions(messages []string) []string {
	var questions []string
	for _, msg := range messages {
		if strings.HasSuffix(strings.TrimSpace(msg), "?") {
			questions = append(questions, msg)
		}
	}
	return questions
}

// SimilarPairs returns up to MaxPairs question pairs whose cosine
// similarity strictly exceeds threshold. Count vectors are built over the
// question subset's own vocabulary, not the corpus-wide one. Pairs are
// emitted in row-major order: first index ascending, then second. Fewer
// than two questions, or questions with no countable terms, yield an
// empty result.
//
// The comparison is strict, so threshold 1.0 admits nothing: even an
// exact vector match scores 1.0, not above it.
func SimilarPairs(messages []string, threshold float64) []Pair {
	questions := Questions(messages)
	if len(questions) < 2 {
		return nil
	}

	m, err := vectorize.Count(questions)
	if err != nil {
		// No countable terms in any question: degenerate, not fatal.
		return nil
	}

	var pairs []Pair
	for i := 0; i < len(m.Rows); i++ {
		for j := i + 1; j < len(m.Rows); j++ {
			score := vectorize.Cosine(m.Rows[i], m.Rows[j])
			if score > threshold {
				pairs = append(pairs, Pair{
					First:  questions[i],
					Second: questions[j],
					Score:  score,
				})
				if len(pairs) == MaxPairs {
					return pairs
				}
			}
		}
	}
	return pairs
}
