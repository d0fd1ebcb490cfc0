// Package vectorize builds document-term representations of a message
// corpus: raw count vectors and TF-IDF weighted vectors. Vocabulary is
// constructed once per call from the full input; there is no incremental
// growth.
package vectorize

import (
	"fmt"
	"math"
	"sort"

	"github.com/dmaynor/llm-convo/pkg/convo/internalerr"
	"github.com/dmaynor/llm-convo/pkg/convo/stoplist"
	"github.com/dmaynor/llm-convo/pkg/convo/tokenize"
)

// MaxFeatures caps the TF-IDF vocabulary at the highest-frequency terms.
const MaxFeatures = 1000

// Matrix is a dense document-term matrix. Terms holds the vocabulary in
// index order; Rows holds one vector per input document, column-aligned
// with Terms.
type Matrix struct {
	Terms []string
	Rows  [][]float64
}

// Count builds integer count vectors over the corpus's own vocabulary
// (every term kept, no cap, no stopword removal). Fails with
// ErrEmptyCorpus when no document yields a term.
func Count(docs []string) (*Matrix, error) {
	tokens := tokenizeAll(docs)

	seen := make(map[string]struct{})
	for _, doc := range tokens {
		for _, term := range doc {
			seen[term] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("count vectors: %w", internalerr.ErrEmptyCorpus)
	}

	terms := sortedTerms(seen)
	index := termIndex(terms)

	rows := make([][]float64, len(tokens))
	for i, doc := range tokens {
		row := make([]float64, len(terms))
		for _, term := range doc {
			row[index[term]]++
		}
		rows[i] = row
	}

	return &Matrix{Terms: terms, Rows: rows}, nil
}

// TFIDF builds L2-normalized tf-idf vectors. English stopwords are removed
// before vocabulary construction and the vocabulary keeps at most
// MaxFeatures terms, chosen by total corpus frequency (ties favor the
// alphabetically earlier term). IDF is log-scaled and smoothed:
// ln((1+N)/(1+df)) + 1, so a term present in every document still carries
// a positive weight and no division by zero can occur.
func TFIDF(docs []string) (*Matrix, error) {
	stops := stoplist.English()

	tokens := tokenizeAll(docs)
	totals := make(map[string]int)
	for i, doc := range tokens {
		kept := doc[:0]
		for _, term := range doc {
			if stops.Has(term) {
				continue
			}
			kept = append(kept, term)
			totals[term]++
		}
		tokens[i] = kept
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("tf-idf vectors: %w", internalerr.ErrEmptyCorpus)
	}

	terms := selectVocabulary(totals, MaxFeatures)
	index := termIndex(terms)

	// Document frequency over the selected vocabulary.
	df := make([]int, len(terms))
	for _, doc := range tokens {
		inDoc := make(map[int]struct{})
		for _, term := range doc {
			if col, ok := index[term]; ok {
				inDoc[col] = struct{}{}
			}
		}
		for col := range inDoc {
			df[col]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for col, d := range df {
		idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	rows := make([][]float64, len(tokens))
	for i, doc := range tokens {
		row := make([]float64, len(terms))
		for _, term := range doc {
			if col, ok := index[term]; ok {
				row[col]++
			}
		}
		var norm float64
		for col := range row {
			row[col] *= idf[col]
			norm += row[col] * row[col]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range row {
				row[col] /= norm
			}
		}
		rows[i] = row
	}

	return &Matrix{Terms: terms, Rows: rows}, nil
}

// Cosine returns the cosine similarity of two equal-length vectors, 0
// when either vector is all zeros.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	// sqrt of the product, not the product of sqrts: identical vectors
	// then score exactly 1, which keeps threshold boundaries meaningful.
	return dot / math.Sqrt(na*nb)
}

func tokenizeAll(docs []string) [][]string {
	tokens := make([][]string, len(docs))
	for i, doc := range docs {
		tokens[i] = tokenize.Terms(doc)
	}
	return tokens
}

// selectVocabulary keeps the max highest-total-count terms and returns
// them in alphabetical order, the column order of the matrix.
func selectVocabulary(totals map[string]int, max int) []string {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > max {
		terms = terms[:max]
	}
	sort.Strings(terms)
	return terms
}

func sortedTerms(seen map[string]struct{}) []string {
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func termIndex(terms []string) map[string]int {
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return index
}
