// Package topics fits a Latent Dirichlet Allocation mixture model over a
// document-term matrix and reports each topic's top-weighted terms.
//
// Inference is batch variational Bayes: each pass computes per-document
// topic responsibilities against the current topic-term distribution, then
// re-estimates the topic-term pseudo-counts from the accumulated
// statistics. All randomness comes from one seeded generator, so a given
// corpus, parameter set, and seed always produce identical topics.
package topics

import (
	"math"
	"math/rand"

	"github.com/dmaynor/llm-convo/pkg/convo/vectorize"
)

// Defaults for the analysis knobs and the inference loop.
const (
	DefaultNumTopics = 10
	DefaultTopWords  = 10
	DefaultSeed      = 42

	defaultMaxIter = 10
	docIterLimit   = 100
	meanChangeTol  = 1e-3
)

// Options configures a topic-model fit.
type Options struct {
	// NumTopics is the number of latent topics; <= 0 means DefaultNumTopics.
	NumTopics int
	// Seed fixes the stochastic initialization of the topic-term matrix.
	Seed int64
	// MaxIter caps the outer variational passes; <= 0 means the default.
	MaxIter int
}

// Model is a fitted topic model.
type Model struct {
	terms  []string
	lambda [][]float64 // topic-term pseudo-counts, one row per topic
}

// Fit runs variational inference over the matrix. A corpus with fewer
// documents than topics degrades to duplicate or near-empty topics rather
// than failing; callers treat that as a configuration warning.
func Fit(m *vectorize.Matrix, opts Options) *Model {
	k := opts.NumTopics
	if k <= 0 {
		k = DefaultNumTopics
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = defaultMaxIter
	}
	w := len(m.Terms)
	alpha := 1.0 / float64(k) // document-topic prior
	eta := 1.0 / float64(k)   // topic-term prior

	rng := rand.New(rand.NewSource(opts.Seed))
	lambda := make([][]float64, k)
	for topic := range lambda {
		row := make([]float64, w)
		for col := range row {
			row[col] = eta + rng.Float64()
		}
		lambda[topic] = row
	}

	model := &Model{terms: m.Terms, lambda: lambda}
	if w == 0 || len(m.Rows) == 0 {
		return model
	}

	for iter := 0; iter < maxIter; iter++ {
		expElogbeta := expDirichletExpectation(lambda)

		sstats := make([][]float64, k)
		for topic := range sstats {
			sstats[topic] = make([]float64, w)
		}

		for _, row := range m.Rows {
			gamma, phiNorm := inferDocument(row, expElogbeta, alpha)
			// Fold this document's responsibilities into the sufficient
			// statistics for the M step.
			expElogtheta := expDirichletExpectationRow(gamma)
			for col, n := range row {
				if n == 0 {
					continue
				}
				norm := phiNorm[col]
				for topic := 0; topic < k; topic++ {
					sstats[topic][col] += n * expElogtheta[topic] * expElogbeta[topic][col] / norm
				}
			}
		}

		for topic := range lambda {
			for col := range lambda[topic] {
				lambda[topic][col] = eta + sstats[topic][col]
			}
		}
	}

	return model
}

// inferDocument runs the per-document E step: iterate the variational
// topic distribution gamma to convergence against the current topic-term
// expectations, returning gamma and the per-term responsibility
// normalizers.
func inferDocument(row []float64, expElogbeta [][]float64, alpha float64) ([]float64, []float64) {
	k := len(expElogbeta)
	w := len(row)

	var total float64
	for _, n := range row {
		total += n
	}

	gamma := make([]float64, k)
	for topic := range gamma {
		gamma[topic] = alpha + total/float64(k)
	}

	phiNorm := make([]float64, w)
	expElogtheta := expDirichletExpectationRow(gamma)
	updatePhiNorm(row, expElogtheta, expElogbeta, phiNorm)

	next := make([]float64, k)
	for i := 0; i < docIterLimit; i++ {
		for topic := 0; topic < k; topic++ {
			var acc float64
			for col, n := range row {
				if n == 0 {
					continue
				}
				acc += n * expElogbeta[topic][col] / phiNorm[col]
			}
			next[topic] = alpha + expElogtheta[topic]*acc
		}

		var change float64
		for topic := range gamma {
			change += math.Abs(next[topic] - gamma[topic])
			gamma[topic] = next[topic]
		}
		expElogtheta = expDirichletExpectationRow(gamma)
		updatePhiNorm(row, expElogtheta, expElogbeta, phiNorm)

		if change/float64(k) < meanChangeTol {
			break
		}
	}

	return gamma, phiNorm
}

func updatePhiNorm(row, expElogtheta []float64, expElogbeta [][]float64, phiNorm []float64) {
	for col, n := range row {
		if n == 0 {
			continue
		}
		var sum float64
		for topic := range expElogtheta {
			sum += expElogtheta[topic] * expElogbeta[topic][col]
		}
		phiNorm[col] = sum + 1e-100
	}
}

// Topics returns each topic's topWords highest-weight terms, topics in
// index order. Weight ties resolve to the lower vocabulary index.
func (m *Model) Topics(topWords int) [][]string {
	if topWords <= 0 {
		topWords = DefaultTopWords
	}

	out := make([][]string, len(m.lambda))
	for topic, weights := range m.lambda {
		limit := topWords
		if limit > len(weights) {
			limit = len(weights)
		}
		out[topic] = topTerms(m.terms, weights, limit)
	}
	return out
}

// NumTopics returns the number of fitted topics.
func (m *Model) NumTopics() int {
	return len(m.lambda)
}

// topTerms selects the limit highest-weight columns via repeated scans;
// vocabulary order breaks ties because the scan keeps the first maximum.
func topTerms(terms []string, weights []float64, limit int) []string {
	taken := make([]bool, len(weights))
	out := make([]string, 0, limit)
	for len(out) < limit {
		best := -1
		for col, weight := range weights {
			if taken[col] {
				continue
			}
			if best == -1 || weight > weights[best] {
				best = col
			}
		}
		if best == -1 {
			break
		}
		taken[best] = true
		out = append(out, terms[best])
	}
	return out
}

// expDirichletExpectation returns exp(E[log X]) for each row of a
// Dirichlet parameter matrix.
func expDirichletExpectation(param [][]float64) [][]float64 {
	out := make([][]float64, len(param))
	for i, row := range param {
		out[i] = expDirichletExpectationRow(row)
	}
	return out
}

func expDirichletExpectationRow(row []float64) []float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}
	psiSum := digamma(sum)
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = math.Exp(digamma(v) - psiSum)
	}
	return out
}

// digamma approximates the psi function with the standard asymptotic
// expansion, shifting small arguments up via the recurrence
// psi(x) = psi(x+1) - 1/x.
func digamma(x float64) float64 {
	var r float64
	for x < 6 {
		r -= 1 / x
		x++
	}
	f := 1 / (x * x)
	return r + math.Log(x) - 0.5/x -
		f*(1.0/12-f*(1.0/120-f*(1.0/252-f*(1.0/240-f*(1.0/132)))))
}
