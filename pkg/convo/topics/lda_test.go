package topics

import (
	"reflect"
	"testing"

	"github.com/dmaynor/llm-convo/pkg/convo/vectorize"
)

// two clearly separated themes, enough documents for the mixture to latch on
var corpus = []string{
	"gophers compile fast gophers ship binaries",
	"compile binaries ship gophers",
	"gophers compile gophers",
	"kernels schedule threads kernels preempt threads",
	"threads preempt kernels",
	"kernels schedule kernels threads",
}

func fitCorpus(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := vectorize.TFIDF(corpus)
	if err != nil {
		t.Fatalf("TFIDF: %v", err)
	}
	return Fit(m, opts)
}

func TestFitDeterministic(t *testing.T) {
	opts := Options{NumTopics: 2, Seed: DefaultSeed}
	first := fitCorpus(t, opts).Topics(5)
	second := fitCorpus(t, opts).Topics(5)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical seed diverged:\n%v\n%v", first, second)
	}
}

func TestFitSeedChangesInitialization(t *testing.T) {
	a := fitCorpus(t, Options{NumTopics: 2, Seed: 1})
	b := fitCorpus(t, Options{NumTopics: 2, Seed: 2})
	// Different seeds may still converge to the same topics; the models'
	// raw weights must differ though.
	if reflect.DeepEqual(a.lambda, b.lambda) {
		t.Error("different seeds produced identical weight matrices")
	}
}

func TestFitTopicCountGuarantee(t *testing.T) {
	for _, k := range []int{1, 2, 10, 25} {
		model := fitCorpus(t, Options{NumTopics: k, Seed: DefaultSeed})
		topics := model.Topics(3)
		if len(topics) != k {
			t.Errorf("NumTopics=%d: got %d topics", k, len(topics))
		}
	}
}

func TestFitMoreTopicsThanDocumentsDegrades(t *testing.T) {
	m, err := vectorize.TFIDF([]string{"gophers compile binaries"})
	if err != nil {
		t.Fatalf("TFIDF: %v", err)
	}
	model := Fit(m, Options{NumTopics: 10, Seed: DefaultSeed})
	topics := model.Topics(5)
	if len(topics) != 10 {
		t.Fatalf("expected 10 topics, got %d", len(topics))
	}
	for i, terms := range topics {
		if len(terms) == 0 {
			t.Errorf("topic %d unexpectedly empty", i)
		}
	}
}

func TestTopicsTopWordsLimit(t *testing.T) {
	model := fitCorpus(t, Options{NumTopics: 2, Seed: DefaultSeed})
	for _, terms := range model.Topics(3) {
		if len(terms) > 3 {
			t.Errorf("topic exceeds word limit: %v", terms)
		}
	}
}

func TestTopicsDrawFromVocabulary(t *testing.T) {
	m, err := vectorize.TFIDF(corpus)
	if err != nil {
		t.Fatalf("TFIDF: %v", err)
	}
	vocab := make(map[string]bool, len(m.Terms))
	for _, term := range m.Terms {
		vocab[term] = true
	}

	model := Fit(m, Options{NumTopics: 3, Seed: DefaultSeed})
	for i, terms := range model.Topics(5) {
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			if !vocab[term] {
				t.Errorf("topic %d term %q not in vocabulary", i, term)
			}
			if seen[term] {
				t.Errorf("topic %d repeats term %q", i, term)
			}
			seen[term] = true
		}
	}
}

func TestTopTermsTieBreaksByIndex(t *testing.T) {
	terms := []string{"aa", "bb", "cc"}
	weights := []float64{1.0, 1.0, 2.0}
	got := topTerms(terms, weights, 3)
	want := []string{"cc", "aa", "bb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDigamma(t *testing.T) {
	// psi(1) = -gamma (Euler-Mascheroni), psi(0.5) = -gamma - 2 ln 2
	const euler = 0.5772156649015329
	tests := []struct {
		x, want float64
	}{
		{1, -euler},
		{0.5, -euler - 1.3862943611198906},
		{2, 1 - euler},
	}
	for _, tc := range tests {
		got := digamma(tc.x)
		if diff := got - tc.want; diff > 1e-8 || diff < -1e-8 {
			t.Errorf("digamma(%f) = %.12f, want %.12f", tc.x, got, tc.want)
		}
	}
}
