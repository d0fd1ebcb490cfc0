// Package convo runs the analyses over the user messages of a
// conversation export and assembles the results into a report.
package convo

import (
	"fmt"

	"github.com/dmaynor/llm-convo/pkg/convo/export"
	"github.com/dmaynor/llm-convo/pkg/convo/freq"
	"github.com/dmaynor/llm-convo/pkg/convo/report"
	"github.com/dmaynor/llm-convo/pkg/convo/similarity"
	"github.com/dmaynor/llm-convo/pkg/convo/stoplist"
	"github.com/dmaynor/llm-convo/pkg/convo/tokenize"
	"github.com/dmaynor/llm-convo/pkg/convo/topics"
	"github.com/dmaynor/llm-convo/pkg/convo/vectorize"
)

// Options configures an Engine. Zero values fall back to the package
// defaults of each analysis.
type Options struct {
	TopN                int
	NumTopics           int
	TopWords            int
	SimilarityThreshold float64
	FilterEnglish       bool
	StripHTML           bool
	Seed                int64
	// ExtraStopwords extends the top-100 English stoplist for the
	// common-words filter.
	ExtraStopwords []string
}

// Analyses selects which analyses a run performs. If nothing at all is
// requested, the three main analyses run.
type Analyses struct {
	CommonWords   bool
	TopicModeling bool
	Rephrasing    bool
	// EnglishWords > 0 includes the first N entries of the English
	// stoplist in the report.
	EnglishWords int
}

func (a Analyses) noneSelected() bool {
	return !a.CommonWords && !a.TopicModeling && !a.Rephrasing && a.EnglishWords <= 0
}

// Engine runs analyses with a fixed configuration. Safe to reuse across
// inputs; all state is per-call.
type Engine struct {
	opts  Options
	stops *stoplist.Set
}

// New creates an Engine, building the merged stoplist once.
func New(opts Options) *Engine {
	if opts.SimilarityThreshold == 0 {
		opts.SimilarityThreshold = similarity.DefaultThreshold
	}
	stops := stoplist.TopEnglish()
	for _, w := range opts.ExtraStopwords {
		stops.Add(w)
	}
	return &Engine{opts: opts, stops: stops}
}

// Analyze extracts the user messages and runs the requested analyses.
// Analyses whose input turns out empty produce empty report sections;
// they never abort the run or the other analyses.
func (e *Engine) Analyze(conversations []export.Conversation, req Analyses) *report.Report {
	messages := export.UserMessages(conversations)
	if e.opts.StripHTML {
		for i := range messages {
			messages[i] = tokenize.StripHTML(messages[i])
		}
	}

	if req.noneSelected() {
		req.CommonWords = true
		req.TopicModeling = true
		req.Rephrasing = true
	}

	r := report.New()

	if req.EnglishWords > 0 {
		r.Add("top_english_words", stoplist.TopEnglishWords(req.EnglishWords))
	}

	if req.CommonWords {
		words := freq.CommonWords(messages, freq.Options{
			TopN:          e.opts.TopN,
			FilterEnglish: e.opts.FilterEnglish,
			Stops:         e.stops,
		})
		if words == nil {
			words = []freq.WordCount{}
		}
		r.Add("common_words", words)
	}

	if req.TopicModeling {
		e.addTopics(r, messages)
	}

	if req.Rephrasing {
		pairs := similarity.SimilarPairs(messages, e.opts.SimilarityThreshold)
		if pairs == nil {
			pairs = []similarity.Pair{}
		}
		r.Add("similar_questions", pairs)
	}

	return r
}

// addTopics fits the topic model and appends one section per topic. An
// empty corpus degrades to no topic sections.
func (e *Engine) addTopics(r *report.Report, messages []string) {
	m, err := vectorize.TFIDF(messages)
	if err != nil {
		return
	}

	model := topics.Fit(m, topics.Options{
		NumTopics: e.opts.NumTopics,
		Seed:      e.seed(),
	})
	for idx, terms := range model.Topics(e.opts.TopWords) {
		r.Add(fmt.Sprintf("topic_%d", idx), terms)
	}
}

func (e *Engine) seed() int64 {
	if e.opts.Seed == 0 {
		return topics.DefaultSeed
	}
	return e.opts.Seed
}
