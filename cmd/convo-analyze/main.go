package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/dmaynor/llm-convo/pkg/convo"
	"github.com/dmaynor/llm-convo/pkg/convo/config"
	"github.com/dmaynor/llm-convo/pkg/convo/export"
	"github.com/dmaynor/llm-convo/pkg/convo/history"
	"github.com/dmaynor/llm-convo/pkg/convo/report"
)

func main() {
	defaults := config.Default()

	var (
		commonWords   = flag.Bool("common-words", false, "Perform common words analysis")
		topicModeling = flag.Bool("topic-modeling", false, "Perform latent topic modeling")
		rephrasing    = flag.Bool("rephrasing", false, "Perform question rephrasing analysis")
		filterEnglish = flag.Bool("filter-english-words", false, "Filter out top English words from common words analysis")
		topN          = flag.Int("top-n", defaults.TopN, "Number of top results for common words")
		numTopics     = flag.Int("num-topics", defaults.NumTopics, "Number of topics for topic modeling")
		topWords      = flag.Int("top-words", defaults.TopWords, "Number of words per topic for topic modeling")
		threshold     = flag.Float64("similarity-threshold", defaults.SimilarityThreshold, "Threshold for question rephrasing similarity")
		output        = flag.String("output", defaults.Output, "Output format (text, markdown, json)")
		seed          = flag.Int64("seed", defaults.Seed, "Random seed for topic modeling")
		stripHTML     = flag.Bool("strip-html", false, "Reduce HTML message parts to their text content")
		configPath    = flag.String("config", "", "Optional YAML config file")
		historyPath   = flag.String("history", "", "Optional SQLite database to archive this run's report")
	)
	var englishWords englishWordsValue
	flag.Var(&englishWords, "print-english-words", "Print the top N most common English words (bare flag means 100)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: convo-analyze [flags] <conversations.json>")
	}
	inputPath := flag.Arg(0)

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Explicitly-set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top-n":
			cfg.TopN = *topN
		case "num-topics":
			cfg.NumTopics = *numTopics
		case "top-words":
			cfg.TopWords = *topWords
		case "similarity-threshold":
			cfg.SimilarityThreshold = *threshold
		case "output":
			cfg.Output = *output
		case "seed":
			cfg.Seed = *seed
		case "filter-english-words":
			cfg.FilterEnglish = *filterEnglish
		case "strip-html":
			cfg.StripHTML = *stripHTML
		}
	})

	conversations, err := export.Load(inputPath)
	if err != nil {
		log.Fatalf("load conversations: %v", err)
	}

	opts := convo.Options{
		TopN:                cfg.TopN,
		NumTopics:           cfg.NumTopics,
		TopWords:            cfg.TopWords,
		SimilarityThreshold: cfg.SimilarityThreshold,
		FilterEnglish:       cfg.FilterEnglish,
		StripHTML:           cfg.StripHTML,
		Seed:                cfg.Seed,
		ExtraStopwords:      cfg.ExtraStopwords,
	}
	engine := convo.New(opts)

	rep := engine.Analyze(conversations, convo.Analyses{
		CommonWords:   *commonWords,
		TopicModeling: *topicModeling,
		Rephrasing:    *rephrasing,
		EnglishWords:  int(englishWords),
	})

	out, err := report.Render(rep, cfg.Output)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}
	fmt.Println(out)

	if *historyPath != "" {
		if err := archiveRun(*historyPath, inputPath, opts, rep); err != nil {
			log.Printf("archive run: %v", err)
		}
	}
}

// archiveRun appends this run's options and report to the history store.
func archiveRun(dbPath, inputPath string, opts convo.Options, rep *report.Report) error {
	ctx := context.Background()

	st, err := history.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	reportJSON, err := report.Render(rep, report.FormatJSON)
	if err != nil {
		return err
	}

	_, err = st.SaveRun(ctx, inputPath, string(optsJSON), reportJSON)
	return err
}
