// Package config loads optional run configuration from a YAML file.
// Absent keys keep their defaults; the CLI's explicit flags override both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmaynor/llm-convo/pkg/convo/freq"
	"github.com/dmaynor/llm-convo/pkg/convo/report"
	"github.com/dmaynor/llm-convo/pkg/convo/similarity"
	"github.com/dmaynor/llm-convo/pkg/convo/topics"
)

// Config holds the tunable analysis knobs and output preferences.
type Config struct {
	TopN                int     `yaml:"top_n"`
	NumTopics           int     `yaml:"num_topics"`
	TopWords            int     `yaml:"top_words"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	Seed                int64   `yaml:"seed"`
	Output              string  `yaml:"output"`
	FilterEnglish       bool    `yaml:"filter_english"`
	StripHTML           bool    `yaml:"strip_html"`
	// ExtraStopwords extends the top-100 English stoplist used by the
	// common-words filter.
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TopN:                freq.DefaultTopN,
		NumTopics:           topics.DefaultNumTopics,
		TopWords:            topics.DefaultTopWords,
		SimilarityThreshold: similarity.DefaultThreshold,
		Seed:                topics.DefaultSeed,
		Output:              report.FormatText,
	}
}

// Load reads a YAML config file over the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
