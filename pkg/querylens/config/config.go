package config

import (
	"fmt"
	"strings"

	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

// Config carries every pipeline knob explicitly. Stages never consult
// ambient or process-global state; the same Config threaded through a
// run fully determines its output.
type Config struct {
	// Language selects the snowball stemmer and the built-in stopword
	// set. Must be one of the supported snowball languages.
	Language string `yaml:"language"`

	// Stopwords are merged with the built-in set for Language when
	// UseDefaultStopwords is true, otherwise used alone.
	Stopwords           []string `yaml:"stopwords"`
	UseDefaultStopwords bool     `yaml:"use_default_stopwords"`

	// ExcludedStems removes whole stem groups after consolidation.
	// Intended for domain-dominant terms that would drown the rest.
	ExcludedStems []string `yaml:"excluded_stems"`

	// Topics is the number of latent topics (K) to infer.
	Topics int `yaml:"topics"`

	// Seed drives topic inference. Identical input, language, seed and
	// K reproduce identical output.
	Seed uint64 `yaml:"seed"`

	// MinTermFrequency drops terms below this count before topic
	// modeling. Zero-count terms are always dropped.
	MinTermFrequency int64 `yaml:"min_term_frequency"`

	// MinTopicAffinity filters per-topic term views for rendering.
	MinTopicAffinity float64 `yaml:"min_topic_affinity"`

	// TopTerms caps the frequency table; <= 0 keeps every term.
	TopTerms int `yaml:"top_terms"`

	// QuestionPrefixes select the interrogative view of the table.
	QuestionPrefixes []string `yaml:"question_prefixes"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Language:            "english",
		UseDefaultStopwords: true,
		Topics:              4,
		Seed:                1234,
		MinTermFrequency:    1,
		MinTopicAffinity:    0.001,
		QuestionPrefixes:    []string{"who", "what", "why", "when", "where", "how", "which"},
	}
}

// supportedLanguages mirrors the languages the snowball stemmer accepts.
var supportedLanguages = map[string]struct{}{
	"english":   {},
	"spanish":   {},
	"french":    {},
	"russian":   {},
	"swedish":   {},
	"norwegian": {},
	"hungarian": {},
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if _, ok := supportedLanguages[strings.ToLower(c.Language)]; !ok {
		return fmt.Errorf("unsupported language %q: %w", c.Language, internalerr.ErrInvalidConfig)
	}
	if c.Topics < 1 {
		return fmt.Errorf("topics must be >= 1, got %d: %w", c.Topics, internalerr.ErrInvalidConfig)
	}
	if c.MinTermFrequency < 0 {
		return fmt.Errorf("min_term_frequency must be >= 0, got %d: %w", c.MinTermFrequency, internalerr.ErrInvalidConfig)
	}
	if c.MinTopicAffinity < 0 || c.MinTopicAffinity > 1 {
		return fmt.Errorf("min_topic_affinity must be in [0,1], got %g: %w", c.MinTopicAffinity, internalerr.ErrInvalidConfig)
	}
	return nil
}

// StopwordSet resolves the effective stopword list: the built-in set
// for the configured language (when enabled) plus any configured terms.
func (c Config) StopwordSet() []string {
	var out []string
	if c.UseDefaultStopwords {
		out = append(out, defaultStopwords[strings.ToLower(c.Language)]...)
	}
	out = append(out, c.Stopwords...)
	return out
}
