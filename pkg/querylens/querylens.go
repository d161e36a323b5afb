// Package querylens turns raw search-query usage data into a ranked
// term-frequency table and a latent-topic clustering of the surviving
// vocabulary.
package querylens

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/querylens/pkg/querylens/config"
	"github.com/cognicore/querylens/pkg/querylens/freq"
	"github.com/cognicore/querylens/pkg/querylens/ingest"
	"github.com/cognicore/querylens/pkg/querylens/internalerr"
	"github.com/cognicore/querylens/pkg/querylens/store"
	"github.com/cognicore/querylens/pkg/querylens/topics"
)

// Topic modeling status values carried on a Report.
const (
	TopicStatusOK              = "ok"
	TopicStatusEmptyVocabulary = "empty-vocabulary"
)

// Engine is the batch analytics pipeline facade. One Engine can run
// any number of times; every run recomputes everything from its input.
type Engine struct {
	cfg      config.Config
	pipeline *ingest.Pipeline
	modeler  topics.Modeler
	entropy  *ulid.MonotonicEntropy
}

// Options configures an Engine.
type Options struct {
	Config config.Config

	// Modeler overrides the topic inference backend. Defaults to LDA.
	Modeler topics.Modeler
}

// New creates an Engine with the given options. The configuration is
// validated up front so a bad language or topic count fails here, not
// mid-run.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	modeler := opts.Modeler
	if modeler == nil {
		modeler = &topics.LDA{}
	}

	tokenizer := ingest.NewTokenizer(cfg.StopwordSet())
	stemmer := ingest.NewSnowballStemmer(cfg.Language)

	return &Engine{
		cfg:      cfg,
		pipeline: ingest.NewPipeline(tokenizer, stemmer, cfg.ExcludedStems),
		modeler:  modeler,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Report is the terminal artifact of one pipeline run.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Language    string    `json:"language"`
	Topics      int       `json:"topics"`
	Seed        uint64    `json:"seed"`

	// Terms is the ranked term-frequency table; Questions is its
	// interrogative-prefix view.
	Terms     []TermRow `json:"terms"`
	Questions []TermRow `json:"questions"`

	// TopicTerms holds one filtered term view per topic id. Empty when
	// TopicStatus is not "ok".
	TopicTerms  [][]TopicTermRow `json:"topic_terms,omitempty"`
	TopicStatus string           `json:"topic_status"`
}

// TermRow is one row of the frequency table.
type TermRow struct {
	Stem  string `json:"stem"`
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// TopicTermRow is one term within a topic view.
type TopicTermRow struct {
	Stem     string  `json:"stem"`
	Term     string  `json:"term"`
	Count    int64   `json:"count"`
	Affinity float64 `json:"affinity"`
}

// Run executes the full pipeline over raw query/count pairs.
//
// Malformed input (negative counts, empty queries) rejects the whole
// run before normalization. An empty post-filter vocabulary skips
// topic modeling and reports an explicit empty status; a vocabulary
// smaller than the configured topic count is an error.
func (e *Engine) Run(pairs []store.QueryCount) (*Report, error) {
	if err := validateInput(pairs); err != nil {
		return nil, err
	}

	queries := make([]ingest.Query, len(pairs))
	for i, p := range pairs {
		queries[i] = ingest.Query{Text: p.Query, Count: p.Count}
	}

	groups := e.pipeline.Groups(queries)

	table := freq.Build(groups, e.cfg.TopTerms)
	questions := table.Filter(e.cfg.QuestionPrefixes)

	report := &Report{
		ID:          ulid.MustNew(ulid.Now(), e.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Language:    e.cfg.Language,
		Topics:      e.cfg.Topics,
		Seed:        e.cfg.Seed,
		Terms:       termRows(table),
		Questions:   termRows(questions),
		TopicStatus: TopicStatusOK,
	}

	matrix, err := topics.BuildMatrix(groups, e.cfg.MinTermFrequency)
	if err != nil {
		if errors.Is(err, internalerr.ErrEmptyVocabulary) {
			report.TopicStatus = TopicStatusEmptyVocabulary
			return report, nil
		}
		return nil, fmt.Errorf("document-term matrix: %w", err)
	}

	weights, err := e.modeler.Fit(matrix, e.cfg.Topics, e.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("topic model: %w", err)
	}

	assignments := topics.Assign(weights)
	views := make([][]TopicTermRow, e.cfg.Topics)
	for k := 0; k < e.cfg.Topics; k++ {
		views[k] = topicRows(topics.TopicView(assignments, k, e.cfg.MinTopicAffinity))
	}
	report.TopicTerms = views

	return report, nil
}

// RunFromStore fetches the stored query counts and runs the pipeline
// over them.
func (e *Engine) RunFromStore(ctx context.Context, st store.Store) (*Report, error) {
	pairs, err := st.QueryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch query counts: %w", err)
	}
	return e.Run(pairs)
}

// Record converts a report into its persistence form.
func (r *Report) Record() (store.ReportRecord, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return store.ReportRecord{}, err
	}
	return store.ReportRecord{
		ID:        r.ID,
		CreatedAt: r.GeneratedAt,
		Language:  r.Language,
		Topics:    r.Topics,
		Seed:      r.Seed,
		Payload:   payload,
	}, nil
}

func validateInput(pairs []store.QueryCount) error {
	for i, p := range pairs {
		if p.Count < 0 {
			return &internalerr.InputShapeError{Row: i, Query: p.Query, Count: p.Count, Reason: "negative count"}
		}
		if strings.TrimSpace(p.Query) == "" {
			return &internalerr.InputShapeError{Row: i, Query: p.Query, Count: p.Count, Reason: "empty query"}
		}
	}
	return nil
}

func termRows(table freq.Table) []TermRow {
	rows := make([]TermRow, len(table))
	for i, g := range table {
		rows[i] = TermRow{Stem: g.Stem, Term: g.Term, Count: g.Count}
	}
	return rows
}

func topicRows(assignments []topics.Assignment) []TopicTermRow {
	rows := make([]TopicTermRow, len(assignments))
	for i, a := range assignments {
		rows[i] = TopicTermRow{Stem: a.Stem, Term: a.Term, Count: a.Count, Affinity: a.Affinity}
	}
	return rows
}
