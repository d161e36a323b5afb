package topics

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"

	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

// Modeler infers per-topic term weights from a term-count matrix.
// Implementations must be deterministic for a fixed seed, so inference
// backends (variational, Gibbs) can be swapped without touching the
// pipeline.
type Modeler interface {
	Fit(m *Matrix, k int, seed uint64) (*TermTopics, error)
}

// TermTopics holds the inferred topic-term weights. Weights[k] is a
// probability distribution over the vocabulary: it sums to 1 across
// Entries.
type TermTopics struct {
	Entries []VocabEntry
	Weights [][]float64 // one row per topic, one column per entry
}

// LDA fits a latent Dirichlet allocation model using online
// variational inference. Inference runs on a single worker with an
// explicitly seeded RNG; no process-wide random state is consulted, so
// identical seed, K and vocabulary reproduce identical weights.
type LDA struct {
	// Iterations overrides the library's training pass count when > 0.
	Iterations int
}

// Fit infers k topics over the matrix vocabulary. The requested k is
// never clamped: a vocabulary smaller than k is an error surfaced to
// the caller.
func (l *LDA) Fit(m *Matrix, k int, seed uint64) (*TermTopics, error) {
	if k < 1 {
		return nil, fmt.Errorf("topic count %d: %w", k, internalerr.ErrInvalidConfig)
	}
	if m == nil || len(m.Entries) == 0 {
		return nil, internalerr.ErrEmptyVocabulary
	}
	if len(m.Entries) < k {
		return nil, &internalerr.InsufficientVocabularyError{Vocab: len(m.Entries), K: k}
	}

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(seed))
	if l.Iterations > 0 {
		lda.Iterations = l.Iterations
	}

	// The transformed document-over-topics matrix is discarded: with a
	// single aggregate document only the term-topic weights matter.
	if _, err := lda.FitTransform(m.TermDocument()); err != nil {
		return nil, fmt.Errorf("lda fit: %w", err)
	}

	components := lda.Components() // topics x vocabulary
	rows, cols := components.Dims()
	if rows != k || cols != len(m.Entries) {
		return nil, fmt.Errorf("lda components: got %dx%d, want %dx%d", rows, cols, k, len(m.Entries))
	}

	weights := make([][]float64, rows)
	for topic := 0; topic < rows; topic++ {
		row := make([]float64, cols)
		var sum float64
		for j := 0; j < cols; j++ {
			v := components.At(topic, j)
			if v < 0 {
				v = 0
			}
			row[j] = v
			sum += v
		}
		// Renormalize so each topic is a proper distribution over
		// terms regardless of backend scaling.
		if sum > 0 {
			for j := range row {
				row[j] /= sum
			}
		}
		weights[topic] = row
	}

	return &TermTopics{Entries: m.Entries, Weights: weights}, nil
}
