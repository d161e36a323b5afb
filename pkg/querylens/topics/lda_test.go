package topics

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/cognicore/querylens/pkg/querylens/ingest"
	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	groups := []ingest.StemGroup{
		{Stem: "puppi", Term: "puppy", Count: 120},
		{Stem: "train", Term: "training", Count: 95},
		{Stem: "food", Term: "food", Count: 70},
		{Stem: "dog", Term: "dog", Count: 65},
		{Stem: "grain", Term: "grain", Count: 20},
		{Stem: "clicker", Term: "clicker", Count: 15},
	}
	m, err := BuildMatrix(groups, 1)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	return m
}

func TestLDATopicWeightsAreDistributions(t *testing.T) {
	lda := &LDA{Iterations: 50}

	tt, err := lda.Fit(testMatrix(t), 2, 42)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if len(tt.Weights) != 2 {
		t.Fatalf("topics = %d, want 2", len(tt.Weights))
	}
	for k, row := range tt.Weights {
		if len(row) != len(tt.Entries) {
			t.Fatalf("topic %d has %d weights, want %d", k, len(row), len(tt.Entries))
		}
		var sum float64
		for _, w := range row {
			if w < 0 {
				t.Errorf("topic %d has negative weight %g", k, w)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("topic %d weights sum to %g, want 1.0", k, sum)
		}
	}
}

func TestLDADeterministicForFixedSeed(t *testing.T) {
	lda := &LDA{Iterations: 50}

	first, err := lda.Fit(testMatrix(t), 2, 42)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	second, err := lda.Fit(testMatrix(t), 2, 42)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if !reflect.DeepEqual(first.Weights, second.Weights) {
		t.Error("identical seed, K and vocabulary produced different weights")
	}
}

func TestLDASingleTopicAssignsEverythingWithFullAffinity(t *testing.T) {
	lda := &LDA{Iterations: 50}

	tt, err := lda.Fit(testMatrix(t), 1, 42)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	for _, a := range Assign(tt) {
		if a.Topic != 0 {
			t.Errorf("%s assigned to topic %d, want 0", a.Term, a.Topic)
		}
		if a.Affinity != 1.0 {
			t.Errorf("%s affinity = %g, want 1.0", a.Term, a.Affinity)
		}
	}
}

func TestLDAInsufficientVocabulary(t *testing.T) {
	lda := &LDA{Iterations: 50}

	_, err := lda.Fit(testMatrix(t), 100, 42)
	if !errors.Is(err, internalerr.ErrInsufficientVocabulary) {
		t.Fatalf("error = %v, want ErrInsufficientVocabulary", err)
	}

	// The error carries enough context to diagnose: vocabulary size
	// and the requested topic count, which is never clamped.
	var ive *internalerr.InsufficientVocabularyError
	if !errors.As(err, &ive) {
		t.Fatal("error does not expose InsufficientVocabularyError")
	}
	if ive.Vocab != 6 || ive.K != 100 {
		t.Errorf("error context = vocab %d K %d, want 6 and 100", ive.Vocab, ive.K)
	}
}

func TestLDAInvalidTopicCount(t *testing.T) {
	lda := &LDA{}

	_, err := lda.Fit(testMatrix(t), 0, 42)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLDANilMatrix(t *testing.T) {
	lda := &LDA{}

	_, err := lda.Fit(nil, 1, 42)
	if !errors.Is(err, internalerr.ErrEmptyVocabulary) {
		t.Errorf("error = %v, want ErrEmptyVocabulary", err)
	}
}
