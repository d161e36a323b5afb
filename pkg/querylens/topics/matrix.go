// Package topics infers latent topics over the consolidated
// vocabulary and hard-assigns each term to its strongest topic.
package topics

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/querylens/pkg/querylens/ingest"
	"github.com/cognicore/querylens/pkg/querylens/internalerr"
)

// VocabEntry ties a matrix row back to its stem, display term and
// consolidated count. Carrying the stem alongside the term makes every
// downstream join structural; two stems that happen to share a display
// term can never be conflated.
type VocabEntry struct {
	Stem  string
	Term  string
	Count int64
}

// Matrix is the single-document term-count matrix: one row per
// vocabulary term, one column for the whole corpus. The corpus is
// deliberately modeled as one aggregate pseudo-document, so the
// per-document topic mixture the model produces is unused downstream.
// Terms filtered below the minimum frequency are structurally absent,
// never stored as zero rows.
type Matrix struct {
	Entries []VocabEntry

	counts *sparse.CSR
}

// BuildMatrix casts consolidated stem groups into the term-document
// matrix fed to the topic model. Groups below minCount, and groups
// with a zero count, are dropped. An empty surviving vocabulary is
// reported as ErrEmptyVocabulary so callers can skip modeling with an
// explicit status instead of fitting on nothing.
func BuildMatrix(groups []ingest.StemGroup, minCount int64) (*Matrix, error) {
	var entries []VocabEntry
	for _, g := range groups {
		if g.Count <= 0 || g.Count < minCount {
			continue
		}
		entries = append(entries, VocabEntry{Stem: g.Stem, Term: g.Term, Count: g.Count})
	}
	if len(entries) == 0 {
		return nil, internalerr.ErrEmptyVocabulary
	}

	dok := sparse.NewDOK(len(entries), 1)
	for i, e := range entries {
		dok.Set(i, 0, float64(e.Count))
	}
	return &Matrix{Entries: entries, counts: dok.ToCSR()}, nil
}

// TermDocument exposes the underlying (terms x documents) matrix.
func (m *Matrix) TermDocument() mat.Matrix {
	return m.counts
}
