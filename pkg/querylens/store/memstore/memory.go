package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/querylens/pkg/querylens/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	counts  map[string]int64
	reports map[string]store.ReportRecord
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		counts:  make(map[string]int64),
		reports: make(map[string]store.ReportRecord),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertQueryCount inserts or replaces the count for a raw query.
func (s *Store) UpsertQueryCount(ctx context.Context, query string, count int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[query] = count
	return nil
}

// QueryCounts returns every stored pair ordered by count descending
// then query ascending, matching the SQLite implementation.
func (s *Store) QueryCounts(ctx context.Context) ([]store.QueryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.QueryCount, 0, len(s.counts))
	for q, c := range s.counts {
		out = append(out, store.QueryCount{Query: q, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	return out, nil
}

// SaveReport persists a finished report.
func (s *Store) SaveReport(ctx context.Context, r store.ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = copyReport(r)
	return nil
}

// GetReport returns a report by ID.
func (s *Store) GetReport(ctx context.Context, id string) (store.ReportRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.reports[id]; ok {
		return copyReport(rec), true, nil
	}
	return store.ReportRecord{}, false, nil
}

// ListReports returns the most recent reports, newest first.
func (s *Store) ListReports(ctx context.Context, limit int) ([]store.ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.ReportRecord, 0, len(s.reports))
	for _, rec := range s.reports {
		out = append(out, copyReport(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyReport(r store.ReportRecord) store.ReportRecord {
	payload := make([]byte, len(r.Payload))
	copy(payload, r.Payload)
	r.Payload = payload
	return r
}
