package store

import (
	"context"
	"time"
)

// Store persists raw query counts and generated reports. The pipeline
// itself keeps no state between runs; the store only holds its inputs
// and its finished artifacts.
type Store interface {
	Close() error

	// Query counts
	UpsertQueryCount(ctx context.Context, query string, count int64) error
	QueryCounts(ctx context.Context) ([]QueryCount, error)

	// Reports
	SaveReport(ctx context.Context, r ReportRecord) error
	GetReport(ctx context.Context, id string) (ReportRecord, bool, error)
	ListReports(ctx context.Context, limit int) ([]ReportRecord, error)
}

// QueryCount is one raw search query with its usage count as reported
// by the analytics source.
type QueryCount struct {
	Query string
	Count int64
}

// ReportRecord is a persisted pipeline report. Payload holds the
// JSON-encoded report body.
type ReportRecord struct {
	ID        string
	CreatedAt time.Time
	Language  string
	Topics    int
	Seed      uint64
	Payload   []byte
}
