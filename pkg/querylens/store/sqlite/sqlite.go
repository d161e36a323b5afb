package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/querylens/pkg/querylens/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency between importers and readers
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist. The seed is stored as
// text: SQLite INTEGER is signed and would truncate large uint64 seeds.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS query_counts (
	query TEXT PRIMARY KEY,
	count INTEGER NOT NULL CHECK(count >= 0)
);

CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	language TEXT NOT NULL,
	topics INTEGER NOT NULL,
	seed TEXT NOT NULL,
	payload BLOB
);

CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertQueryCount inserts or replaces the count for a raw query.
func (s *sqliteStore) UpsertQueryCount(ctx context.Context, query string, count int64) error {
	const stmt = `
INSERT INTO query_counts (query, count)
VALUES (?, ?)
ON CONFLICT(query) DO UPDATE SET count=excluded.count;
`
	_, err := s.db.ExecContext(ctx, stmt, query, count)
	return err
}

// QueryCounts returns every stored query/count pair, ordered by count
// descending then query ascending so pipeline runs see a deterministic
// input order regardless of insertion order.
func (s *sqliteStore) QueryCounts(ctx context.Context) ([]store.QueryCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT query, count FROM query_counts ORDER BY count DESC, query ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.QueryCount
	for rows.Next() {
		var qc store.QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count); err != nil {
			return nil, err
		}
		out = append(out, qc)
	}
	return out, rows.Err()
}

// SaveReport persists a finished report.
func (s *sqliteStore) SaveReport(ctx context.Context, r store.ReportRecord) error {
	const stmt = `
INSERT INTO reports (id, created_at, language, topics, seed, payload)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	language=excluded.language,
	topics=excluded.topics,
	seed=excluded.seed,
	payload=excluded.payload;
`
	_, err := s.db.ExecContext(
		ctx,
		stmt,
		r.ID,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.Language,
		r.Topics,
		strconv.FormatUint(r.Seed, 10),
		r.Payload,
	)
	return err
}

// GetReport returns a report by ID.
func (s *sqliteStore) GetReport(ctx context.Context, id string) (store.ReportRecord, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, created_at, language, topics, seed, payload FROM reports WHERE id=?`, id)
	rec, err := scanReport(row)
	if err == sql.ErrNoRows {
		return store.ReportRecord{}, false, nil
	}
	if err != nil {
		return store.ReportRecord{}, false, err
	}
	return rec, true, nil
}

// ListReports returns the most recent reports, newest first.
func (s *sqliteStore) ListReports(ctx context.Context, limit int) ([]store.ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at, language, topics, seed, payload FROM reports ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.ReportRecord
	for rows.Next() {
		rec, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (store.ReportRecord, error) {
	var rec store.ReportRecord
	var createdAt, seed string
	if err := row.Scan(&rec.ID, &createdAt, &rec.Language, &rec.Topics, &seed, &rec.Payload); err != nil {
		return store.ReportRecord{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.ReportRecord{}, err
	}
	rec.CreatedAt = ts
	if seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return store.ReportRecord{}, err
		}
		rec.Seed = v
	}
	return rec, nil
}
