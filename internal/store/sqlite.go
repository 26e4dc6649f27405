package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS fetches (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT NOT NULL,
	url        TEXT NOT NULL,
	path       TEXT NOT NULL DEFAULT '',
	bytes      INTEGER NOT NULL DEFAULT 0,
	records    INTEGER NOT NULL DEFAULT 0,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	fetched_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fetches_source ON fetches(source);
`

// Migrate creates the manifest schema if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordFetch appends one fetch attempt to the manifest.
func (s *SQLiteStore) RecordFetch(ctx context.Context, rec FetchRecord) error {
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fetches (source, url, path, bytes, records, status, error, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.URL, rec.Path, rec.Bytes, rec.Records, rec.Status, rec.Error,
		rec.FetchedAt.Format(time.RFC3339),
	)
	return eris.Wrap(err, "sqlite: record fetch")
}

// LatestFetches returns the most recent attempt per source, ordered by
// source name.
func (s *SQLiteStore) LatestFetches(ctx context.Context) ([]FetchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, url, path, bytes, records, status, error, fetched_at
		 FROM fetches f
		 WHERE f.id = (SELECT MAX(id) FROM fetches WHERE source = f.source)
		 ORDER BY source`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query latest fetches")
	}
	defer rows.Close() //nolint:errcheck

	var out []FetchRecord
	for rows.Next() {
		var rec FetchRecord
		var fetchedAt string
		if err := rows.Scan(&rec.Source, &rec.URL, &rec.Path, &rec.Bytes, &rec.Records,
			&rec.Status, &rec.Error, &fetchedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan fetch row")
		}
		if ts, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
			rec.FetchedAt = ts
		}
		out = append(out, rec)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate fetch rows")
}
