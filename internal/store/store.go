// Package store persists the acquisition manifest: one row per source fetch
// attempt, so `acquire --status` can report what was last downloaded and
// whether it succeeded.
package store

import (
	"context"
	"time"
)

// Fetch statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// FetchRecord is one acquisition attempt for one source.
type FetchRecord struct {
	Source    string
	URL       string
	Path      string
	Bytes     int64
	Records   int64
	Status    string
	Error     string
	FetchedAt time.Time
}

// Store records and reports acquisition attempts.
type Store interface {
	Migrate(ctx context.Context) error

	// RecordFetch appends one fetch attempt to the manifest.
	RecordFetch(ctx context.Context, rec FetchRecord) error

	// LatestFetches returns the most recent attempt per source,
	// ordered by source name.
	LatestFetches(ctx context.Context) ([]FetchRecord, error)

	Close() error
}
