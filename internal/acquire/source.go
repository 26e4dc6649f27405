// Package acquire downloads the raw datasets: the CDC PLACES tract-level
// health table, the USDA Food Access Research Atlas, and a best-effort
// provider sample from the NPPES lookup API. Sources run independently; one
// failing never blocks the others.
package acquire

import (
	"context"

	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
)

// Result holds the outcome of a single source fetch.
type Result struct {
	Source  string
	URL     string
	Path    string
	Bytes   int64
	Records int64
	Err     error
}

// Source defines the interface each raw dataset must implement.
type Source interface {
	// Name returns the unique identifier for this source (e.g., "cdc").
	Name() string

	// Description returns a short human-readable summary for logs and status.
	Description() string

	// Fetch downloads the dataset into rawDir and returns what was written.
	Fetch(ctx context.Context, f fetcher.Fetcher, rawDir string) (*Result, error)
}
