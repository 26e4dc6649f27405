package acquire

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
	"github.com/sucheet2000/medical-desert-california/internal/store"
)

// Summary is the outcome of one acquisition run, in source order.
type Summary struct {
	Results []Result
}

// Failed reports whether any source failed.
func (s *Summary) Failed() bool {
	for _, r := range s.Results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// FailedCount returns how many sources failed.
func (s *Summary) FailedCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// RunAll fetches each source in order. A source failure is recorded and
// logged but never stops the remaining sources. Every attempt, success or
// failure, lands in the manifest.
func RunAll(ctx context.Context, sources []Source, f fetcher.Fetcher, rawDir string, st store.Store) (*Summary, error) {
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "acquire: create raw dir")
	}

	summary := &Summary{}
	for _, src := range sources {
		log := zap.L().With(zap.String("source", src.Name()))
		log.Info("fetching source", zap.String("dataset", src.Description()))

		res, err := src.Fetch(ctx, f, rawDir)
		if res == nil {
			res = &Result{Source: src.Name()}
		}
		res.Err = err

		if err != nil {
			log.Warn("source fetch failed", zap.Error(err))
		} else {
			log.Info("source fetch complete",
				zap.String("path", res.Path),
				zap.Int64("bytes", res.Bytes),
			)
		}

		if st != nil {
			rec := store.FetchRecord{
				Source:  res.Source,
				URL:     res.URL,
				Path:    res.Path,
				Bytes:   res.Bytes,
				Records: res.Records,
				Status:  store.StatusOK,
			}
			if err != nil {
				rec.Status = store.StatusFailed
				rec.Error = err.Error()
			}
			if recErr := st.RecordFetch(ctx, rec); recErr != nil {
				log.Warn("manifest write failed", zap.Error(recErr))
			}
		}

		summary.Results = append(summary.Results, *res)
	}

	return summary, nil
}
