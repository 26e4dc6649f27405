package acquire

import (
	"context"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/config"
	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
)

// CDCPlaces downloads the CDC PLACES census-tract health measure export.
// The file is persisted byte-for-byte; all filtering happens in transform.
type CDCPlaces struct {
	cfg *config.Config
}

// Name implements Source.
func (s *CDCPlaces) Name() string { return "cdc" }

// Description implements Source.
func (s *CDCPlaces) Description() string { return "CDC PLACES census tract health measures" }

// Fetch implements Source.
func (s *CDCPlaces) Fetch(ctx context.Context, f fetcher.Fetcher, rawDir string) (*Result, error) {
	log := zap.L().With(zap.String("source", s.Name()))

	url := s.cfg.Sources.CDCPlacesURL
	path := filepath.Join(rawDir, s.cfg.Data.HealthFile)

	log.Info("downloading CDC PLACES export", zap.String("url", url))
	n, err := f.DownloadToFile(ctx, url, path)
	if err != nil {
		return &Result{Source: s.Name(), URL: url}, eris.Wrap(err, "cdc: download")
	}

	log.Info("CDC PLACES export written", zap.String("path", path), zap.Int64("bytes", n))
	return &Result{Source: s.Name(), URL: url, Path: path, Bytes: n}, nil
}
