package acquire

import (
	"context"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/config"
	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
)

// USDAFoodAccess downloads the USDA Food Access Research Atlas workbook,
// which carries the LILA tract designations. Persisted byte-for-byte.
type USDAFoodAccess struct {
	cfg *config.Config
}

// Name implements Source.
func (s *USDAFoodAccess) Name() string { return "usda" }

// Description implements Source.
func (s *USDAFoodAccess) Description() string { return "USDA Food Access Research Atlas" }

// Fetch implements Source.
func (s *USDAFoodAccess) Fetch(ctx context.Context, f fetcher.Fetcher, rawDir string) (*Result, error) {
	log := zap.L().With(zap.String("source", s.Name()))

	url := s.cfg.Sources.USDAAtlasURL
	path := filepath.Join(rawDir, s.cfg.Data.FoodFile)

	log.Info("downloading USDA food access atlas", zap.String("url", url))
	n, err := f.DownloadToFile(ctx, url, path)
	if err != nil {
		return &Result{Source: s.Name(), URL: url}, eris.Wrap(err, "usda: download")
	}

	log.Info("USDA atlas written", zap.String("path", path), zap.Int64("bytes", n))
	return &Result{Source: s.Name(), URL: url, Path: path, Bytes: n}, nil
}
