package transform

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// FullOutputFile is the name of the full-state output table.
const FullOutputFile = "california_health_equity.csv"

// Pipeline holds the configuration for one transform run. All paths are
// explicit so tests can point it at temporary directories.
type Pipeline struct {
	RawDir       string
	ProcessedDir string
	HealthFile   string
	FoodFile     string

	Health       HealthFilter
	Food         FoodFilter
	Fill         FillPolicy
	CountyFilter string
}

// RunResult summarizes one completed transform run.
type RunResult struct {
	Tracts       int
	CountyTracts int
	FoodDeserts  int
	HighRisk     int
	FullPath     string
	CountyPath   string
}

// Run executes the six pipeline stages in order: load and filter health
// data, reshape to wide form, load and filter food-access data, merge,
// score, persist. Any stage error aborts the run; nothing is written until
// all upstream stages have succeeded.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	log := zap.L().With(zap.String("component", "transform"))

	obs, err := LoadHealth(ctx, filepath.Join(p.RawDir, p.HealthFile), p.Health)
	if err != nil {
		return nil, err
	}

	health := Reshape(obs)

	food, err := LoadFoodAccess(filepath.Join(p.RawDir, p.FoodFile), p.Food)
	if err != nil {
		return nil, err
	}

	records := Merge(health, food)

	Score(records, p.Fill)

	if err := os.MkdirAll(p.ProcessedDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "transform: create processed dir")
	}

	fullPath := filepath.Join(p.ProcessedDir, FullOutputFile)
	if err := WriteRecords(fullPath, records); err != nil {
		return nil, err
	}

	county := FilterCounty(records, p.CountyFilter)
	countyPath := filepath.Join(p.ProcessedDir, countyFileName(p.CountyFilter))
	if err := WriteRecords(countyPath, county); err != nil {
		return nil, err
	}

	res := &RunResult{
		Tracts:       len(records),
		CountyTracts: len(county),
		FullPath:     fullPath,
		CountyPath:   countyPath,
	}
	for _, r := range records {
		if r.IsFoodDesert {
			res.FoodDeserts++
		}
		if r.CombinedRisk == CombinedDesertDisease {
			res.HighRisk++
		}
	}

	log.Info("transform complete",
		zap.Int("tracts", res.Tracts),
		zap.Int("county_tracts", res.CountyTracts),
		zap.Int("food_deserts", res.FoodDeserts),
		zap.Int("high_risk", res.HighRisk),
	)
	return res, nil
}
