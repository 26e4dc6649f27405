package transform

import (
	"context"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// CrudePrevalence is the only value type retained from the health table.
// Age-adjusted rows must be dropped before reshaping, which assumes one
// qualifying row per (tract, measure).
const CrudePrevalence = "Crude prevalence"

// HealthFilter selects the health observations to keep.
type HealthFilter struct {
	StateAbbr string
	Measures  []string // measure id allow-list
	ValueType string   // defaults to CrudePrevalence
}

// Column names in the CDC PLACES export.
const (
	colStateAbbr     = "StateAbbr"
	colLocationID    = "LocationID"
	colLocationName  = "LocationName"
	colCountyName    = "CountyName"
	colMeasureID     = "MeasureId"
	colDataValueType = "Data_Value_Type"
	colDataValue     = "Data_Value"
)

// LoadHealth streams the raw CDC PLACES CSV and returns the observations
// matching the filter, in file order. An absent file yields ErrMissingInput.
func LoadHealth(ctx context.Context, path string, filter HealthFilter) ([]model.HealthObservation, error) {
	log := zap.L().With(zap.String("stage", "load_health"))

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrMissingInput, "transform: health data at %s", path)
		}
		return nil, eris.Wrap(err, "transform: open health data")
	}
	defer file.Close() //nolint:errcheck

	if filter.ValueType == "" {
		filter.ValueType = CrudePrevalence
	}
	allowed := make(map[string]bool, len(filter.Measures))
	for _, m := range filter.Measures {
		allowed[m] = true
	}

	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, file, fetcher.CSVOptions{
		HasHeader:  true,
		HeaderCh:   headerCh,
		LazyQuotes: true,
	})

	var (
		cols        map[string]int
		obs         []model.HealthObservation
		total       int
		unparseable int
	)
	for row := range rowCh {
		if cols == nil {
			header := <-headerCh
			cols = indexColumns(header)
			if err := requireColumns(cols, colStateAbbr, colLocationID, colLocationName,
				colCountyName, colMeasureID, colDataValueType, colDataValue); err != nil {
				// Drain both channels so the reader goroutine can finish.
				for range rowCh {
				}
				<-errCh
				return nil, eris.Wrap(err, "transform: health data header")
			}
		}
		total++

		if cell(row, cols[colStateAbbr]) != filter.StateAbbr {
			continue
		}
		measure := cell(row, cols[colMeasureID])
		if !allowed[measure] {
			continue
		}
		if cell(row, cols[colDataValueType]) != filter.ValueType {
			continue
		}

		value, err := strconv.ParseFloat(cell(row, cols[colDataValue]), 64)
		if err != nil {
			unparseable++
			continue
		}

		obs = append(obs, model.HealthObservation{
			TractFIPS:    model.PadFIPS(cell(row, cols[colLocationID])),
			LocationName: cell(row, cols[colLocationName]),
			CountyName:   cell(row, cols[colCountyName]),
			MeasureID:    measure,
			Value:        value,
		})
	}
	if err := <-errCh; err != nil {
		return nil, eris.Wrap(err, "transform: read health data")
	}
	if cols == nil {
		// No data rows; the header may still be buffered (header-only file)
		// or absent entirely (empty file).
		select {
		case header := <-headerCh:
			cols = indexColumns(header)
			if err := requireColumns(cols, colStateAbbr, colLocationID, colLocationName,
				colCountyName, colMeasureID, colDataValueType, colDataValue); err != nil {
				return nil, eris.Wrap(err, "transform: health data header")
			}
		default:
			return nil, eris.Errorf("transform: health data at %s is empty", path)
		}
	}

	log.Info("health data loaded",
		zap.Int("total_rows", total),
		zap.Int("kept", len(obs)),
		zap.Int("unparseable_values", unparseable),
	)
	return obs, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func requireColumns(cols map[string]int, names ...string) error {
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return eris.Errorf("missing column %q", name)
		}
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
