package transform

import (
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/fetcher"
	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// FoodFilter selects the food-access rows to keep.
type FoodFilter struct {
	StateName string // full state name as spelled in the atlas, e.g. "California"
	Sheet     string // worksheet name
}

// Column names in the Food Access Research Atlas sheet.
const (
	colCensusTract   = "CensusTract"
	colState         = "State"
	colCounty        = "County"
	colUrban         = "Urban"
	colLILA1And10    = "LILATracts_1And10"
	colLILAHalfAnd10 = "LILATracts_halfAnd10"
	colLILA1And20    = "LILATracts_1And20"
	colLAPopHalf     = "lapophalf"
	colLAPop1        = "lapop1"
	colLAPop10       = "lapop10"
	colLALowIHalf    = "lalowihalf"
	colLALowI1       = "lalowi1"
	colLALowI10      = "lalowi10"
)

// LoadFoodAccess reads the USDA atlas workbook and returns the target
// state's rows projected to the analysis columns. The tract id is rebuilt as
// a zero-padded 11-character string from the numeric tract cell. An absent
// file yields ErrMissingInput.
func LoadFoodAccess(path string, filter FoodFilter) ([]model.FoodAccess, error) {
	log := zap.L().With(zap.String("stage", "load_food_access"))

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrMissingInput, "transform: food access data at %s", path)
		}
		return nil, eris.Wrap(err, "transform: stat food access data")
	}

	rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{SheetName: filter.Sheet})
	if err != nil {
		return nil, eris.Wrap(err, "transform: read food access workbook")
	}
	if len(rows) == 0 {
		return nil, eris.Errorf("transform: food access sheet %q is empty", filter.Sheet)
	}

	cols := indexColumns(rows[0])
	if err := requireColumns(cols, colCensusTract, colState, colCounty, colUrban,
		colLILA1And10, colLILAHalfAnd10, colLILA1And20,
		colLAPopHalf, colLAPop1, colLAPop10, colLALowIHalf, colLALowI1, colLALowI10); err != nil {
		return nil, eris.Wrap(err, "transform: food access header")
	}

	var out []model.FoodAccess
	for _, row := range rows[1:] {
		if cell(row, cols[colState]) != filter.StateName {
			continue
		}

		tract := normalizeTract(cell(row, cols[colCensusTract]))
		if tract == "" {
			continue
		}

		out = append(out, model.FoodAccess{
			TractFIPS:     tract,
			State:         cell(row, cols[colState]),
			County:        cell(row, cols[colCounty]),
			Urban:         parseFlag(cell(row, cols[colUrban])),
			LILA1And10:    parseFlag(cell(row, cols[colLILA1And10])),
			LILAHalfAnd10: parseFlag(cell(row, cols[colLILAHalfAnd10])),
			LILA1And20:    parseFlag(cell(row, cols[colLILA1And20])),
			LAPopHalf:     parseCount(cell(row, cols[colLAPopHalf])),
			LAPop1:        parseCount(cell(row, cols[colLAPop1])),
			LAPop10:       parseCount(cell(row, cols[colLAPop10])),
			LALowIHalf:    parseCount(cell(row, cols[colLALowIHalf])),
			LALowI1:       parseCount(cell(row, cols[colLALowI1])),
			LALowI10:      parseCount(cell(row, cols[colLALowI10])),
		})
	}

	log.Info("food access data loaded",
		zap.Int("total_rows", len(rows)-1),
		zap.Int("kept", len(out)),
	)
	return out, nil
}

// normalizeTract turns a raw tract cell into an 11-character FIPS string.
// Numeric cells lose their leading zero and may render in scientific
// notation, so numbers are reformatted as plain integers before padding.
func normalizeTract(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		raw = strconv.FormatFloat(f, 'f', 0, 64)
	}
	return model.PadFIPS(raw)
}

// parseFlag reads a 0/1 cell into a bool, nil when blank or unreadable.
func parseFlag(raw string) *bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	b := f != 0
	return &b
}

// parseCount reads a numeric cell, nil when blank or unreadable.
func parseCount(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
