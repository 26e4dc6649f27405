package transform

import (
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// WriteRecords encodes the records as CSV at the given path. A zero-length
// slice still writes a valid header-only file.
func WriteRecords(path string, records []model.TractRecord) error {
	// csvutil needs a non-nil slice to emit the header for zero rows.
	if records == nil {
		records = []model.TractRecord{}
	}
	data, err := csvutil.Marshal(records)
	if err != nil {
		return eris.Wrap(err, "transform: encode records")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "transform: write %s", path)
	}

	zap.L().Info("records written", zap.String("path", path), zap.Int("rows", len(records)))
	return nil
}

// FilterCounty returns the records whose county name contains the term,
// case-insensitively. An empty result is valid, not an error.
func FilterCounty(records []model.TractRecord, term string) []model.TractRecord {
	needle := strings.ToLower(term)
	out := make([]model.TractRecord, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.CountyName), needle) {
			out = append(out, r)
		}
	}
	return out
}

// countyFileName derives the county output file name from the filter term,
// e.g. "santa clara" -> "santa_clara_health_equity.csv".
func countyFileName(term string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(term)), " ", "_")
	return slug + "_health_equity.csv"
}
