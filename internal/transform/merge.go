package transform

import (
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// Merge left-joins the wide health rows with the food-access projection on
// tract FIPS. Every health row produces exactly one output row; food-access
// fields stay nil when the tract has no match. Duplicate food rows for a
// tract keep the first.
func Merge(health []model.TractHealth, food []model.FoodAccess) []model.TractRecord {
	byTract := make(map[string]*model.FoodAccess, len(food))
	for i := range food {
		if _, ok := byTract[food[i].TractFIPS]; !ok {
			byTract[food[i].TractFIPS] = &food[i]
		}
	}

	matched := 0
	out := make([]model.TractRecord, 0, len(health))
	for _, h := range health {
		rec := model.TractRecord{
			TractFIPS:     h.TractFIPS,
			LocationName:  h.LocationName,
			CountyName:    h.CountyName,
			Diabetes:      h.Diabetes,
			HeartDisease:  h.HeartDisease,
			Stroke:        h.Stroke,
			Obesity:       h.Obesity,
			HighBP:        h.HighBP,
			Smoking:       h.Smoking,
			AnnualCheckup: h.AnnualCheckup,
			NoInsurance:   h.NoInsurance,
		}

		if fa, ok := byTract[h.TractFIPS]; ok {
			matched++
			state, county := fa.State, fa.County
			rec.FoodState = &state
			rec.FoodCounty = &county
			rec.Urban = fa.Urban
			rec.LILA1And10 = fa.LILA1And10
			rec.LILAHalfAnd10 = fa.LILAHalfAnd10
			rec.LILA1And20 = fa.LILA1And20
			rec.LAPopHalf = fa.LAPopHalf
			rec.LAPop1 = fa.LAPop1
			rec.LAPop10 = fa.LAPop10
			rec.LALowIHalf = fa.LALowIHalf
			rec.LALowI1 = fa.LALowI1
			rec.LALowI10 = fa.LALowI10
		}

		out = append(out, rec)
	}

	zap.L().Info("datasets merged",
		zap.Int("health_rows", len(health)),
		zap.Int("food_rows", len(food)),
		zap.Int("matched", matched),
	)
	return out
}
