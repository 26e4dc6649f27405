package transform

import (
	"go.uber.org/zap"

	"github.com/sucheet2000/medical-desert-california/internal/model"
)

// Reshape pivots long-form observations to one wide row per tract, in
// first-seen tract order. The tie-breaks are explicit policy:
//   - duplicate (tract, measure) pairs keep the first value seen;
//   - location and county names are first-seen per tract (the source data
//     should determine them by tract id, but that is not guaranteed).
func Reshape(obs []model.HealthObservation) []model.TractHealth {
	byTract := make(map[string]*model.TractHealth)
	var order []string

	for _, o := range obs {
		th, ok := byTract[o.TractFIPS]
		if !ok {
			th = &model.TractHealth{
				TractFIPS:    o.TractFIPS,
				LocationName: o.LocationName,
				CountyName:   o.CountyName,
			}
			byTract[o.TractFIPS] = th
			order = append(order, o.TractFIPS)
		}
		setMeasure(th, o.MeasureID, o.Value)
	}

	out := make([]model.TractHealth, 0, len(order))
	for _, fips := range order {
		out = append(out, *byTract[fips])
	}

	zap.L().Info("health data reshaped",
		zap.Int("observations", len(obs)),
		zap.Int("tracts", len(out)),
	)
	return out
}

// setMeasure assigns an observation value to its wide-form field, keeping
// the first value when the field is already set.
func setMeasure(th *model.TractHealth, measureID string, value float64) {
	var field **float64
	switch measureID {
	case "DIABETES":
		field = &th.Diabetes
	case "CHD":
		field = &th.HeartDisease
	case "STROKE":
		field = &th.Stroke
	case "OBESITY":
		field = &th.Obesity
	case "BPHIGH":
		field = &th.HighBP
	case "CSMOKING":
		field = &th.Smoking
	case "CHECKUP":
		field = &th.AnnualCheckup
	case "ACCESS2":
		field = &th.NoInsurance
	default:
		return
	}
	if *field == nil {
		v := value
		*field = &v
	}
}
