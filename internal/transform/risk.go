package transform

import "github.com/sucheet2000/medical-desert-california/internal/model"

// Risk category labels, in ascending severity.
const (
	CategoryLow      = "Low Risk"
	CategoryMedium   = "Medium Risk"
	CategoryHigh     = "High Risk"
	CategoryCritical = "Critical Risk"
)

// Combined risk labels.
const (
	CombinedLow           = "Low Risk"
	CombinedDesertOnly    = "Moderate Risk: Desert Only"
	CombinedDiseaseOnly   = "High Risk: Disease Only"
	CombinedDesertDisease = "High Risk: Desert + Disease"
)

// FillPolicy names the defaults applied to tracts with no food-access match.
// Both defaults bias the dataset toward under-counting deserts; they are
// kept for continuity with the source data contract but overridable per run.
type FillPolicy struct {
	AssumeNotDesert bool // missing primary LILA flag -> not a desert
	AssumeUrban     bool // missing urban flag -> urban
}

// Score fills missing food-access flags per the policy and derives the four
// risk fields on every record, in place.
func Score(records []model.TractRecord, policy FillPolicy) {
	for i := range records {
		scoreRecord(&records[i], policy)
	}
}

func scoreRecord(r *model.TractRecord, policy FillPolicy) {
	if r.LILA1And10 == nil {
		desert := !policy.AssumeNotDesert
		r.LILA1And10 = &desert
	}
	if r.Urban == nil {
		urban := policy.AssumeUrban
		r.Urban = &urban
	}

	r.HealthRiskScore = healthRiskScore(r)
	if r.HealthRiskScore != nil {
		r.HealthRiskCategory = RiskCategory(*r.HealthRiskScore)
	}

	r.IsFoodDesert = *r.LILA1And10

	// A tract with no score at all keeps the low-risk default; the scored
	// branches never see it.
	if r.HealthRiskScore == nil {
		r.CombinedRisk = CombinedLow
	} else {
		r.CombinedRisk = CombinedRisk(*r.HealthRiskScore, r.IsFoodDesert)
	}
}

// healthRiskScore averages the prevalence measures that drive the composite
// score (diabetes, heart disease, obesity, high blood pressure, uninsured),
// ignoring missing measures. Nil when every measure is missing.
func healthRiskScore(r *model.TractRecord) *float64 {
	sum, n := 0.0, 0
	for _, v := range []*float64{r.Diabetes, r.HeartDisease, r.Obesity, r.HighBP, r.NoInsurance} {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// RiskCategory buckets a score into the four ordinal categories. Boundaries
// are closed-open: exactly 10 is Medium, exactly 15 is High, exactly 20 is
// Critical.
func RiskCategory(score float64) string {
	switch {
	case score < 10:
		return CategoryLow
	case score < 15:
		return CategoryMedium
	case score < 20:
		return CategoryHigh
	default:
		return CategoryCritical
	}
}

// CombinedRisk derives the combined label from the score and the food
// desert flag. The disease threshold is strictly greater than 15.
func CombinedRisk(score float64, desert bool) string {
	switch {
	case score > 15 && desert:
		return CombinedDesertDisease
	case score > 15:
		return CombinedDiseaseOnly
	case desert:
		return CombinedDesertOnly
	default:
		return CombinedLow
	}
}
