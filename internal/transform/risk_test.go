package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucheet2000/medical-desert-california/internal/model"
)

func fp(v float64) *float64 { return &v }

func defaultFill() FillPolicy {
	return FillPolicy{AssumeNotDesert: true, AssumeUrban: true}
}

func TestRiskCategory_Boundaries(t *testing.T) {
	// Closed-open buckets: the boundary value belongs to the upper bucket.
	assert.Equal(t, CategoryLow, RiskCategory(0))
	assert.Equal(t, CategoryLow, RiskCategory(9.99))
	assert.Equal(t, CategoryMedium, RiskCategory(10))
	assert.Equal(t, CategoryMedium, RiskCategory(14.99))
	assert.Equal(t, CategoryHigh, RiskCategory(15))
	assert.Equal(t, CategoryHigh, RiskCategory(19.99))
	assert.Equal(t, CategoryCritical, RiskCategory(20))
	assert.Equal(t, CategoryCritical, RiskCategory(100))
}

func TestCombinedRisk(t *testing.T) {
	assert.Equal(t, CombinedDesertDisease, CombinedRisk(20, true))
	assert.Equal(t, CombinedDiseaseOnly, CombinedRisk(20, false))
	assert.Equal(t, CombinedDesertOnly, CombinedRisk(10, true))
	assert.Equal(t, CombinedLow, CombinedRisk(10, false))

	// 15 is not strictly greater than 15.
	assert.Equal(t, CombinedDesertOnly, CombinedRisk(15, true))
	assert.Equal(t, CombinedLow, CombinedRisk(15, false))
}

func TestScore_MeanOfAvailableMeasures(t *testing.T) {
	records := []model.TractRecord{{
		Diabetes:    fp(10),
		Obesity:     fp(30),
		NoInsurance: fp(20),
		// heart disease and high BP missing: mean over 3, not 5
	}}

	Score(records, defaultFill())

	require.NotNil(t, records[0].HealthRiskScore)
	assert.InDelta(t, 20.0, *records[0].HealthRiskScore, 0.001)
	assert.Equal(t, CategoryCritical, records[0].HealthRiskCategory)
	assert.Equal(t, CombinedDiseaseOnly, records[0].CombinedRisk)
}

func TestScore_ExcludedMeasuresDoNotCount(t *testing.T) {
	// Smoking, stroke, and checkup are reported but not part of the score.
	records := []model.TractRecord{{
		Diabetes:      fp(10),
		Smoking:       fp(90),
		Stroke:        fp(90),
		AnnualCheckup: fp(90),
	}}

	Score(records, defaultFill())

	require.NotNil(t, records[0].HealthRiskScore)
	assert.InDelta(t, 10.0, *records[0].HealthRiskScore, 0.001)
}

func TestScore_NoMeasures(t *testing.T) {
	records := []model.TractRecord{{TractFIPS: "06085504321"}}

	Score(records, defaultFill())

	rec := records[0]
	assert.Nil(t, rec.HealthRiskScore)
	assert.Empty(t, rec.HealthRiskCategory)
	assert.Equal(t, CombinedLow, rec.CombinedRisk)
}

func TestScore_FillPolicyDefaults(t *testing.T) {
	records := []model.TractRecord{{Diabetes: fp(10)}}

	Score(records, defaultFill())

	rec := records[0]
	require.NotNil(t, rec.LILA1And10)
	assert.False(t, *rec.LILA1And10)
	assert.False(t, rec.IsFoodDesert)
	require.NotNil(t, rec.Urban)
	assert.True(t, *rec.Urban)
}

func TestScore_FillPolicyOverride(t *testing.T) {
	records := []model.TractRecord{{Diabetes: fp(20)}}

	Score(records, FillPolicy{AssumeNotDesert: false, AssumeUrban: false})

	rec := records[0]
	require.NotNil(t, rec.LILA1And10)
	assert.True(t, *rec.LILA1And10)
	assert.True(t, rec.IsFoodDesert)
	require.NotNil(t, rec.Urban)
	assert.False(t, *rec.Urban)
	assert.Equal(t, CombinedDesertDisease, rec.CombinedRisk)
}

func TestScore_MatchedFlagsNotOverwritten(t *testing.T) {
	desert := true
	rural := false
	records := []model.TractRecord{{
		Diabetes:   fp(8),
		LILA1And10: &desert,
		Urban:      &rural,
	}}

	Score(records, defaultFill())

	rec := records[0]
	assert.True(t, rec.IsFoodDesert)
	assert.False(t, *rec.Urban)
	assert.Equal(t, CombinedDesertOnly, rec.CombinedRisk)
}
