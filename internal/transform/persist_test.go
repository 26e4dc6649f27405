package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jszwec/csvutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucheet2000/medical-desert-california/internal/model"
)

func TestFilterCounty(t *testing.T) {
	records := []model.TractRecord{
		{TractFIPS: "1", CountyName: "Santa Clara County"},
		{TractFIPS: "2", CountyName: "San Diego"},
		{TractFIPS: "3", CountyName: "SANTA CLARA"},
		{TractFIPS: "4", CountyName: "Alameda"},
	}

	out := FilterCounty(records, "santa clara")
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].TractFIPS)
	assert.Equal(t, "3", out[1].TractFIPS)
}

func TestFilterCounty_SubstringNotPrefix(t *testing.T) {
	records := []model.TractRecord{
		{TractFIPS: "1", CountyName: "West Santa Clara Valley"},
	}
	assert.Len(t, FilterCounty(records, "santa clara"), 1)
}

func TestFilterCounty_NoMatches(t *testing.T) {
	records := []model.TractRecord{{TractFIPS: "1", CountyName: "San Diego"}}
	assert.Empty(t, FilterCounty(records, "santa clara"))
}

func TestWriteRecords_RoundTrip(t *testing.T) {
	v := 11.5
	desert := true
	records := []model.TractRecord{{
		TractFIPS:          "06085504321",
		LocationName:       "Tract 5043.21",
		CountyName:         "Santa Clara",
		Diabetes:           &v,
		LILA1And10:         &desert,
		IsFoodDesert:       true,
		HealthRiskScore:    &v,
		HealthRiskCategory: CategoryMedium,
		CombinedRisk:       CombinedDesertOnly,
	}}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteRecords(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []model.TractRecord
	require.NoError(t, csvutil.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "06085504321", decoded[0].TractFIPS)
	require.NotNil(t, decoded[0].Diabetes)
	assert.InDelta(t, 11.5, *decoded[0].Diabetes, 0.001)
	assert.True(t, decoded[0].IsFoodDesert)
	assert.Equal(t, CombinedDesertOnly, decoded[0].CombinedRisk)
}

func TestWriteRecords_EmptyStillSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteRecords(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tract_fips") // header-only file

	var decoded []model.TractRecord
	require.NoError(t, csvutil.Unmarshal(data, &decoded))
	assert.Empty(t, decoded)
}

func TestCountyFileName(t *testing.T) {
	assert.Equal(t, "santa_clara_health_equity.csv", countyFileName("santa clara"))
	assert.Equal(t, "san_diego_health_equity.csv", countyFileName(" San Diego "))
}
