package model

// TractRecord is the merged analysis row: wide health data left-joined with
// the food access projection, plus the derived risk fields. Pointer fields
// encode as empty CSV cells while unset; Urban and LILA1And10 are always
// non-nil after the fill policy runs.
type TractRecord struct {
	TractFIPS    string `csv:"tract_fips"`
	LocationName string `csv:"location_name"`
	CountyName   string `csv:"county_name"`

	Diabetes      *float64 `csv:"diabetes_prevalence"`
	HeartDisease  *float64 `csv:"heart_disease_prevalence"`
	Stroke        *float64 `csv:"stroke_prevalence"`
	Obesity       *float64 `csv:"obesity_prevalence"`
	HighBP        *float64 `csv:"high_bp_prevalence"`
	Smoking       *float64 `csv:"smoking_prevalence"`
	AnnualCheckup *float64 `csv:"annual_checkup_pct"`
	NoInsurance   *float64 `csv:"no_insurance_pct"`

	FoodState     *string  `csv:"food_state"`
	FoodCounty    *string  `csv:"food_county"`
	Urban         *bool    `csv:"urban"`
	LILA1And10    *bool    `csv:"lila_1_and_10"`
	LILAHalfAnd10 *bool    `csv:"lila_half_and_10"`
	LILA1And20    *bool    `csv:"lila_1_and_20"`
	LAPopHalf     *float64 `csv:"lapop_half"`
	LAPop1        *float64 `csv:"lapop_1"`
	LAPop10       *float64 `csv:"lapop_10"`
	LALowIHalf    *float64 `csv:"lalowi_half"`
	LALowI1       *float64 `csv:"lalowi_1"`
	LALowI10      *float64 `csv:"lalowi_10"`

	HealthRiskScore    *float64 `csv:"health_risk_score"`
	HealthRiskCategory string   `csv:"health_risk_category"`
	IsFoodDesert       bool     `csv:"is_food_desert"`
	CombinedRisk       string   `csv:"combined_risk"`
}

// Provider is one flattened NPI registry record from the NPPES lookup API.
// Coordinates are carried as-is; the API frequently leaves them blank.
type Provider struct {
	NPI          string `csv:"npi"`
	Name         string `csv:"name"`
	Organization string `csv:"organization"`
	TaxonomyCode string `csv:"taxonomy"`
	TaxonomyDesc string `csv:"taxonomy_desc"`
	Address      string `csv:"address"`
	City         string `csv:"city"`
	State        string `csv:"state"`
	PostalCode   string `csv:"postal_code"`
	Latitude     string `csv:"latitude"`
	Longitude    string `csv:"longitude"`
}
