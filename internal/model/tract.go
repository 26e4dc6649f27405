// Package model defines the tract-level records flowing through the
// acquisition and transform pipelines.
package model

import "strings"

// FIPSLen is the canonical width of a census tract FIPS code
// (2 state + 3 county + 6 tract digits).
const FIPSLen = 11

// PadFIPS left-pads a tract identifier with zeros to the canonical
// 11-character width. Padding an already-canonical id is a no-op, and
// longer ids are never truncated. Tract ids must stay strings end to end:
// a numeric parse drops the leading zero and silently breaks every join.
func PadFIPS(id string) string {
	if len(id) >= FIPSLen {
		return id
	}
	return strings.Repeat("0", FIPSLen-len(id)) + id
}

// HealthObservation is one long-form row from the CDC PLACES export:
// a single measure value for a single tract.
type HealthObservation struct {
	TractFIPS    string
	LocationName string
	CountyName   string
	MeasureID    string
	Value        float64
}

// TractHealth is the wide form of the health data: one row per tract,
// one field per retained measure. Nil means the measure was absent for
// the tract.
type TractHealth struct {
	TractFIPS    string
	LocationName string
	CountyName   string

	Diabetes      *float64
	HeartDisease  *float64
	Stroke        *float64
	Obesity       *float64
	HighBP        *float64
	Smoking       *float64
	AnnualCheckup *float64
	NoInsurance   *float64
}

// FoodAccess is the projected USDA Food Access Research Atlas row for one
// tract. Flags and counts are pointers because the source leaves cells
// blank; defaulting happens later, under a named policy.
type FoodAccess struct {
	TractFIPS string
	State     string
	County    string

	Urban         *bool
	LILA1And10    *bool
	LILAHalfAnd10 *bool
	LILA1And20    *bool

	LAPopHalf  *float64
	LAPop1     *float64
	LAPop10    *float64
	LALowIHalf *float64
	LALowI1    *float64
	LALowI10   *float64
}
