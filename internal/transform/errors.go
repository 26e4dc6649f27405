// Package transform turns the raw CDC and USDA tables into the merged,
// risk-scored tract dataset: filter, reshape to wide form, left-join on
// tract FIPS, derive risk fields, persist.
package transform

import "errors"

// ErrMissingInput marks a load failure caused by an absent raw input file.
// Callers branch on it with errors.Is to tell "run acquire first" apart from
// every other failure.
var ErrMissingInput = errors.New("raw input not found")
