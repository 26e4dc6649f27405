package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadFIPS(t *testing.T) {
	// Tract codes that lost their leading zero to a numeric parse upstream.
	assert.Equal(t, "06085504321", PadFIPS("6085504321"))
	assert.Equal(t, "00000000042", PadFIPS("42"))

	// Already canonical -> no-op.
	assert.Equal(t, "06085504321", PadFIPS("06085504321"))

	// Never truncates.
	assert.Equal(t, "060855043210", PadFIPS("060855043210"))
}

func TestPadFIPS_Length(t *testing.T) {
	for _, id := range []string{"", "1", "123456", "12345678901"} {
		assert.Len(t, PadFIPS(id), FIPSLen, "input %q", id)
	}
}

func TestPadFIPS_Idempotent(t *testing.T) {
	once := PadFIPS("6085504321")
	assert.Equal(t, once, PadFIPS(once))
}
