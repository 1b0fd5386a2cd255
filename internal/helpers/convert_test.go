package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampIntToUint16(t *testing.T) {
	assert.Equal(t, uint16(0), ClampIntToUint16(0))
	assert.Equal(t, uint16(42), ClampIntToUint16(42))
	assert.Equal(t, uint16(math.MaxUint16), ClampIntToUint16(math.MaxUint16))
	assert.Equal(t, uint16(math.MaxUint16), ClampIntToUint16(math.MaxUint16+1))
	assert.Equal(t, uint16(0), ClampIntToUint16(-1))
}

func TestClampIntToUint32(t *testing.T) {
	assert.Equal(t, uint32(0), ClampIntToUint32(0))
	assert.Equal(t, uint32(42), ClampIntToUint32(42))
	assert.Equal(t, uint32(math.MaxUint32), ClampIntToUint32(math.MaxUint32))
	assert.Equal(t, uint32(math.MaxUint32), ClampIntToUint32(math.MaxUint32+1))
	assert.Equal(t, uint32(0), ClampIntToUint32(-1))
}
