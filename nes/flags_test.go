package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsSetAndContains(t *testing.T) {
	assert := assert.New(t)

	var f Flags
	f.Set(FlagCarry, true)
	assert.True(f.Contains(FlagCarry))
	assert.False(f.Contains(FlagZero))

	f.Set(FlagCarry, false)
	assert.False(f.Contains(FlagCarry))
}

func TestFlagsBitsAlwaysSetsUnused(t *testing.T) {
	assert := assert.New(t)

	var f Flags
	assert.Equal(byte(FlagUnused), f.Bits(), "Unused must read as 1 even when never explicitly set")

	f.Set(FlagUnused, false)
	assert.Equal(byte(FlagUnused), f.Bits(), "Bits() forces Unused on regardless of the stored bit")
}

func TestFlagsSetNZ(t *testing.T) {
	assert := assert.New(t)

	var f Flags
	f.setNZ(0x00)
	assert.True(f.Contains(FlagZero))
	assert.False(f.Contains(FlagNegative))

	f.setNZ(0x80)
	assert.False(f.Contains(FlagZero))
	assert.True(f.Contains(FlagNegative))

	f.setNZ(0x01)
	assert.False(f.Contains(FlagZero))
	assert.False(f.Contains(FlagNegative))
}
