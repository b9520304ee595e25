package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopRoundTrip(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	for v := 0; v < 256; v++ {
		b.stackPush(byte(v))
		got := b.stackPop()
		assert.Equal(byte(v), got)
	}
}

func TestADCSetsCarryOverflowOnSignedWrap(t *testing.T) {
	// Spec §8 scenario 2: A=0x7F, C=1, ADC #0x00 -> A=0x80, N=1, V=1, Z=0, C=0.
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.A = 0x7F
	b.CPU.P.Set(FlagCarry, true)
	b.adc(0x00)

	assert.Equal(byte(0x80), b.CPU.A)
	assert.True(b.CPU.P.Contains(FlagNegative))
	assert.True(b.CPU.P.Contains(FlagOverflow))
	assert.False(b.CPU.P.Contains(FlagZero))
	assert.False(b.CPU.P.Contains(FlagCarry))
}

func TestADCSBCRoundTripIdentity(t *testing.T) {
	// Spec §8: ADC(A, M, C) must equal SBC(A, ~M, C) in the resulting tuple.
	assert := assert.New(t)

	for a := 0; a < 256; a += 17 {
		for m := 0; m < 256; m += 23 {
			for _, carry := range []bool{false, true} {
				b1 := newTestBus(t)
				b1.CPU.A = byte(a)
				b1.CPU.P.Set(FlagCarry, carry)
				b1.adc(byte(m))

				b2 := newTestBus(t)
				b2.CPU.A = byte(a)
				b2.CPU.P.Set(FlagCarry, carry)
				b2.sbc(^byte(m))

				assert.Equal(b1.CPU.A, b2.CPU.A)
				assert.Equal(b1.CPU.P.Contains(FlagNegative), b2.CPU.P.Contains(FlagNegative))
				assert.Equal(b1.CPU.P.Contains(FlagZero), b2.CPU.P.Contains(FlagZero))
				assert.Equal(b1.CPU.P.Contains(FlagCarry), b2.CPU.P.Contains(FlagCarry))
				assert.Equal(b1.CPU.P.Contains(FlagOverflow), b2.CPU.P.Contains(FlagOverflow))
			}
		}
	}
}

func TestCompareSetsCarryWhenNoBorrow(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.A = 0x10
	b.Write(0x0000, 0x10)
	compare(b, b.CPU.A, 0x0000)
	assert.True(b.CPU.P.Contains(FlagCarry))
	assert.True(b.CPU.P.Contains(FlagZero))

	b.CPU.A = 0x05
	b.Write(0x0000, 0x10)
	compare(b, b.CPU.A, 0x0000)
	assert.False(b.CPU.P.Contains(FlagCarry))
	assert.False(b.CPU.P.Contains(FlagZero))
}

func TestBITTakesNAndVFromOperandNotFromTheAndResult(t *testing.T) {
	// Open-question decision (DESIGN.md): N/V come from M directly, even
	// when A&M is zero.
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.A = 0x00
	b.Write(0x0000, 0xC0) // bits 7 and 6 both set
	opBIT(b, 0x0000, Implied, false)

	assert.True(b.CPU.P.Contains(FlagZero), "A&M == 0")
	assert.True(b.CPU.P.Contains(FlagNegative), "N copies bit 7 of M")
	assert.True(b.CPU.P.Contains(FlagOverflow), "V copies bit 6 of M")
}

func TestPHPPushesBreakAndUnusedSet(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.P = 0 // clear everything, including Unused
	opPHP(b, 0, Implied, false)

	pushed := b.stackPop()
	assert.NotZero(pushed&byte(FlagBreak))
	assert.NotZero(pushed&byte(FlagUnused))
}

func TestPLPIgnoresBreakAndUnusedFromTheStack(t *testing.T) {
	// Spec §8: bits 4 and 5 of the popped byte never reach the live P.
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.P.Set(FlagCarry, true)
	b.stackPush(byte(FlagBreak)) // B set, U clear, nothing else

	opPLP(b, 0, Implied, false)

	assert.False(b.CPU.P.Contains(FlagCarry), "the popped byte had Carry clear")
	assert.True(b.CPU.P.Contains(FlagUnused), "Unused always reads as 1 regardless of what was popped")
}

func TestBranchCycleAccounting(t *testing.T) {
	// Spec §8: not taken = base cycles, taken = +1, taken+page-cross = +2.
	assert := assert.New(t)

	extra, _ := branch(newTestBus(t), 0x1234, true, false)
	assert.Equal(int64(0), extra, "not taken")

	extra, _ = branch(newTestBus(t), 0x1234, true, true)
	assert.Equal(int64(1), extra, "taken, same page")

	extra, _ = branch(newTestBus(t), 0x1234, false, true)
	assert.Equal(int64(2), extra, "taken, page crossed")
}

func TestJSRPushesReturnAddressMinusOne(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.PC = 0x8003 // as if the 3-byte JSR instruction just advanced past its operand
	opJSR(b, 0x9000, Absolute, false)

	assert.Equal(uint16(0x9000), b.CPU.PC)
	assert.Equal(byte(0x80), b.Read(0x01FD), "high byte of 0x8002 pushed first")
	assert.Equal(byte(0x02), b.Read(0x01FC), "low byte of 0x8002 pushed second")

	opRTS(b, 0, Implied, false)
	assert.Equal(uint16(0x8003), b.CPU.PC, "RTS restores PC to the byte after JSR's operand")
}

func TestNestedJSRRTSRestoresStackAndPC(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	startSP := b.CPU.SP
	b.CPU.PC = 0x8003
	opJSR(b, 0x9000, Absolute, false)

	b.CPU.PC = 0x9003
	opJSR(b, 0xA000, Absolute, false)

	opRTS(b, 0, Implied, false)
	assert.Equal(uint16(0x9003), b.CPU.PC)

	opRTS(b, 0, Implied, false)
	assert.Equal(uint16(0x8003), b.CPU.PC)
	assert.Equal(startSP, b.CPU.SP, "stack pointer returns to its starting depth")
}

func TestIncDecWrap(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.Write(0x0000, 0xFF)
	opINC(b, 0x0000, Implied, false)
	assert.Equal(byte(0x00), b.Read(0x0000))
	assert.True(b.CPU.P.Contains(FlagZero))

	b.Write(0x0000, 0x00)
	opDEC(b, 0x0000, Implied, false)
	assert.Equal(byte(0xFF), b.Read(0x0000))
	assert.True(b.CPU.P.Contains(FlagNegative))
}
