package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOperandImmediate(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.PC = 0x0010
	addr, samePage := b.decodeOperand(Immediate)

	assert.Equal(uint16(0x0010), addr)
	assert.False(samePage)
	assert.Equal(uint16(0x0011), b.CPU.PC, "Immediate consumes exactly one byte")
}

func TestDecodeOperandZeroPageXWraps(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	// LDA $80,X with X=0xFF must access 0x007F, never 0x017F.
	b.CPU.X = 0xFF
	b.CPU.PC = 0x0010
	b.Write(0x0010, 0x80)

	addr, samePage := b.decodeOperand(ZeroPageX)

	assert.Equal(uint16(0x007F), addr)
	assert.True(samePage)
}

func TestDecodeOperandAbsoluteXPageCross(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.X = 0x01
	b.CPU.PC = 0x0010
	b.Write(0x0010, 0xFF) // low
	b.Write(0x0011, 0x00) // high -> base 0x00FF

	addr, samePage := b.decodeOperand(AbsoluteX)

	assert.Equal(uint16(0x0100), addr)
	assert.False(samePage, "0x00FF + 1 crosses into the next page")
}

func TestDecodeOperandAbsoluteXSamePage(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.X = 0x01
	b.CPU.PC = 0x0010
	b.Write(0x0010, 0x00) // low
	b.Write(0x0011, 0x01) // high -> base 0x0100

	addr, samePage := b.decodeOperand(AbsoluteX)

	assert.Equal(uint16(0x0101), addr)
	assert.True(samePage)
}

func TestDecodeOperandIndirectYPageCross(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.Y = 0x01
	b.CPU.PC = 0x0010
	b.Write(0x0010, 0x20) // zero-page pointer location
	b.Write(0x0020, 0xFF) // pointer low
	b.Write(0x0021, 0x00) // pointer high -> base 0x00FF

	addr, samePage := b.decodeOperand(IndirectY)

	assert.Equal(uint16(0x0100), addr)
	assert.False(samePage)
}

func TestDecodeOperandIndirectXZeroPageWraps(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.X = 0xFF
	b.CPU.PC = 0x0010
	b.Write(0x0010, 0x02) // (0x02 + 0xFF) & 0xFF == 0x01
	b.Write(0x0001, 0x34)
	b.Write(0x0002, 0x12)

	addr, _ := b.decodeOperand(IndirectX)

	assert.Equal(uint16(0x1234), addr)
}

func TestDecodeOperandIndirectJMPPageWrapBug(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	// Spec §8 scenario 4: JMP ($02FF) must fetch its high byte from
	// 0x0200, not 0x0300, because the real hardware never carries into the
	// high byte of the pointer.
	b.Write(0x02FF, 0x34)
	b.Write(0x0200, 0x12)
	b.Write(0x0300, 0x78)

	b.CPU.PC = 0x0010
	b.Write(0x0010, 0xFF)
	b.Write(0x0011, 0x02)

	addr, _ := b.decodeOperand(Indirect)

	assert.Equal(uint16(0x1234), addr)
}

func TestDecodeOperandRelative(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.PC = 0x0080
	b.Write(0x0080, 0x10) // +0x10, stays on page 0

	addr, samePage := b.decodeOperand(Relative)

	assert.Equal(uint16(0x0091), addr) // PC is 0x0081 after the fetch, +0x10
	assert.True(samePage)
}

func TestDecodeOperandRelativeNegative(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.PC = 0x0080
	b.Write(0x0080, 0xFE) // -2

	addr, _ := b.decodeOperand(Relative)

	assert.Equal(uint16(0x007F), addr)
}

func TestDecodeOperandImpliedAndAccumulatorConsumeNoBytes(t *testing.T) {
	assert := assert.New(t)
	b := newTestBus(t)

	b.CPU.PC = 0x0010
	_, _ = b.decodeOperand(Implied)
	assert.Equal(uint16(0x0010), b.CPU.PC)

	_, _ = b.decodeOperand(Accumulator)
	assert.Equal(uint16(0x0010), b.CPU.PC)
}
