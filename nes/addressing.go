package nes

// AddressingMode identifies one of the thirteen ways a 6502 instruction can
// name its operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// decodeOperand consumes the operand bytes for mode from the instruction
// stream (advancing PC as it goes) and returns the effective address along
// with whether the computation stayed on the same 256-byte page. samePage
// feeds the page-cross cycle penalty in §4.2. Implied and Accumulator consume
// no bytes and return (0, false).
func (b *Bus) decodeOperand(mode AddressingMode) (addr uint16, samePage bool) {
	cpu := &b.CPU

	switch mode {
	case Immediate:
		addr = cpu.PC
		cpu.PC++
		return addr, false

	case ZeroPage:
		addr = uint16(b.Read(cpu.PC))
		cpu.PC++
		return addr, true

	case ZeroPageX:
		zb := b.Read(cpu.PC)
		cpu.PC++
		return uint16(zb + cpu.X), true

	case ZeroPageY:
		zb := b.Read(cpu.PC)
		cpu.PC++
		return uint16(zb + cpu.Y), true

	case Absolute:
		addr = b.readWord(cpu.PC)
		cpu.PC += 2
		return addr, true

	case AbsoluteX:
		base := b.readWord(cpu.PC)
		cpu.PC += 2
		addr = base + uint16(cpu.X)
		return addr, hiByte(base) == hiByte(addr)

	case AbsoluteY:
		base := b.readWord(cpu.PC)
		cpu.PC += 2
		addr = base + uint16(cpu.Y)
		return addr, hiByte(base) == hiByte(addr)

	case Indirect:
		ptr := b.readWord(cpu.PC)
		cpu.PC += 2
		addr = b.readWordBugged(ptr)
		return addr, true

	case IndirectX:
		zb := b.Read(cpu.PC)
		cpu.PC++
		zp := zb + cpu.X
		lo := b.Read(uint16(zp))
		hi := b.Read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo), true

	case IndirectY:
		zb := b.Read(cpu.PC)
		cpu.PC++
		lo := b.Read(uint16(zb))
		hi := b.Read(uint16(zb + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(cpu.Y)
		return addr, hiByte(base) == hiByte(addr)

	case Relative:
		offset := int8(b.Read(cpu.PC))
		cpu.PC++
		addr = uint16(int32(cpu.PC) + int32(offset))
		return addr, hiByte(cpu.PC) == hiByte(addr)

	default: // Implied, Accumulator — no operand byte
		return 0, false
	}
}

// readWordBugged implements the indirect-JMP page-wrap bug: when the low
// byte of ptr is 0xFF, the high byte is fetched from ptr&0xFF00 instead of
// ptr+1, because the real hardware never carries into the high byte of the
// pointer.
func (b *Bus) readWordBugged(ptr uint16) uint16 {
	lo := b.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := b.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *Bus) readWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func hiByte(addr uint16) uint16 { return addr & 0xFF00 }
