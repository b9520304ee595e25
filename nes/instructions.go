package nes

// Official opcode semantics. Every routine here matches the execFunc
// signature in opcodes.go: it receives the already-decoded operand address,
// the addressing mode (so shift/rotate ops can special-case Accumulator),
// and the page-cross boolean (used only by branches, whose extra cycle cost
// depends on it). The generic read-instruction page-cross penalty is applied
// by Step from the opcode table, not here.

func (b *Bus) operand(addr uint16, mode AddressingMode) byte {
	if mode == Accumulator {
		return b.CPU.A
	}
	return b.Read(addr)
}

func (b *Bus) storeResult(addr uint16, mode AddressingMode, v byte) {
	if mode == Accumulator {
		b.CPU.A = v
		return
	}
	b.Write(addr, v)
}

func opADC(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.adc(b.Read(addr))
	return 0, nil
}

// adc performs binary addition with carry-in and sets C/V/Z/N. Per spec
// §4.2/DESIGN.md's open-question decision, the Decimal flag never changes
// this math — the 2A03 wired BCD mode off entirely.
func (b *Bus) adc(m byte) {
	cpu := &b.CPU
	carryIn := uint16(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(cpu.A) + uint16(m) + carryIn
	result := byte(sum)

	cpu.P.Set(FlagCarry, sum > 0xFF)
	cpu.P.Set(FlagOverflow, (cpu.A^result)&(m^result)&0x80 != 0)
	cpu.A = result
	cpu.P.setNZ(result)
}

// sbc is ADC on the ones'-complement of the operand, the standard 6502
// identity that keeps carry/overflow math shared between the two.
func (b *Bus) sbc(m byte) {
	b.adc(^m)
}

func opSBC(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	m := b.Read(addr)
	b.sbc(m)
	return 0, nil
}

func opAND(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A &= b.Read(addr)
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opORA(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A |= b.Read(addr)
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opEOR(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A ^= b.Read(addr)
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

// ASL/LSR/ROL/ROR operate on either the accumulator or a memory cell,
// depending on mode, via the operand/storeResult helpers above.

func opASL(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.operand(addr, mode)
	cpu.P.Set(FlagCarry, v&0x80 != 0)
	v <<= 1
	cpu.P.setNZ(v)
	b.storeResult(addr, mode, v)
	return 0, nil
}

func opLSR(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.operand(addr, mode)
	cpu.P.Set(FlagCarry, v&0x01 != 0)
	v >>= 1
	cpu.P.setNZ(v)
	b.storeResult(addr, mode, v)
	return 0, nil
}

func opROL(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.operand(addr, mode)
	carryIn := byte(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 1
	}
	cpu.P.Set(FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	cpu.P.setNZ(v)
	b.storeResult(addr, mode, v)
	return 0, nil
}

func opROR(b *Bus, addr uint16, mode AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.operand(addr, mode)
	carryIn := byte(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 0x80
	}
	cpu.P.Set(FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	cpu.P.setNZ(v)
	b.storeResult(addr, mode, v)
	return 0, nil
}

func opBIT(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	m := b.Read(addr)
	// Open-question decision: Z is sourced from A&M, but N/V are copied
	// straight from bits 7/6 of M untouched by the AND (DESIGN.md).
	cpu.P.Set(FlagZero, cpu.A&m == 0)
	cpu.P.Set(FlagNegative, m&0x80 != 0)
	cpu.P.Set(FlagOverflow, m&0x40 != 0)
	return 0, nil
}

func compare(b *Bus, reg byte, addr uint16) {
	cpu := &b.CPU
	m := b.Read(addr)
	result := reg - m
	cpu.P.Set(FlagCarry, reg >= m)
	cpu.P.setNZ(result)
}

func opCMP(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	compare(b, b.CPU.A, addr)
	return 0, nil
}

func opCPX(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	compare(b, b.CPU.X, addr)
	return 0, nil
}

func opCPY(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	compare(b, b.CPU.Y, addr)
	return 0, nil
}

func opINC(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	v := b.Read(addr) + 1
	b.Write(addr, v)
	b.CPU.P.setNZ(v)
	return 0, nil
}

func opDEC(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	v := b.Read(addr) - 1
	b.Write(addr, v)
	b.CPU.P.setNZ(v)
	return 0, nil
}

func opINX(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.X++
	cpu.P.setNZ(cpu.X)
	return 0, nil
}

func opINY(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.Y++
	cpu.P.setNZ(cpu.Y)
	return 0, nil
}

func opDEX(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.X--
	cpu.P.setNZ(cpu.X)
	return 0, nil
}

func opDEY(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.Y--
	cpu.P.setNZ(cpu.Y)
	return 0, nil
}

func opLDA(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A = b.Read(addr)
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opLDX(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.X = b.Read(addr)
	cpu.P.setNZ(cpu.X)
	return 0, nil
}

func opLDY(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.Y = b.Read(addr)
	cpu.P.setNZ(cpu.Y)
	return 0, nil
}

func opSTA(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.Write(addr, b.CPU.A)
	return 0, nil
}

func opSTX(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.Write(addr, b.CPU.X)
	return 0, nil
}

func opSTY(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.Write(addr, b.CPU.Y)
	return 0, nil
}

func opTAX(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.X = cpu.A
	cpu.P.setNZ(cpu.X)
	return 0, nil
}

func opTAY(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.Y = cpu.A
	cpu.P.setNZ(cpu.Y)
	return 0, nil
}

func opTXA(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A = cpu.X
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opTYA(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A = cpu.Y
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opTSX(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.X = cpu.SP
	cpu.P.setNZ(cpu.X)
	return 0, nil
}

func opTXS(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	// TXS is the one register transfer that doesn't touch N/Z: SP isn't a
	// value register.
	b.CPU.SP = b.CPU.X
	return 0, nil
}

func opPHA(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.stackPush(b.CPU.A)
	return 0, nil
}

func opPLA(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A = b.stackPop()
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

func opPHP(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	// The byte PHP pushes always has B and U set, regardless of their
	// current in-register state.
	b.stackPush((b.CPU.P | FlagBreak | FlagUnused).Bits())
	return 0, nil
}

func opPLP(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	// B is never actually stored in P; U always reads back as 1.
	v := Flags(b.stackPop())
	b.CPU.P = (v &^ FlagBreak) | FlagUnused
	return 0, nil
}

func opJMP(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.PC = addr
	return 0, nil
}

func opJSR(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	// JSR pushes the address of the last byte of itself, not the address of
	// the next instruction; RTS adds one back after popping.
	b.stackPushWord(b.CPU.PC - 1)
	b.CPU.PC = addr
	return 0, nil
}

func opRTS(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.PC = b.stackPopWord() + 1
	return 0, nil
}

func opRTI(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	v := Flags(b.stackPop())
	b.CPU.P = (v &^ FlagBreak) | FlagUnused
	b.CPU.PC = b.stackPopWord()
	return 0, nil
}

func opBRK(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.PC++ // BRK is a two-byte instruction; the padding byte is skipped
	b.stackPushWord(cpu.PC)
	b.stackPush((cpu.P | FlagBreak | FlagUnused).Bits())
	cpu.P.Set(FlagInterrupt, true)
	cpu.PC = b.readWord(irqVector)
	return 0, nil
}

func opNOP(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	return 0, nil
}

// Flag-clear/set instructions.

func opCLC(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagCarry, false)
	return 0, nil
}

func opSEC(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagCarry, true)
	return 0, nil
}

func opCLI(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagInterrupt, false)
	return 0, nil
}

func opSEI(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagInterrupt, true)
	return 0, nil
}

func opCLD(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagDecimal, false)
	return 0, nil
}

func opSED(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagDecimal, true)
	return 0, nil
}

func opCLV(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.P.Set(FlagOverflow, false)
	return 0, nil
}

// Branches. decodeOperand(Relative) has already computed addr as the target
// PC and samePage as whether the post-operand PC and the target share a
// page; the extra-cycle math below: +1 if taken, a further +1 if the branch
// also crosses a page.
func branch(b *Bus, addr uint16, samePage bool, taken bool) (int64, error) {
	if !taken {
		return 0, nil
	}
	b.CPU.PC = addr
	if samePage {
		return 1, nil
	}
	return 2, nil
}

func opBCC(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, !b.CPU.P.Contains(FlagCarry))
}

func opBCS(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, b.CPU.P.Contains(FlagCarry))
}

func opBEQ(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, b.CPU.P.Contains(FlagZero))
}

func opBNE(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, !b.CPU.P.Contains(FlagZero))
}

func opBMI(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, b.CPU.P.Contains(FlagNegative))
}

func opBPL(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, !b.CPU.P.Contains(FlagNegative))
}

func opBVC(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, !b.CPU.P.Contains(FlagOverflow))
}

func opBVS(b *Bus, addr uint16, _ AddressingMode, samePage bool) (int64, error) {
	return branch(b, addr, samePage, b.CPU.P.Contains(FlagOverflow))
}
