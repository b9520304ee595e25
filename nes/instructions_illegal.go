package nes

// Unofficial (undocumented) opcode semantics. Every one of these is a
// documented combination of two official micro-ops happening to share a
// single decode slot on the real silicon. The genuinely unstable encodings
// (bus-conflict dependent on chip revision and temperature) are refused with
// ErrUnimplemented rather than guessed.

// opLAX is LDA+LDX fused: load both A and X from memory in one step.
func opLAX(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.Read(addr)
	cpu.A = v
	cpu.X = v
	cpu.P.setNZ(v)
	return 0, nil
}

// opSAX (AAX) stores A&X, touching no flags.
func opSAX(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	b.Write(addr, b.CPU.A&b.CPU.X)
	return 0, nil
}

// opDCP is DEC followed by CMP against the decremented value.
func opDCP(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	v := b.Read(addr) - 1
	b.Write(addr, v)
	compare(b, b.CPU.A, addr)
	return 0, nil
}

// opISB (ISC) is INC followed by SBC against the incremented value.
func opISB(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	v := b.Read(addr) + 1
	b.Write(addr, v)
	b.sbc(v)
	return 0, nil
}

// opSLO is ASL followed by ORA against the shifted value.
func opSLO(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.Read(addr)
	cpu.P.Set(FlagCarry, v&0x80 != 0)
	v <<= 1
	b.Write(addr, v)
	cpu.A |= v
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

// opRLA is ROL followed by AND against the rotated value.
func opRLA(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.Read(addr)
	carryIn := byte(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 1
	}
	cpu.P.Set(FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	b.Write(addr, v)
	cpu.A &= v
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

// opSRE is LSR followed by EOR against the shifted value.
func opSRE(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.Read(addr)
	cpu.P.Set(FlagCarry, v&0x01 != 0)
	v >>= 1
	b.Write(addr, v)
	cpu.A ^= v
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

// opRRA is ROR followed by ADC against the rotated value.
func opRRA(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	v := b.Read(addr)
	carryIn := byte(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 0x80
	}
	cpu.P.Set(FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	b.Write(addr, v)
	b.adc(v)
	return 0, nil
}

// opANC is AND immediate, then copies the result's sign bit into Carry —
// used historically to load Carry and Negative in one instruction.
func opANC(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A &= b.Read(addr)
	cpu.P.setNZ(cpu.A)
	cpu.P.Set(FlagCarry, cpu.A&0x80 != 0)
	return 0, nil
}

// opASR (ALR) is AND immediate followed by LSR on the accumulator.
func opASR(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A &= b.Read(addr)
	cpu.P.Set(FlagCarry, cpu.A&0x01 != 0)
	cpu.A >>= 1
	cpu.P.setNZ(cpu.A)
	return 0, nil
}

// opARR is AND immediate followed by ROR on the accumulator, with C set from
// bit 6 of the rotated result and V from bit 6 XOR bit 5, rather than from
// the shifted-out bit — the one genuinely quirky case among the
// implementable unofficial opcodes.
func opARR(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	cpu.A &= b.Read(addr)
	carryIn := byte(0)
	if cpu.P.Contains(FlagCarry) {
		carryIn = 0x80
	}
	cpu.A = cpu.A>>1 | carryIn
	cpu.P.setNZ(cpu.A)
	cpu.P.Set(FlagCarry, cpu.A&0x40 != 0)
	cpu.P.Set(FlagOverflow, (cpu.A>>6)&1^(cpu.A>>5)&1 != 0)
	return 0, nil
}

// opAXS (SBX) sets X = (A&X) - M, using CMP-style borrow (not the ADC/SBC
// pipeline — no input carry, no overflow flag).
func opAXS(b *Bus, addr uint16, _ AddressingMode, _ bool) (int64, error) {
	cpu := &b.CPU
	m := b.Read(addr)
	aAndX := cpu.A & cpu.X
	result := aAndX - m
	cpu.P.Set(FlagCarry, aAndX >= m)
	cpu.X = result
	cpu.P.setNZ(result)
	return 0, nil
}

// opKIL (JAM/HLT) locks the CPU up permanently; Step refuses to fetch
// anything further once halted is set.
func opKIL(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	b.CPU.halted = true
	return 0, nil
}

// opUnstable covers the opcodes whose result depends on undocumented
// bus-conflict behavior that varies across 2A03 revisions: XAA, AHX/AXA,
// SHX/SXA, SHY/SYA, LAS/LAR, TAS/XAS, and ATX/LXA. Rather than guess at
// specific hardware, these are refused outright.
func opUnstable(b *Bus, _ uint16, _ AddressingMode, _ bool) (int64, error) {
	return 0, ErrUnimplemented
}
