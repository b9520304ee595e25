package nes

// Step fetches, decodes, and executes exactly one instruction. It is the
// single entry point the driver loop calls in a tight loop; NMI delivery and
// cycle accounting both happen here rather than being left to the caller.
func (b *Bus) Step() (int64, error) {
	cpu := &b.CPU

	if cpu.halted {
		return 0, ErrHalted
	}

	pc := cpu.PC
	opcode := b.Read(pc)
	cpu.PC++
	cpu.Opcode = opcode

	inst := opcodeTable[opcode]
	if inst.Exec == nil {
		return 0, ErrIllegalInstruction
	}

	operand := make([]byte, instructionLength(inst.Mode)-1)
	for i := range operand {
		operand[i] = b.Read(pc + 1 + uint16(i))
	}

	b.trace = traceState{
		pc:       pc,
		opcode:   opcode,
		operand:  operand,
		mode:     inst.Mode,
		mnemonic: inst.Mnemonic,
		a:        cpu.A,
		x:        cpu.X,
		y:        cpu.Y,
		sp:       cpu.SP,
		p:        cpu.P,
		cyc:      uint64(b.Clock),
	}

	addr, samePage := b.decodeOperand(inst.Mode)
	b.trace.addr = addr

	cycles := int64(inst.Cycles)
	if inst.PageCross && !samePage {
		cycles++
	}

	extra, err := inst.Exec(b, addr, inst.Mode, samePage)
	cycles += extra

	b.tick(cycles)
	b.serviceNMI()

	return cycles, err
}
