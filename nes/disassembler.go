package nes

import "fmt"

// DisasmLine is one decoded instruction produced by DisassembleRange: an
// address, its rendered text, and the byte length consumed so the caller
// can advance to the next instruction.
type DisasmLine struct {
	Addr   uint16
	Opcode byte
	Text   string
	Length int
}

// DisassembleRange walks memory starting at addr and decodes count
// instructions without executing them or moving the CPU's real PC — the
// non-destructive counterpart to the Step-driven Trace() in trace.go, meant
// for a debugger's listing rather than the golden-log contract. Grounded in
// the teacher's Cpu6502.Disassemble (cpuDisassembler.go), which built a
// similar address->text map over a range; generalized here into a slice (so
// callers can page through it) and reworked to share operandString/
// instructionLength with Trace instead of its own parallel formatting.
func (b *Bus) DisassembleRange(addr uint16, count int) []DisasmLine {
	lines := make([]DisasmLine, 0, count)
	for i := 0; i < count; i++ {
		opcode := b.Read(addr)
		inst := opcodeTable[opcode]
		length := instructionLength(inst.Mode)

		operand := make([]byte, length-1)
		for j := range operand {
			operand[j] = b.Read(addr + 1 + uint16(j))
		}

		text := inst.Mnemonic + operandString(inst.Mode, disasmTargetAddr(addr, inst.Mode, operand), operand)
		lines = append(lines, DisasmLine{
			Addr:   addr,
			Opcode: opcode,
			Text:   fmt.Sprintf("$%04X: %s", addr, text),
			Length: length,
		})

		addr += uint16(length)
	}
	return lines
}

// disasmTargetAddr computes the address operandString needs for the two
// modes (Absolute, Relative) whose rendering shows a resolved address rather
// than raw operand bytes. It never touches the bus or PC — Relative's target
// is computed from the instruction's own length, matching what the real
// fetch/decode would have produced.
func disasmTargetAddr(instrAddr uint16, mode AddressingMode, operand []byte) uint16 {
	switch mode {
	case Absolute:
		return uint16(operand[1])<<8 | uint16(operand[0])
	case Relative:
		nextPC := instrAddr + 2
		return uint16(int32(nextPC) + int32(int8(operand[0])))
	default:
		return 0
	}
}
