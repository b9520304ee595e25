package nes

import "fmt"

// traceState is a snapshot of everything Trace needs, captured by Step
// immediately before the instruction it describes runs. nestest-style
// golden logs print register state as of the start of the instruction, not
// after it, so the snapshot happens before Exec is called.
type traceState struct {
	pc      uint16
	opcode  byte
	operand []byte
	mode    AddressingMode
	addr    uint16
	mnemonic string

	a, x, y, sp byte
	p           Flags
	cyc         uint64
}

// Trace returns the fixed-format trace line for the instruction most
// recently executed by Step, in the conventional nestest golden-log layout:
// PC(4hex) OP(2hex) MNEMONIC+operand(padded) A:.. X:.. Y:.. P:.. SP:.. CYC:..
func (b *Bus) Trace() string {
	t := b.trace

	hexBytes := fmt.Sprintf("%02X", t.opcode)
	for _, ob := range t.operand {
		hexBytes += fmt.Sprintf(" %02X", ob)
	}

	asm := t.mnemonic + operandString(t.mode, t.addr, t.operand)

	return fmt.Sprintf("%04X  %-8s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		t.pc, hexBytes, asm, t.a, t.x, t.y, byte(t.p), t.sp, t.cyc)
}

// operandString renders an instruction's operand the conventional 6502
// assembler way for the given addressing mode.
func operandString(mode AddressingMode, addr uint16, operand []byte) string {
	switch mode {
	case Implied:
		return ""
	case Accumulator:
		return " A"
	case Immediate:
		return fmt.Sprintf(" #$%02X", operand[0])
	case ZeroPage:
		return fmt.Sprintf(" $%02X", operand[0])
	case ZeroPageX:
		return fmt.Sprintf(" $%02X,X", operand[0])
	case ZeroPageY:
		return fmt.Sprintf(" $%02X,Y", operand[0])
	case Absolute:
		return fmt.Sprintf(" $%04X", addr)
	case AbsoluteX:
		return fmt.Sprintf(" $%02X%02X,X", operand[1], operand[0])
	case AbsoluteY:
		return fmt.Sprintf(" $%02X%02X,Y", operand[1], operand[0])
	case Indirect:
		return fmt.Sprintf(" ($%02X%02X)", operand[1], operand[0])
	case IndirectX:
		return fmt.Sprintf(" ($%02X,X)", operand[0])
	case IndirectY:
		return fmt.Sprintf(" ($%02X),Y", operand[0])
	case Relative:
		return fmt.Sprintf(" $%04X", addr)
	default:
		return ""
	}
}

// instructionLength returns the total byte count (opcode + operand) for an
// addressing mode, used only for disassembly bookkeeping.
func instructionLength(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 1
	}
}
