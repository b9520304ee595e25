package nes

import "errors"

// Sentinel error kinds returned by the package, meant to be checked with
// errors.Is.
var (
	// ErrInvalidROM is returned by NewCartridge when the iNES magic doesn't
	// match, the data is shorter than the header declares, or the mapper ID
	// isn't registered.
	ErrInvalidROM = errors.New("nes: invalid rom")

	// ErrIllegalInstruction is returned by Step for an opcode byte with no
	// entry in the 256-slot table. None currently exist (every byte decodes
	// to something, even if that something is an unofficial NOP or KIL), but
	// the table lookup stays defensive rather than assuming completeness.
	ErrIllegalInstruction = errors.New("nes: illegal instruction")

	// ErrUnimplemented is returned by Step for unofficial opcodes whose
	// result depends on undocumented, chip-revision-specific bus-conflict
	// behavior (XAA, AHX/AXA, SHX/SXA, SHY/SYA, LAS/LAR, TAS/XAS, LXA/ATX).
	ErrUnimplemented = errors.New("nes: unimplemented opcode")

	// ErrHalted is returned by Step once the CPU has executed a KIL
	// (JAM/HLT) opcode. The CPU does not recover from this state.
	ErrHalted = errors.New("nes: cpu halted")
)
