package nes

// Flags is the 6502 processor status register, modeled as a checked bitset
// rather than a bare byte so that flag math can't accidentally widen into
// register math (see DESIGN.md).
type Flags byte

// Status flag bit positions, per the Ricoh 6502 status register layout.
const (
	FlagCarry     Flags = 1 << iota // C
	FlagZero                        // Z
	FlagInterrupt                   // I - interrupt disable
	FlagDecimal                     // D - tracked, never consulted (this variant has no BCD)
	FlagBreak                       // B - exists only in the byte pushed by PHP/BRK
	FlagUnused                      // U - always reads as 1
	FlagOverflow                    // V
	FlagNegative                    // N
)

// Set writes b into every bit named by mask, leaving other bits untouched.
func (f *Flags) Set(mask Flags, b bool) {
	if b {
		*f |= mask
	} else {
		*f &^= mask
	}
}

// Contains reports whether every bit in mask is set.
func (f Flags) Contains(mask Flags) bool {
	return f&mask == mask
}

// Bits returns the flags as a raw byte, always with the Unused bit forced on.
func (f Flags) Bits() byte {
	return byte(f | FlagUnused)
}

// setNZ sets the Zero and Negative flags from a computed result, the single
// most common flag update in the instruction set.
func (f *Flags) setNZ(result byte) {
	f.Set(FlagZero, result == 0)
	f.Set(FlagNegative, result&0x80 != 0)
}
