package nes

// NMI runs the non-maskable interrupt sequence: push PC, push status (with B
// cleared, U set), disable further IRQs, and jump through the NMI vector.
// This costs 7 cycles and cannot be masked by the I flag.
func (b *Bus) NMI() {
	cpu := &b.CPU

	b.stackPushWord(cpu.PC)
	b.stackPush(((cpu.P | FlagUnused) &^ FlagBreak).Bits())
	cpu.P.Set(FlagInterrupt, true)
	cpu.PC = b.readWord(nmiVector)

	b.tick(7)
}

// IRQ runs the maskable interrupt sequence. It is a no-op when the I flag is
// set. No component in this core currently asserts IRQ (there is no APU
// here yet), but the sequence exists so a future mapper has somewhere to
// call into.
func (b *Bus) IRQ() {
	cpu := &b.CPU
	if cpu.P.Contains(FlagInterrupt) {
		return
	}

	b.stackPushWord(cpu.PC)
	b.stackPush(((cpu.P | FlagUnused) &^ FlagBreak).Bits())
	cpu.P.Set(FlagInterrupt, true)
	cpu.PC = b.readWord(irqVector)

	b.tick(7)
}

// serviceNMI is called once per Step after the instruction has fully
// executed: if the PPU has a pending NMI edge queued, service it and clear
// the flag.
func (b *Bus) serviceNMI() {
	if b.PPU.pendingNMI {
		b.PPU.pendingNMI = false
		b.NMI()
	}
}
