package nes

// Emulator is the public facade over a Bus: the one type an embedder needs
// to construct and drive. Everything it does is a thin pass-through to the
// Bus it owns; the facade exists so callers never need to know about
// Cpu6502/Ppu/Cartridge plumbing to run a ROM.
type Emulator struct {
	bus *Bus
}

// New parses cartridgeBytes as an iNES image, wires it to a fresh Bus, and
// performs RESET.
func New(cartridgeBytes []byte) (*Emulator, error) {
	cart, err := NewCartridge(cartridgeBytes)
	if err != nil {
		return nil, err
	}

	bus := NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()

	return &Emulator{bus: bus}, nil
}

// Step executes exactly one instruction and returns the number of cycles it
// cost, including any page-cross or taken-branch penalties.
func (e *Emulator) Step() (int64, error) {
	return e.bus.Step()
}

// Trace returns the golden-log-format trace line for the instruction most
// recently executed by Step.
func (e *Emulator) Trace() string {
	return e.bus.Trace()
}

// Read returns the byte visible to the CPU at address, primarily for tests.
func (e *Emulator) Read(address uint16) byte {
	return e.bus.Read(address)
}

// Write stores value at the CPU-visible address, primarily for tests.
func (e *Emulator) Write(address uint16, value byte) {
	e.bus.Write(address, value)
}

// SetPC forces the program counter, used by automation-mode drivers (like
// nestest) that need to start execution somewhere other than the RESET
// vector.
func (e *Emulator) SetPC(pc uint16) {
	e.bus.CPU.PC = pc
}

// CPU exposes the register snapshot for callers (tests, debuggers) that need
// more than Read/Write/Trace.
func (e *Emulator) CPU() Cpu6502 {
	return e.bus.CPU
}

// Cycles returns the cycle clock's current value.
func (e *Emulator) Cycles() int64 {
	return e.bus.Clock
}

// PPU exposes the PPU for callers that want to inspect pattern tables or
// register state directly.
func (e *Emulator) PPU() *Ppu {
	return e.bus.PPU
}

// NMIPending reports whether the PPU currently has an NMI edge queued for
// delivery at the end of the in-flight instruction.
func (e *Emulator) NMIPending() bool {
	return e.bus.PPU.pendingNMI
}

// Disassemble decodes count instructions starting at addr without executing
// them or moving PC, for an embedding debugger's listing view.
func (e *Emulator) Disassemble(addr uint16, count int) []DisasmLine {
	return e.bus.DisassembleRange(addr, count)
}
