package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestROM builds a minimal one-bank (16 KiB PRG, no CHR) iNES image with
// prg copied to the start of the PRG bank. The caller is responsible for
// placing a reset vector at the end of the 16 KiB bank (offsets 0x3FFC and
// 0x3FFD within prg, which map to CPU addresses 0xFFFC/0xFFFD) if the test
// needs RESET to land somewhere specific.
func newTestROM(prg []byte) []byte {
	data := make([]byte, iNESHeaderSize+prgBankSize)
	copy(data[0:4], iNESMagic[:])
	data[4] = 1 // one 16 KiB PRG bank
	data[5] = 0 // no CHR-ROM
	copy(data[iNESHeaderSize:], prg)
	return data
}

// newTestROMWithCHR is newTestROM plus a single 8 KiB CHR-ROM bank.
func newTestROMWithCHR(prg, chr []byte) []byte {
	data := make([]byte, iNESHeaderSize+prgBankSize+chrBankSize)
	copy(data[0:4], iNESMagic[:])
	data[4] = 1 // one 16 KiB PRG bank
	data[5] = 1 // one 8 KiB CHR bank
	copy(data[iNESHeaderSize:], prg)
	copy(data[iNESHeaderSize+prgBankSize:], chr)
	return data
}

// newTestEmulator builds an Emulator over a single-bank ROM whose reset
// vector points at start, with prg copied in starting at that same address.
func newTestEmulator(t *testing.T, start uint16, prg []byte) *Emulator {
	t.Helper()

	rom := make([]byte, prgBankSize)
	offset := int(start-0x8000) % prgBankSize
	copy(rom[offset:], prg)
	rom[0x3FFC] = byte(start)
	rom[0x3FFD] = byte(start >> 8)

	emu, err := New(newTestROM(rom))
	require.NoError(t, err)
	return emu
}

// newTestBus returns a Bus with a blank 16 KiB cartridge inserted and RESET
// already run; tests that only exercise RAM-resident addressing/instruction
// semantics don't need the cartridge but Reset needs one to read the vector
// from.
func newTestBus(t *testing.T) *Bus {
	t.Helper()

	cart, err := NewCartridge(newTestROM(make([]byte, prgBankSize)))
	require.NoError(t, err)

	b := NewBus()
	b.InsertCartridge(cart)
	b.Reset()
	return b
}
