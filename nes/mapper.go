package nes

// Mapper translates CPU/PPU addresses into offsets within a cartridge's PRG
// and CHR byte slices. Only mapper 0 (NROM) is registered here, but the
// registry exists so a future mapper has an obvious home.
type Mapper interface {
	// MapPRGRead translates a CPU address in 0x8000-0xFFFF into an offset
	// into a PRG-ROM slice of the given size.
	MapPRGRead(addr uint16, prgSize int) int
	// MapCHRRead translates a PPU address in 0x0000-0x1FFF into an offset
	// into a CHR-ROM slice of the given size.
	MapCHRRead(addr uint16, chrSize int) int
}

// mapperRegistry maps an iNES mapper ID to a constructor for the Mapper that
// implements it.
var mapperRegistry = map[byte]func(prgBanks, chrBanks byte) Mapper{
	0: newNROM,
}
