package cart

// Cart owns the loaded ROM image, save RAM, and the derived Info used to
// translate CPU bus addresses into offsets within either backing store.
type Cart struct {
	Info    Info
	FastRom bool
	rom     []byte
	ram     []byte
}

// New builds a Cart from a ROM image by running header auto-detection.
func New(rom []byte) (*Cart, error) {
	info, header, err := Guess(rom)
	if err != nil {
		return nil, err
	}
	return &Cart{
		Info:    info,
		FastRom: header.MapMode.FastRom(),
		rom:     rom,
		ram:     make([]byte, info.RamSize),
	}, nil
}

// openBusUnset is returned by reads of cartridge addresses not covered by any
// mapped region; callers are expected to substitute the bus's own
// last-driven-value semantics (spec.md §7) rather than treat this as an
// error.
const openBusUnset = 0xFF

// ReadRom reads a byte through the ROM map at the given bank:addr. ok is
// false if no ROM region covers the address (open bus).
func (c *Cart) ReadRom(bank uint8, addr uint16) (uint8, bool) {
	region, found := FindRegion(c.Info.RomMap, bank, addr)
	if !found || len(c.rom) == 0 {
		return openBusUnset, false
	}
	off := region.Offset24(bank, addr, uint32(len(c.rom)))
	return c.rom[off%uint32(len(c.rom))], true
}

// ReadRam reads a byte through the save-RAM map. ok is false if no RAM
// region covers the address (open bus) or no save RAM is present.
func (c *Cart) ReadRam(bank uint8, addr uint16) (uint8, bool) {
	region, found := FindRegion(c.Info.RamMap, bank, addr)
	if !found || len(c.ram) == 0 {
		return openBusUnset, false
	}
	off := region.Offset24(bank, addr, uint32(len(c.ram)))
	return c.ram[off%uint32(len(c.ram))], true
}

// WriteRam writes through the save-RAM map; writes to unmapped addresses or
// when no save RAM is present are silently dropped (spec.md §7).
func (c *Cart) WriteRam(bank uint8, addr uint16, val uint8) {
	region, found := FindRegion(c.Info.RamMap, bank, addr)
	if !found || len(c.ram) == 0 {
		return
	}
	off := region.Offset24(bank, addr, uint32(len(c.ram)))
	c.ram[off%uint32(len(c.ram))] = val
}

// FastRomBanks reports whether the given bank should use FastROM access
// timing: banks $80-$FF only, and only when the cartridge's map-mode byte
// requested it. Callers resolve the map-mode flag once at load time via
// Guess's returned Header and pass it in here.
func FastRomBanks(bank uint8, fastRomEnabled bool) bool {
	return fastRomEnabled && bank >= 0x80
}

// IsFastRom reports whether an access to bank should use FastROM timing for
// this cartridge.
func (c *Cart) IsFastRom(bank uint8) bool {
	return FastRomBanks(bank, c.FastRom)
}
