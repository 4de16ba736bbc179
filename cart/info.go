package cart

// Info is the cartridge metadata derived from header auto-detection: the
// title, save-RAM size, whether it's battery-backed, and the ROM/RAM
// address-space maps the bus uses to translate CPU addresses.
type Info struct {
	Title      string
	RamSize    uint32
	HasBattery bool
	RomMap     []MapRegion
	RamMap     []MapRegion
}

// HiRomSramBanks selects which bank pair HiROM save RAM is guessed to live
// in. The board layout is genuinely ambiguous from the header alone (see
// DESIGN.md); this is a deliberate, overridable heuristic, not a hardware
// certainty. Callers targeting a specific board can replace this before
// calling Guess.
var HiRomSramBanks = [2]MapAddrRange{
	{BankLo: 0x20, BankHi: 0x3F, AddrLo: 0x6000, AddrHi: 0x7FFF},
	{BankLo: 0xA0, BankHi: 0xBF, AddrLo: 0x6000, AddrHi: 0x7FFF},
}

// probe is one of the three fixed header locations checked in order.
type probe struct {
	offset int
	base   BaseMapMode
}

var probes = []probe{
	{offset: 0x40FFB0, base: MapModeExHiRom},
	{offset: 0xFFB0, base: MapModeHiRom},
	{offset: 0x7FB0, base: MapModeLoRom},
}

// Guess auto-detects the cartridge's address-space family by probing for a
// valid internal header at the three fixed offsets, in order: ExHiROM,
// HiROM, then LoROM. It returns the derived Info and the parsed Header, or
// ErrRomInvalid if no probe yields a consistent header.
func Guess(rom []byte) (Info, Header, error) {
	if len(rom) < 0x8000 {
		return Info{}, Header{}, ErrRomInvalid
	}

	for _, p := range probes {
		end := p.offset + headerLen
		if end > len(rom) {
			continue
		}
		h, ok := newHeader(rom[p.offset:end], p.base)
		if !ok {
			continue
		}

		romMap, ramMap := buildMaps(p.base, h)
		ramSize := h.RamSize
		if !h.Chipset.HasRAM {
			ramSize = 0
		}

		return Info{
			Title:      h.Title,
			RamSize:    ramSize,
			HasBattery: h.Chipset.HasBattery,
			RomMap:     romMap,
			RamMap:     ramMap,
		}, h, nil
	}

	return Info{}, Header{}, ErrRomInvalid
}

func buildMaps(base BaseMapMode, h Header) ([]MapRegion, []MapRegion) {
	switch base {
	case MapModeLoRom:
		return loRomMaps(h)
	case MapModeHiRom:
		return hiRomMaps(h)
	case MapModeExHiRom:
		return exHiRomMaps(h)
	default:
		return nil, nil
	}
}

func loRomMaps(h Header) ([]MapRegion, []MapRegion) {
	ranges := []MapAddrRange{
		{BankLo: 0x00, BankHi: 0x7D, AddrLo: 0x8000, AddrHi: 0xFFFF},
		{BankLo: 0x80, BankHi: 0xFF, AddrLo: 0x8000, AddrHi: 0xFFFF},
	}
	if h.RamSize == 0 {
		ranges = append(ranges,
			MapAddrRange{BankLo: 0x40, BankHi: 0x7D, AddrLo: 0x0000, AddrHi: 0x7FFF},
			MapAddrRange{BankLo: 0xC0, BankHi: 0xFF, AddrLo: 0x0000, AddrHi: 0x7FFF},
		)
	}

	romMap := []MapRegion{{AddressRanges: ranges, Offset: 0, Mask: 0x8000}}
	// LoROM save-RAM board layouts are unspecified by the header; left
	// empty, matching the source (see DESIGN.md Open Questions).
	return romMap, nil
}

func hiRomMaps(h Header) ([]MapRegion, []MapRegion) {
	romMap := []MapRegion{{
		AddressRanges: []MapAddrRange{
			{BankLo: 0x00, BankHi: 0x3F, AddrLo: 0x8000, AddrHi: 0xFFFF},
			{BankLo: 0x80, BankHi: 0xBF, AddrLo: 0x8000, AddrHi: 0xFFFF},
			{BankLo: 0x40, BankHi: 0x7D, AddrLo: 0x0000, AddrHi: 0xFFFF},
			{BankLo: 0xC0, BankHi: 0xFF, AddrLo: 0x0000, AddrHi: 0xFFFF},
		},
		Offset: 0,
		Mask:   0,
	}}

	var ramMap []MapRegion
	if h.Chipset.HasRAM {
		ramMap = []MapRegion{{
			AddressRanges: HiRomSramBanks[:],
			Offset:        0,
			Mask:          0xE000,
		}}
	}
	return romMap, ramMap
}

func exHiRomMaps(h Header) ([]MapRegion, []MapRegion) {
	romMap := []MapRegion{
		{
			AddressRanges: []MapAddrRange{
				{BankLo: 0x00, BankHi: 0x3F, AddrLo: 0x8000, AddrHi: 0xFFFF},
				{BankLo: 0x40, BankHi: 0x7D, AddrLo: 0x0000, AddrHi: 0xFFFF},
			},
			Offset: 0x400000,
			Mask:   0,
		},
		{
			AddressRanges: []MapAddrRange{
				{BankLo: 0x80, BankHi: 0xBF, AddrLo: 0x8000, AddrHi: 0xFFFF},
				{BankLo: 0xC0, BankHi: 0xFF, AddrLo: 0x0000, AddrHi: 0xFFFF},
			},
			Offset: 0,
			Mask:   0xC00000,
		},
	}

	var ramMap []MapRegion
	if h.Chipset.HasRAM {
		ramMap = []MapRegion{{
			AddressRanges: []MapAddrRange{
				{BankLo: 0x80, BankHi: 0xBF, AddrLo: 0x6000, AddrHi: 0x7FFF},
			},
			Offset: 0,
			Mask:   0xE000,
		}}
	}
	return romMap, ramMap
}
