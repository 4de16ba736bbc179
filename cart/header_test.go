package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRom constructs a ROM image of size romLen with a valid header
// written at headerOffset (relative to the start of the image), given the
// raw map-mode byte and ROM-type (chipset) byte. The checksum/complement
// pair is filled in so the header validates.
func buildRom(romLen, headerOffset int, title string, mapMode, romType, ramSize byte) []byte {
	rom := make([]byte, romLen)
	h := headerOffset
	copy(rom[h+offTitle:h+offTitle+titleLen], []byte(title))
	for i := len(title); i < titleLen; i++ {
		rom[h+offTitle+i] = ' '
	}
	rom[h+offMapMode] = mapMode
	rom[h+offRomType] = romType
	rom[h+offRomSize] = 0x0B
	rom[h+offRamSize] = ramSize

	checksum := uint16(0x1234)
	complement := checksum ^ 0xFFFF
	rom[h+offChecksumLo] = byte(checksum)
	rom[h+offChecksumLo+1] = byte(checksum >> 8)
	rom[h+offComplementLo] = byte(complement)
	rom[h+offComplementLo+1] = byte(complement >> 8)

	return rom
}

func TestGuessLoRom(t *testing.T) {
	rom := buildRom(512*1024, 0x7FB0, "TEST", 0x20, 0x02, 0x03)

	info, header, err := Guess(rom)
	require.NoError(t, err)

	base, ok := header.MapMode.Base()
	require.True(t, ok)
	assert.Equal(t, MapModeLoRom, base)
	assert.Equal(t, "TEST", trimTitle(info.Title))
	assert.True(t, info.HasBattery)
	require.Len(t, info.RomMap, 1)
	assert.Equal(t, uint32(0x8000), info.RomMap[0].Mask)
	// ram_size != 0 here, so the two open-bus LoROM mirror ranges aren't added.
	assert.Len(t, info.RomMap[0].AddressRanges, 2)
}

func TestGuessLoRomNoRamAddsMirrorRanges(t *testing.T) {
	rom := buildRom(512*1024, 0x7FB0, "TEST", 0x20, 0x00, 0x00)

	info, _, err := Guess(rom)
	require.NoError(t, err)
	assert.Len(t, info.RomMap[0].AddressRanges, 4)
	assert.Nil(t, info.RamMap)
}

func TestGuessHiRom(t *testing.T) {
	rom := buildRom(1024*1024, 0xFFB0, "TEST", 0x21, 0x02, 0x03)

	info, header, err := Guess(rom)
	require.NoError(t, err)

	base, ok := header.MapMode.Base()
	require.True(t, ok)
	assert.Equal(t, MapModeHiRom, base)
	require.Len(t, info.RomMap, 1)
	assert.Len(t, info.RomMap[0].AddressRanges, 4)
	require.Len(t, info.RamMap, 1)
}

func TestGuessExHiRom(t *testing.T) {
	rom := buildRom(6*1024*1024, 0x40FFB0, "TEST", 0x25, 0x02, 0x03)

	info, header, err := Guess(rom)
	require.NoError(t, err)

	base, ok := header.MapMode.Base()
	require.True(t, ok)
	assert.Equal(t, MapModeExHiRom, base)
	require.Len(t, info.RomMap, 2)
	assert.Equal(t, uint32(0x400000), info.RomMap[0].Offset)
	assert.Equal(t, uint32(0xC00000), info.RomMap[1].Mask)
}

func TestGuessFallsBackToLoRomWhenLargerProbesDoNotFit(t *testing.T) {
	// A tiny ROM can only satisfy the LoROM probe offset.
	rom := buildRom(256*1024, 0x7FB0, "ONLYLO", 0x20, 0x00, 0x00)
	_, header, err := Guess(rom)
	require.NoError(t, err)
	base, _ := header.MapMode.Base()
	assert.Equal(t, MapModeLoRom, base)
}

func TestGuessRejectsBadChecksum(t *testing.T) {
	rom := buildRom(512*1024, 0x7FB0, "TEST", 0x20, 0x00, 0x00)
	rom[0x7FB0+offChecksumLo] ^= 0xFF // break the complement relationship
	_, _, err := Guess(rom)
	assert.ErrorIs(t, err, ErrRomInvalid)
}

func TestGuessRejectsMismatchedMapMode(t *testing.T) {
	// A LoROM-family map-mode byte sitting at the HiROM probe offset
	// must not validate as HiROM.
	rom := buildRom(1024*1024, 0xFFB0, "TEST", 0x20, 0x00, 0x00)
	_, _, err := Guess(rom)
	assert.ErrorIs(t, err, ErrRomInvalid)
}

func TestGuessRejectsTooShortRom(t *testing.T) {
	_, _, err := Guess(make([]byte, 100))
	assert.ErrorIs(t, err, ErrRomInvalid)
}

func trimTitle(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	return s[:i]
}
