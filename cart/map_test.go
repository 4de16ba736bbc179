package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAddrRangeContains(t *testing.T) {
	r := MapAddrRange{BankLo: 0x00, BankHi: 0x7D, AddrLo: 0x8000, AddrHi: 0xFFFF}
	assert.True(t, r.Contains(0x00, 0x8000))
	assert.True(t, r.Contains(0x7D, 0xFFFF))
	assert.False(t, r.Contains(0x7E, 0x8000))
	assert.False(t, r.Contains(0x00, 0x7FFF))
}

func TestOffset24LoRomFolding(t *testing.T) {
	region := MapRegion{
		AddressRanges: []MapAddrRange{{BankLo: 0x00, BankHi: 0x7D, AddrLo: 0x8000, AddrHi: 0xFFFF}},
		Mask:          0x8000,
	}
	// Bank 0, addr 0x8000 and 0xFFFF should land 0x7FFF apart within the
	// same 32KB slot once the 0x8000 bit is masked off.
	lo := region.Offset24(0x00, 0x8000, 1<<20)
	hi := region.Offset24(0x00, 0xFFFF, 1<<20)
	assert.Equal(t, uint32(0), lo)
	assert.Equal(t, uint32(0x7FFF), hi)
}

func TestOffset24ExHiRomOffset(t *testing.T) {
	region := MapRegion{Offset: 0x400000, Mask: 0}
	off := region.Offset24(0x00, 0x8000, 1<<24)
	assert.Equal(t, uint32(0x400000+0x8000), off)
}

func TestFindRegionFirstMatchWins(t *testing.T) {
	a := MapRegion{AddressRanges: []MapAddrRange{{BankLo: 0, BankHi: 0xFF, AddrLo: 0, AddrHi: 0xFFFF}}, Offset: 1}
	b := MapRegion{AddressRanges: []MapAddrRange{{BankLo: 0, BankHi: 0xFF, AddrLo: 0, AddrHi: 0xFFFF}}, Offset: 2}
	found, ok := FindRegion([]MapRegion{a, b}, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), found.Offset)
}
