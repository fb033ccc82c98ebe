package validator

// Lane geometry for the wide kernel.
const (
	// LaneWidth is the number of input bytes processed per kernel step.
	// One mask bit per byte fits a uint32, with shifted obligations
	// spilling into the upper half of a uint64.
	LaneWidth = 32

	// laneWords is the lane size in 64-bit words.
	laneWords = LaneWidth / 8
)

// Error classes for the byte sequences UTF-8's prefix coding alone cannot
// reject. Each class gets its own bit so independent nibble lookups can be
// ANDed together.
const (
	errOverlong2 = 0x01 // C0..C1 xx: two bytes for a one-byte code point
	errOverlong3 = 0x02 // E0 80..9F: three bytes for a two-byte code point
	errSurrogate = 0x04 // ED A0..BF: UTF-16 surrogate half
	errTooLarge  = 0x08 // F4 90..BF: code point above U+10FFFF
	errLeadMax   = 0x10 // F5..FF xx: no valid sequence starts this high
	errOverlong4 = 0x20 // F0 80..8F: four bytes for a code point under U+10000
)

// Nibble classification tables. A disallowed sequence is identified by the
// high nibble of its leader, the low nibble of its leader, and the high
// nibble of the byte after the leader. Each table carries, per nibble
// value, the union of error bits that value is compatible with; only when
// all three lookups share a bit does a pair of bytes form an error.
var (
	// errLeadHigh classifies the leader's high nibble.
	errLeadHigh = [16]uint8{
		0x0: 0,
		0xC: errOverlong2,
		0xE: errOverlong3 | errSurrogate,
		0xF: errTooLarge | errLeadMax | errOverlong4,
	}

	// errLeadLow classifies the leader's low nibble.
	errLeadLow = [16]uint8{
		0x0: errOverlong2 | errOverlong3 | errOverlong4,
		0x1: errOverlong2,
		0x4: errTooLarge,
		0x5: errLeadMax,
		0x6: errLeadMax,
		0x7: errLeadMax,
		0x8: errLeadMax,
		0x9: errLeadMax,
		0xA: errLeadMax,
		0xB: errLeadMax,
		0xC: errLeadMax,
		0xD: errLeadMax | errSurrogate,
		0xE: errLeadMax,
		0xF: errLeadMax,
	}

	// errNextHigh classifies the high nibble of the byte following the
	// leader. errOverlong2 and errLeadMax do not depend on it, so those
	// bits are present in every entry.
	errNextHigh = [16]uint8{
		0x0: errOverlong2 | errLeadMax,
		0x1: errOverlong2 | errLeadMax,
		0x2: errOverlong2 | errLeadMax,
		0x3: errOverlong2 | errLeadMax,
		0x4: errOverlong2 | errLeadMax,
		0x5: errOverlong2 | errLeadMax,
		0x6: errOverlong2 | errLeadMax,
		0x7: errOverlong2 | errLeadMax,
		0x8: errOverlong2 | errLeadMax | errOverlong3 | errOverlong4,
		0x9: errOverlong2 | errLeadMax | errOverlong3 | errTooLarge,
		0xA: errOverlong2 | errLeadMax | errSurrogate | errTooLarge,
		0xB: errOverlong2 | errLeadMax | errSurrogate | errTooLarge,
		0xC: errOverlong2 | errLeadMax | errTooLarge,
		0xD: errOverlong2 | errLeadMax | errTooLarge,
		0xE: errOverlong2 | errLeadMax | errTooLarge,
		0xF: errOverlong2 | errLeadMax | errTooLarge,
	}
)
