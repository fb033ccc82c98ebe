package validator

import "encoding/binary"

// The wide kernel validates 32 bytes per step using SWAR (SIMD within a
// register) over four 64-bit words. Per lane it builds two bitmasks, one
// bit per byte: the bytes that are continuation bytes (10xxxxxx), and the
// bytes that are required to be continuation bytes given the 110/1110/11110
// leaders seen so far. Valid input has the two masks identical. Leaders
// near the end of a lane create obligations in the next one; those bits are
// the carry threaded between calls. A separate nibble-table pass catches
// overlong encodings, surrogates and code points above U+10FFFF, which the
// mask comparison alone cannot see.

// loadWords reinterprets a lane as little-endian words, so bit 8*i+7 of a
// word is the high bit of lane byte 8*i and mask bits come out in byte
// order.
func loadWords(c *[LaneWidth]byte) [laneWords]uint64 {
	return [laneWords]uint64{
		binary.LittleEndian.Uint64(c[0:8]),
		binary.LittleEndian.Uint64(c[8:16]),
		binary.LittleEndian.Uint64(c[16:24]),
		binary.LittleEndian.Uint64(c[24:32]),
	}
}

// movemask gathers bit 7 of every byte of w into the low eight bits of the
// result, emulating PMOVMSKB one word at a time. The multiply shifts each
// isolated high bit into its own position of the top byte; no two partial
// products land on the same bit, so no carries disturb the result.
func movemask(w uint64) uint32 {
	const lsb = 0x0101010101010101
	return uint32(((w >> 7) & lsb) * 0x0102040810204080 >> 56)
}

// laneMask returns one bit per lane byte, set when bit 7-shift of that byte
// is set. Shifting a word left never drags a lower byte's bits up into a
// sampled position, since bit 7-shift of byte i maps to a bit still inside
// byte i.
func laneMask(w *[laneWords]uint64, shift uint) uint32 {
	return movemask(w[0]<<shift) |
		movemask(w[1]<<shift)<<8 |
		movemask(w[2]<<shift)<<16 |
		movemask(w[3]<<shift)<<24
}

// processLane validates one lane. prev is the final byte of the previous
// lane (zero before the first lane, so the synthetic predecessor never
// looks like a leader) and carry holds the continuation obligations that
// spilled past it. Returns the obligations spilling into the next lane and
// whether the lane passed.
func processLane(c *[LaneWidth]byte, prev byte, carry uint32) (uint32, bool) {
	w := loadWords(c)
	high := laneMask(&w, 0)

	// Pure ASCII with nothing carried in: every check below passes
	// vacuously.
	if high|carry == 0 {
		return 0, true
	}

	// Narrow the high-bit mask to 11x, 111x and 1111 prefixes in turn.
	// Each leader class obliges 1, 2 or 3 following bytes to be
	// continuations, so its mask is shifted that far forward before
	// merging.
	set := high
	req := uint64(carry)
	var cont uint32
	for n := uint(1); n <= 3; n++ {
		set &= laneMask(&w, n)
		if n == 1 {
			// High bit set but not an 11x leader: an actual
			// continuation byte.
			cont = high ^ set
		}
		req |= uint64(set) << n
	}
	if cont != uint32(req) {
		return 0, false
	}

	if laneSpecialCases(c, prev) {
		return 0, false
	}
	return uint32(req >> LaneWidth), true
}

// processLaneFused is processLane with the shifted obligation masks merged
// by integer addition instead of OR, the way the hot AVX2 validators fold
// the merge into address arithmetic. Addition only differs from OR when two
// obligation runs overlap, which takes a leader inside another leader's
// continuation run; that leader is then absent from the actual continuation
// mask and the lane fails either way. The lane tests prove the two variants
// equivalent on exhaustive small inputs.
func processLaneFused(c *[LaneWidth]byte, prev byte, carry uint32) (uint32, bool) {
	w := loadWords(c)
	high := laneMask(&w, 0)
	if high|carry == 0 {
		return 0, true
	}

	set := high
	req := uint64(carry)
	var cont uint32
	for n := uint(1); n <= 3; n++ {
		set &= laneMask(&w, n)
		if n == 1 {
			cont = high ^ set
		}
		req += uint64(set) << n
	}
	if cont != uint32(req) {
		return 0, false
	}

	if laneSpecialCases(c, prev) {
		return 0, false
	}
	return uint32(req >> LaneWidth), true
}

// laneSpecialCases reports whether any adjacent byte pair in the lane forms
// an overlong encoding, a surrogate half, or a code point above U+10FFFF.
// Each pair is classified by three nibble lookups ANDed together. The pair
// whose leader is the previous lane's final byte is folded in first, so
// sequences spanning the lane boundary are still seen.
func laneSpecialCases(c *[LaneWidth]byte, prev byte) bool {
	e := errLeadHigh[prev>>4] & errLeadLow[prev&0x0F] & errNextHigh[c[0]>>4]
	for i := 1; i < LaneWidth; i++ {
		e |= errLeadHigh[c[i-1]>>4] & errLeadLow[c[i-1]&0x0F] & errNextHigh[c[i]>>4]
	}
	return e != 0
}

// validateLanes runs the wide kernel over data. Full lanes are read in
// place; the final partial lane is copied into a zero-filled buffer rather
// than read past the slice. NUL padding cannot satisfy an obligation, so a
// sequence truncated by the end of input still fails, and cannot create
// one, so valid input still passes.
func validateLanes(data []byte) bool {
	var (
		carry uint32
		prev  byte
	)
	i := 0
	for ; i+LaneWidth <= len(data); i += LaneWidth {
		lane := (*[LaneWidth]byte)(data[i:])
		next, ok := processLane(lane, prev, carry)
		if !ok {
			return false
		}
		carry = next
		prev = lane[LaneWidth-1]
	}
	if i < len(data) {
		var lane [LaneWidth]byte
		copy(lane[:], data[i:])
		next, ok := processLane(&lane, prev, carry)
		if !ok {
			return false
		}
		carry = next
	}
	// A leader in the final bytes left unmet obligations.
	return carry == 0
}

// validateLanesFused is validateLanes over the fused-add lane variant. It
// is kept for benchmarks and for the equivalence tests; the default path
// stays with the OR merge.
func validateLanesFused(data []byte) bool {
	var (
		carry uint32
		prev  byte
	)
	i := 0
	for ; i+LaneWidth <= len(data); i += LaneWidth {
		lane := (*[LaneWidth]byte)(data[i:])
		next, ok := processLaneFused(lane, prev, carry)
		if !ok {
			return false
		}
		carry = next
		prev = lane[LaneWidth-1]
	}
	if i < len(data) {
		var lane [LaneWidth]byte
		copy(lane[:], data[i:])
		next, ok := processLaneFused(&lane, prev, carry)
		if !ok {
			return false
		}
		carry = next
	}
	return carry == 0
}
