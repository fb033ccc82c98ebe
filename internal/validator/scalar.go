package validator

// validateScalar is the byte-at-a-time reference validator. It accepts
// exactly the inputs the lane kernel accepts and serves short inputs and
// architectures where the word kernel does not pay off. The second-byte
// bounds per leader fold the overlong, surrogate and range rules into one
// comparison.
func validateScalar(data []byte) bool {
	for i := 0; i < len(data); {
		b := data[i]
		if b < 0x80 {
			i++
			continue
		}

		var size int
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case b >= 0xC2 && b <= 0xDF:
			size = 2
		case b == 0xE0:
			size, lo = 3, 0xA0
		case b >= 0xE1 && b <= 0xEC:
			size = 3
		case b == 0xED:
			size, hi = 3, 0x9F
		case b >= 0xEE && b <= 0xEF:
			size = 3
		case b == 0xF0:
			size, lo = 4, 0x90
		case b >= 0xF1 && b <= 0xF3:
			size = 4
		case b == 0xF4:
			size, hi = 4, 0x8F
		default:
			// Stray continuation byte, overlong C0/C1 leader, or
			// F5..FF.
			return false
		}

		if i+size > len(data) {
			return false
		}
		if c := data[i+1]; c < lo || c > hi {
			return false
		}
		for j := 2; j < size; j++ {
			if c := data[i+j]; c < 0x80 || c > 0xBF {
				return false
			}
		}
		i += size
	}
	return true
}
