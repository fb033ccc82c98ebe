//go:build arm64

package validator

// hasWideLanes returns true on arm64: every ARMv8 core handles the
// kernel's unaligned word loads natively.
func hasWideLanes() bool {
	return true
}
