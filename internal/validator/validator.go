// Package validator decides whether a byte buffer is well-formed UTF-8.
//
// The wide kernel scans the input in 32-byte lanes, comparing a mask of
// actual continuation bytes against the mask of required ones and
// classifying byte pairs through nibble lookup tables, with cross-lane
// state carried between steps. A scalar reference validator backs short
// inputs and narrow targets; both paths return identical verdicts.
package validator

import "unsafe"

// Validate reports whether data is well-formed UTF-8. Empty input is
// valid. The verdict is the whole contract: no error position, no cause.
func Validate(data []byte) bool {
	if len(data) < LaneWidth || !hasWideLanes() {
		return validateScalar(data)
	}
	return validateLanes(data)
}

// ValidateString is Validate for a string without copying it out.
func ValidateString(s string) bool {
	if len(s) == 0 {
		return true
	}
	return Validate(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// ValidateFused forces the fused-add lane variant regardless of input size
// (exported for benchmarks and equivalence tests).
func ValidateFused(data []byte) bool {
	return validateLanesFused(data)
}

// ValidateScalar forces the scalar reference path (exported for benchmarks
// and cross-testing).
func ValidateScalar(data []byte) bool {
	return validateScalar(data)
}

// HasWideLanes reports whether the 32-byte lane kernel is in use on this
// CPU.
func HasWideLanes() bool {
	return hasWideLanes()
}
