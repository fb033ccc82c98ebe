// Package simdutf8 validates UTF-8 with a lane-parallel kernel.
//
// Valid is a drop-in replacement for unicode/utf8.Valid: one call, one
// boolean, no reads outside the given slice. On 64-bit targets the input
// is scanned 32 bytes at a time; elsewhere, and for short inputs, a scalar
// reference validator produces the same verdicts.
package simdutf8

import (
	"github.com/biggeezerdevelopment/simdutf8-go/internal/validator"
)

// Valid reports whether data consists entirely of well-formed UTF-8 code
// point sequences. Empty input is valid.
func Valid(data []byte) bool {
	return validator.Validate(data)
}

// ValidString reports whether s consists entirely of well-formed UTF-8
// code point sequences, without copying the string.
func ValidString(s string) bool {
	return validator.ValidateString(s)
}

// Accelerated reports whether the wide lane kernel is in use on this CPU.
func Accelerated() bool {
	return validator.HasWideLanes()
}
