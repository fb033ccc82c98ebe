//go:build amd64

package validator

// hasWideLanes gates the word kernel on SSE4.2-class cores or better. The
// kernel leans on fast unaligned 64-bit loads, and that generation is a
// reasonable proxy for them.
func hasWideLanes() bool {
	return hasAVX2() || hasSSE42()
}
