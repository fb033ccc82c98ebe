//go:build !amd64 && !arm64

package validator

// hasWideLanes returns false for architectures we have not profiled the
// word kernel on; the scalar validator handles everything there.
func hasWideLanes() bool {
	return false
}
