package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readInput loads one input in full. "-" means stdin. When decompress is
// set, ".gz" and ".zst" files are expanded so the verdict applies to the
// text inside, not the compressed frame.
func readInput(path string, decompress bool) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !decompress {
		return io.ReadAll(f)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)

	default:
		return io.ReadAll(f)
	}
}
