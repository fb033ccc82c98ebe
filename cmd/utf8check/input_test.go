package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var payload = []byte("compressed héllo 世界 😀\n")

func writeGzip(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeZstd(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plain, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	gz := filepath.Join(dir, "data.gz")
	writeGzip(t, gz, payload)
	zst := filepath.Join(dir, "data.zst")
	writeZstd(t, zst, payload)

	tests := []struct {
		name       string
		path       string
		decompress bool
		want       []byte
	}{
		{"plain", plain, true, payload},
		{"gzip", gz, true, payload},
		{"zstd", zst, true, payload},
		{"plain no decompress", plain, false, payload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(tt.path, tt.decompress)
			if err != nil {
				t.Fatalf("readInput failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}

	// Without decompression the gzip frame comes back raw, which is not
	// the payload (and not valid UTF-8 either).
	raw, err := readInput(gz, false)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(raw, payload) {
		t.Fatal("expected raw gzip frame, got decompressed payload")
	}
}

func TestRun_Verdicts(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.txt")
	if err := os.WriteFile(valid, []byte("all good hére"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.bin")
	if err := os.WriteFile(invalid, []byte{0x61, 0xC3, 0x28}, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cli     CLI
		wantBad bool
	}{
		{"valid only", CLI{Paths: []string{valid}, Quiet: true}, false},
		{"invalid only", CLI{Paths: []string{invalid}, Quiet: true}, true},
		{"mixed keep going", CLI{Paths: []string{invalid, valid}, Quiet: true, KeepGoing: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad, err := run(&tt.cli)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if bad != tt.wantBad {
				t.Fatalf("bad = %v, want %v", bad, tt.wantBad)
			}
		})
	}

	if _, err := run(&CLI{Paths: []string{filepath.Join(dir, "missing")}, Quiet: true}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
