package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	simdutf8 "github.com/biggeezerdevelopment/simdutf8-go"
)

// CLI defines the utf8check command-line interface.
//
// We deliberately keep it minimal:
//   - paths: files to check, stdin when omitted
//   - quiet: suppress per-file verdicts, leaving only the exit status
//   - keep-going: report every file instead of stopping at the first
//     invalid one
//
// Files ending in ".gz" or ".zst" are decompressed before checking unless
// --no-decompress is given.
type CLI struct {
	Paths        []string `arg:"" optional:"" help:"Files to check (stdin when omitted)"`
	Quiet        bool     `short:"q" help:"No per-file output; exit status only"`
	KeepGoing    bool     `short:"k" help:"Check all inputs even after an invalid one"`
	NoDecompress bool     `help:"Treat .gz/.zst files as raw bytes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8check"),
		kong.Description("Check that inputs are well-formed UTF-8."),
	)

	bad, err := run(&cli)
	ctx.FatalIfErrorf(err)
	if bad {
		os.Exit(1)
	}
}

// run checks every input and reports whether any was invalid. Read errors
// are returned immediately; invalid content is a verdict, not an error.
func run(cli *CLI) (bad bool, err error) {
	paths := cli.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		data, err := readInput(path, !cli.NoDecompress)
		if err != nil {
			return bad, fmt.Errorf("read %q: %w", path, err)
		}

		ok := simdutf8.Valid(data)
		if !ok {
			bad = true
		}
		if !cli.Quiet {
			verdict := "valid utf-8"
			if !ok {
				verdict = "INVALID utf-8"
			}
			fmt.Printf("%s: %s\n", displayName(path), verdict)
		}
		if !ok && !cli.KeepGoing {
			break
		}
	}
	return bad, nil
}

func displayName(path string) string {
	if path == "-" {
		return "(stdin)"
	}
	return path
}
