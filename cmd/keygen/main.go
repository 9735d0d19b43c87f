package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mattriplex/otus/zobrist"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the exit status: 0 on success, 2 for usage errors, 1 when
// the table cannot be written.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", "rust", "target language: rust or go")
	seed := fs.String("seed", "", "optional passphrase for a reproducible table (empty = random)")
	outPath := fs.String("out", "", "output path (empty = stdout)")
	pkg := fs.String("pkg", "zobrist", "package name for -lang go")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	r, err := zobrist.RendererFor(*lang, *pkg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		fs.PrintDefaults()
		return 2
	}

	keys := zobrist.Generate(zobrist.SourceFor(*seed))

	if *outPath == "" {
		if err := r.Render(stdout, keys); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	var out bytes.Buffer
	if err := r.Render(&out, keys); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(stderr, "Error creating output directory: %v\n", err)
		return 1
	}
	if err := os.WriteFile(*outPath, out.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "Error writing %s: %v\n", *outPath, err)
		return 1
	}
	return 0
}
