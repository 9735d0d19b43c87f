package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Mattriplex/otus/zobrist"
	"github.com/Oliverans/GooseEngineMG/goosemg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the exit status: 0 for a clean table, 1 if a duplicate key or
// a hash collision was found, 2 for usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keycheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fen := fs.String("fen", goosemg.FENStartPos, "FEN string (defaults to initial position)")
	depth := fs.Int("depth", 4, "Survey depth in plies")
	seed := fs.String("seed", "", "optional passphrase for a reproducible table (empty = random)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *depth < 0 {
		fmt.Fprintln(stderr, "-depth must be >= 0")
		return 2
	}
	board, err := zobrist.ParseBoard(*fen)
	if err != nil {
		fmt.Fprintf(stderr, "ParseFEN error: %v\n", err)
		return 2
	}

	keys := zobrist.Generate(zobrist.SourceFor(*seed))
	dups := keys.Duplicates()

	fmt.Fprintf(stdout, "fingerprint: %016x\n", keys.Fingerprint())
	fmt.Fprintf(stdout, "keys: %d\n", zobrist.KeyCount)
	fmt.Fprintf(stdout, "duplicates: %d\n", len(dups))
	for _, d := range dups {
		fmt.Fprintf(stdout, "  duplicate key 0x%016X\n", d)
	}

	start := time.Now()
	res, err := zobrist.Survey(keys, board, *depth)
	if err != nil {
		fmt.Fprintf(stderr, "survey: %v\n", err)
		return 2
	}
	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "depth: %d\n", res.Depth)
	fmt.Fprintf(stdout, "nodes: %d\n", res.Nodes)
	fmt.Fprintf(stdout, "positions: %d\n", res.Positions)
	fmt.Fprintf(stdout, "hashes: %d\n", res.Hashes)
	fmt.Fprintf(stdout, "collisions: %d\n", len(res.Collisions))
	for _, c := range res.Collisions {
		fmt.Fprintf(stdout, "  0x%016X\n", c.Hash)
		for _, p := range c.Positions {
			fmt.Fprintf(stdout, "    %s\n", p)
		}
	}
	fmt.Fprintf(stdout, "time: %s\n", elapsed)

	if len(dups) > 0 || len(res.Collisions) > 0 {
		return 1
	}
	return 0
}
