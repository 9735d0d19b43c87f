package main

import (
	"bytes"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/Mattriplex/otus/zobrist"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "pub const CASTLING_KEYS: [u64; 16] = [") {
		t.Fatalf("unexpected start of output: %q", out[:50])
	}
	if !strings.HasSuffix(out, "];\n") {
		t.Fatalf("output does not end with the piece-square block")
	}
	lits := regexp.MustCompile(`0x[0-9A-F]{16}\b`).FindAllString(out, -1)
	if len(lits) != zobrist.KeyCount {
		t.Fatalf("literals: got %d want %d", len(lits), zobrist.KeyCount)
	}
	for _, name := range []string{"CASTLING_KEYS", "EN_PASSANT_KEYS", "BLACK_TO_MOVE", "PIECE_SQUARE_KEYS"} {
		if strings.Count(out, "pub const "+name+":") != 1 {
			t.Errorf("expected exactly one %s declaration", name)
		}
	}
}

func BenchmarkMain(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := run(&buf, zobrist.GlobalSource()); err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}
