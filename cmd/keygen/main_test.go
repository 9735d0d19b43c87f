package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default", nil, 0},
		{"go", []string{"-lang", "go", "-pkg", "keys"}, 0},
		{"unknown flag", []string{"-nope"}, 2},
		{"unknown language", []string{"-lang", "python"}, 2},
		{"bad package", []string{"-lang", "go", "-pkg", "not a name"}, 2},
		{"unwritable directory", []string{"-out", filepath.Join(blocker, "sub", "keys.rs")}, 1},
		{"output is a directory", []string{"-out", dir}, 1},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if got := run(tt.args, &stdout, &stderr); got != tt.want {
			t.Errorf("%s: exit %d want %d (stderr %q)", tt.name, got, tt.want, stderr.String())
		}
	}
}

func TestRunSeededOutputFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "keys.rs")
	b := filepath.Join(dir, "b", "keys.rs")
	for _, path := range []string{a, b} {
		var stdout, stderr bytes.Buffer
		if got := run([]string{"-seed", "otus", "-out", path}, &stdout, &stderr); got != 0 {
			t.Fatalf("run -out %s: exit %d (stderr %q)", path, got, stderr.String())
		}
		if stdout.Len() != 0 {
			t.Fatalf("run -out %s wrote to stdout", path)
		}
	}
	da, err := os.ReadFile(a)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	db, err := os.ReadFile(b)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(da, db) {
		t.Fatalf("equal seeds wrote different files")
	}
	if !strings.HasPrefix(string(da), "pub const CASTLING_KEYS: [u64; 16] = [\n") {
		t.Fatalf("unexpected file start: %q", da[:40])
	}
}
