package zobrist

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/zeebo/blake3"
)

// Source supplies uniform 64-bit draws. *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded PCG or ChaCha8 generator.
type Source interface {
	Uint64() uint64
}

type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// GlobalSource returns the process-wide, randomly seeded generator.
// Every run draws a different table.
func GlobalSource() Source {
	return globalSource{}
}

// seedSource reads an endless BLAKE3 output stream keyed by a passphrase.
type seedSource struct {
	r   io.Reader
	buf [8]byte
}

// NewSeedSource returns a deterministic source: equal seeds give equal
// key tables. An empty seed is a valid (fixed) seed.
func NewSeedSource(seed string) Source {
	h := blake3.New()
	_, _ = h.Write([]byte(seed))
	return &seedSource{r: h.Digest()}
}

func (s *seedSource) Uint64() uint64 {
	// The digest is an unbounded XOF, reads never come up short.
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// SourceFor returns NewSeedSource(seed) for a non-empty seed and the
// global source otherwise. The cmd tools use it for their -seed flag.
func SourceFor(seed string) Source {
	if seed == "" {
		return GlobalSource()
	}
	return NewSeedSource(seed)
}
