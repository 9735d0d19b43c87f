package zobrist

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// Values returns every key in emission order.
func (k *Keys) Values() []uint64 {
	vals := make([]uint64, 0, KeyCount)
	vals = append(vals, k.Castling[:]...)
	vals = append(vals, k.EnPassant[:]...)
	vals = append(vals, k.BlackToMove)
	for p := range k.PieceSquare {
		for pt := range k.PieceSquare[p] {
			for f := range k.PieceSquare[p][pt] {
				vals = append(vals, k.PieceSquare[p][pt][f][:]...)
			}
		}
	}
	return vals
}

// Duplicates returns, sorted, each value that occurs more than once in the
// table. A healthy table has none.
func (k *Keys) Duplicates() []uint64 {
	vals := k.Values()
	slices.Sort(vals)
	var dups []uint64
	for i := 1; i < len(vals); i++ {
		if vals[i] == vals[i-1] && (len(dups) == 0 || dups[len(dups)-1] != vals[i]) {
			dups = append(dups, vals[i])
		}
	}
	return dups
}

// Fingerprint is the xxh3 hash of the little-endian key values in emission
// order. Two runs print the same fingerprint only if they emit the same table.
func (k *Keys) Fingerprint() uint64 {
	buf := make([]byte, 0, KeyCount*8)
	for _, v := range k.Values() {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return xxh3.Hash(buf)
}
