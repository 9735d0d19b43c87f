package zobrist

import (
	"math/bits"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"
)

// ParseBoard validates fen and returns it as a dragontoothmg board.
// dragontoothmg.ParseFen does no checking and panics on malformed input,
// so the FEN goes through goosemg.ParseFEN first.
func ParseBoard(fen string) (dragontoothmg.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return dragontoothmg.Board{}, errors.Errorf("invalid FEN %q: want 6 fields, got %d", fen, len(fields))
	}
	fen = strings.Join(fields, " ")
	if _, err := goosemg.ParseFEN(fen); err != nil {
		return dragontoothmg.Board{}, errors.Wrapf(err, "parse FEN %q", fen)
	}
	// Move generation looks up both kings.
	if strings.Count(fields[0], "K") != 1 || strings.Count(fields[0], "k") != 1 {
		return dragontoothmg.Board{}, errors.Errorf("invalid FEN %q: want one king per side", fen)
	}
	return dragontoothmg.ParseFen(fen), nil
}

// Hash computes the full Zobrist hash of b: every occupied square, the
// castling rights, black to move and the en passant file, if any.
func (k *Keys) Hash(b *dragontoothmg.Board) uint64 {
	var key uint64

	// Pieces
	key ^= k.sideHash(White, &b.White)
	key ^= k.sideHash(Black, &b.Black)

	// Side to move (only XOR if Black to move)
	if !b.Wtomove {
		key ^= k.BlackToMove
	}

	// Castling and en passant are not exported by the board, read them back
	// from its FEN. ToFen always writes all six fields.
	fields := strings.Fields(b.ToFen())
	key ^= k.Castling[CastlingMask(fields[2])]
	if f := EnPassantFile(fields[3]); f >= 0 {
		key ^= k.EnPassant[f]
	}

	return key
}

func (k *Keys) sideHash(player int, bb *dragontoothmg.Bitboards) uint64 {
	pieces := [PieceTypes]uint64{bb.Pawns, bb.Knights, bb.Bishops, bb.Rooks, bb.Queens, bb.Kings}
	var key uint64
	for pt, occ := range pieces {
		for occ != 0 {
			sq := bits.TrailingZeros64(occ)
			occ &= occ - 1
			key ^= k.PieceSquareKey(player, pt, sq%8, sq/8)
		}
	}
	return key
}

// CastlingMask converts a FEN castling field ("KQkq", "Kq", "-") into the
// index of Keys.Castling. Unknown characters are ignored.
func CastlingMask(field string) int {
	mask := 0
	for _, c := range field {
		switch c {
		case 'K':
			mask |= CastleWhiteKingside
		case 'Q':
			mask |= CastleWhiteQueenside
		case 'k':
			mask |= CastleBlackKingside
		case 'q':
			mask |= CastleBlackQueenside
		}
	}
	return mask
}

// EnPassantFile returns the file (0 = a) of a FEN en passant field, or -1
// when there is no target square.
func EnPassantFile(field string) int {
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' {
		return -1
	}
	return int(field[0] - 'a')
}
