package zobrist

// Board and key table dimensions.
const (
	Files          = 8
	Ranks          = 8
	PieceTypes     = 6
	Players        = 2
	CastlingStates = 16 // every KQkq rights mask

	PieceSquareCount = Players * PieceTypes * Files * Ranks
	KeyCount         = CastlingStates + Files + 1 + PieceSquareCount
)

// Player indices into Keys.PieceSquare.
const (
	White = 0
	Black = 1
)

// Piece indices into Keys.PieceSquare.
const (
	Pawn = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Castling rights bits. The castling key of a position is Castling[mask].
const (
	CastleWhiteKingside  = 0b1000
	CastleWhiteQueenside = 0b0100
	CastleBlackKingside  = 0b0010
	CastleBlackQueenside = 0b0001
)

// Keys is one generated Zobrist key table.
type Keys struct {
	Castling    [CastlingStates]uint64
	EnPassant   [Files]uint64 // by file of the en passant target
	BlackToMove uint64        // XOR when black to move
	PieceSquare [Players][PieceTypes][Files][Ranks]uint64
}

// Generate draws a complete key table from src. Tables are drawn in the
// order they are emitted: castling, en passant, side to move, pieces.
func Generate(src Source) *Keys {
	return &Keys{
		Castling:    GenerateCastlingKeys(src),
		EnPassant:   GenerateEnPassantKeys(src),
		BlackToMove: GenerateSideToMoveKey(src),
		PieceSquare: GeneratePieceSquareKeys(src),
	}
}

// GenerateCastlingKeys draws one key per castling rights mask.
func GenerateCastlingKeys(src Source) [CastlingStates]uint64 {
	var keys [CastlingStates]uint64
	for cr := range keys {
		keys[cr] = src.Uint64()
	}
	return keys
}

// GenerateEnPassantKeys draws one key per file.
func GenerateEnPassantKeys(src Source) [Files]uint64 {
	var keys [Files]uint64
	for f := range keys {
		keys[f] = src.Uint64()
	}
	return keys
}

func GenerateSideToMoveKey(src Source) uint64 {
	return src.Uint64()
}

// GeneratePieceSquareKeys fills the [player][piece][file][rank] table,
// rank varying fastest.
func GeneratePieceSquareKeys(src Source) [Players][PieceTypes][Files][Ranks]uint64 {
	var keys [Players][PieceTypes][Files][Ranks]uint64
	for p := 0; p < Players; p++ {
		for pt := 0; pt < PieceTypes; pt++ {
			for f := 0; f < Files; f++ {
				for r := 0; r < Ranks; r++ {
					keys[p][pt][f][r] = src.Uint64()
				}
			}
		}
	}
	return keys
}

// PieceSquareKey returns the key for a piece of the given player on (file, rank).
func (k *Keys) PieceSquareKey(player, piece, file, rank int) uint64 {
	return k.PieceSquare[player][piece][file][rank]
}
