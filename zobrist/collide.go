package zobrist

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SurveyResult summarises a walk over the legal-move tree.
type SurveyResult struct {
	Depth      int
	Nodes      uint64 // positions visited, counting transpositions again
	Positions  int    // distinct positions
	Hashes     int    // distinct hashes over those positions
	Collisions []Collision
}

// Collision is a hash shared by more than one distinct position.
type Collision struct {
	Hash      uint64
	Positions []string
}

// Survey hashes every position reachable from b in at most depth plies and
// reports distinct positions that share a hash. Positions are compared on
// the first four FEN fields, so move clocks do not make them distinct.
func Survey(k *Keys, b dragontoothmg.Board, depth int) (SurveyResult, error) {
	if depth < 0 {
		return SurveyResult{}, errors.Errorf("survey depth must be >= 0, got %d", depth)
	}

	res := SurveyResult{Depth: depth}
	seen := make(map[string]uint64)

	var walk func(d int)
	walk = func(d int) {
		res.Nodes++
		pos := positionKey(b.ToFen())
		if _, ok := seen[pos]; !ok {
			seen[pos] = k.Hash(&b)
		}
		if d == 0 {
			return
		}
		for _, m := range b.GenerateLegalMoves() {
			unapply := b.Apply(m)
			walk(d - 1)
			unapply()
		}
	}
	walk(depth)

	byHash := make(map[uint64][]string, len(seen))
	for pos, h := range seen {
		byHash[h] = append(byHash[h], pos)
	}
	res.Positions = len(seen)
	res.Hashes = len(byHash)

	hashes := maps.Keys(byHash)
	slices.Sort(hashes)
	for _, h := range hashes {
		if positions := byHash[h]; len(positions) > 1 {
			slices.Sort(positions)
			res.Collisions = append(res.Collisions, Collision{Hash: h, Positions: positions})
		}
	}
	return res, nil
}

// positionKey strips the move clocks from a FEN.
func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
