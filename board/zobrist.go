package board

import "math/rand"

// Zobrist key tables, seeded from one fixed PRNG sequence so hashes are
// reproducible across runs and machines.
var (
	zobristPiece    [15][64]uint64 // indexed by Piece (0..14), square
	zobristCastling [16]uint64     // indexed by the 4-bit castling-rights vector
	zobristEPFile   [8]uint64
	zobristSide     uint64
)

func init() {
	r := rand.New(rand.NewSource(0))
	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = r.Uint64()
		}
	}
	for i := 0; i < 16; i++ {
		zobristCastling[i] = r.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEPFile[f] = r.Uint64()
	}
	zobristSide = r.Uint64()
}

func pieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p][sq]
}
