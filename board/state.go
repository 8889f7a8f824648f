package board

// Castling right bits, one per castling possibility.
const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

type CastlingRights uint8

const AllCastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide

// castleRightsMask zeroes the castling-rights bit(s) associated with a
// square the instant a king or rook is moved away from or captured on it.
// Only a1, e1, h1, a8, e8, h8 have a nonzero entry.
var castleRightsMask [64]CastlingRights

func init() {
	castleRightsMask[A1] = WhiteQueenSide
	castleRightsMask[E1] = WhiteKingSide | WhiteQueenSide
	castleRightsMask[H1] = WhiteKingSide
	castleRightsMask[A8] = BlackQueenSide
	castleRightsMask[E8] = BlackKingSide | BlackQueenSide
	castleRightsMask[H8] = BlackKingSide
}

// StateInfo is a per-ply snapshot of the irreversible parts of a position,
// pushed onto a stack immediately before MakeMove and consumed by the
// matching UnmakeMove.
type StateInfo struct {
	CastlingRights CastlingRights
	EPSquare       Square
	HalfmoveClock  int
	Captured       Piece
	Hash           uint64
	PliesFromNull  int
}
