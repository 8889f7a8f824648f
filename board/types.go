// Package board implements the rules-exact board representation: a dual
// bitboard + mailbox position with incremental Zobrist hashing, reversible
// make/unmake, FEN I/O, and legal move generation.
package board

// Bitboard is a 64-bit set of squares; bit i set iff square i is occupied.
type Bitboard uint64

// Color identifies the side to move or the owner of a piece.
type Color int

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is the kind of piece, independent of color.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a Color and a PieceType as (color<<3)|type. White pieces are
// 1..6, black pieces are 9..14, NoPiece is 0.
type Piece int

const NoPiece Piece = 0

// MakePiece builds a Piece from a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 | int(pt))
}

// Color returns the owning color of a non-empty piece.
func (p Piece) Color() Color {
	return Color(int(p) >> 3)
}

// Type returns the piece type, or NoPieceType for an empty piece.
func (p Piece) Type() PieceType {
	return PieceType(int(p) & 7)
}

var pieceLetters = [2][7]byte{
	{0, 'P', 'N', 'B', 'R', 'Q', 'K'},
	{0, 'p', 'n', 'b', 'r', 'q', 'k'},
}

func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	return pieceLetters[p.Color()][p.Type()]
}

// Square is a board index 0..63: file + 8*rank, A1=0, H8=63.
type Square int

const SquareNone Square = -1

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	A1 = Square(iota)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func MakeSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

const fileNames = "abcdefgh"
const rankNames = "12345678"

func (s Square) String() string {
	if s == SquareNone {
		return "-"
	}
	return string(fileNames[s.File()]) + string(rankNames[s.Rank()])
}

// ParseSquare decodes algebraic notation ("e4") or "-" for SquareNone.
func ParseSquare(s string) Square {
	if s == "-" || len(s) != 2 {
		return SquareNone
	}
	file := indexByte(fileNames, s[0])
	rank := indexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// MoveFlag is the 4-bit tag describing what kind of move this is.
type MoveFlag int

const (
	FlagNormal MoveFlag = iota
	FlagDoublePush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEPCapture
	_ // 6: unused
	_ // 7: unused
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoCaptureKnight
	FlagPromoCaptureBishop
	FlagPromoCaptureRook
	FlagPromoCaptureQueen
)

// Move is a 16-bit packed move: from(6) | to(6)<<6 | flag(4)<<12, read from
// the least-significant bit. The zero value means "no move".
type Move uint16

const MoveNone Move = 0

func MakeMove(from, to Square, flag MoveFlag) Move {
	return Move(int(from) | int(to)<<6 | int(flag)<<12)
}

func (m Move) From() Square   { return Square(m & 0x3f) }
func (m Move) To() Square     { return Square((m >> 6) & 0x3f) }
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0xf) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoKnight
}

// IsCapture reports whether the move captures a piece (including en
// passant and promotion-with-capture).
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEPCapture || f >= FlagPromoCaptureKnight
}

// PromotionType returns the piece type promoted to; only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	switch int(m.Flag()) & 3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// String renders the move in UCI text form: from-square + to-square +
// optional promotion letter.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var promo string
	if m.IsPromotion() {
		promo = string("nbrq"[int(m.Flag())&3])
	}
	return m.From().String() + m.To().String() + promo
}
