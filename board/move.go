package board

// DecodeUCIMove parses a UCI move string ("e2e4", "e7e8q") against the
// current position, classifying it into the correct MoveFlag. The move is
// assumed pseudo-legal in this position; callers that need a legality
// guarantee should check the result against GenerateLegalMoves.
func (b *Board) DecodeUCIMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from := ParseSquare(s[0:2])
	to := ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveNone, false
	}

	if len(s) == 5 {
		var pt PieceType
		switch s[4] {
		case 'n':
			pt = Knight
		case 'b':
			pt = Bishop
		case 'r':
			pt = Rook
		case 'q':
			pt = Queen
		default:
			return MoveNone, false
		}
		flag := promoFlags[pt-Knight]
		if b.Mailbox[to] != NoPiece {
			flag = promoCaptureFlags[pt-Knight]
		}
		return MakeMove(from, to, flag), true
	}

	moving := b.Mailbox[from]
	if moving.Type() == King {
		delta := to.File() - from.File()
		if delta == 2 {
			return MakeMove(from, to, FlagKingCastle), true
		}
		if delta == -2 {
			return MakeMove(from, to, FlagQueenCastle), true
		}
	}

	if moving.Type() == Pawn {
		if to-from == 16 || from-to == 16 {
			return MakeMove(from, to, FlagDoublePush), true
		}
		if to == b.Active.EPSquare {
			return MakeMove(from, to, FlagEPCapture), true
		}
	}

	if b.Mailbox[to] != NoPiece {
		return MakeMove(from, to, FlagCapture), true
	}
	return MakeMove(from, to, FlagNormal), true
}

// sanPieceLetters maps a PieceType to its SAN letter; pawns have none.
var sanPieceLetters = [7]byte{0, 0, 'N', 'B', 'R', 'Q', 'K'}

// MoveToSAN renders mv in short algebraic notation. ml is the full set of
// legal moves in the position mv was generated from, used to disambiguate
// two pieces of the same type that can move to the same square. Grounded
// on the teacher's moveToSAN (common/move.go).
func MoveToSAN(b *Board, ml []Move, mv Move) string {
	switch mv.Flag() {
	case FlagKingCastle:
		return "O-O"
	case FlagQueenCastle:
		return "O-O-O"
	}

	pt := b.Mailbox[mv.From()].Type()

	var pieceLetter, from, capture, promo string
	if pt != Pawn {
		pieceLetter = string(sanPieceLetters[pt])
	}
	if mv.IsCapture() {
		capture = "x"
		if pt == Pawn {
			from = mv.From().String()[:1]
		}
	}
	if mv.IsPromotion() {
		promo = "=" + string(sanPieceLetters[mv.PromotionType()])
	}

	ambiguous, uniqueFile, uniqueRank := false, true, true
	for _, other := range ml {
		if other == mv || other.From() == mv.From() || other.To() != mv.To() {
			continue
		}
		if b.Mailbox[other.From()].Type() != pt {
			continue
		}
		ambiguous = true
		if other.From().File() == mv.From().File() {
			uniqueFile = false
		}
		if other.From().Rank() == mv.From().Rank() {
			uniqueRank = false
		}
	}
	if ambiguous && pt != Pawn {
		switch {
		case uniqueFile:
			from = mv.From().String()[:1]
		case uniqueRank:
			from = mv.From().String()[1:2]
		default:
			from = mv.From().String()
		}
	}

	return pieceLetter + from + capture + mv.To().String() + promo
}
