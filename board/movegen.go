package board

// GenMode selects which subset of pseudo-legal moves GenerateMoves emits.
type GenMode int

const (
	AllMoves GenMode = iota
	CapturesOnly
)

// GenerateMoves appends the side-to-move's pseudo-legal moves (no
// legality/king-safety filtering) to moves and returns the extended slice.
func (b *Board) GenerateMoves(moves []Move, mode GenMode) []Move {
	us := b.SideToMove
	them := us.Opposite()
	own := b.ByColor[us]
	enemy := b.ByColor[them]
	occupied := own | enemy

	moves = b.generatePawnMoves(moves, us, own, enemy, occupied, mode)

	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		bb := b.PiecesOf(us, pt)
		for bb != 0 {
			from := PopFirst(&bb)
			targets := AttacksByType(pt, from, occupied) &^ own
			if mode == CapturesOnly {
				targets &= enemy
			}
			moves = appendTargets(moves, from, targets, enemy)
		}
	}

	kingSq := b.KingSquare(us)
	kingTargets := KingAttacks[kingSq] &^ own
	if mode == CapturesOnly {
		kingTargets &= enemy
	}
	moves = appendTargets(moves, kingSq, kingTargets, enemy)

	if mode == AllMoves {
		moves = b.generateCastling(moves, us, occupied)
	}

	return moves
}

func appendTargets(moves []Move, from Square, targets, enemy Bitboard) []Move {
	for targets != 0 {
		to := PopFirst(&targets)
		flag := FlagNormal
		if enemy&SquareBB[to] != 0 {
			flag = FlagCapture
		}
		moves = append(moves, MakeMove(from, to, flag))
	}
	return moves
}

var promoFlags = [4]MoveFlag{FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen}
var promoCaptureFlags = [4]MoveFlag{FlagPromoCaptureKnight, FlagPromoCaptureBishop, FlagPromoCaptureRook, FlagPromoCaptureQueen}

// pawnOriginPush undoes a straight forward shift of `ranks` ranks.
func pawnOriginPush(to Square, us Color, ranks int) Square {
	rank := to.Rank()
	if us == White {
		rank -= ranks
	} else {
		rank += ranks
	}
	return MakeSquare(to.File(), rank)
}

// pawnOriginLeft/Right undo forwardLeft/forwardRight. Both shift the file
// by one regardless of color (only the rank direction mirrors with color),
// so the file delta here does not depend on us.
func pawnOriginLeft(to Square, us Color) Square {
	rank := to.Rank()
	if us == White {
		rank--
	} else {
		rank++
	}
	return MakeSquare(to.File()+1, rank)
}

func pawnOriginRight(to Square, us Color) Square {
	rank := to.Rank()
	if us == White {
		rank--
	} else {
		rank++
	}
	return MakeSquare(to.File()-1, rank)
}

func (b *Board) generatePawnMoves(moves []Move, us Color, own, enemy, occupied Bitboard, mode GenMode) []Move {
	pawns := b.PiecesOf(us, Pawn)
	seventh := Rank7BBFor(us)
	notSeventh := pawns &^ seventh
	onSeventh := pawns & seventh

	if mode == AllMoves {
		push1 := forward(notSeventh, us) &^ occupied
		for bb := push1; bb != 0; {
			to := PopFirst(&bb)
			moves = append(moves, MakeMove(pawnOriginPush(to, us, 1), to, FlagNormal))
		}

		push2 := forward(push1&Rank3BBFor(us), us) &^ occupied
		for bb := push2; bb != 0; {
			to := PopFirst(&bb)
			moves = append(moves, MakeMove(pawnOriginPush(to, us, 2), to, FlagDoublePush))
		}
	}

	capLeft := forwardLeft(notSeventh, us) & enemy
	for bb := capLeft; bb != 0; {
		to := PopFirst(&bb)
		moves = append(moves, MakeMove(pawnOriginLeft(to, us), to, FlagCapture))
	}
	capRight := forwardRight(notSeventh, us) & enemy
	for bb := capRight; bb != 0; {
		to := PopFirst(&bb)
		moves = append(moves, MakeMove(pawnOriginRight(to, us), to, FlagCapture))
	}

	if onSeventh != 0 {
		push1 := forward(onSeventh, us) &^ occupied
		pCapLeft := forwardLeft(onSeventh, us) & enemy
		pCapRight := forwardRight(onSeventh, us) & enemy

		if mode == AllMoves {
			for bb := push1; bb != 0; {
				to := PopFirst(&bb)
				from := pawnOriginPush(to, us, 1)
				for _, f := range promoFlags {
					moves = append(moves, MakeMove(from, to, f))
				}
			}
		} else {
			// Captures-only mode still resolves promotion tactics: emit
			// the queen promotion for the non-capturing push.
			for bb := push1; bb != 0; {
				to := PopFirst(&bb)
				moves = append(moves, MakeMove(pawnOriginPush(to, us, 1), to, FlagPromoQueen))
			}
		}
		for bb := pCapLeft; bb != 0; {
			to := PopFirst(&bb)
			from := pawnOriginLeft(to, us)
			for _, f := range promoCaptureFlags {
				moves = append(moves, MakeMove(from, to, f))
			}
		}
		for bb := pCapRight; bb != 0; {
			to := PopFirst(&bb)
			from := pawnOriginRight(to, us)
			for _, f := range promoCaptureFlags {
				moves = append(moves, MakeMove(from, to, f))
			}
		}
	}

	epSq := b.Active.EPSquare
	if epSq != SquareNone {
		attackers := PawnAttacks[us.Opposite()][epSq] & b.PiecesOf(us, Pawn)
		for attackers != 0 {
			from := PopFirst(&attackers)
			moves = append(moves, MakeMove(from, epSq, FlagEPCapture))
		}
	}

	return moves
}

// Rank7BBFor/Rank3BBFor return the rank bitboard for "about to promote" and
// "double-push landing" ranks from the mover's perspective.
func Rank7BBFor(c Color) Bitboard {
	if c == White {
		return RankBB[Rank7]
	}
	return RankBB[Rank2]
}

func Rank3BBFor(c Color) Bitboard {
	if c == White {
		return RankBB[Rank3]
	}
	return RankBB[Rank6]
}

func (b *Board) generateCastling(moves []Move, us Color, occupied Bitboard) []Move {
	them := us.Opposite()
	cr := b.Active.CastlingRights

	if us == White {
		if cr&WhiteKingSide != 0 &&
			occupied&(F1.Bitboard()|G1.Bitboard()) == 0 &&
			!b.IsAttacked(E1, them) && !b.IsAttacked(F1, them) && !b.IsAttacked(G1, them) {
			moves = append(moves, MakeMove(E1, G1, FlagKingCastle))
		}
		if cr&WhiteQueenSide != 0 &&
			occupied&(B1.Bitboard()|C1.Bitboard()|D1.Bitboard()) == 0 &&
			!b.IsAttacked(E1, them) && !b.IsAttacked(D1, them) && !b.IsAttacked(C1, them) {
			moves = append(moves, MakeMove(E1, C1, FlagQueenCastle))
		}
	} else {
		if cr&BlackKingSide != 0 &&
			occupied&(F8.Bitboard()|G8.Bitboard()) == 0 &&
			!b.IsAttacked(E8, them) && !b.IsAttacked(F8, them) && !b.IsAttacked(G8, them) {
			moves = append(moves, MakeMove(E8, G8, FlagKingCastle))
		}
		if cr&BlackQueenSide != 0 &&
			occupied&(B8.Bitboard()|C8.Bitboard()|D8.Bitboard()) == 0 &&
			!b.IsAttacked(E8, them) && !b.IsAttacked(D8, them) && !b.IsAttacked(C8, them) {
			moves = append(moves, MakeMove(E8, C8, FlagQueenCastle))
		}
	}
	return moves
}

// GenerateLegalMoves filters GenerateMoves(AllMoves) by trial make/unmake,
// keeping only moves that do not leave the mover's own king attacked.
func (b *Board) GenerateLegalMoves(buf []Move) []Move {
	pseudo := b.GenerateMoves(buf[:0], AllMoves)
	legal := buf[:0]
	var st StateInfo
	mover := b.SideToMove
	for _, m := range pseudo {
		prev := b.Active
		b.MakeMove(m, &st)
		if !b.IsInCheck(mover) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m, prev)
	}
	return legal
}

// GenerateLegalCaptures is the CAPTURES_ONLY analogue of
// GenerateLegalMoves, used by quiescence.
func (b *Board) GenerateLegalCaptures(buf []Move) []Move {
	pseudo := b.GenerateMoves(buf[:0], CapturesOnly)
	legal := buf[:0]
	var st StateInfo
	mover := b.SideToMove
	for _, m := range pseudo {
		prev := b.Active
		b.MakeMove(m, &st)
		if !b.IsInCheck(mover) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m, prev)
	}
	return legal
}

// Perft counts leaf positions in the legal-move tree to exact depth; used
// to validate move generation against the vectors in spec §8.
func (b *Board) Perft(depth int) int64 {
	if depth == 0 {
		return 1
	}
	var buf [MaxMoves]Move
	moves := b.GenerateLegalMoves(buf[:0])
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		var st StateInfo
		prev := b.Active
		b.MakeMove(m, &st)
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(m, prev)
	}
	return nodes
}

// MaxMoves bounds the number of pseudo-legal moves in any reachable chess
// position with a comfortable margin.
const MaxMoves = 256
