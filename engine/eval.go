// Package engine implements the search: classical evaluation, a
// transposition table, iterative-deepening alpha-beta with quiescence,
// and the UCI-facing engine façade.
package engine

import "github.com/corvidchess/corvid/board"

// Material values in centipawns.
const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
)

var pieceValue = [7]int{0, pawnValue, knightValue, bishopValue, rookValue, queenValue, 0}

const (
	doubledPawnPenalty  = -15
	isolatedPawnPenalty = -20
	passedPawnBase      = 20
	passedPawnPerRank   = 10
	bishopPairBonus     = 30
	rookOpenFileBonus   = 20
	rookSemiOpenBonus   = 10
	kingShieldBonus     = 5
	mobilityBonus       = 2
)

// phaseValue weights each piece's contribution to the 0..totalPhase game
// phase counter, tapering between the midgame and endgame piece-square
// tables. The weighting (knight/bishop=1, rook=2, queen=4) and the
// totalPhase=24 normalization follow the same tapering idiom as the
// teacher's own classical evaluator (pkg/eval/counter/evaluation.go's
// totalPhase=24), though none of its tuned weights are reused.
var phaseValue = [7]int{0, 0, 1, 1, 2, 4, 0}

const totalPhase = 24

// Evaluate scores the position in centipawns from the perspective of the
// side to move: positive means the side to move is better.
func Evaluate(b *board.Board) int {
	mg, eg, phase := evalSide(b, board.White)
	mgB, egB, phaseB := evalSide(b, board.Black)
	mg -= mgB
	eg -= egB
	phase += phaseB
	if phase > totalPhase {
		phase = totalPhase
	}
	score := (mg*phase + eg*(totalPhase-phase)) / totalPhase
	if b.SideToMove == board.Black {
		return -score
	}
	return score
}

func evalSide(b *board.Board, us board.Color) (mg, eg, phase int) {
	occupied := b.Occupied()
	isEndgame := isEndgamePhase(b)

	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := b.PiecesOf(us, pt)
		phase += board.PopCount(bb) * phaseValue[pt]
		for pieces := bb; pieces != 0; {
			sq := board.PopFirst(&pieces)
			mg += pieceValue[pt] + pstValue(pstMid, pt, us, sq)
			eg += pieceValue[pt] + pstValue(pstEnd, pt, us, sq)

			switch pt {
			case board.Knight, board.Bishop, board.Rook, board.Queen:
				mobility := mobilityBonus * board.PopCount(board.AttacksByType(pt, sq, occupied)&^b.ByColor[us])
				mg += mobility
				eg += mobility
			}
		}
	}

	pawnTerm := evalPawnStructure(b, us)
	mg += pawnTerm
	eg += pawnTerm

	if board.PopCount(b.PiecesOf(us, board.Bishop)) >= 2 {
		mg += bishopPairBonus
		eg += bishopPairBonus
	}

	mg += evalRookFiles(b, us)
	eg += evalRookFiles(b, us)

	if !isEndgame {
		mg += evalKingShield(b, us)
	}

	return mg, eg, phase
}

// isEndgamePhase flags positions where a wide-open king carries no safety
// penalty: no queens on the board, or fewer than 5 minor/major pieces left.
func isEndgamePhase(b *board.Board) bool {
	if b.PiecesOf(board.White, board.Queen)|b.PiecesOf(board.Black, board.Queen) != 0 {
		nonPawnKing := 0
		for _, pt := range [...]board.PieceType{board.Knight, board.Bishop, board.Rook, board.Queen} {
			nonPawnKing += board.PopCount(b.PiecesOf(board.White, pt)) + board.PopCount(b.PiecesOf(board.Black, pt))
		}
		return nonPawnKing < 5
	}
	return true
}

func evalPawnStructure(b *board.Board, us board.Color) int {
	pawns := b.PiecesOf(us, board.Pawn)
	enemyPawns := b.PiecesOf(us.Opposite(), board.Pawn)
	score := 0

	for file := 0; file < 8; file++ {
		onFile := board.PopCount(pawns & board.FileBB[file])
		if onFile > 1 {
			score += doubledPawnPenalty * onFile
		}
		if onFile > 0 && pawns&board.AdjacentFilesBB[file] == 0 {
			score += isolatedPawnPenalty * onFile
		}
	}

	for bb := pawns; bb != 0; {
		sq := board.PopFirst(&bb)
		if isPassed(sq, us, enemyPawns) {
			rank := sq.Rank()
			if us == board.Black {
				rank = 7 - rank
			}
			score += passedPawnBase + passedPawnPerRank*rank
		}
	}
	return score
}

// isPassed reports whether the pawn on sq has no enemy pawn on its own or
// an adjacent file on a rank ahead of it (from us's perspective).
func isPassed(sq board.Square, us board.Color, enemyPawns board.Bitboard) bool {
	file := sq.File()
	front := enemyPawns & (board.FileBB[file] | board.AdjacentFilesBB[file])
	if front == 0 {
		return true
	}
	for bb := front; bb != 0; {
		other := board.PopFirst(&bb)
		if us == board.White && other.Rank() > sq.Rank() {
			return false
		}
		if us == board.Black && other.Rank() < sq.Rank() {
			return false
		}
	}
	return true
}

func evalRookFiles(b *board.Board, us board.Color) int {
	ownPawns := b.PiecesOf(us, board.Pawn)
	enemyPawns := b.PiecesOf(us.Opposite(), board.Pawn)
	score := 0
	for bb := b.PiecesOf(us, board.Rook); bb != 0; {
		sq := board.PopFirst(&bb)
		file := sq.File()
		if ownPawns&board.FileBB[file] != 0 {
			continue
		}
		if enemyPawns&board.FileBB[file] == 0 {
			score += rookOpenFileBonus
		} else {
			score += rookSemiOpenBonus
		}
	}
	return score
}

func evalKingShield(b *board.Board, us board.Color) int {
	kingSq := b.KingSquare(us)
	ownPawns := b.PiecesOf(us, board.Pawn)
	shieldRank := kingSq.Rank() + 1
	if us == board.Black {
		shieldRank = kingSq.Rank() - 1
	}
	if shieldRank < 0 || shieldRank > 7 {
		return 0
	}
	shield := 0
	for _, f := range [...]int{kingSq.File() - 1, kingSq.File(), kingSq.File() + 1} {
		if f < 0 || f > 7 {
			continue
		}
		if ownPawns&board.RankBB[shieldRank]&board.FileBB[f] != 0 {
			shield++
		}
	}
	return shield * kingShieldBonus
}
