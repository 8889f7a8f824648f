package engine

import "github.com/corvidchess/corvid/board"

// searcher carries the per-search mutable state: grounded on the
// teacher's per-thread search context (pkg/engine/engine.go's thread
// struct), reduced to the single-threaded shape spec requires, and
// implementing spec §4.7's plain negamax alpha-beta rather than the
// teacher's null-move/LMR/PVS pruning suite.
type searcher struct {
	b        *board.Board
	tt       *TranspositionTable
	clock    *Clock
	nodes    uint64
	selDepth int
	pv       [maxPly][maxPly]board.Move
	pvLen    [maxPly]int
}

func newSearcher(b *board.Board, tt *TranspositionTable, clock *Clock) *searcher {
	return &searcher{b: b, tt: tt, clock: clock}
}

// rootSearch runs one full-width alpha-beta pass to depth and returns the
// score and best move found, both from the side-to-move's perspective.
func (s *searcher) rootSearch(depth int) (score int, best board.Move, aborted bool) {
	s.pvLen[0] = 0
	score = s.negamax(-ValueInfinity, ValueInfinity, depth, 0)
	if s.clock.Stopped() {
		return score, board.MoveNone, true
	}
	if s.pvLen[0] > 0 {
		best = s.pv[0][0]
	}
	return score, best, false
}

func (s *searcher) principalVariation() []board.Move {
	n := s.pvLen[0]
	out := make([]board.Move, n)
	copy(out, s.pv[0][:n])
	return out
}

// negamax implements spec §4.7's eight steps in order: TT probe, the
// depth<=0 quiescence redirect, move generation and terminal detection,
// the 50-move draw check, move ordering, the search loop with alpha-beta
// pruning, and a TT store on the way back up. This order matches the
// original engine's alpha_beta (original_source/src/search/search.cpp):
// the TT is probed before the quiescence redirect so a quiescence-bound
// node can still short-circuit on a sufficiently deep hit, and the
// halfmove-clock draw is checked only after moves are generated so a
// checkmate is never misreported as a draw.
func (s *searcher) negamax(alpha, beta, depth, height int) int {
	s.nodes++
	if height > s.selDepth {
		s.selDepth = height
	}
	s.pvLen[height] = height

	if s.clock.Poll() {
		return ValueDraw
	}

	key := s.b.Active.Hash
	ttMove := board.MoveNone
	if ttScore, ttDepth, bound, move, ok := s.tt.Probe(key); ok {
		ttMove = move
		if ttDepth >= depth {
			v := valueFromTT(ttScore, height)
			switch bound {
			case BoundExact:
				return v
			case BoundAlpha:
				if v <= alpha {
					return alpha
				}
			case BoundBeta:
				if v >= beta {
					return beta
				}
			}
		}
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta, height)
	}

	var buf [board.MaxMoves]board.Move
	moves := s.b.GenerateLegalMoves(buf[:0])
	if len(moves) == 0 {
		if s.b.IsCheck() {
			return matedIn(height)
		}
		return ValueDraw
	}

	if height > 0 && s.b.Active.HalfmoveClock >= 100 {
		return ValueDraw
	}

	orderMoves(s.b, moves, ttMove)

	origAlpha := alpha
	bestScore := -ValueInfinity
	bestMove := board.MoveNone

	for _, m := range moves {
		var st board.StateInfo
		prev := s.b.Active
		s.b.MakeMove(m, &st)
		child := -s.negamax(-beta, -alpha, depth-1, height+1)
		s.b.UnmakeMove(m, prev)

		if s.clock.Stopped() {
			return ValueDraw
		}

		if child > bestScore {
			bestScore = child
			bestMove = m
			s.updatePV(height, m)
			if child > alpha {
				alpha = child
				if alpha >= beta {
					break
				}
			}
		}
	}

	bound := BoundExact
	switch {
	case bestScore <= origAlpha:
		bound = BoundAlpha
	case bestScore >= beta:
		bound = BoundBeta
	}
	s.tt.Store(key, valueToTT(bestScore, height), depth, bound, bestMove)

	return bestScore
}

// quiescence resolves capture sequences beyond the main search horizon: a
// stand-pat cutoff followed by captures only, ordered by MVV-LVA.
func (s *searcher) quiescence(alpha, beta, height int) int {
	s.nodes++
	if height > s.selDepth {
		s.selDepth = height
	}
	s.pvLen[height] = height

	if s.clock.Poll() {
		return ValueDraw
	}

	standPat := Evaluate(s.b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if height >= maxPly-1 {
		return alpha
	}

	var buf [board.MaxMoves]board.Move
	moves := s.b.GenerateLegalCaptures(buf[:0])
	orderMoves(s.b, moves, board.MoveNone)

	for _, m := range moves {
		var st board.StateInfo
		prev := s.b.Active
		s.b.MakeMove(m, &st)
		child := -s.quiescence(-beta, -alpha, height+1)
		s.b.UnmakeMove(m, prev)

		if s.clock.Stopped() {
			return ValueDraw
		}

		if child >= beta {
			return beta
		}
		if child > alpha {
			alpha = child
			s.updatePV(height, m)
		}
	}
	return alpha
}

func (s *searcher) updatePV(height int, m board.Move) {
	s.pv[height][height] = m
	for next := height + 1; next < s.pvLen[height+1]; next++ {
		s.pv[height][next] = s.pv[height+1][next]
	}
	s.pvLen[height] = s.pvLen[height+1]
}

// orderMoves sorts moves in place: the transposition-table move first (if
// present), then by MVV-LVA (10*victim-attacker, spec §4.7 step 6) for
// captures and promotions, quiet moves last. Insertion sort, matching the
// small-N selection idiom the teacher uses for move ordering
// (pkg/engine/moveiterator.go's sortMoves).
func orderMoves(b *board.Board, moves []board.Move, ttMove board.Move) {
	var scores [board.MaxMoves]int
	for i, m := range moves {
		if m == ttMove {
			scores[i] = 1 << 30
		} else {
			scores[i] = moveScore(b, m)
		}
	}
	for i := 1; i < len(moves); i++ {
		m, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = m
		scores[j+1] = sc
	}
}

func moveScore(b *board.Board, m board.Move) int {
	if m.IsCapture() {
		victim := capturedType(b, m)
		attacker := b.PieceAt(m.From()).Type()
		score := 10*pieceValue[victim] - pieceValue[attacker]
		if m.IsPromotion() {
			score += pieceValue[m.PromotionType()]
		}
		return score
	}
	if m.IsPromotion() {
		return pieceValue[m.PromotionType()]
	}
	return 0
}

func capturedType(b *board.Board, m board.Move) board.PieceType {
	if m.Flag() == board.FlagEPCapture {
		return board.Pawn
	}
	return b.PieceAt(m.To()).Type()
}
