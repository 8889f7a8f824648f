package engine

import (
	"time"

	"github.com/corvidchess/corvid/board"
)

// Limits bounds a single search, grounded on the teacher's LimitsType
// (pkg/uci/protocol.go's parseLimits) but trimmed to the single-threaded,
// no-pondering subset spec requires.
type Limits struct {
	Depth      int // zero means unlimited
	MoveTime   time.Duration
	WTime      time.Duration
	BTime      time.Duration
	WInc       time.Duration
	BInc       time.Duration
	MovesToGo  int
	Infinite   bool
}

// SearchInfo reports one iteration of iterative deepening to the caller.
type SearchInfo struct {
	Depth    int
	SelDepth int
	Score    int
	Mate     int // nonzero: mate in Mate full moves (sign gives the side favored)
	Nodes    uint64
	Time     time.Duration
	PV       []board.Move
}

// InfoFunc is called once per completed iterative-deepening iteration.
type InfoFunc func(SearchInfo)

const (
	defaultMovesToGo = 40
	moveOverhead     = 300 * time.Millisecond
	minHashMB        = 1
	maxHashMB        = 1024
	defaultHashMB    = 64
)

// Engine is the UCI-facing façade: new_game/set_position/apply_move/
// think/stop_thinking, grounded on pkg/engine/engine.go's Engine struct
// but reduced to Threads=1 (Lazy-SMP is an explicit spec Non-goal).
type Engine struct {
	HashMB int

	b     *board.Board
	tt    *TranspositionTable
	clock *Clock
}

// NewEngine returns an engine at the standard starting position with a
// default-sized transposition table.
func NewEngine() *Engine {
	e := &Engine{HashMB: defaultHashMB, b: board.NewBoard()}
	e.tt = NewTranspositionTable(e.HashMB)
	return e
}

// SetHash resizes the transposition table, clamped to spec's 1-1024MiB
// range, and clears it.
func (e *Engine) SetHash(megabytes int) {
	if megabytes < minHashMB {
		megabytes = minHashMB
	}
	if megabytes > maxHashMB {
		megabytes = maxHashMB
	}
	e.HashMB = megabytes
	e.tt = NewTranspositionTable(megabytes)
}

// NewGame clears the transposition table and any other across-game state.
func (e *Engine) NewGame() {
	e.tt.Clear()
}

// SetStartPos resets the board to the initial position.
func (e *Engine) SetStartPos() {
	e.b.SetStartPos()
}

// SetPosition parses fen and adopts it as the current position. On
// failure the engine's position is left unchanged.
func (e *Engine) SetPosition(fen string) error {
	return e.b.SetFEN(fen)
}

// ApplyMove plays m (assumed legal in the current position) and pushes a
// fresh history snapshot so the move can later be undone by the caller's
// own bookkeeping if needed.
func (e *Engine) ApplyMove(m board.Move) {
	st := e.b.PushHistory()
	e.b.MakeMove(m, st)
}

// ApplyUCIMove decodes and plays a UCI move string against the current
// position.
func (e *Engine) ApplyUCIMove(s string) bool {
	m, ok := e.b.DecodeUCIMove(s)
	if !ok {
		return false
	}
	e.ApplyMove(m)
	return true
}

// LegalMoves returns the legal moves in the current position.
func (e *Engine) LegalMoves() []board.Move {
	var buf [board.MaxMoves]board.Move
	moves := e.b.GenerateLegalMoves(buf[:0])
	out := make([]board.Move, len(moves))
	copy(out, moves)
	return out
}

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func (e *Engine) IsCheckmate() bool {
	var buf [board.MaxMoves]board.Move
	return len(e.b.GenerateLegalMoves(buf[:0])) == 0 && e.b.IsCheck()
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (e *Engine) IsStalemate() bool {
	var buf [board.MaxMoves]board.Move
	return len(e.b.GenerateLegalMoves(buf[:0])) == 0 && !e.b.IsCheck()
}

// IsDraw reports the 50-move rule; repetition is explicitly out of scope.
func (e *Engine) IsDraw() bool {
	return e.b.Active.HalfmoveClock >= 100
}

// IsGameOver reports checkmate, stalemate, or the 50-move rule.
func (e *Engine) IsGameOver() bool {
	return e.IsDraw() || e.IsCheckmate() || e.IsStalemate()
}

// Think runs iterative deepening from depth 1 up to limits.Depth (or
// until the time budget or an external Stop expires), calling info after
// every completed iteration, and returns the final iteration's result.
func (e *Engine) Think(limits Limits, info InfoFunc) SearchInfo {
	e.clock = NewClock(e.timeBudget(limits))
	s := newSearcher(e.b, e.tt, e.clock)

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = maxPly - 1
	}

	start := time.Now()
	var last SearchInfo
	for depth := 1; depth <= maxDepth; depth++ {
		score, best, aborted := s.rootSearch(depth)
		if aborted {
			break
		}
		pv := s.principalVariation()
		if len(pv) == 0 && best != board.MoveNone {
			pv = []board.Move{best}
		}
		last = SearchInfo{
			Depth:    depth,
			SelDepth: s.selDepth,
			Score:    score,
			Nodes:    s.clock.Nodes(),
			Time:     time.Since(start),
			PV:       pv,
		}
		if IsMateScore(score) {
			last.Mate = mateDistanceInMoves(score)
		}
		if info != nil {
			info(last)
		}
		if e.clock.Stopped() {
			break
		}
	}
	return last
}

// mateDistanceInMoves converts a mate score into a signed count of full
// moves to mate (positive: side to move mates; negative: side to move is
// mated).
func mateDistanceInMoves(score int) int {
	if score > 0 {
		plies := ValueMate - score
		return (plies + 1) / 2
	}
	plies := ValueMate + score
	return -((plies + 1) / 2)
}

// Stop requests the in-flight Think call to return as soon as it next
// polls the clock.
func (e *Engine) Stop() {
	if e.clock != nil {
		e.clock.Stop()
	}
}

func (e *Engine) timeBudget(limits Limits) time.Duration {
	if limits.Infinite {
		return 0
	}
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if limits.WTime == 0 && limits.BTime == 0 {
		return 0
	}

	remaining := limits.WTime
	inc := limits.WInc
	if e.b.SideToMove == board.Black {
		remaining = limits.BTime
		inc = limits.BInc
	}

	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	budget := remaining/time.Duration(movesToGo) + inc - moveOverhead
	if budget <= 0 {
		budget = moveOverhead
	}
	if budget > remaining {
		budget = remaining
	}
	return budget
}
