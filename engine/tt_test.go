package engine

import (
	"testing"

	"github.com/corvidchess/corvid/board"
)

// TestTTReplacementPolicy exercises spec's exact narrow replacement rule:
// an existing entry survives a Store only when it has the same key,
// strictly greater depth, is EXACT, and the incoming entry is not EXACT.
// Every other combination overwrites.
func TestTTReplacementPolicy(t *testing.T) {
	const key = 0xC0FFEE

	tt := NewTranspositionTable(1)

	tt.Store(key, 100, 5, BoundExact, board.MoveNone)
	if score, depth, bound, _, ok := tt.Probe(key); !ok || score != 100 || depth != 5 || bound != BoundExact {
		t.Fatalf("after initial store: score=%d depth=%d bound=%v ok=%v", score, depth, bound, ok)
	}

	// Shallower, non-exact entry against a deeper EXACT entry: kept.
	tt.Store(key, 50, 3, BoundAlpha, board.MoveNone)
	if score, depth, bound, _, ok := tt.Probe(key); !ok || score != 100 || depth != 5 || bound != BoundExact {
		t.Errorf("shallow non-exact store should be rejected, got score=%d depth=%d bound=%v ok=%v", score, depth, bound, ok)
	}

	// Shallower, but EXACT: overwrites even though depth is lower.
	tt.Store(key, 77, 3, BoundExact, board.MoveNone)
	if score, depth, bound, _, ok := tt.Probe(key); !ok || score != 77 || depth != 3 || bound != BoundExact {
		t.Errorf("shallow exact store should overwrite, got score=%d depth=%d bound=%v ok=%v", score, depth, bound, ok)
	}

	// Deeper, non-exact: overwrites since depth is strictly greater.
	tt.Store(key, 9, 10, BoundBeta, board.MoveNone)
	if score, depth, bound, _, ok := tt.Probe(key); !ok || score != 9 || depth != 10 || bound != BoundBeta {
		t.Errorf("deeper store should overwrite, got score=%d depth=%d bound=%v ok=%v", score, depth, bound, ok)
	}
}

// TestTTProbeMissAndClear checks that an unstored key misses, and that
// Clear discards a previously stored entry.
func TestTTProbeMissAndClear(t *testing.T) {
	tt := NewTranspositionTable(1)

	if _, _, _, _, ok := tt.Probe(42); ok {
		t.Error("probe of an empty table should miss")
	}

	tt.Store(42, 10, 1, BoundExact, board.MoveNone)
	if _, _, _, _, ok := tt.Probe(42); !ok {
		t.Fatal("expected a hit after storing")
	}

	tt.Clear()
	if _, _, _, _, ok := tt.Probe(42); ok {
		t.Error("probe after Clear should miss")
	}
}

// TestTTStoresBestMove checks that the best move found at a node is
// retrievable from the table alongside its score and bound.
func TestTTStoresBestMove(t *testing.T) {
	tt := NewTranspositionTable(1)
	b := board.NewBoard()
	b.SetStartPos()
	var buf [board.MaxMoves]board.Move
	moves := b.GenerateLegalMoves(buf[:0])
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the starting position")
	}
	want := moves[0]

	tt.Store(7, 25, 4, BoundExact, want)
	_, _, _, got, ok := tt.Probe(7)
	if !ok {
		t.Fatal("expected a hit after storing")
	}
	if got != want {
		t.Errorf("Probe move = %v, want %v", got, want)
	}
}
