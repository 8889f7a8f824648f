package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// boardSnapshot captures every exported piece of Board state (skipping the
// unexported history stack, which is caller-owned bookkeeping, not part of
// the position) so tests can diff two positions with cmp.Diff.
type boardSnapshot struct {
	ByType     [7]Bitboard
	ByColor    [2]Bitboard
	Mailbox    [64]Piece
	SideToMove Color
	FullMove   int
	GamePly    int
	Active     StateInfo
	LastMove   Move
}

func snapshot(b *Board) boardSnapshot {
	return boardSnapshot{
		ByType:     b.ByType,
		ByColor:    b.ByColor,
		Mailbox:    b.Mailbox,
		SideToMove: b.SideToMove,
		FullMove:   b.FullMove,
		GamePly:    b.GamePly,
		Active:     *b.Active,
		LastMove:   b.LastMove,
	}
}

// TestIncrementalHashMatchesFromScratch plays a short move sequence (castling
// on both sides, then a promotion) with MakeMove and checks after each move
// that the Hash maintained incrementally matches a from-scratch
// recomputation.
func TestIncrementalHashMatchesFromScratch(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("r3k2r/1P3ppp/8/8/8/8/1PP2PPP/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	checkHash := func(label string) {
		if got, want := b.Active.Hash, b.ComputeHash(); got != want {
			t.Fatalf("%s: incremental hash %#x != recomputed %#x (fen=%s)", label, got, want, b.FEN())
		}
	}
	checkHash("initial")

	type step struct {
		uci string
	}
	steps := []step{
		{"e1g1"},  // white king castle
		{"e8c8"},  // black queen castle
		{"b7b8q"}, // white promotion
	}

	for _, s := range steps {
		m, ok := b.DecodeUCIMove(s.uci)
		if !ok {
			t.Fatalf("DecodeUCIMove(%q) failed", s.uci)
		}
		st := b.PushHistory()
		b.MakeMove(m, st)
		checkHash("after " + s.uci)
	}
}

// TestGenerateLegalMovesExcludesSelfCheck verifies that moves leaving the
// mover's own king in check are filtered out even though they are
// pseudo-legal.
func TestGenerateLegalMovesExcludesSelfCheck(t *testing.T) {
	b := NewBoard()
	// The white bishop on e2 is pinned to the king on e1 by the black rook
	// on e8; every bishop move leaves the e-file and exposes the king.
	if err := b.SetFEN("4r2k/8/8/8/8/8/4B3/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])
	for _, m := range legal {
		if m.From() == E2 && m.To() != E3 && m.To() != E4 && m.To() != E5 && m.To() != E6 && m.To() != E7 {
			t.Errorf("pinned bishop move %s should stay on the e-file", m)
		}
	}
}

// TestCheckmateAndStalemateHaveNoLegalMoves checks the two terminal,
// no-legal-move conditions distinguished only by whether the king is
// currently attacked.
func TestCheckmateAndStalemateHaveNoLegalMoves(t *testing.T) {
	checkmate := NewBoard()
	if err := checkmate.SetFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	if legal := checkmate.GenerateLegalMoves(buf[:0]); len(legal) != 0 {
		t.Errorf("fool's mate position has %d legal moves, want 0", len(legal))
	}
	if !checkmate.IsCheck() {
		t.Error("fool's mate position should have the side to move in check")
	}

	stalemate := NewBoard()
	if err := stalemate.SetFEN("7k/5Q2/8/8/8/8/8/1K6 b - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if legal := stalemate.GenerateLegalMoves(buf[:0]); len(legal) != 0 {
		t.Errorf("stalemate position has %d legal moves, want 0", len(legal))
	}
	if stalemate.IsCheck() {
		t.Error("stalemate position should not have the side to move in check")
	}
}

// TestEnPassantLegality checks that an en passant capture is generated when
// the FEN names an en passant square, that it removes the captured pawn from
// behind the destination square, and that unmaking it restores that pawn.
func TestEnPassantLegality(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])
	var ep Move
	for _, m := range legal {
		if m.Flag() == FlagEPCapture {
			ep = m
		}
	}
	if ep == MoveNone {
		t.Fatal("expected an en passant capture to be legal")
	}
	if ep.From() != E5 || ep.To() != F6 {
		t.Errorf("en passant move = %s, want e5f6", ep)
	}

	var st StateInfo
	prev := b.Active
	b.MakeMove(ep, &st)
	if b.Mailbox[F5] != NoPiece {
		t.Error("en passant capture did not remove the captured pawn")
	}
	b.UnmakeMove(ep, prev)
	if b.Mailbox[F5].Type() != Pawn {
		t.Error("unmaking en passant capture did not restore the captured pawn")
	}
}

// TestMakeUnmakeRoundTripRestoresBoard checks that MakeMove followed by
// UnmakeMove leaves every exported piece of board state bit-for-bit equal
// to its pre-move snapshot, across a normal move, a capture, a castle, an
// en passant capture, and a promotion.
func TestMakeUnmakeRoundTripRestoresBoard(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		uci  string
	}{
		{"normal", StartFEN, "e2e4"},
		{"capture", "rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2", "d4e5"},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"enpassant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", "e5f6"},
		{"promotion", "8/1P6/8/8/8/8/7k/K7 w - - 0 1", "b7b8q"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBoard()
			if err := b.SetFEN(c.fen); err != nil {
				t.Fatalf("SetFEN(%q): %v", c.fen, err)
			}
			before := snapshot(b)

			m, ok := b.DecodeUCIMove(c.uci)
			if !ok {
				t.Fatalf("DecodeUCIMove(%q) failed", c.uci)
			}
			var st StateInfo
			prev := b.Active
			b.MakeMove(m, &st)
			b.UnmakeMove(m, prev)

			after := snapshot(b)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("make/unmake %s round trip changed board state (-before +after):\n%s", c.uci, diff)
			}
		})
	}
}

// TestCastlingRightsLostOnRookCapture checks that capturing a rook on its
// home square strips that side's castling right even though the king never
// moved.
func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	m, ok := b.DecodeUCIMove("a1a8")
	if !ok {
		t.Fatal("DecodeUCIMove(a1a8) failed")
	}
	var st StateInfo
	prev := b.Active
	b.MakeMove(m, &st)
	if st.CastlingRights&BlackQueenSide != 0 {
		t.Error("capturing the a8 rook should clear black queenside castling rights")
	}
	if st.CastlingRights&WhiteQueenSide != 0 {
		t.Error("moving the a1 rook should clear white queenside castling rights")
	}
	b.UnmakeMove(m, prev)
	if prev.CastlingRights != AllCastlingRights {
		t.Error("unmake did not restore original castling rights")
	}
}
