package board

import "testing"

// TestMoveToSANBasics covers castling and a quiet piece move; pawn captures
// and promotions have their own tests below.
func TestMoveToSANBasics(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])

	cases := []struct {
		uci  string
		want string
	}{
		{"e1g1", "O-O"},
		{"f3g5", "Ng5"},
	}
	for _, c := range cases {
		mv, ok := b.DecodeUCIMove(c.uci)
		if !ok {
			t.Fatalf("DecodeUCIMove(%q) failed", c.uci)
		}
		got := MoveToSAN(b, legal, mv)
		if got != c.want {
			t.Errorf("MoveToSAN(%q) = %q, want %q", c.uci, got, c.want)
		}
	}
}

// TestMoveToSANCapture checks the "x" marker and the pawn's file-letter
// disambiguation on a pawn capture.
func TestMoveToSANCapture(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("rnbqkbnr/ppp2ppp/8/3pp3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])

	mv, ok := b.DecodeUCIMove("e4d5")
	if !ok {
		t.Fatal("DecodeUCIMove(e4d5) failed")
	}
	got := MoveToSAN(b, legal, mv)
	if got != "exd5" {
		t.Errorf("MoveToSAN(e4d5) = %q, want %q", got, "exd5")
	}
}

// TestMoveToSANPromotion checks the "=Q" suffix on a promoting push.
func TestMoveToSANPromotion(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("8/1P6/8/8/8/8/7k/K7 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])

	mv, ok := b.DecodeUCIMove("b7b8q")
	if !ok {
		t.Fatal("DecodeUCIMove(b7b8q) failed")
	}
	got := MoveToSAN(b, legal, mv)
	if got != "b8=Q" {
		t.Errorf("MoveToSAN(b7b8q) = %q, want %q", got, "b8=Q")
	}
}

// TestMoveToSANDisambiguatesSameDestination checks that when two pieces of
// the same type can reach the same square, the move is disambiguated by
// file (or rank, or both, if file alone is not unique).
func TestMoveToSANDisambiguatesSameDestination(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN("k7/8/8/8/8/8/8/KR5R w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	var buf [MaxMoves]Move
	legal := b.GenerateLegalMoves(buf[:0])

	mv, ok := b.DecodeUCIMove("b1d1")
	if !ok {
		t.Fatal("DecodeUCIMove(b1d1) failed")
	}
	got := MoveToSAN(b, legal, mv)
	if got != "Rbd1" {
		t.Errorf("MoveToSAN(b1d1) = %q, want %q", got, "Rbd1")
	}
}
