package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 w - - 5 39",
	}
	for _, fen := range fens {
		b := NewBoard()
		if err := b.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		got := b.FEN()
		if got != fen {
			t.Errorf("FEN round trip: SetFEN(%q).FEN() = %q", fen, got)
		}
	}
}

func TestSetFENLeavesBoardUnchangedOnError(t *testing.T) {
	b := NewBoard()
	if err := b.SetFEN(kiwipeteFEN); err != nil {
		t.Fatalf("SetFEN(%q): %v", kiwipeteFEN, err)
	}
	before := snapshot(b)

	badFens := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra junk here for sure",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, bad := range badFens {
		if err := b.SetFEN(bad); err == nil {
			t.Errorf("SetFEN(%q) unexpectedly succeeded", bad)
		}
		if diff := cmp.Diff(before, snapshot(b)); diff != "" {
			t.Errorf("SetFEN(%q) mutated board (-before +after):\n%s", bad, diff)
		}
	}
}
