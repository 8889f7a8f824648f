package board

import "testing"

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes int64
	}{
		{"startpos d1", StartFEN, 1, 20},
		{"startpos d2", StartFEN, 2, 400},
		{"startpos d3", StartFEN, 3, 8902},
		{"startpos d4", StartFEN, 4, 197281},
		{"startpos d5", StartFEN, 5, 4865609},
		{"kiwipete d1", kiwipeteFEN, 1, 48},
		{"kiwipete d2", kiwipeteFEN, 2, 2039},
		{"kiwipete d3", kiwipeteFEN, 3, 97862},
		{"kiwipete d4", kiwipeteFEN, 4, 4085603},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if err := b.SetFEN(tt.fen); err != nil {
				t.Fatalf("SetFEN(%q): %v", tt.fen, err)
			}
			nodes := b.Perft(tt.depth)
			if nodes != tt.nodes {
				t.Errorf("Perft(%d) on %q = %d, want %d", tt.depth, tt.fen, nodes, tt.nodes)
			}
		})
	}
}

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
