package engine

import "github.com/corvidchess/corvid/board"

// pstMid/pstEnd hold, per PieceType and White's-perspective Square, the
// classical hand-tuned positional bonus used by the "simplified evaluation
// function" popular among small engines. Values for Black are read by
// mirroring the square vertically (sq^56 flips rank, keeps file).

var pstMid, pstEnd [7][64]int

func pstValue(table [7][64]int, pt board.PieceType, c board.Color, sq board.Square) int {
	if c == board.Black {
		sq ^= 56
	}
	return table[pt][sq]
}

// fromTopDownRows converts a table written in the conventional printed
// order (rank 8 first, a-file to h-file) into one indexed by Square
// (file + 8*rank, rank 1 = 0).
func fromTopDownRows(rows [8][8]int) [64]int {
	var out [64]int
	for printedRow := 0; printedRow < 8; printedRow++ {
		rank := 7 - printedRow
		for file := 0; file < 8; file++ {
			out[board.MakeSquare(file, rank)] = rows[printedRow][file]
		}
	}
	return out
}

func init() {
	pstMid[board.Pawn] = fromTopDownRows([8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	})
	pstEnd[board.Pawn] = pstMid[board.Pawn]

	pstMid[board.Knight] = fromTopDownRows([8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	})
	pstEnd[board.Knight] = pstMid[board.Knight]

	pstMid[board.Bishop] = fromTopDownRows([8][8]int{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	})
	pstEnd[board.Bishop] = pstMid[board.Bishop]

	pstMid[board.Rook] = fromTopDownRows([8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	})
	pstEnd[board.Rook] = pstMid[board.Rook]

	pstMid[board.Queen] = fromTopDownRows([8][8]int{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	})
	pstEnd[board.Queen] = pstMid[board.Queen]

	pstMid[board.King] = fromTopDownRows([8][8]int{
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	})
	pstEnd[board.King] = fromTopDownRows([8][8]int{
		{-50, -40, -30, -20, -20, -30, -40, -50},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-50, -30, -30, -30, -30, -30, -30, -50},
	})
}
