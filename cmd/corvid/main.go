// Command corvid is a UCI chess engine. With no arguments it speaks the
// Universal Chess Interface over stdin/stdout; "corvid perft <depth>
// [fen]" instead runs a move-generation node count, grounded on
// daystram-gambit's cmd/gambit perft subcommand.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/uci"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "perft" {
		if err := runPerft(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "bench" {
		runBench()
		return
	}
	uci.New(os.Stdout).Run(os.Stdin)
}

// runPerft implements "corvid perft <depth> [fen]": prints the board (if a
// fen was given), the perft node count at depth, and the elapsed time and
// speed, mirroring gambit's cmd/gambit/perft.go reporting shape.
func runPerft(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: corvid perft <depth> [fen]")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q", args[0])
	}

	b := board.NewBoard()
	if len(args) > 1 {
		fen := ""
		for i, a := range args[1:] {
			if i > 0 {
				fen += " "
			}
			fen += a
		}
		if err := b.SetFEN(fen); err != nil {
			return fmt.Errorf("parse fen: %w", err)
		}
		fmt.Print(drawBoard(b))
	} else {
		b.SetStartPos()
	}

	start := time.Now()
	nodes := b.Perft(depth)
	elapsed := time.Since(start)

	nps := float64(0)
	if elapsed > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", depth, nodes, elapsed, nps)
	return nil
}

// runBench runs a fixed-depth perft over a short, well-known set of
// positions as a quick sanity/speed check, grounded on gambit's bench
// package idiom of a canned position list rather than a single FEN.
func runBench() {
	positions := []struct {
		fen   string
		depth int
	}{
		{board.StartFEN, 5},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
	}

	var total int64
	start := time.Now()
	for _, p := range positions {
		b := board.NewBoard()
		if err := b.SetFEN(p.fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		nodes := b.Perft(p.depth)
		total += nodes
		fmt.Printf("%-70s depth %d: %d nodes\n", p.fen, p.depth, nodes)
	}
	elapsed := time.Since(start)
	nps := float64(0)
	if elapsed > 0 {
		nps = float64(total) / elapsed.Seconds()
	}
	fmt.Printf("total: %d nodes in %s (%.0f nps)\n", total, elapsed, nps)
}

// drawBoard renders a checkered, colorized ASCII board, grounded on
// daystram-gambit's board.Draw (board/board.go), adapted to this package's
// Square/Piece representation and fatih/color's terminal attributes rather
// than raw ANSI escapes.
func drawBoard(b *board.Board) string {
	light := color.New(color.BgHiWhite, color.FgBlack)
	dark := color.New(color.BgBlack, color.FgWhite)

	out := ""
	for rank := 7; rank >= 0; rank-- {
		out += fmt.Sprintf(" %d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.MakeSquare(file, rank)
			p := b.PieceAt(sq)
			sym := " . "
			if p != board.NoPiece {
				sym = fmt.Sprintf(" %c ", p.Letter())
			}
			cell := dark
			if (file+rank)%2 == 0 {
				cell = light
			}
			out += cell.Sprint(sym)
		}
		out += "\n"
	}
	out += "    a  b  c  d  e  f  g  h\n"
	return out
}
