package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped with the offending detail by SetFEN.
var ErrInvalidFEN = errors.New("board: invalid FEN")

// SetFEN parses Forsyth-Edwards Notation into the board. On failure the
// board is left unchanged and a wrapped ErrInvalidFEN is returned.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if len(fields) > 6 {
		return fmt.Errorf("%w: expected at most 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var nb Board
	if err := nb.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		nb.SideToMove = White
	case "b":
		nb.SideToMove = Black
	default:
		return fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	st := &StateInfo{EPSquare: SquareNone}
	if err := parseCastling(fields[2], st); err != nil {
		return err
	}

	st.EPSquare = SquareNone
	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if sq == SquareNone {
			return fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, fields[3])
		}
		st.EPSquare = sq
	}

	st.HalfmoveClock = 0
	nb.FullMove = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			st.HalfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			nb.FullMove = n
		}
	}

	if PopCount(nb.PiecesOf(White, King)) != 1 || PopCount(nb.PiecesOf(Black, King)) != 1 {
		return fmt.Errorf("%w: must have exactly one king per side", ErrInvalidFEN)
	}

	nb.Active = st
	st.Hash = nb.ComputeHash()
	nb.LastMove = MoveNone
	nb.GamePly = 0
	nb.history = nil

	*b = nb
	return nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				cp, ok := parsePieceLetter(byte(ch))
				if !ok {
					return fmt.Errorf("%w: bad piece letter %q", ErrInvalidFEN, ch)
				}
				if file >= 8 {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
				}
				b.put(cp, MakeSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func parsePieceLetter(ch byte) (Piece, bool) {
	idx := strings.IndexByte("PNBRQKpnbrqk", ch)
	if idx < 0 {
		return NoPiece, false
	}
	pt := PieceType(idx%6 + 1)
	color := White
	if idx >= 6 {
		color = Black
	}
	return MakePiece(color, pt), true
}

func parseCastling(s string, st *StateInfo) error {
	if s == "-" {
		return nil
	}
	for _, ch := range s {
		switch ch {
		case 'K':
			st.CastlingRights |= WhiteKingSide
		case 'Q':
			st.CastlingRights |= WhiteQueenSide
		case 'k':
			st.CastlingRights |= BlackKingSide
		case 'q':
			st.CastlingRights |= BlackQueenSide
		default:
			return fmt.Errorf("%w: bad castling letter %q", ErrInvalidFEN, ch)
		}
	}
	return nil
}

// FEN emits byte-canonical Forsyth-Edwards Notation: castling order KQkq,
// "-" for empty rights or no ep square.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Mailbox[MakeSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())

	sb.WriteByte(' ')
	cr := b.Active.CastlingRights
	if cr == 0 {
		sb.WriteByte('-')
	} else {
		if cr&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if cr&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if cr&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if cr&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Active.EPSquare.String())

	fmt.Fprintf(&sb, " %d %d", b.Active.HalfmoveClock, b.FullMove)
	return sb.String()
}
