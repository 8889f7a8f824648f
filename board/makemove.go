package board

func epCaptureSquare(to Square, mover Color) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

func epSquareBetween(from, to Square) Square {
	return (from + to) / 2
}

func castleRookSquares(mover Color, flag MoveFlag) (from, to Square) {
	if mover == White {
		if flag == FlagKingCastle {
			return H1, F1
		}
		return A1, D1
	}
	if flag == FlagKingCastle {
		return H8, F8
	}
	return A8, D8
}

// MakeMove mutates the board to apply m, assumed pseudo-legal, writing the
// new snapshot into newSt and making it the active one. The caller owns
// newSt's storage and is responsible for passing UnmakeMove the previous
// snapshot to restore.
func (b *Board) MakeMove(m Move, newSt *StateInfo) {
	old := b.Active
	mover := b.SideToMove
	from, to := m.From(), m.To()
	flag := m.Flag()

	// 1. copy irreversible state from the old snapshot.
	newSt.CastlingRights = old.CastlingRights
	newSt.HalfmoveClock = old.HalfmoveClock + 1
	newSt.Captured = NoPiece
	newSt.Hash = old.Hash
	newSt.EPSquare = SquareNone
	newSt.PliesFromNull = old.PliesFromNull + 1

	// 2. remove the old castling/ep keys from the hash.
	newSt.Hash ^= zobristCastling[old.CastlingRights]
	if old.EPSquare != SquareNone {
		newSt.Hash ^= zobristEPFile[old.EPSquare.File()]
	}

	// 3. capture.
	if m.IsCapture() {
		capSq := to
		if flag == FlagEPCapture {
			capSq = epCaptureSquare(to, mover)
		}
		captured := b.Mailbox[capSq]
		newSt.Captured = captured
		newSt.Hash ^= pieceKey(captured, capSq)
		b.remove(capSq)
		newSt.HalfmoveClock = 0
	}

	// 4. move the piece, or promote it.
	movingPiece := b.Mailbox[from]
	newSt.Hash ^= pieceKey(movingPiece, from)
	b.remove(from)
	if m.IsPromotion() {
		promoted := MakePiece(mover, m.PromotionType())
		b.put(promoted, to)
		newSt.Hash ^= pieceKey(promoted, to)
		newSt.HalfmoveClock = 0
	} else {
		b.put(movingPiece, to)
		newSt.Hash ^= pieceKey(movingPiece, to)
	}

	// 5. castling also moves the rook.
	if flag == FlagKingCastle || flag == FlagQueenCastle {
		rookFrom, rookTo := castleRookSquares(mover, flag)
		rook := b.Mailbox[rookFrom]
		newSt.Hash ^= pieceKey(rook, rookFrom)
		b.remove(rookFrom)
		b.put(rook, rookTo)
		newSt.Hash ^= pieceKey(rook, rookTo)
	}

	// 6. double push sets the ep square.
	if flag == FlagDoublePush {
		newSt.EPSquare = epSquareBetween(from, to)
		newSt.HalfmoveClock = 0
	}

	// 7. any pawn move resets the halfmove clock.
	if movingPiece.Type() == Pawn {
		newSt.HalfmoveClock = 0
	}

	// 8. mask off castling rights lost from the move's squares.
	newSt.CastlingRights &^= castleRightsMask[from] | castleRightsMask[to]

	// 9. xor in the new castling/ep keys.
	newSt.Hash ^= zobristCastling[newSt.CastlingRights]
	if newSt.EPSquare != SquareNone {
		newSt.Hash ^= zobristEPFile[newSt.EPSquare.File()]
	}

	// 10. flip side to move.
	b.SideToMove = mover.Opposite()
	newSt.Hash ^= zobristSide
	if b.SideToMove == White {
		b.FullMove++
	}
	b.GamePly++

	b.Active = newSt
	b.LastMove = m
}

// UnmakeMove reverses the effect of MakeMove(m, b.Active), restoring prev
// as the active snapshot. prev must be the exact StateInfo that was active
// immediately before the matching MakeMove call.
func (b *Board) UnmakeMove(m Move, prev *StateInfo) {
	mover := b.SideToMove.Opposite()
	if b.SideToMove == White {
		b.FullMove--
	}
	b.SideToMove = mover
	b.GamePly--

	captured := b.Active.Captured
	flag := m.Flag()
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		b.remove(to)
		b.put(MakePiece(mover, Pawn), from)
	} else {
		b.move(to, from)
	}

	if flag == FlagKingCastle || flag == FlagQueenCastle {
		rookFrom, rookTo := castleRookSquares(mover, flag)
		b.move(rookTo, rookFrom)
	}

	if captured != NoPiece {
		capSq := to
		if flag == FlagEPCapture {
			capSq = epCaptureSquare(to, mover)
		}
		b.put(captured, capSq)
	}

	b.Active = prev
	b.LastMove = MoveNone
}
