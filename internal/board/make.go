package board

// Make applies a move generated from the current position. It pushes a new
// State, performs the structural mutation with incremental zobrist and
// accumulator updates, flips the side to move, and recomputes check data.
func (b *Board) Make(mv Move) {
	prev := *b.state()
	b.states = append(b.states, State{
		Key:       prev.Key,
		Move:      mv,
		Captured:  NoPieceType,
		Castle:    prev.Castle,
		EnPassant: NoSquare,
		HalfMove:  prev.HalfMove + 1,
	})
	b.ply++
	st := b.state()

	us := b.stm
	them := us.Other()
	from, to := mv.From(), mv.To()
	pt := b.squares[from].Type()

	if prev.EnPassant != NoSquare {
		st.Key ^= zobristEnPassant[prev.EnPassant.File()]
	}

	// Captures, including en passant. A rook taken on its home square
	// forfeits the corresponding castling right.
	capSq := to
	capPt := NoPieceType
	if mv.Type() == EnPassant {
		capPt = Pawn
		if us == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
	} else if mv.Type() != Castle && b.squares[to] != NoPiece {
		capPt = b.squares[to].Type()
	}
	if capPt != NoPieceType {
		st.Captured = capPt
		st.HalfMove = 0
		b.removePiece(capSq, them, capPt)
		if capPt == Rook {
			if capSq == rookFromOO[them] {
				st.Castle &^= castleOO[them]
			} else if capSq == rookFromOOO[them] {
				st.Castle &^= castleOOO[them]
			}
		}
	}

	if mv.Type() == Castle {
		b.movePiece(from, to, us, King)
		if to > from {
			b.movePiece(rookFromOO[us], rookToOO[us], us, Rook)
		} else {
			b.movePiece(rookFromOOO[us], rookToOOO[us], us, Rook)
		}
	} else {
		b.movePiece(from, to, us, pt)
	}

	switch pt {
	case Pawn:
		st.HalfMove = 0
		if int(to)-int(from) == 16 || int(from)-int(to) == 16 {
			ep := Square((int(from) + int(to)) / 2)
			st.EnPassant = ep
			st.Key ^= zobristEnPassant[ep.File()]
		} else if mv.Type() == Promotion {
			b.removePiece(to, us, Pawn)
			b.addPiece(to, us, mv.PromoPiece())
		}
	case King:
		st.Castle &^= castleAll[us]
	case Rook:
		if from == rookFromOO[us] {
			st.Castle &^= castleOO[us]
		} else if from == rookFromOOO[us] {
			st.Castle &^= castleOOO[us]
		}
	}

	if st.Castle != prev.Castle {
		st.Key ^= zobristCastle[prev.Castle] ^ zobristCastle[st.Castle]
	}

	if us == Black {
		b.fullMove++
	}
	b.stm = them
	st.Key ^= zobristSide

	b.updateCheckInfo()
}

// Unmake pops the top State and reverses the structural mutation. The
// accumulators are restored by applying the inverse piece operations; the
// zobrist key is restored by discarding the popped state.
func (b *Board) Unmake() {
	st := *b.state()
	mv := st.Move
	them := b.stm
	us := them.Other()
	from, to := mv.From(), mv.To()

	if mv.Type() == Promotion {
		b.removePiece(to, us, mv.PromoPiece())
		b.addPiece(to, us, Pawn)
	}

	if mv.Type() == Castle {
		b.movePiece(to, from, us, King)
		if to > from {
			b.movePiece(rookToOO[us], rookFromOO[us], us, Rook)
		} else {
			b.movePiece(rookToOOO[us], rookFromOOO[us], us, Rook)
		}
	} else {
		b.movePiece(to, from, us, b.squares[to].Type())
	}

	if st.Captured != NoPieceType {
		capSq := to
		if mv.Type() == EnPassant {
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
		}
		b.addPiece(capSq, them, st.Captured)
	}

	if us == Black {
		b.fullMove--
	}
	b.stm = us
	b.states = b.states[:b.ply]
	b.ply--
}

// MakeNull passes the turn without moving a piece, for null-move pruning.
func (b *Board) MakeNull() {
	prev := *b.state()
	b.states = append(b.states, State{
		Key:       prev.Key,
		Move:      NullMove,
		Captured:  NoPieceType,
		Castle:    prev.Castle,
		EnPassant: NoSquare,
		HalfMove:  prev.HalfMove + 1,
	})
	b.ply++
	st := b.state()

	if prev.EnPassant != NoSquare {
		st.Key ^= zobristEnPassant[prev.EnPassant.File()]
	}
	b.stm = b.stm.Other()
	st.Key ^= zobristSide

	b.updateCheckInfo()
}

// UnmakeNull reverses MakeNull.
func (b *Board) UnmakeNull() {
	b.stm = b.stm.Other()
	b.states = b.states[:b.ply]
	b.ply--
}
