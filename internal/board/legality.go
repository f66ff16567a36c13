package board

// IsCapture reports whether the move takes a piece.
func (b *Board) IsCapture(mv Move) bool {
	if mv.Type() == EnPassant {
		return true
	}
	return mv.Type() != Castle && b.squares[mv.To()] != NoPiece
}

// IsQuiet reports a non-capture, non-promotion move.
func (b *Board) IsQuiet(mv Move) bool {
	return !b.IsCapture(mv) && mv.Type() != Promotion
}

// IsLegal checks that a pseudo-legal move does not leave the mover's king
// in check. Castling paths are validated during generation.
func (b *Board) IsLegal(mv Move) bool {
	us := b.stm
	them := us.Other()
	from, to := mv.From(), mv.To()
	king := b.kingSq[us]

	switch mv.Type() {
	case Castle:
		return true

	case EnPassant:
		// Simulate the double removal and check for a revealed slider.
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		occ := (b.All() &^ SquareBB(from) &^ SquareBB(capSq)) | SquareBB(to)
		return bishopAttacks(king, occ)&b.diagSliders(them) == 0 &&
			rookAttacks(king, occ)&b.lineSliders(them) == 0
	}

	if from == king {
		occ := b.All() &^ SquareBB(from)
		return b.AttackersBy(to, them, occ) == 0
	}

	// Legal unless the piece shields its own king and leaves the line.
	return !b.state().Pinned[us].IsSet(from) || Aligned(from, to, king)
}

// IsChecking reports whether the move gives check to the enemy king:
// direct check via the precomputed check squares, discovered check when a
// shield leaves its line, plus the promotion/en-passant/castle geometry.
func (b *Board) IsChecking(mv Move) bool {
	st := b.state()
	us := b.stm
	from, to := mv.From(), mv.To()
	pt := b.squares[from].Type()
	king := b.kingSq[us.Other()]

	if st.CheckSquares[pt].IsSet(to) {
		return true
	}
	if st.Discoverers[us].IsSet(from) && !Aligned(from, to, king) {
		return true
	}

	switch mv.Type() {
	case Promotion:
		occ := b.All() &^ SquareBB(from)
		return Attacks(mv.PromoPiece(), to, occ).IsSet(king)

	case EnPassant:
		// The captured pawn may have been shielding the enemy king.
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		occ := (b.All() &^ SquareBB(from) &^ SquareBB(capSq)) | SquareBB(to)
		return bishopAttacks(king, occ)&b.diagSliders(us) != 0 ||
			rookAttacks(king, occ)&b.lineSliders(us) != 0

	case Castle:
		var rookFrom, rookTo Square
		if to > from {
			rookFrom, rookTo = rookFromOO[us], rookToOO[us]
		} else {
			rookFrom, rookTo = rookFromOOO[us], rookToOOO[us]
		}
		occ := (b.All() &^ SquareBB(from) &^ SquareBB(rookFrom)) | SquareBB(to) | SquareBB(rookTo)
		return rookAttacks(rookTo, occ).IsSet(king)
	}

	return false
}
