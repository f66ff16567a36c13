package board

// SEE returns the static exchange evaluation of a move: the net material
// gain assuming both sides recapture on the destination square with their
// least valuable attacker for as long as it pays.
func (b *Board) SEE(mv Move) int {
	from, to := mv.From(), mv.To()

	attacker := b.squares[from]
	if attacker == NoPiece {
		return 0
	}

	var gain int
	if mv.Type() == EnPassant {
		gain = Pawn.Value()
	} else {
		victim := b.squares[to]
		if victim == NoPiece {
			return 0
		}
		gain = victim.Type().Value()
	}
	if mv.Type() == Promotion {
		gain += mv.PromoPiece().Value() - Pawn.Value()
	}

	return b.seeSwap(to, from, attacker, gain)
}

// seeSwap runs the swap algorithm: build the gain ladder by alternating
// least-valuable attackers, then negamax the partial sums.
func (b *Board) seeSwap(target, excludeFrom Square, firstAttacker Piece, initialGain int) int {
	var gain [32]int
	d := 0
	gain[d] = initialGain

	occ := b.All() &^ SquareBB(excludeFrom)
	attackerValue := firstAttacker.Type().Value()
	side := firstAttacker.Color().Other()

	for {
		d++
		gain[d] = attackerValue - gain[d-1]

		// Neither side benefits from continuing the exchange.
		if max(-gain[d-1], gain[d]) < 0 {
			break
		}

		sq, pt := b.leastValuableAttacker(target, side, occ)
		if sq == NoSquare {
			break
		}

		occ &^= SquareBB(sq)
		attackerValue = pt.Value()
		side = side.Other()
	}

	for d--; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// leastValuableAttacker finds the cheapest piece of the side attacking the
// target under the given occupancy. X-ray attackers appear as the
// occupancy shrinks.
func (b *Board) leastValuableAttacker(target Square, side Color, occ Bitboard) (Square, PieceType) {
	if attackers := b.pieces[side][Pawn] & PawnAttacksFrom(target, side.Other()) & occ; attackers != 0 {
		return attackers.LSB(), Pawn
	}
	if attackers := b.pieces[side][Knight] & knightAttackTable[target] & occ; attackers != 0 {
		return attackers.LSB(), Knight
	}

	diag := bishopAttacks(target, occ)
	if attackers := b.pieces[side][Bishop] & diag & occ; attackers != 0 {
		return attackers.LSB(), Bishop
	}

	line := rookAttacks(target, occ)
	if attackers := b.pieces[side][Rook] & line & occ; attackers != 0 {
		return attackers.LSB(), Rook
	}
	if attackers := b.pieces[side][Queen] & (diag | line) & occ; attackers != 0 {
		return attackers.LSB(), Queen
	}
	if attackers := b.pieces[side][King] & kingAttackTable[target] & occ; attackers != 0 {
		return attackers.LSB(), King
	}

	return NoSquare, NoPieceType
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
