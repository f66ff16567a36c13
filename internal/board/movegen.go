package board

// GenMode selects which class of pseudo-legal moves to generate. When the
// side to move is in check, every mode produces evasions instead.
type GenMode int

const (
	// AllMoves generates every pseudo-legal move.
	AllMoves GenMode = iota
	// CaptureMoves generates captures and promotions.
	CaptureMoves
	// QuietMoves generates non-captures, non-promotions.
	QuietMoves
)

// Generate produces pseudo-legal moves for the requested mode. Consumers
// call IsLegal before committing to a move.
func Generate(b *Board, mode GenMode) *MoveList {
	ml := &MoveList{}
	if b.InCheck() {
		genEvasions(b, ml)
		return ml
	}

	us := b.stm
	switch mode {
	case AllMoves:
		genPawnMoves(b, ml, true, true, UniverseBB, UniverseBB)
		genPieceMoves(b, ml, ^b.occupied[us])
		genKingMoves(b, ml, ^b.occupied[us])
		genCastles(b, ml)
	case CaptureMoves:
		genPawnMoves(b, ml, false, true, UniverseBB, UniverseBB)
		genPieceMoves(b, ml, b.occupied[us.Other()])
		genKingMoves(b, ml, b.occupied[us.Other()])
	case QuietMoves:
		genPawnMoves(b, ml, true, false, UniverseBB, UniverseBB)
		genPieceMoves(b, ml, ^b.All())
		genKingMoves(b, ml, ^b.All())
		genCastles(b, ml)
	}
	return ml
}

// LegalMoves generates every legal move in the position.
func LegalMoves(b *Board) *MoveList {
	pseudo := Generate(b, AllMoves)
	legal := &MoveList{}
	for i := 0; i < pseudo.Len(); i++ {
		if mv := pseudo.Get(i); b.IsLegal(mv) {
			legal.Add(mv)
		}
	}
	return legal
}

// genEvasions produces responses to check: king moves always; captures of
// the checker and interpositions when the check is single.
func genEvasions(b *Board, ml *MoveList) {
	us := b.stm
	king := b.kingSq[us]
	checkers := b.Checkers()

	genKingMoves(b, ml, ^b.occupied[us])

	if checkers.MoreThanOne() {
		return
	}
	checker := checkers.LSB()
	blockMask := Between(checker, king)

	genPawnMoves(b, ml, true, true, blockMask, checkers)
	genPieceMoves(b, ml, blockMask|checkers)
}

// genPieceMoves emits knight, bishop, rook, and queen moves into targets.
func genPieceMoves(b *Board, ml *MoveList, targets Bitboard) {
	us := b.stm
	occ := b.All()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := b.pieces[us][pt]
		for pieces != 0 {
			from := pieces.PopLSB()
			attacks := Attacks(pt, from, occ) & targets
			for attacks != 0 {
				ml.Add(NewMove(from, attacks.PopLSB()))
			}
		}
	}
}

// genKingMoves emits plain king moves into targets.
func genKingMoves(b *Board, ml *MoveList, targets Bitboard) {
	from := b.kingSq[b.stm]
	attacks := kingAttackTable[from] & targets
	for attacks != 0 {
		ml.Add(NewMove(from, attacks.PopLSB()))
	}
}

// genCastles emits castling moves when the right is held, the path is
// empty, and no square along the king's route is attacked.
func genCastles(b *Board, ml *MoveList) {
	us := b.stm
	them := us.Other()
	occ := b.All()

	if b.CanCastleOO(us) && occ&castlePathOO[us] == 0 &&
		!b.anyAttacked(kingPathOO[us], them) {
		ml.Add(NewCastle(kingOrigin[us], kingDestOO[us]))
	}
	if b.CanCastleOOO(us) && occ&castlePathOOO[us] == 0 &&
		!b.anyAttacked(kingPathOOO[us], them) {
		ml.Add(NewCastle(kingOrigin[us], kingDestOOO[us]))
	}
}

// genPawnMoves emits pawn moves. pushMask restricts push destinations and
// capMask restricts capture victims; both are full boards outside of check.
func genPawnMoves(b *Board, ml *MoveList, quiets, forcing bool, pushMask, capMask Bitboard) {
	us := b.stm
	them := us.Other()
	pawns := b.pieces[us][Pawn]
	empty := ^b.All()
	enemies := b.occupied[them]

	var pushDir int
	var rank3, promoRank Bitboard
	if us == White {
		pushDir, rank3, promoRank = 8, Rank3BB, Rank8BB
	} else {
		pushDir, rank3, promoRank = -8, Rank6BB, Rank1BB
	}

	push1 := pawns.PawnPush(us) & empty
	var attackL, attackR Bitboard
	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
	}

	if quiets {
		// Single and double pushes, promotions excluded.
		targets := push1 & pushMask &^ promoRank
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(NewMove(Square(int(to)-pushDir), to))
		}

		push2 := (push1 & rank3).PawnPush(us) & empty & pushMask
		for push2 != 0 {
			to := push2.PopLSB()
			ml.Add(NewMove(Square(int(to)-2*pushDir), to))
		}
	}

	if forcing {
		// Captures, promotions of every flavor, and en passant.
		targets := attackL & capMask &^ promoRank
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(NewMove(Square(int(to)-pushDir+1), to))
		}
		targets = attackR & capMask &^ promoRank
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(NewMove(Square(int(to)-pushDir-1), to))
		}

		promos := push1 & pushMask & promoRank
		for promos != 0 {
			to := promos.PopLSB()
			addPromotions(ml, Square(int(to)-pushDir), to)
		}
		promos = attackL & capMask & promoRank
		for promos != 0 {
			to := promos.PopLSB()
			addPromotions(ml, Square(int(to)-pushDir+1), to)
		}
		promos = attackR & capMask & promoRank
		for promos != 0 {
			to := promos.PopLSB()
			addPromotions(ml, Square(int(to)-pushDir-1), to)
		}

		ep := b.EnPassant()
		if ep != NoSquare {
			epPawn := Square(int(ep) - pushDir)
			// In check the en passant capture only helps when the checker
			// is the capturable pawn itself.
			if capMask.IsSet(epPawn) {
				attackers := PawnAttacksFrom(ep, them) & pawns
				for attackers != 0 {
					ml.Add(NewEnPassant(attackers.PopLSB(), ep))
				}
			}
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}
