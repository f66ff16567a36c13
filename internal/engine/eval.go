package engine

import (
	"fmt"
	"io"

	"github.com/zm-bm/latrunculi/internal/board"
)

// Evaluation terms, in the order they are accumulated and reported.
type evalTerm int

const (
	termMaterial evalTerm = iota
	termPieceSq
	termPawns
	termKnights
	termBishops
	termRooks
	termQueens
	termKing
	termMobility
	numTerms
)

var termNames = [numTerms]string{
	"Material", "Piece Sq.", "Pawns", "Knights", "Bishops",
	"Rooks", "Queens", "King", "Mobility",
}

// evaluator carries the per-evaluation working sets: outpost squares,
// mobility areas, king zones, and the danger/mobility accumulators filled
// during the piece loops.
type evaluator struct {
	b *board.Board

	outposts     [2]board.Bitboard
	mobilityArea [2]board.Bitboard
	kingZone     [2]board.Bitboard

	kingDanger [2]score
	mobility   [2]score

	verbose bool
	terms   [numTerms][2]score
}

// Evaluate returns the static evaluation in centipawns relative to the
// side to move.
func Evaluate(b *board.Board) int {
	e := evaluator{b: b}
	return e.run()
}

// EvaluateVerbose evaluates and writes the per-term diagnostic table.
func EvaluateVerbose(b *board.Board, w io.Writer) int {
	e := evaluator{b: b, verbose: true}
	result := e.run()
	e.print(w, result)
	return result
}

func (e *evaluator) run() int {
	e.initialize(board.White)
	e.initialize(board.Black)

	total := e.record(termMaterial, e.b.MaterialScore(), score{})
	total = total.Add(e.record(termPieceSq, e.b.PSQScore(), score{}))
	total = total.Add(e.record(termPawns, e.pawnsScore(board.White), e.pawnsScore(board.Black)))
	total = total.Add(e.record(termKnights, e.piecesScore(board.White, board.Knight), e.piecesScore(board.Black, board.Knight)))
	total = total.Add(e.record(termBishops, e.piecesScore(board.White, board.Bishop), e.piecesScore(board.Black, board.Bishop)))
	total = total.Add(e.record(termRooks, e.piecesScore(board.White, board.Rook), e.piecesScore(board.Black, board.Rook)))
	total = total.Add(e.record(termQueens, e.piecesScore(board.White, board.Queen), e.piecesScore(board.Black, board.Queen)))
	total = total.Add(e.record(termKing, e.kingScore(board.White), e.kingScore(board.Black)))

	// Mobility is summed during the piece loops, so it lands last.
	total = total.Add(e.record(termMobility, e.mobility[board.White], e.mobility[board.Black]))

	// Scale the endgame component, then taper by phase.
	total.Eg = total.Eg * e.scaleFactor() / scaleLimit
	result := total.Taper(e.phase(), phaseLimit)

	if e.b.SideToMove() == board.White {
		result += tempoBonus
	} else {
		result = -result - tempoBonus
	}

	// Keep static scores out of the mate band, whatever the material.
	return clamp(result, -MateInMax+1, MateInMax-1)
}

// record stores per-color term scores for the verbose table and returns
// white minus black.
func (e *evaluator) record(term evalTerm, white, black score) score {
	if e.verbose {
		e.terms[term][board.White] = white
		e.terms[term][board.Black] = black
	}
	return white.Sub(black)
}

func (e *evaluator) initialize(c board.Color) {
	b := e.b
	them := c.Other()

	pawns := b.Pieces(c, board.Pawn)
	enemyPawns := b.Pieces(them, board.Pawn)

	e.outposts[c] = outpostSquares(c, pawns, enemyPawns)

	rank2 := board.Rank2BB
	if c == board.Black {
		rank2 = board.Rank7BB
	}
	e.mobilityArea[c] = ^((pawns & rank2) | enemyPawns.PawnAttacks(them))

	// King zone: the 3x3 block around the king, clamped to the interior.
	ksq := b.KingSq(c)
	center := board.NewSquare(clamp(ksq.File(), 1, 6), clamp(ksq.Rank(), 1, 6))
	e.kingZone[c] = board.Attacks(board.King, center, 0) | board.SquareBB(center)
}

// outpostSquares returns holes in the enemy pawn span, inside the outpost
// zone, that our pawns defend.
func outpostSquares(c board.Color, pawns, enemyPawns board.Bitboard) board.Bitboard {
	zone := board.WhiteOutposts
	if c == board.Black {
		zone = board.BlackOutposts
	}
	holes := ^enemyPawns.PawnAttackSpan(c.Other()) & zone
	return holes & pawns.PawnAttacks(c)
}

func (e *evaluator) pawnsScore(c board.Color) score {
	b := e.b
	them := c.Other()
	var s score

	pawns := b.Pieces(c, board.Pawn)
	enemyPawns := b.Pieces(them, board.Pawn)
	attacks := pawns.PawnAttacks(c)

	e.kingDanger[them] = e.kingDanger[them].Add(
		kingDangerPenalty[board.Pawn].Mul((attacks & e.kingZone[them]).PopCount()))

	s = s.Add(isoPawnPenalty.Mul(isolatedPawns(pawns).PopCount()))
	s = s.Add(backwardPawnPenalty.Mul(backwardPawns(c, pawns, enemyPawns).PopCount()))
	s = s.Add(doubledPawnPenalty.Mul(doubledPawns(c, pawns).PopCount()))

	return s
}

// isolatedPawns have no friendly pawn on either adjacent file.
func isolatedPawns(pawns board.Bitboard) board.Bitboard {
	fill := pawns.FileFill()
	return pawns &^ fill.West() &^ fill.East()
}

// backwardPawns have their stop square covered by an enemy pawn while no
// friendly pawn can ever defend it.
func backwardPawns(c board.Color, pawns, enemyPawns board.Bitboard) board.Bitboard {
	them := c.Other()
	stops := pawns.PawnPush(c)
	span := pawns.PawnAttackSpan(c)
	enemyAttacks := enemyPawns.PawnAttacks(them)
	return (stops & enemyAttacks &^ span).PawnPush(them)
}

// doubledPawns have a friendly pawn behind them on the same file and no
// pawn support.
func doubledPawns(c board.Color, pawns board.Bitboard) board.Bitboard {
	return pawns & pawns.FrontSpan(c) &^ pawns.PawnAttacks(c)
}

func (e *evaluator) piecesScore(c board.Color, pt board.PieceType) score {
	b := e.b
	them := c.Other()
	var s score

	occ := b.All()
	pawns := b.Pieces(c, board.Pawn)
	enemyPawns := b.Pieces(them, board.Pawn)

	if pt == board.Bishop && b.Count(c, board.Bishop) > 1 {
		s = s.Add(bishopPairBonus)
	}

	pieces := b.Pieces(c, pt)
	for pieces != 0 {
		sq := pieces.PopLSB()
		bb := board.SquareBB(sq)
		moves := board.Attacks(pt, sq, occ)

		e.kingDanger[them] = e.kingDanger[them].Add(
			kingDangerPenalty[pt].Mul((moves & e.kingZone[them]).PopCount()))

		n := (moves & e.mobilityArea[c]).PopCount()
		e.mobility[c] = e.mobility[c].Add(mobilityBonus[pt][n])

		if pt == board.Knight || pt == board.Bishop {
			if bb&e.outposts[c] != 0 {
				s = s.Add(outpostBonus[b2i(pt == board.Knight)])
			} else if pt == board.Knight && moves&e.outposts[c] != 0 {
				s = s.Add(reachableOutpostBonus)
			}

			// Minor sheltered directly behind a friendly pawn.
			if bb&pawns.PawnPush(them) != 0 {
				s = s.Add(minorBehindPawnBonus)
			}

			if pt == board.Bishop {
				if (board.CenterSquares & board.Attacks(board.Bishop, sq, pawns)).MoreThanOne() {
					s = s.Add(bishopLongDiagBonus)
				}
				s = s.Add(bishopPawnBlockerPenalty.Mul(e.bishopPawnBlockers(c, bb)))
			}
		}

		if pt == board.Rook {
			fileBB := board.FileBB(sq.File())
			if pawns&fileBB == 0 {
				s = s.Add(rookOpenFileBonus[b2i(enemyPawns&fileBB == 0)])
			} else if pawns&fileBB&occ.PawnPush(them) != 0 {
				s = s.Add(rookClosedFilePenalty)
			}
		}

		if pt == board.Queen && e.discoveredAttackOnQueen(c, sq, occ) {
			s = s.Add(queenDiscoveredPenalty)
		}
	}

	return s
}

// bishopPawnBlockers weights same-colored-square pawns by how congested the
// center is and whether the bishop lacks pawn protection.
func (e *evaluator) bishopPawnBlockers(c board.Color, bb board.Bitboard) int {
	b := e.b
	them := c.Other()
	pawns := b.Pieces(c, board.Pawn)

	blockedPawns := pawns & b.All().PawnPush(them)
	sameColor := board.LightSquares
	if bb&board.DarkSquares != 0 {
		sameColor = board.DarkSquares
	}

	factor := (blockedPawns & board.CenterFiles).PopCount()
	if pawns.PawnAttacks(c)&bb == 0 {
		factor++
	}
	return factor * (pawns & sameColor).PopCount()
}

// discoveredAttackOnQueen reports an enemy bishop or rook x-raying the
// queen through exactly one piece.
func (e *evaluator) discoveredAttackOnQueen(c board.Color, sq board.Square, occ board.Bitboard) bool {
	b := e.b
	them := c.Other()

	snipers := (board.Attacks(board.Bishop, sq, 0) & b.Pieces(them, board.Bishop)) |
		(board.Attacks(board.Rook, sq, 0) & b.Pieces(them, board.Rook))
	for snipers != 0 {
		sniper := snipers.PopLSB()
		between := board.Between(sq, sniper) & occ
		if between != 0 && !between.MoreThanOne() {
			return true
		}
	}
	return false
}

func (e *evaluator) kingScore(c board.Color) score {
	b := e.b
	s := e.kingShelter(c, b.KingSq(c))

	// Take the best of the actual shelter and the post-castling shelters
	// while the rights remain.
	if b.CanCastleOO(c) {
		if oo := e.kingShelter(c, kingDestOO[c]); s.Less(oo) {
			s = oo
		}
	}
	if b.CanCastleOOO(c) {
		if ooo := e.kingShelter(c, kingDestOOO[c]); s.Less(ooo) {
			s = ooo
		}
	}

	return s.Add(e.kingDanger[c])
}

var (
	kingDestOO  = [2]board.Square{board.G1, board.G8}
	kingDestOOO = [2]board.Square{board.C1, board.C8}
)

func (e *evaluator) kingShelter(c board.Color, ksq board.Square) score {
	b := e.b
	them := c.Other()

	inFront := board.RankBB(ksq.Rank()).FrontSpan(c)
	enemyPawns := b.Pieces(them, board.Pawn) & inFront
	pawns := b.Pieces(c, board.Pawn) & inFront &^ enemyPawns.PawnAttacks(them)

	file := clamp(ksq.File(), 1, 6)
	s := e.fileShelter(c, pawns, enemyPawns, file-1)
	s = s.Add(e.fileShelter(c, pawns, enemyPawns, file))
	s = s.Add(e.fileShelter(c, pawns, enemyPawns, file+1))

	s = s.Add(kingFileBonus[ksq.File()])

	friendlyOpen := b.Pieces(c, board.Pawn)&board.FileBB(ksq.File()) == 0
	enemyOpen := b.Pieces(them, board.Pawn)&board.FileBB(ksq.File()) == 0
	return s.Add(kingOpenFileBonus[b2i(friendlyOpen)][b2i(enemyOpen)])
}

// fileShelter scores one file of the king's shelter: the closer our pawn,
// the better; the closer the enemy storm pawn, the worse, softened when
// the storm pawn is blocked by ours.
func (e *evaluator) fileShelter(c board.Color, pawns, enemyPawns board.Bitboard, file int) score {
	them := c.Other()

	rank := 0
	if bb := pawns & board.FileBB(file); bb != 0 {
		rank = bb.Advanced(them).RelativeRank(c)
	}
	s := pawnRankShelter[rank]

	enemyRank := 0
	if bb := enemyPawns & board.FileBB(file); bb != 0 {
		enemyRank = bb.Advanced(them).RelativeRank(c)
	}
	blocked := rank != 0 && rank+1 == enemyRank
	return s.Add(pawnRankStorm[b2i(blocked)][enemyRank])
}

// phase maps the remaining non-pawn material onto [0, phaseLimit].
func (e *evaluator) phase() int {
	npm := e.b.NonPawnMaterial(board.White) + e.b.NonPawnMaterial(board.Black)
	material := clamp(npm, egLimit, mgLimit)
	return (material - egLimit) * phaseLimit / (mgLimit - egLimit)
}

// scaleFactor shrinks the endgame score as the side to move runs out of
// pawns.
func (e *evaluator) scaleFactor() int {
	pawnCount := e.b.Count(e.b.SideToMove(), board.Pawn)
	return min(scaleLimit, 36+5*pawnCount)
}

func (e *evaluator) print(w io.Writer, result int) {
	fmt.Fprintf(w, "     Term    |    White    |    Black    |    Total\n")
	fmt.Fprintf(w, "             |   MG    EG  |   MG    EG  |   MG    EG\n")
	fmt.Fprintf(w, " ------------+-------------+-------------+------------\n")
	for term := termMaterial; term < numTerms; term++ {
		white := e.terms[term][board.White]
		black := e.terms[term][board.Black]
		if term == termMaterial || term == termPieceSq {
			total := white
			fmt.Fprintf(w, " %-11s |  ----  ---- |  ----  ---- | %5d %5d\n",
				termNames[term], total.Mg, total.Eg)
			continue
		}
		total := white.Sub(black)
		fmt.Fprintf(w, " %-11s | %5d %5d | %5d %5d | %5d %5d\n",
			termNames[term], white.Mg, white.Eg, black.Mg, black.Eg, total.Mg, total.Eg)
	}
	fmt.Fprintf(w, " ------------+-------------+-------------+------------\n")
	fmt.Fprintf(w, "Evaluation: %+.2f\n", float64(result)/float64(board.PieceScore[board.Pawn].Mg))
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
