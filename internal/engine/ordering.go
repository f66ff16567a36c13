package engine

import "github.com/zm-bm/latrunculi/internal/board"

// Move ordering priority bands. Higher searches first; bands are wide
// enough that in-band bonuses (SEE, promotion value, history) never
// overflow into the band above.
const (
	PriorityPV      uint16 = 1 << 15
	PriorityTT      uint16 = 1 << 14
	PriorityPromo   uint16 = 1 << 13
	PriorityCapture uint16 = 1 << 12
	PriorityKiller  uint16 = 1 << 11
	PriorityHistory uint16 = 1 << 10
)

// OrderMoves attaches a priority to every move and stable-sorts the list
// descending: previous-iteration PV move, TT move, promotions, good
// captures by SEE, killers, quiets by history, then losing captures.
func OrderMoves(b *board.Board, ml *board.MoveList, heur *Heuristics, ply int, pvMove, ttMove board.Move) {
	us := b.SideToMove()

	ml.Score(func(mv board.Move) uint16 {
		if mv == pvMove {
			return PriorityPV
		}
		if mv == ttMove {
			return PriorityTT
		}
		if mv.Type() == board.Promotion {
			return PriorityPromo + uint16(mv.PromoPiece().Value())
		}
		if b.IsCapture(mv) {
			if see := b.SEE(mv); see >= 0 {
				return PriorityCapture + uint16(see)
			}
			return 0
		}
		if heur.Killers.IsKiller(mv, ply) {
			return PriorityKiller
		}
		if h := heur.History.Get(us, mv.From(), mv.To()); h > 0 {
			return uint16(h)
		}
		return 0
	})
	ml.Sort()
}
