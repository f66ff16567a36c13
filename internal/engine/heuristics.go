package engine

import "github.com/zm-bm/latrunculi/internal/board"

// MaxHistory saturates the butterfly counters and doubles as the width of
// the history priority band.
const MaxHistory = 1 << 10

// HistoryTable holds per-(color, from, to) counters for quiet moves that
// caused beta cutoffs.
type HistoryTable struct {
	counters [2][64][64]int16
}

// Get returns the counter for a move.
func (h *HistoryTable) Get(c board.Color, from, to board.Square) int {
	return int(h.counters[c][from][to])
}

// Update applies a gravity bonus: large counters absorb less of each new
// bonus, keeping the table bounded like a leaky integrator.
func (h *HistoryTable) Update(c board.Color, from, to board.Square, depth int) {
	bonus := depth * depth
	if bonus > MaxHistory {
		bonus = MaxHistory
	}

	entry := &h.counters[c][from][to]
	*entry += int16(bonus - int(*entry)*bonus/MaxHistory)
}

// Age halves every counter.
func (h *HistoryTable) Age() {
	for c := range h.counters {
		for from := range h.counters[c] {
			for to := range h.counters[c][from] {
				h.counters[c][from][to] >>= 1
			}
		}
	}
}

// Clear zeroes the table.
func (h *HistoryTable) Clear() {
	for c := range h.counters {
		for from := range h.counters[c] {
			for to := range h.counters[c][from] {
				h.counters[c][from][to] = 0
			}
		}
	}
}

// KillerMoves keeps two quiet cutoff moves per ply.
type KillerMoves struct {
	killers [MaxDepth][2]board.Move
}

// Update shifts the new killer into slot 0 unless it already sits there.
func (k *KillerMoves) Update(mv board.Move, ply int) {
	if ply >= MaxDepth || k.killers[ply][0] == mv {
		return
	}
	k.killers[ply][1] = k.killers[ply][0]
	k.killers[ply][0] = mv
}

// IsKiller reports whether the move occupies either slot at the ply.
func (k *KillerMoves) IsKiller(mv board.Move, ply int) bool {
	return ply < MaxDepth && (k.killers[ply][0] == mv || k.killers[ply][1] == mv)
}

// Clear empties every slot.
func (k *KillerMoves) Clear() {
	for ply := range k.killers {
		k.killers[ply][0] = board.NullMove
		k.killers[ply][1] = board.NullMove
	}
}

// Heuristics bundles the worker-local move ordering state.
type Heuristics struct {
	History HistoryTable
	Killers KillerMoves
}

// CutoffBonus records a quiet move that refuted the line at this ply.
func (h *Heuristics) CutoffBonus(c board.Color, mv board.Move, ply, depth int) {
	h.Killers.Update(mv, ply)
	h.History.Update(c, mv.From(), mv.To(), depth)
}

// Age decays the history table between iterations.
func (h *Heuristics) Age() {
	h.History.Age()
}

// Clear resets all ordering state for a new search.
func (h *Heuristics) Clear() {
	h.History.Clear()
	h.Killers.Clear()
}
