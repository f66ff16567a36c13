package engine

import (
	"strings"

	"github.com/zm-bm/latrunculi/internal/board"
)

// PVTable stores one move line per ply. Updating a ply prepends the move
// to the line collected one ply deeper.
type PVTable struct {
	lines [MaxDepth + 1][]board.Move
}

// Update sets the best continuation from ply to start with mv.
func (pv *PVTable) Update(ply int, mv board.Move) {
	if ply >= MaxDepth {
		return
	}
	line := pv.lines[ply][:0]
	line = append(line, mv)
	line = append(line, pv.lines[ply+1]...)
	pv.lines[ply] = line
}

// BestMove returns the first move of the line at ply, or the null move.
func (pv *PVTable) BestMove(ply int) board.Move {
	if ply >= len(pv.lines) || len(pv.lines[ply]) == 0 {
		return board.NullMove
	}
	return pv.lines[ply][0]
}

// Line returns the principal variation from the root.
func (pv *PVTable) Line() []board.Move {
	return pv.lines[0]
}

// Reset clears every line.
func (pv *PVTable) Reset() {
	for i := range pv.lines {
		pv.lines[i] = pv.lines[i][:0]
	}
}

func (pv *PVTable) String() string {
	var sb strings.Builder
	for i, mv := range pv.lines[0] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(mv.String())
	}
	return sb.String()
}
