package engine

import (
	"time"

	"github.com/zm-bm/latrunculi/internal/board"
)

// SearchInfo is one completed-depth report from the main worker.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// Protocol receives engine output. Only the main worker calls it while a
// search runs; the protocol layer owns the formatting.
type Protocol interface {
	Info(SearchInfo)
	InfoString(string)
	BestMove(board.Move)
}
