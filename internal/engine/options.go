package engine

import (
	"strconv"

	"github.com/zm-bm/latrunculi/internal/board"
)

// OptionNotSet marks an absent go-command parameter.
const OptionNotSet = -1

// SearchOptions carries one search request: the root position and the
// depth/time/node budgets from the go command.
type SearchOptions struct {
	FEN       string
	Debug     bool
	Depth     int
	MoveTime  int
	Nodes     int
	WTime     int
	BTime     int
	WInc      int
	BInc      int
	MovesToGo int
}

// NewSearchOptions returns options with every budget unset.
func NewSearchOptions() SearchOptions {
	return SearchOptions{
		FEN:       board.StartFEN,
		Depth:     MaxDepth,
		MoveTime:  OptionNotSet,
		Nodes:     OptionNotSet,
		WTime:     OptionNotSet,
		BTime:     OptionNotSet,
		WInc:      OptionNotSet,
		BInc:      OptionNotSet,
		MovesToGo: OptionNotSet,
	}
}

// ParseGo builds search options from go-command tokens. Unknown tokens are
// skipped; out-of-range values are clamped.
func ParseGo(tokens []string) SearchOptions {
	opts := NewSearchOptions()

	for i := 0; i < len(tokens); i++ {
		if i+1 >= len(tokens) {
			break
		}
		value, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			continue
		}

		switch tokens[i] {
		case "depth":
			opts.Depth = clamp(value, 1, MaxDepth)
			i++
		case "movetime":
			opts.MoveTime = maxInt(value, 1)
			i++
		case "nodes":
			opts.Nodes = maxInt(value, 0)
			i++
		case "wtime":
			opts.WTime = maxInt(value, 0)
			i++
		case "btime":
			opts.BTime = maxInt(value, 0)
			i++
		case "winc":
			opts.WInc = maxInt(value, 0)
			i++
		case "binc":
			opts.BInc = maxInt(value, 0)
			i++
		case "movestogo":
			opts.MovesToGo = maxInt(value, 1)
			i++
		}
	}
	return opts
}

// SearchTimeMS translates the time control into a per-move budget in
// milliseconds for the given side, or OptionNotSet for an unbounded
// search. With side clocks the budget is clock/max(movestogo, 30) plus the
// increment, minus a small buffer, floored at 10ms.
func (o *SearchOptions) SearchTimeMS(c board.Color) int {
	if o.MoveTime != OptionNotSet {
		return o.MoveTime
	}
	if o.WTime == OptionNotSet || o.BTime == OptionNotSet {
		return OptionNotSet
	}

	clock, inc := o.WTime, o.WInc
	if c == board.Black {
		clock, inc = o.BTime, o.BInc
	}
	if inc == OptionNotSet {
		inc = 0
	}

	moves := 30
	if o.MovesToGo != OptionNotSet && o.MovesToGo > moves {
		moves = o.MovesToGo
	}

	budget := clock/moves + inc - 50
	return maxInt(budget, 10)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
