package engine

import "fmt"

// SearchStats collects one worker's search counters. The debug report after
// a search shows the main worker's counters only; helper counters are not
// summed into it.
type SearchStats struct {
	Nodes  uint64
	QNodes uint64

	TTProbes  uint64
	TTHits    uint64
	TTCutoffs uint64

	BetaCutoffs      uint64
	FirstMoveCutoffs uint64
}

// Add accumulates another worker's counters.
func (s *SearchStats) Add(o SearchStats) {
	s.Nodes += o.Nodes
	s.QNodes += o.QNodes
	s.TTProbes += o.TTProbes
	s.TTHits += o.TTHits
	s.TTCutoffs += o.TTCutoffs
	s.BetaCutoffs += o.BetaCutoffs
	s.FirstMoveCutoffs += o.FirstMoveCutoffs
}

// String summarizes the counters as ratios: TT hit rate and how often the
// first move searched produced the beta cutoff.
func (s SearchStats) String() string {
	return fmt.Sprintf(
		"nodes %d qnodes %d tthits %.1f%% ttcutoffs %d ordering %.1f%%",
		s.Nodes, s.QNodes,
		percent(s.TTHits, s.TTProbes),
		s.TTCutoffs,
		percent(s.FirstMoveCutoffs, s.BetaCutoffs),
	)
}

func percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
