package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchStatsAccumulate(t *testing.T) {
	a := SearchStats{Nodes: 10, QNodes: 5, TTProbes: 8, TTHits: 4, TTCutoffs: 2, BetaCutoffs: 6, FirstMoveCutoffs: 5}
	b := SearchStats{Nodes: 1, QNodes: 1, TTProbes: 2, TTHits: 1, TTCutoffs: 1, BetaCutoffs: 1, FirstMoveCutoffs: 1}

	a.Add(b)
	assert.Equal(t, uint64(11), a.Nodes)
	assert.Equal(t, uint64(6), a.QNodes)
	assert.Equal(t, uint64(10), a.TTProbes)
	assert.Equal(t, uint64(5), a.TTHits)
	assert.Equal(t, uint64(3), a.TTCutoffs)
	assert.Equal(t, uint64(7), a.BetaCutoffs)
	assert.Equal(t, uint64(6), a.FirstMoveCutoffs)
}

func TestSearchStatsString(t *testing.T) {
	s := SearchStats{Nodes: 100, QNodes: 40, TTProbes: 50, TTHits: 25, BetaCutoffs: 10, FirstMoveCutoffs: 9}
	out := s.String()
	assert.Contains(t, out, "nodes 100")
	assert.Contains(t, out, "tthits 50.0%")
	assert.Contains(t, out, "ordering 90.0%")

	// Empty stats must not divide by zero.
	assert.NotPanics(t, func() { _ = SearchStats{}.String() })
}
