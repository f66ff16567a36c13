package engine

import (
	"math/bits"

	"github.com/zm-bm/latrunculi/internal/board"
)

// Bound classifies the score stored in a table entry.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot. The 16-bit partial key
// distinguishes positions within a cluster; readers must validate it
// before trusting the other fields.
type Entry struct {
	Move  board.Move
	Score int16
	Key16 uint16
	Depth uint8
	Age   uint8
	Bound Bound
}

// clusterSize entries share one cache-line-aligned cluster.
const clusterSize = 4

type cluster struct {
	entries [clusterSize]Entry
	_       [24]byte // pad to one 64-byte cache line
}

// Table is a clustered transposition table shared by all workers. Access
// is deliberately lock-free: entries are small, torn reads are filtered by
// the partial key check, and search correctness never depends on a hit.
type Table struct {
	clusters []cluster
	shift    uint
	age      uint8
	sizeMB   int
}

// NewTable allocates a table of roughly the given size in megabytes.
func NewTable(megabytes int) *Table {
	t := &Table{}
	t.Resize(megabytes)
	return t
}

func (t *Table) index(key uint64) uint64 {
	return (key * 0x9E3779B97F4A7C15) >> t.shift
}

// Probe returns the entry matching the key, or nil.
func (t *Table) Probe(key uint64) *Entry {
	key16 := uint16(key >> 48)
	c := &t.clusters[t.index(key)]

	for i := range c.entries {
		e := &c.entries[i]
		if e.Key16 == key16 && e.Bound != BoundNone {
			return e
		}
	}
	return nil
}

// Store writes a search result. Mate scores are adjusted by the ply so the
// stored value is distance-from-this-position; ScoreAt applies the inverse.
// Replacement prefers the slot already holding the key, then any slot from
// an older search, then the shallowest.
func (t *Table) Store(key uint64, mv board.Move, score, depth int, bound Bound, ply int) {
	key16 := uint16(key >> 48)
	c := &t.clusters[t.index(key)]

	target := &c.entries[0]
	for i := range c.entries {
		e := &c.entries[i]
		if e.Key16 == key16 {
			target = e
			break
		}
		eStale, targetStale := e.Age != t.age, target.Age != t.age
		if (eStale && !targetStale) || (eStale == targetStale && e.Depth < target.Depth) {
			target = e
		}
	}

	if depth < 0 {
		depth = 0
	}
	*target = Entry{
		Move:  mv,
		Score: int16(scoreToTT(score, ply)),
		Key16: key16,
		Depth: uint8(depth),
		Age:   t.age,
		Bound: bound,
	}
}

// ScoreAt converts the stored score back to a root-relative value.
func (e *Entry) ScoreAt(ply int) int {
	return scoreFromTT(int(e.Score), ply)
}

func scoreToTT(score, ply int) int {
	if score > MateInMax {
		return score + ply
	}
	if score < -MateInMax {
		return score - ply
	}
	return score
}

func scoreFromTT(score, ply int) int {
	if score > MateInMax {
		return score - ply
	}
	if score < -MateInMax {
		return score + ply
	}
	return score
}

// AgeTable starts a new generation; stale entries become preferred
// replacement victims.
func (t *Table) AgeTable() {
	t.age++
}

// Clear zeroes every cluster and resets the age counter.
func (t *Table) Clear() {
	for i := range t.clusters {
		t.clusters[i] = cluster{}
	}
	t.age = 0
}

// Resize reallocates the table, rounding down to the largest power-of-two
// cluster count that fits the requested megabytes.
func (t *Table) Resize(megabytes int) {
	if megabytes < 1 {
		megabytes = 1
	}
	bytes := uint64(megabytes) << 20
	clusters := bytes / 64
	clusters = 1 << (bits.Len64(clusters) - 1)

	t.clusters = make([]cluster, int(clusters))
	t.shift = uint(64 - bits.TrailingZeros64(clusters))
	t.age = 0
	t.sizeMB = megabytes
}

// SizeMB returns the requested size in megabytes.
func (t *Table) SizeMB() int {
	return t.sizeMB
}
