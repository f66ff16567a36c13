package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardBasics(t *testing.T) {
	bb := SquareBB(E4)
	assert.True(t, bb.IsSet(E4))
	assert.False(t, bb.IsSet(E5))
	assert.Equal(t, 1, bb.PopCount())
	assert.Equal(t, E4, bb.LSB())
	assert.Equal(t, E4, bb.MSB())

	bb |= SquareBB(A1) | SquareBB(H8)
	assert.Equal(t, 3, bb.PopCount())
	assert.Equal(t, A1, bb.LSB())
	assert.Equal(t, H8, bb.MSB())
	assert.True(t, bb.MoreThanOne())

	popped := bb.PopLSB()
	assert.Equal(t, A1, popped)
	assert.Equal(t, 2, bb.PopCount())
}

func TestBitboardShifts(t *testing.T) {
	e4 := SquareBB(E4)
	assert.Equal(t, SquareBB(E5), e4.North())
	assert.Equal(t, SquareBB(E3), e4.South())
	assert.Equal(t, SquareBB(F4), e4.East())
	assert.Equal(t, SquareBB(D4), e4.West())
	assert.Equal(t, SquareBB(F5), e4.NorthEast())
	assert.Equal(t, SquareBB(D5), e4.NorthWest())
	assert.Equal(t, SquareBB(F3), e4.SouthEast())
	assert.Equal(t, SquareBB(D3), e4.SouthWest())

	// Edge wraps must vanish.
	assert.Equal(t, EmptyBB, SquareBB(A4).West())
	assert.Equal(t, EmptyBB, SquareBB(H4).East())
	assert.Equal(t, EmptyBB, SquareBB(H4).NorthEast())
	assert.Equal(t, EmptyBB, SquareBB(A4).SouthWest())
}

func TestBitboardFills(t *testing.T) {
	d4 := SquareBB(D4)
	assert.Equal(t, FileDBB, d4.FileFill())
	assert.Equal(t, SquareBB(D5)|SquareBB(D6)|SquareBB(D7)|SquareBB(D8), d4.FrontSpan(White))
	assert.Equal(t, SquareBB(D3)|SquareBB(D2)|SquareBB(D1), d4.FrontSpan(Black))
}

func TestPawnAttackSets(t *testing.T) {
	assert.Equal(t, SquareBB(D5)|SquareBB(F5), SquareBB(E4).PawnAttacks(White))
	assert.Equal(t, SquareBB(D3)|SquareBB(F3), SquareBB(E4).PawnAttacks(Black))
	assert.Equal(t, SquareBB(B3), SquareBB(A2).PawnAttacks(White))
}

func TestBetweenAndLine(t *testing.T) {
	assert.Equal(t, SquareBB(B1)|SquareBB(C1)|SquareBB(D1)|SquareBB(E1)|SquareBB(F1)|SquareBB(G1),
		Between(A1, H1))
	assert.Equal(t, SquareBB(D2)|SquareBB(C3)|SquareBB(B4), Between(E1, A5))
	assert.Equal(t, EmptyBB, Between(A1, B3))
	assert.Equal(t, EmptyBB, Between(E4, F5)) // adjacent diagonal

	assert.True(t, Line(A1, H8).IsSet(D4))
	assert.True(t, Aligned(A1, D4, H8))
	assert.False(t, Aligned(A1, D4, H7))
	assert.Equal(t, EmptyBB, Line(A1, B3))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance(E4, E4))
	assert.Equal(t, 1, Distance(E4, F5))
	assert.Equal(t, 7, Distance(A1, H8))
	assert.Equal(t, 7, Distance(A1, A8))
	assert.Equal(t, 4, Distance(B2, F3))
}

func TestAttacksTables(t *testing.T) {
	// Knight on a corner has two targets.
	assert.Equal(t, SquareBB(B3)|SquareBB(C2), Attacks(Knight, A1, UniverseBB))

	// Sliders stop at the first occupied square.
	occ := SquareBB(E6)
	rook := Attacks(Rook, E4, occ)
	assert.True(t, rook.IsSet(E5))
	assert.True(t, rook.IsSet(E6))
	assert.False(t, rook.IsSet(E7))

	queen := Attacks(Queen, D4, EmptyBB)
	assert.Equal(t, Attacks(Bishop, D4, EmptyBB)|Attacks(Rook, D4, EmptyBB), queen)

	assert.Equal(t, 8, Attacks(King, E4, EmptyBB).PopCount())
	assert.Equal(t, 3, Attacks(King, A1, EmptyBB).PopCount())
}
