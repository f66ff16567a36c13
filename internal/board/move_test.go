package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovePacking(t *testing.T) {
	mv := NewMove(E2, E4)
	assert.Equal(t, E2, mv.From())
	assert.Equal(t, E4, mv.To())
	assert.Equal(t, Normal, mv.Type())
	assert.Equal(t, "e2e4", mv.String())

	promo := NewPromotion(B7, A8, Queen)
	assert.Equal(t, B7, promo.From())
	assert.Equal(t, A8, promo.To())
	assert.Equal(t, Promotion, promo.Type())
	assert.Equal(t, Queen, promo.PromoPiece())
	assert.Equal(t, "b7a8q", promo.String())

	ep := NewEnPassant(E5, D6)
	assert.Equal(t, EnPassant, ep.Type())

	castle := NewCastle(E1, G1)
	assert.Equal(t, Castle, castle.Type())
	assert.Equal(t, "e1g1", castle.String())

	assert.True(t, NullMove.IsNull())
	assert.Equal(t, "0000", NullMove.String())
}

func TestPromoPieceRange(t *testing.T) {
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		mv := NewPromotion(C7, C8, pt)
		assert.Equal(t, pt, mv.PromoPiece())
	}
}

func TestParseMoveResolvesType(t *testing.T) {
	b, err := New(kiwipeteFEN)
	require.NoError(t, err)

	castle, err := b.ParseMove("e1g1")
	require.NoError(t, err)
	assert.Equal(t, Castle, castle.Type())

	normal, err := b.ParseMove("e2a6")
	require.NoError(t, err)
	assert.Equal(t, Normal, normal.Type())

	_, err = b.ParseMove("zz99")
	assert.Error(t, err)
	_, err = b.ParseMove("e7e8x")
	assert.Error(t, err)
}

func TestMoveListSort(t *testing.T) {
	ml := &MoveList{}
	a, b_, c := NewMove(A2, A3), NewMove(B2, B3), NewMove(C2, C3)
	ml.Add(a)
	ml.Add(b_)
	ml.Add(c)

	prio := map[Move]uint16{a: 10, b_: 30, c: 20}
	ml.Score(func(m Move) uint16 { return prio[m] })
	ml.Sort()

	assert.Equal(t, b_, ml.Get(0))
	assert.Equal(t, c, ml.Get(1))
	assert.Equal(t, a, ml.Get(2))
}

func TestMoveListStableSort(t *testing.T) {
	ml := &MoveList{}
	moves := []Move{NewMove(A2, A3), NewMove(B2, B3), NewMove(C2, C3)}
	for _, m := range moves {
		ml.Add(m)
	}
	ml.Score(func(Move) uint16 { return 7 })
	ml.Sort()

	for i, m := range moves {
		assert.Equal(t, m, ml.Get(i))
	}
}

func TestSquareParsing(t *testing.T) {
	sq, err := ParseSquare("e4")
	require.NoError(t, err)
	assert.Equal(t, E4, sq)
	assert.Equal(t, "e4", sq.String())
	assert.Equal(t, 4, sq.File())
	assert.Equal(t, 3, sq.Rank())
	assert.Equal(t, E5, E4.Mirror())
	assert.Equal(t, E4, E4.Mirror().Mirror())

	_, err = ParseSquare("i9")
	assert.Error(t, err)
	_, err = ParseSquare("e")
	assert.Error(t, err)
}
