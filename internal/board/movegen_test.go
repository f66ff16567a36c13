package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartposMoveCount(t *testing.T) {
	b, err := New(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, 20, LegalMoves(b).Len())
}

func TestCapturesPlusQuietsCoverAll(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN, pos5FEN} {
		b, err := New(fen)
		require.NoError(t, err)

		all := Generate(b, AllMoves)
		captures := Generate(b, CaptureMoves)
		quiets := Generate(b, QuietMoves)

		assert.Equal(t, all.Len(), captures.Len()+quiets.Len(), fen)
		for i := 0; i < captures.Len(); i++ {
			mv := captures.Get(i)
			assert.True(t, b.IsCapture(mv) || mv.Type() == Promotion, "%s in %s", mv, fen)
			assert.True(t, all.Contains(mv))
		}
		for i := 0; i < quiets.Len(); i++ {
			mv := quiets.Get(i)
			assert.True(t, b.IsQuiet(mv), "%s in %s", mv, fen)
			assert.True(t, all.Contains(mv))
		}
	}
}

func TestEvasionsWhileInCheck(t *testing.T) {
	// White king on e2 checked by a rook on e8; block, capture, or step
	// aside.
	b, err := New("4r1k1/8/8/8/8/8/3QK3/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.InCheck())

	// Every generated move, in any mode, must be an evasion.
	all := Generate(b, AllMoves)
	captures := Generate(b, CaptureMoves)
	assert.Equal(t, all.Len(), captures.Len())

	legal := LegalMoves(b)
	for i := 0; i < legal.Len(); i++ {
		mv := legal.Get(i)
		b.Make(mv)
		// The mover must not remain in check.
		assert.Equal(t, EmptyBB, b.AttackersBy(b.KingSq(White), Black, b.All()), "%s", mv)
		b.Unmake()
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Knight on f6 and rook on e8 both check the king on e4.
	b, err := New("k3r3/8/5n2/8/4K3/8/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.Checkers().MoreThanOne())

	legal := LegalMoves(b)
	for i := 0; i < legal.Len(); i++ {
		assert.Equal(t, E4, legal.Get(i).From())
	}
	assert.Greater(t, legal.Len(), 0)
}

func TestEnPassantEvadesPawnCheck(t *testing.T) {
	// Black just played d7d5, checking the king on e4; e5xd6 en passant
	// captures the checker.
	b, err := New("4k3/8/8/3pP3/4K3/8/8/8 w - d6 0 1")
	require.NoError(t, err)
	require.True(t, b.InCheck())

	legal := LegalMoves(b)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i).Type() == EnPassant {
			found = true
		}
	}
	assert.True(t, found, "en passant evasion missing: %s", legal)
}

func TestPromotionGeneration(t *testing.T) {
	b, err := New("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	captures := Generate(b, CaptureMoves)
	promos := 0
	for i := 0; i < captures.Len(); i++ {
		if captures.Get(i).Type() == Promotion {
			promos++
		}
	}
	assert.Equal(t, 4, promos)

	quiets := Generate(b, QuietMoves)
	for i := 0; i < quiets.Len(); i++ {
		assert.NotEqual(t, Promotion, quiets.Get(i).Type())
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 covers f1: kingside castling is off, queenside on.
	b, err := New("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	ml := Generate(b, AllMoves)
	var castles []Move
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).Type() == Castle {
			castles = append(castles, ml.Get(i))
		}
	}
	require.Len(t, castles, 1)
	assert.Equal(t, C1, castles[0].To())
}

func TestGivesCheckDetection(t *testing.T) {
	// Qd3-d8 checks the king on a8 and forks the rook on e7; the queen
	// move must register as checking.
	b, err := New("k7/4r3/8/8/8/3Q4/4p3/K7 w - - 0 1")
	require.NoError(t, err)

	mv := mustMove(t, b, "d3d8")
	assert.True(t, b.IsChecking(mv))

	quiet := mustMove(t, b, "d3c3")
	assert.False(t, b.IsChecking(quiet))
}

func TestDiscoveredCheckDetection(t *testing.T) {
	// Bishop on b3 aims at the king on g8 through a knight on d5; any
	// knight move off the diagonal discovers check.
	b, err := New("6k1/8/8/3N4/8/1B6/8/6K1 w - - 0 1")
	require.NoError(t, err)

	discovered := mustMove(t, b, "d5c7")
	assert.True(t, b.IsChecking(discovered))

	staying := mustMove(t, b, "d5e7")
	// e7 is a direct knight check too.
	assert.True(t, b.IsChecking(staying))

	quiet := mustMove(t, b, "b3c2")
	assert.False(t, b.IsChecking(quiet))
}
