package uci

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zm-bm/latrunculi/internal/config"
)

// syncBuffer lets the test read output written by worker goroutines.
type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func newTestHandler() (*Handler, *syncBuffer) {
	buf := &syncBuffer{}
	cfg := config.Default()
	return New(buf, cfg), buf
}

func TestUCIIdentify(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("uci")

	out := buf.String()
	assert.Contains(t, out, "id name Latrunculi")
	assert.Contains(t, out, "id author")
	assert.Contains(t, out, "option name Threads type spin")
	assert.Contains(t, out, "option name Hash type spin")
	assert.Contains(t, out, "option name Debug type check")
	assert.Contains(t, out, "uciok")
}

func TestUCIIsReady(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("isready")
	assert.Contains(t, buf.String(), "readyok")
}

func TestUCIPositionAndGoDepth(t *testing.T) {
	h, buf := newTestHandler()

	h.Execute("position fen 7R/8/8/8/8/1K6/8/1k6 w - - 0 1")
	h.Execute("go depth 4")
	h.WaitSearch()

	out := buf.String()
	assert.Contains(t, out, "bestmove h8h1")
	assert.Contains(t, out, "score mate 1")
	assert.Contains(t, out, "info depth")
	assert.Contains(t, out, " pv ")
}

func TestUCIStartposGoDepthOne(t *testing.T) {
	h, buf := newTestHandler()

	h.Execute("position startpos")
	h.Execute("go depth 1")
	h.WaitSearch()

	out := buf.String()
	assert.Contains(t, out, "info depth 1")
	require.Contains(t, out, "bestmove ")

	// The bestmove must be one of the twenty legal opening moves.
	var best string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "bestmove ") {
			best = strings.TrimPrefix(line, "bestmove ")
		}
	}
	require.NotEmpty(t, best)

	mv := h.findMove(best)
	assert.NotEqual(t, "0000", mv.String(), "bestmove %s is not legal from startpos", best)
}

func TestUCIPositionWithMoves(t *testing.T) {
	h, _ := newTestHandler()

	h.Execute("position startpos moves e2e4 e7e5 g1f3")
	assert.Contains(t, h.board.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b")
}

func TestUCIPositionIllegalMoveSkipsTail(t *testing.T) {
	h, buf := newTestHandler()

	h.Execute("position startpos moves e2e4 e2e4 d7d5")
	out := buf.String()
	assert.Contains(t, out, "info string")
	assert.Contains(t, out, "illegal move e2e4")

	// Applied up to the failing move only.
	assert.Contains(t, h.board.FEN(), " b ")
}

func TestUCIBadFEN(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("position fen not/a/fen w - - 0 1")
	assert.Contains(t, buf.String(), "info string")

	h2, buf2 := newTestHandler()
	h2.Execute("position")
	assert.Contains(t, buf2.String(), "info string")
}

func TestUCISetOptionClamps(t *testing.T) {
	h, buf := newTestHandler()

	h.Execute("setoption name Threads value 4")
	assert.Equal(t, 4, h.pool.Size())

	h.Execute("setoption name Threads value 100000")
	assert.Equal(t, config.MaxThreads, h.pool.Size())
	assert.Contains(t, buf.String(), "out of range")

	h.Execute("setoption name Hash value 32")
	assert.Equal(t, 32, h.tt.SizeMB())

	h.Execute("setoption name Debug value true")
	assert.True(t, h.debug)

	h.Execute("setoption name Frobnicate value 7")
	assert.Contains(t, buf.String(), "unknown option")

	h.Execute("setoption name Threads")
	assert.Contains(t, buf.String(), "missing option value")
}

func TestUCIUnknownCommand(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("xyzzy")
	assert.Contains(t, buf.String(), "unknown command")
}

func TestUCIStopEmitsBestMove(t *testing.T) {
	h, buf := newTestHandler()

	h.Execute("position startpos")
	h.Execute("go movetime 60000")
	h.Execute("stop")
	h.WaitSearch()

	assert.Contains(t, buf.String(), "bestmove ")
}

func TestUCIPerftCommand(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("position startpos")
	h.Execute("perft 2")
	assert.Contains(t, buf.String(), "total: 400")
}

func TestUCIBenchCommand(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("bench 2")

	out := buf.String()
	assert.Contains(t, out, "bench: ")
	assert.Contains(t, out, " nps")

	h.Execute("bench zero")
	assert.Contains(t, buf.String(), "invalid bench depth")
}

func TestUCIEvalCommand(t *testing.T) {
	h, buf := newTestHandler()
	h.Execute("position startpos")
	h.Execute("eval")
	assert.Contains(t, buf.String(), "Evaluation:")
}

func TestUCIRunLoop(t *testing.T) {
	buf := &syncBuffer{}
	h := New(buf, config.Default())

	input := strings.NewReader("uci\nisready\nposition startpos\ngo depth 1\nstop\nquit\n")
	h.Run(input)

	out := buf.String()
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "readyok")
	assert.Contains(t, out, "bestmove")
}

func TestScoreFormatting(t *testing.T) {
	assert.Equal(t, "cp 15", formatScore(15))
	assert.Equal(t, "cp -230", formatScore(-230))
	assert.Equal(t, "mate 1", formatScore(16383))
	assert.Equal(t, "mate 2", formatScore(16381))
	assert.Equal(t, "mate -1", formatScore(-16382))
}
