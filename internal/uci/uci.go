// Package uci implements the line-oriented engine protocol: command
// dispatch on stdin tokens, info emission, and the option surface.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zm-bm/latrunculi/internal/board"
	"github.com/zm-bm/latrunculi/internal/config"
	"github.com/zm-bm/latrunculi/internal/engine"
)

// Version reported by the uci command.
const Version = "1.0.0"

// Handler dispatches protocol commands and receives engine output. All
// writes go through one mutex so worker output and command replies never
// interleave mid-line.
type Handler struct {
	mu    sync.Mutex
	out   io.Writer
	board *board.Board
	tt    *engine.Table
	pool  *engine.Pool
	debug bool
}

// New wires a handler with its transposition table and worker pool.
func New(out io.Writer, cfg config.Config) *Handler {
	h := &Handler{out: out, debug: cfg.Debug}
	h.tt = engine.NewTable(cfg.HashMB)
	h.pool = engine.NewPool(cfg.Threads, h.tt, h)
	h.board, _ = board.New(board.StartFEN)
	return h
}

// Run reads commands until quit or EOF, then tears the pool down.
func (h *Handler) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !h.Execute(line) {
			break
		}
	}
	h.pool.ExitAll()
}

// Execute dispatches one command line. Handler errors become info string
// output; the loop continues. Returns false on quit.
func (h *Handler) Execute(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return true
	}
	cmd, args := tokens[0], tokens[1:]

	var err error
	switch cmd {
	case "uci":
		h.identify()
	case "isready":
		h.println("readyok")
	case "ucinewgame":
		h.tt.AgeTable()
	case "setoption":
		err = h.setOption(args)
	case "position":
		err = h.position(args)
	case "go":
		h.startSearch(args)
	case "stop":
		h.pool.StopAll()
		h.pool.WaitAll()
	case "ponderhit":
		h.InfoString("ponderhit received")
	case "debug":
		h.debug = len(args) > 0 && args[0] == "on"
	case "quit", "exit":
		return false

	// Diagnostic commands beyond the protocol proper.
	case "d":
		h.println(h.board.String())
	case "eval":
		h.evaluate()
	case "moves":
		h.println(board.LegalMoves(h.board).String())
	case "perft":
		err = h.perft(args)
	case "bench":
		err = h.bench(args)
	case "help":
		h.help()
	default:
		h.InfoString("unknown command: " + cmd + ", type help for a list of commands")
	}

	if err != nil {
		h.InfoString("error: " + err.Error())
	}
	return true
}

// WaitSearch blocks until the current search finishes.
func (h *Handler) WaitSearch() {
	h.pool.WaitAll()
}

func (h *Handler) identify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, "id name Latrunculi %s\n", Version)
	fmt.Fprintf(h.out, "id author zm-bm\n\n")
	fmt.Fprintf(h.out, "option name Threads type spin default %d min 1 max %d\n",
		config.DefaultThreads, config.MaxThreads)
	fmt.Fprintf(h.out, "option name Hash type spin default %d min 1 max %d\n",
		config.DefaultHashMB, config.MaxHashMB)
	fmt.Fprintf(h.out, "option name Debug type check default false\n")
	fmt.Fprintln(h.out, "uciok")
}

// setOption handles "setoption name <N> value <V>". Out-of-range values
// are clamped with a warning.
func (h *Handler) setOption(args []string) error {
	name, value := parseNameValue(args)
	if name == "" {
		return fmt.Errorf("missing option name")
	}
	if value == "" {
		return fmt.Errorf("missing option value")
	}

	switch strings.ToLower(name) {
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid Threads value %q", value)
		}
		if clamped := config.ClampThreads(n); clamped != n {
			h.InfoString(fmt.Sprintf("Threads %d out of range, using %d", n, clamped))
			n = clamped
		}
		h.pool.WaitAll()
		h.pool.Resize(n)
	case "hash":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid Hash value %q", value)
		}
		if clamped := config.ClampHashMB(n); clamped != n {
			h.InfoString(fmt.Sprintf("Hash %d out of range, using %d", n, clamped))
			n = clamped
		}
		h.pool.WaitAll()
		h.tt.Resize(n)
	case "debug":
		h.debug = strings.EqualFold(value, "true")
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

// parseNameValue splits setoption arguments on the name/value keywords;
// both sides may span several tokens.
func parseNameValue(args []string) (string, string) {
	var name, value []string
	target := &name
	for _, tok := range args {
		switch tok {
		case "name":
			target = &name
		case "value":
			target = &value
		default:
			*target = append(*target, tok)
		}
	}
	return strings.Join(name, " "), strings.Join(value, " ")
}

// position rebuilds the board from startpos or a FEN, then applies the
// move list. Application stops at the first illegal token; the tail is
// reported as skipped.
func (h *Handler) position(args []string) error {
	fen, moves, err := parsePosition(args)
	if err != nil {
		return err
	}

	b, err := board.New(fen)
	if err != nil {
		return err
	}
	h.board = b

	for i, token := range moves {
		mv := h.findMove(token)
		if mv == board.NullMove {
			h.InfoString(fmt.Sprintf("illegal move %s, skipping remaining moves: %s",
				token, strings.Join(moves[i:], " ")))
			break
		}
		h.board.Make(mv)
	}
	return nil
}

func parsePosition(args []string) (fen string, moves []string, err error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("invalid position command")
	}

	var fenTokens []string
	inFen, inMoves := false, false
	for _, tok := range args {
		switch tok {
		case "startpos":
			fen = board.StartFEN
			inFen, inMoves = false, false
		case "fen":
			inFen, inMoves = true, false
		case "moves":
			inFen, inMoves = false, true
		default:
			if inFen {
				fenTokens = append(fenTokens, tok)
			} else if inMoves {
				moves = append(moves, tok)
			}
		}
	}

	if len(fenTokens) > 0 {
		fen = strings.Join(fenTokens, " ")
	}
	if fen == "" {
		return "", nil, fmt.Errorf("invalid position command")
	}
	return fen, moves, nil
}

// findMove matches a coordinate-notation token against the legal moves.
func (h *Handler) findMove(token string) board.Move {
	ml := board.LegalMoves(h.board)
	for i := 0; i < ml.Len(); i++ {
		if ml.Get(i).String() == token {
			return ml.Get(i)
		}
	}
	return board.NullMove
}

// startSearch submits a search request to the pool. Output arrives
// asynchronously through the Protocol methods.
func (h *Handler) startSearch(args []string) {
	h.pool.StopAll()
	h.pool.WaitAll()

	opts := engine.ParseGo(args)
	opts.FEN = h.board.FEN()
	opts.Debug = h.debug
	if h.debug {
		h.InfoString(fmt.Sprintf("searching %s depth %d", opts.FEN, opts.Depth))
	}
	h.pool.StartAll(opts)
}

func (h *Handler) evaluate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	engine.EvaluateVerbose(h.board, h.out)
}

func (h *Handler) perft(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("perft needs a depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("invalid perft depth %q", args[0])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.board.Divide(depth, h.out)
	return nil
}

// benchFENs are the fixed benchmark positions: the perft suite reused as
// a quick strength-independent throughput probe.
var benchFENs = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// bench searches every benchmark position to a fixed depth and reports
// the aggregate node count and speed.
func (h *Handler) bench(args []string) error {
	depth := 6
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			return fmt.Errorf("invalid bench depth %q", args[0])
		}
		depth = d
	}

	h.pool.StopAll()
	h.pool.WaitAll()

	var total uint64
	start := time.Now()
	for _, fen := range benchFENs {
		opts := engine.NewSearchOptions()
		opts.FEN = fen
		opts.Depth = depth
		h.pool.StartAll(opts)
		h.pool.WaitAll()
		total += h.pool.Nodes()
	}
	elapsed := time.Since(start)

	nps := uint64(0)
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = total * 1000 / uint64(ms)
	}
	h.println(fmt.Sprintf("bench: %d nodes %d nps", total, nps))
	return nil
}

func (h *Handler) help() {
	h.println(`Available commands:
  uci           - Show engine identity and supported options
  isready       - Check if the engine is ready
  setoption     - Set engine options
  ucinewgame    - Start a new game
  position      - Set up the board position
  go            - Start searching for the best move
  stop          - Stop the search
  ponderhit     - Handle ponder hit
  quit          - Exit the engine
  perft <depth> - Run perft for the given depth
  bench [depth] - Search the benchmark positions
  moves         - Show all legal moves
  d             - Display the current board position
  eval          - Evaluate the current position`)
}

func (h *Handler) println(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintln(h.out, s)
}

// Info formats one completed-depth report:
// info depth <d> score {cp <n>|mate <n>} time <ms> nodes <n> nps <n> pv ...
func (h *Handler) Info(info engine.SearchInfo) {
	ms := info.Time.Milliseconds()
	nps := uint64(0)
	if ms > 0 {
		nps = info.Nodes * 1000 / uint64(ms)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d score %s time %d nodes %d nps %d",
		info.Depth, formatScore(info.Score), ms, info.Nodes, nps)
	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, mv := range info.PV {
			sb.WriteByte(' ')
			sb.WriteString(mv.String())
		}
	}
	h.println(sb.String())
}

// InfoString emits a diagnostic line.
func (h *Handler) InfoString(s string) {
	h.println("info string " + s)
}

// BestMove terminates a search's output.
func (h *Handler) BestMove(mv board.Move) {
	h.println("bestmove " + mv.String())
}

func formatScore(score int) string {
	if engine.IsMateScore(score) {
		mateIn := (engine.MateDistance(score) + 1) / 2
		if score < 0 {
			mateIn = -mateIn
		}
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", score)
}
