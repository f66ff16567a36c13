package engine

import (
	"sync/atomic"
	"time"

	"github.com/zm-bm/latrunculi/internal/board"
)

// Search tuning constants.
const (
	aspirationWindow = 33
	fullDepthMoves   = 4
	reductionLimit   = 3
	futilityMargin   = 300
	nullMoveR        = 4

	// Stop conditions are polled once per this many nodes.
	stopCheckMask = 0xFFF
)

// nodeType selects the alpha-beta specialization.
type nodeType int

const (
	nodeRoot nodeType = iota
	nodePV
	nodeNonPV
)

// Worker is one search thread: a private board, local heuristics and PV,
// and references to the shared transposition table and pool. The worker
// with id 0 is the main worker; it polls the stop conditions and owns all
// protocol output.
type Worker struct {
	id   int
	pool *Pool
	tt   *Table

	board   *board.Board
	heur    Heuristics
	pv      PVTable
	nodes   atomic.Uint64
	tick    uint64
	stats   SearchStats
	rootPly int

	options      SearchOptions
	startTime    time.Time
	searchTimeMS int

	run  chan struct{}
	quit chan struct{}
}

func newWorker(id int, pool *Pool) *Worker {
	return &Worker{
		id:   id,
		pool: pool,
		tt:   pool.tt,
		run:  make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// loop parks the worker between searches.
func (w *Worker) loop() {
	for {
		select {
		case <-w.run:
			w.search()
			w.pool.busy.Done()
		case <-w.quit:
			return
		}
	}
}

func (w *Worker) isMain() bool {
	return w.id == 0
}

// prepare loads the root position and budgets for the next search.
func (w *Worker) prepare(opts SearchOptions, start time.Time) {
	b, err := board.New(opts.FEN)
	if err != nil {
		b, _ = board.New(board.StartFEN)
	}
	w.board = b
	w.rootPly = b.Ply()
	w.options = opts
	w.startTime = start
	w.searchTimeMS = opts.SearchTimeMS(b.SideToMove())
	w.nodes.Store(0)
	w.tick = 0
	w.stats = SearchStats{}
	w.pv.Reset()
	w.heur.Clear()
}

// search runs the iterative-deepening loop: aspiration windows around the
// previous score, one research with the failed bound opened to infinity,
// history aging, and
// per-depth info from the main worker, then a single bestmove.
func (w *Worker) search() {
	var score, prevScore int

	for depth := 1; depth <= w.options.Depth && !w.pool.Stopped(); depth++ {
		alpha := prevScore - aspirationWindow
		beta := prevScore + aspirationWindow

		score = w.alphabeta(alpha, beta, depth, nodeRoot)
		if score <= alpha {
			score = w.alphabeta(-InfScore, beta, depth, nodeRoot)
		} else if score >= beta {
			score = w.alphabeta(alpha, InfScore, depth, nodeRoot)
		}

		prevScore = score
		w.heur.Age()

		if w.isMain() {
			w.pool.out.Info(SearchInfo{
				Depth: depth,
				Score: score,
				Nodes: w.pool.Nodes(),
				Time:  time.Since(w.startTime),
				PV:    w.pv.Line(),
			})
		}

		if IsMateScore(score) {
			break
		}
	}

	if w.isMain() {
		w.pool.out.BestMove(w.bestMove())
		if w.options.Debug {
			w.pool.out.InfoString(w.stats.String())
		}
		w.pool.StopAll()
	}
}

// bestMove returns the head of the PV, falling back to the first legal
// move when the search was stopped before producing a line.
func (w *Worker) bestMove() board.Move {
	if mv := w.pv.BestMove(0); mv != board.NullMove {
		return mv
	}
	if ml := board.LegalMoves(w.board); ml.Len() > 0 {
		return ml.Get(0)
	}
	return board.NullMove
}

// checkStop is the main worker's periodic budget poll; exceeding the node
// or time budget raises the shared stop flag.
func (w *Worker) checkStop() {
	w.tick++
	if !w.isMain() || w.tick&stopCheckMask != 0 {
		return
	}

	if w.options.Nodes != OptionNotSet && w.pool.Nodes() >= uint64(w.options.Nodes) {
		w.pool.StopAll()
		return
	}
	if w.searchTimeMS != OptionNotSet {
		if time.Since(w.startTime) > time.Duration(w.searchTimeMS)*time.Millisecond {
			w.pool.StopAll()
		}
	}
}

// alphabeta is a fail-soft negamax search with transposition table
// cutoffs, null-move pruning, futility pruning, and late move reductions.
func (w *Worker) alphabeta(alpha, beta, depth int, nt nodeType) int {
	isRoot := nt == nodeRoot
	isPV := nt != nodeNonPV
	childType := nodeNonPV
	if isPV {
		childType = nodePV
	}

	w.checkStop()

	if depth <= 0 {
		return w.quiescence(alpha, beta)
	}

	b := w.board
	ply := b.Ply() - w.rootPly
	key := b.Key()
	origAlpha, origBeta := alpha, beta
	bestScore := -InfScore
	bestMove := board.NullMove

	w.nodes.Add(1)
	w.stats.Nodes++

	if !isRoot && b.IsDraw() {
		return DrawScore
	}
	if ply >= MaxDepth-1 {
		return Evaluate(b)
	}

	var ttMove board.Move
	if !isPV {
		w.stats.TTProbes++
		if e := w.tt.Probe(key); e != nil {
			w.stats.TTHits++
			ttMove = e.Move
			if int(e.Depth) >= depth {
				score := e.ScoreAt(ply)
				switch e.Bound {
				case BoundExact:
					w.stats.TTCutoffs++
					w.pv.Update(ply, e.Move)
					return score
				case BoundLower:
					if score >= beta {
						w.stats.TTCutoffs++
						return score
					}
				case BoundUpper:
					if score <= alpha {
						w.stats.TTCutoffs++
						return score
					}
				}
			}
		}
	}

	// Null-move pruning: hand the opponent a free move; if a reduced
	// search still clears beta, the node is pruned. Skipped without
	// non-pawn material to dodge zugzwang.
	if !isPV && !b.InCheck() && depth >= nullMoveR+1 &&
		b.NonPawnMaterial(b.SideToMove()) > 0 {
		b.MakeNull()
		score := -w.alphabeta(-beta, -beta+1, depth-nullMoveR, nodeNonPV)
		b.UnmakeNull()
		if score >= beta {
			return beta
		}
	}

	ml := board.Generate(b, board.AllMoves)
	OrderMoves(b, ml, &w.heur, ply, w.pv.BestMove(ply), ttMove)

	var staticEval int
	if depth <= 2 {
		staticEval = Evaluate(b)
	}

	searched := 0
	legal := 0
	for i := 0; i < ml.Len(); i++ {
		mv := ml.Get(i)
		if !b.IsLegal(mv) {
			continue
		}
		legal++

		// Return the best estimate when the search stops.
		if w.pool.Stopped() {
			if bestScore > -InfScore {
				return bestScore
			}
			return Evaluate(b)
		}

		isQuiet := !b.IsCapture(mv) && !b.IsChecking(mv)

		// Futility: shallow quiet moves that cannot lift alpha. The first
		// legal move always gets searched.
		if depth <= 2 && isQuiet && bestMove != board.NullMove &&
			staticEval+futilityMargin*depth <= alpha {
			continue
		}

		b.Make(mv)

		var score int
		if isRoot || searched == 0 {
			score = -w.alphabeta(-beta, -alpha, depth-1, childType)
		} else {
			// Late move reduction for quiet moves ordered far down the
			// list; researched at full window on a PV fail-high.
			reduction := 0
			if searched >= fullDepthMoves && depth >= reductionLimit && !isPV && isQuiet {
				reduction = 1 + min(searched/10, depth/4)
			}

			score = -w.alphabeta(-alpha-1, -alpha, depth-1-reduction, nodeNonPV)
			if score > alpha && isPV {
				score = -w.alphabeta(-beta, -alpha, depth-1, nodePV)
			}
		}
		searched++

		b.Unmake()

		if score > bestScore {
			bestScore = score
			bestMove = mv
			w.pv.Update(ply, mv)
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			w.stats.BetaCutoffs++
			if searched == 1 {
				w.stats.FirstMoveCutoffs++
			}
			if b.IsQuiet(mv) {
				w.heur.CutoffBonus(b.SideToMove(), mv, ply, depth)
			}
			break
		}
	}

	if legal == 0 {
		bestMove = board.NullMove
		if b.InCheck() {
			bestScore = -MateScore + ply
		} else {
			bestScore = DrawScore
		}
	}

	bound := BoundExact
	if bestScore <= origAlpha {
		bound = BoundUpper
	} else if bestScore >= origBeta {
		bound = BoundLower
	}
	w.tt.Store(key, bestMove, bestScore, depth, bound, ply)

	return bestScore
}

// quiescence extends the search along captures until the position goes
// quiet, standing pat on the static evaluation.
func (w *Worker) quiescence(alpha, beta int) int {
	b := w.board
	ply := b.Ply() - w.rootPly
	w.nodes.Add(1)
	w.stats.QNodes++

	if ply >= MaxDepth {
		return Evaluate(b)
	}

	standPat := Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	// Generate produces evasions instead when in check.
	ml := board.Generate(b, board.CaptureMoves)
	OrderMoves(b, ml, &w.heur, ply, board.NullMove, board.NullMove)

	legal := 0
	for i := 0; i < ml.Len(); i++ {
		mv := ml.Get(i)
		if !b.IsLegal(mv) {
			continue
		}
		legal++

		// Losing captures are not worth extending.
		if b.SEE(mv) < 0 {
			continue
		}

		b.Make(mv)
		score := -w.quiescence(-beta, -alpha)
		b.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if legal == 0 {
		if b.InCheck() {
			return -MateScore + ply
		}
		if b.IsDraw() {
			return DrawScore
		}
	}

	return alpha
}
