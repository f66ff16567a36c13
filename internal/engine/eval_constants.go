package engine

import "github.com/zm-bm/latrunculi/internal/board"

type score = board.Score

// Taper and scale parameters. Phase runs from 0 (endgame) to phaseLimit
// (full midgame material); the endgame component is scaled by
// scaleFactor/scaleLimit before tapering.
const (
	phaseLimit = 128
	scaleLimit = 64
	tempoBonus = 25
)

var (
	mgLimit = 2*board.PieceScore[board.Knight].Mg + 2*board.PieceScore[board.Bishop].Mg +
		4*board.PieceScore[board.Rook].Mg + 2*board.PieceScore[board.Queen].Mg
	egLimit = board.PieceScore[board.Knight].Mg + board.PieceScore[board.Bishop].Mg +
		2*board.PieceScore[board.Rook].Mg
)

// Pawn structure.
var (
	isoPawnPenalty      = score{Mg: -5, Eg: -15}
	backwardPawnPenalty = score{Mg: -10, Eg: -25}
	doubledPawnPenalty  = score{Mg: -10, Eg: -50}
)

// Minor pieces. outpostBonus is indexed by "is knight".
var (
	outpostBonus             = [2]score{{Mg: 30, Eg: 20}, {Mg: 50, Eg: 30}}
	reachableOutpostBonus    = score{Mg: 30, Eg: 20}
	minorBehindPawnBonus     = score{Mg: 20, Eg: 5}
	bishopLongDiagBonus      = score{Mg: 40, Eg: 0}
	bishopPairBonus          = score{Mg: 50, Eg: 80}
	bishopPawnBlockerPenalty = score{Mg: -2, Eg: -6}
)

// Rooks and queens. rookOpenFileBonus is indexed by "fully open".
var (
	rookOpenFileBonus      = [2]score{{Mg: 20, Eg: 10}, {Mg: 40, Eg: 20}}
	rookClosedFilePenalty  = score{Mg: -10, Eg: -5}
	queenDiscoveredPenalty = score{Mg: -50, Eg: -25}
)

// King shelter, indexed by the relative rank of the closest pawn on the
// file (0 = no pawn).
var pawnRankShelter = [7]score{
	{Mg: -30, Eg: 0}, {Mg: 60, Eg: 0}, {Mg: 35, Eg: 0}, {Mg: -20, Eg: 0}, {Mg: -5, Eg: 0}, {Mg: -20, Eg: 0}, {Mg: -80, Eg: 0},
}

// Pawn storm penalties by enemy pawn rank: [0] unblocked, [1] blocked by
// one of our shelter pawns.
var pawnRankStorm = [2][7]score{
	{{Mg: 0, Eg: 0}, {Mg: -20, Eg: 0}, {Mg: -120, Eg: 0}, {Mg: -60, Eg: 0}, {Mg: -45, Eg: 0}, {Mg: -20, Eg: 0}, {Mg: -10, Eg: 0}},
	{{Mg: 0, Eg: 0}, {Mg: 0, Eg: 0}, {Mg: -60, Eg: -60}, {Mg: 0, Eg: -20}, {Mg: 5, Eg: -15}, {Mg: 10, Eg: -10}, {Mg: 15, Eg: -5}},
}

// King file terms: kingOpenFileBonus is indexed by [friendly file open]
// [enemy file open]; kingFileBonus by the king's file.
var (
	kingOpenFileBonus = [2][2]score{
		{{Mg: 20, Eg: -10}, {Mg: 10, Eg: 5}},
		{{Mg: 0, Eg: 0}, {Mg: -10, Eg: 5}},
	}
	kingFileBonus = [8]score{
		{Mg: 20, Eg: 0}, {Mg: 5, Eg: 0}, {Mg: -15, Eg: 0}, {Mg: -30, Eg: 0}, {Mg: -30, Eg: 0}, {Mg: -15, Eg: 0}, {Mg: 5, Eg: 0}, {Mg: 20, Eg: 0},
	}
)

// King-zone danger per attacking piece type, accumulated per attacked
// square in the 3x3 zone around the king.
var kingDangerPenalty = [6]score{
	{Mg: -10, Eg: 0},  // pawn
	{Mg: -15, Eg: -5}, // knight
	{Mg: -10, Eg: -5}, // bishop
	{Mg: -20, Eg: -8}, // rook
	{Mg: -30, Eg: -15}, // queen
	{Mg: 0, Eg: 0},    // king
}

// Mobility bonuses indexed by the count of attacked squares inside the
// mobility area.
var knightMobility = [9]score{
	{Mg: -40, Eg: -48}, {Mg: -32, Eg: -36}, {Mg: -8, Eg: -20}, {Mg: -2, Eg: -12}, {Mg: 2, Eg: 6},
	{Mg: 8, Eg: 8}, {Mg: 12, Eg: 12}, {Mg: 16, Eg: 16}, {Mg: 24, Eg: 16},
}

var bishopMobility = [14]score{
	{Mg: -32, Eg: -40}, {Mg: -16, Eg: -16}, {Mg: 8, Eg: -4}, {Mg: 16, Eg: 8}, {Mg: 24, Eg: 16},
	{Mg: 32, Eg: 24}, {Mg: 32, Eg: 36}, {Mg: 40, Eg: 36}, {Mg: 40, Eg: 40}, {Mg: 44, Eg: 48},
	{Mg: 48, Eg: 48}, {Mg: 56, Eg: 56}, {Mg: 56, Eg: 56}, {Mg: 64, Eg: 64},
}

var rookMobility = [15]score{
	{Mg: -40, Eg: -56}, {Mg: -16, Eg: -8}, {Mg: 0, Eg: 12}, {Mg: 0, Eg: 28}, {Mg: 4, Eg: 44},
	{Mg: 8, Eg: 64}, {Mg: 12, Eg: 64}, {Mg: 20, Eg: 80}, {Mg: 28, Eg: 88}, {Mg: 28, Eg: 88},
	{Mg: 28, Eg: 96}, {Mg: 32, Eg: 104}, {Mg: 36, Eg: 108}, {Mg: 40, Eg: 112}, {Mg: 44, Eg: 120},
}

var queenMobility = [28]score{
	{Mg: -20, Eg: -32}, {Mg: -12, Eg: -20}, {Mg: -4, Eg: -4}, {Mg: -4, Eg: 12}, {Mg: 12, Eg: 24}, {Mg: 16, Eg: 36}, {Mg: 16, Eg: 40},
	{Mg: 24, Eg: 48}, {Mg: 28, Eg: 48}, {Mg: 36, Eg: 60}, {Mg: 40, Eg: 60}, {Mg: 44, Eg: 64}, {Mg: 44, Eg: 80}, {Mg: 48, Eg: 80},
	{Mg: 48, Eg: 88}, {Mg: 48, Eg: 88}, {Mg: 48, Eg: 88}, {Mg: 48, Eg: 92}, {Mg: 52, Eg: 96}, {Mg: 56, Eg: 96}, {Mg: 60, Eg: 100},
	{Mg: 68, Eg: 108}, {Mg: 68, Eg: 112}, {Mg: 68, Eg: 112}, {Mg: 72, Eg: 116}, {Mg: 72, Eg: 120}, {Mg: 76, Eg: 124}, {Mg: 80, Eg: 140},
}

var mobilityBonus = [6][]score{
	nil,
	knightMobility[:],
	bishopMobility[:],
	rookMobility[:],
	queenMobility[:],
	nil,
}
