package board

// CastleRights is a four-bit mask of remaining castling options.
type CastleRights uint8

const (
	WhiteOO  CastleRights = 1 << iota // K
	WhiteOOO                          // Q
	BlackOO                           // k
	BlackOOO                          // q

	NoCastle  CastleRights = 0
	AllCastle CastleRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// String returns the FEN castling field.
func (cr CastleRights) String() string {
	if cr == NoCastle {
		return "-"
	}
	s := ""
	if cr&WhiteOO != 0 {
		s += "K"
	}
	if cr&WhiteOOO != 0 {
		s += "Q"
	}
	if cr&BlackOO != 0 {
		s += "k"
	}
	if cr&BlackOOO != 0 {
		s += "q"
	}
	return s
}

// kingSide/queenSide masks indexed by color.
var (
	castleOO  = [2]CastleRights{WhiteOO, BlackOO}
	castleOOO = [2]CastleRights{WhiteOOO, BlackOOO}
	castleAll = [2]CastleRights{WhiteOO | WhiteOOO, BlackOO | BlackOOO}
)

// Castling geometry, indexed by color.
var (
	kingOrigin  = [2]Square{E1, E8}
	kingDestOO  = [2]Square{G1, G8}
	kingDestOOO = [2]Square{C1, C8}
	rookFromOO  = [2]Square{H1, H8}
	rookFromOOO = [2]Square{A1, A8}
	rookToOO    = [2]Square{F1, F8}
	rookToOOO   = [2]Square{D1, D8}

	// Squares that must be empty between king and rook.
	castlePathOO  = [2]Bitboard{0x0000000000000060, 0x6000000000000000}
	castlePathOOO = [2]Bitboard{0x000000000000000E, 0x0E00000000000000}

	// Squares the king crosses, which must not be attacked.
	kingPathOO  = [2]Bitboard{0x0000000000000070, 0x7000000000000000}
	kingPathOOO = [2]Bitboard{0x000000000000001C, 0x1C00000000000000}
)

// State holds the per-ply undo record plus derived check data, recomputed
// after every move.
type State struct {
	// Zobrist key of the position this state describes.
	Key uint64

	// Move that produced this state and the captured piece type, if any.
	Move     Move
	Captured PieceType

	Castle    CastleRights
	EnPassant Square
	HalfMove  int

	// Checkers is the set of enemy pieces attacking the side to move's king.
	Checkers Bitboard

	// Pinned[c] holds pieces of color c shielding c's own king from a
	// slider; moving one off its line exposes the king.
	Pinned [2]Bitboard

	// Discoverers[c] holds pieces of color c shielding the enemy king;
	// moving one off its line gives discovered check.
	Discoverers [2]Bitboard

	// CheckSquares[pt] holds the squares from which a piece of the side to
	// move of type pt would give check to the enemy king.
	CheckSquares [6]Bitboard
}
