package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-13: move type (0=normal, 1=promotion, 2=en passant, 3=castle)
// bits 14-15: promotion piece offset (0=knight .. 3=queen)
type Move uint16

// MoveType is the 2-bit move type field, pre-shifted into position.
type MoveType uint16

const (
	Normal    MoveType = 0 << 12
	Promotion MoveType = 1 << 12
	EnPassant MoveType = 2 << 12
	Castle    MoveType = 3 << 12
)

// NullMove is the all-zero packing.
const NullMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(Promotion) | Move(promo-Knight)<<14
}

// NewEnPassant creates an en passant capture.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(EnPassant)
}

// NewCastle creates a castling move (encoded as the king's movement).
func NewCastle(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(Castle)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Type returns the move type.
func (m Move) Type() MoveType {
	return MoveType(m) & (3 << 12)
}

// PromoPiece returns the promotion piece type. Only meaningful when
// Type() == Promotion.
func (m Move) PromoPiece() PieceType {
	return PieceType((m>>14)&3) + Knight
}

// IsNull returns true for the null move.
func (m Move) IsNull() bool {
	return m == NullMove
}

// String returns the move in pure coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += string("nbrq"[m.PromoPiece()-Knight])
	}
	return s
}

// MaxMoves bounds the number of moves in any reachable position.
const MaxMoves = 256

// MoveList is a fixed-capacity list of moves with attached 16-bit ordering
// priorities.
type MoveList struct {
	moves [MaxMoves]Move
	prio  [MaxMoves]uint16
	n     int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.n] = m
	ml.n++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.n
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.n = 0
}

// Contains reports whether the list holds the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.n; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Score assigns ordering priorities using the provided scoring function.
func (ml *MoveList) Score(f func(Move) uint16) {
	for i := 0; i < ml.n; i++ {
		ml.prio[i] = f(ml.moves[i])
	}
}

// Sort orders the list by descending priority. Insertion sort keeps equal
// priorities stable.
func (ml *MoveList) Sort() {
	for i := 1; i < ml.n; i++ {
		m, p := ml.moves[i], ml.prio[i]
		j := i - 1
		for j >= 0 && ml.prio[j] < p {
			ml.moves[j+1], ml.prio[j+1] = ml.moves[j], ml.prio[j]
			j--
		}
		ml.moves[j+1], ml.prio[j+1] = m, p
	}
}

func (ml *MoveList) String() string {
	s := ""
	for i := 0; i < ml.n; i++ {
		if i > 0 {
			s += " "
		}
		s += ml.moves[i].String()
	}
	return s
}

// ParseMove parses coordinate notation against the current position,
// resolving the move type from the board state.
func (b *Board) ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("invalid move: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NullMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := b.PieceOn(from)
	if piece == NoPiece {
		return NullMove, fmt.Errorf("no piece on %s", from)
	}

	if piece.Type() == King && (int(to)-int(from) == 2 || int(from)-int(to) == 2) {
		return NewCastle(from, to), nil
	}
	if piece.Type() == Pawn && to == b.EnPassant() {
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}
