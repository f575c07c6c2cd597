package game

import (
	"fmt"

	"jumprace/utils"
)

// Move represents a piece moving from one cell to another.
type Move struct {
	From  Position
	To    Position
	Piece Piece
	// Captured is reserved for a capture rule. No current rule populates it.
	Captured Piece
}

// NoMove is the zero Move.
var NoMove = Move{}

func (m Move) IsZero() bool {
	return m == NoMove
}

// Distance is the Chebyshev length of the move.
func (m Move) Distance() int {
	return max(utils.Abs(m.To.X-m.From.X), utils.Abs(m.To.Y-m.From.Y))
}

// Reverses reports whether m undoes other (same piece, swapped endpoints).
func (m Move) Reverses(other Move) bool {
	return m.Piece.ID == other.Piece.ID && m.From == other.To && m.To == other.From
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %s->%s", m.Piece.Color, m.Piece.Type, m.From, m.To)
}
