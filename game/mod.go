package game

import "fmt"

// Size is the width and height of the board
const Size = 10

type Color uint8

const (
	NoColor Color = iota
	Red
	Blue
	Yellow
	Green
)

var colorNames = [...]string{"none", "red", "blue", "yellow", "green"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// AllColors lists every playable color in index order.
var AllColors = []Color{Red, Blue, Yellow, Green}

type PieceType uint8

const (
	NoPiece PieceType = iota
	Circle
	Square
	Triangle
	Diamond
)

var pieceNames = [...]string{"none", "circle", "square", "triangle", "diamond"}

func (t PieceType) String() string {
	if int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return fmt.Sprintf("piece(%d)", t)
}

// Piece is immutable once placed. Moves replace pieces, never mutate them.
type Piece struct {
	ID    int
	Type  PieceType
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

type Position struct {
	X, Y int
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board is indexed [y][x]. The zero Piece marks an empty cell.
// Boards are values so every copy is independent.
type Board [Size][Size]Piece

func (b *Board) At(p Position) Piece {
	return b[p.Y][p.X]
}

func (b *Board) IsEmpty(p Position) bool {
	return b[p.Y][p.X].IsEmpty()
}

// Place puts a piece on the board. Only setup code and tests use it.
func (b *Board) Place(p Position, piece Piece) {
	b[p.Y][p.X] = piece
}

// PiecesOf returns the positions of every piece of the given color.
func (b *Board) PiecesOf(color Color) []Position {
	positions := make([]Position, 0, 8)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if piece := b[y][x]; !piece.IsEmpty() && piece.Color == color {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Colors returns the colors that have at least one piece on the board.
func (b *Board) Colors() []Color {
	var present [len(colorNames)]bool
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if piece := b[y][x]; !piece.IsEmpty() {
				present[piece.Color] = true
			}
		}
	}
	colors := []Color{}
	for _, c := range AllColors {
		if present[c] {
			colors = append(colors, c)
		}
	}
	return colors
}

// Evaluate scores a board from the perspective of color after moveCount plies.
type Evaluate func(b *Board, color Color, moveCount int) int
