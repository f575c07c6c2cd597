package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardWith(pieces map[Position]Piece) *Board {
	b := &Board{}
	for p, piece := range pieces {
		b.Place(p, piece)
	}
	return b
}

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func TestIsMoveValidBasics(t *testing.T) {
	square := Piece{ID: 1, Type: Square, Color: Red}

	t.Run("rejecting the null move", func(t *testing.T) {
		for _, pieceType := range []PieceType{Circle, Square, Triangle, Diamond} {
			piece := Piece{ID: 1, Type: pieceType, Color: Red}
			b := boardWith(map[Position]Piece{pos(5, 5): piece})
			require.False(t, IsMoveValid(piece, pos(5, 5), pos(5, 5), b),
				"A %s should never move onto its own cell", pieceType)
		}
	})

	t.Run("rejecting out of bounds destinations", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(0, 5): square})
		require.False(t, IsMoveValid(square, pos(0, 5), pos(-1, 5), b), "Should reject x < 0")
		require.False(t, IsMoveValid(square, pos(0, 5), pos(0, 10), b), "Should reject y > 9")
	})

	t.Run("rejecting occupied destinations", func(t *testing.T) {
		b := boardWith(map[Position]Piece{
			pos(5, 5): square,
			pos(5, 4): {ID: 2, Type: Circle, Color: Blue},
		})
		require.False(t, IsMoveValid(square, pos(5, 5), pos(5, 4), b), "Should reject a step onto a piece")
	})

	t.Run("rejecting moves off any line", func(t *testing.T) {
		circle := Piece{ID: 1, Type: Circle, Color: Red}
		b := boardWith(map[Position]Piece{pos(1, 1): circle, pos(2, 1): square})
		require.False(t, IsMoveValid(circle, pos(1, 1), pos(3, 2), b), "Should reject knight-like moves")
	})
}

func TestIsMoveValidSteps(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		from  Position
		to    Position
		valid bool
	}{
		{"square orthogonal forward", Piece{1, Square, Red}, pos(5, 5), pos(5, 4), true},
		{"square orthogonal sideways", Piece{1, Square, Red}, pos(5, 5), pos(6, 5), true},
		{"square orthogonal backward", Piece{1, Square, Red}, pos(5, 5), pos(5, 6), true},
		{"square diagonal off start line", Piece{1, Square, Red}, pos(5, 5), pos(6, 4), false},
		{"diamond diagonal", Piece{1, Diamond, Red}, pos(5, 5), pos(4, 6), true},
		{"diamond orthogonal off start line", Piece{1, Diamond, Red}, pos(5, 5), pos(5, 4), false},
		{"circle diagonal", Piece{1, Circle, Blue}, pos(5, 5), pos(6, 6), true},
		{"circle orthogonal", Piece{1, Circle, Blue}, pos(5, 5), pos(4, 5), true},
		{"red triangle diagonal forward", Piece{1, Triangle, Red}, pos(5, 5), pos(4, 4), true},
		{"red triangle straight backward", Piece{1, Triangle, Red}, pos(5, 5), pos(5, 6), true},
		{"red triangle straight forward", Piece{1, Triangle, Red}, pos(5, 5), pos(5, 4), false},
		{"red triangle diagonal backward", Piece{1, Triangle, Red}, pos(5, 5), pos(6, 6), false},
		{"red triangle sideways off start line", Piece{1, Triangle, Red}, pos(5, 5), pos(6, 5), false},
		{"blue triangle diagonal forward", Piece{1, Triangle, Blue}, pos(5, 5), pos(6, 6), true},
		{"blue triangle straight backward", Piece{1, Triangle, Blue}, pos(5, 5), pos(5, 4), true},
		{"blue triangle straight forward", Piece{1, Triangle, Blue}, pos(5, 5), pos(5, 6), false},
		{"yellow triangle diagonal forward", Piece{1, Triangle, Yellow}, pos(5, 5), pos(6, 4), true},
		{"yellow triangle straight backward", Piece{1, Triangle, Yellow}, pos(5, 5), pos(4, 5), true},
		{"yellow triangle straight forward", Piece{1, Triangle, Yellow}, pos(5, 5), pos(6, 5), false},
		{"green triangle diagonal forward", Piece{1, Triangle, Green}, pos(5, 5), pos(4, 6), true},
		{"green triangle diagonal backward", Piece{1, Triangle, Green}, pos(5, 5), pos(6, 6), false},
		{"diamond sideways on start line", Piece{1, Diamond, Red}, pos(4, 9), pos(5, 9), true},
		{"triangle sideways on start line", Piece{1, Triangle, Red}, pos(4, 9), pos(3, 9), true},
		{"yellow diamond sideways on start line", Piece{1, Diamond, Yellow}, pos(0, 4), pos(0, 5), true},
		{"diamond forward on start line stays diagonal-only", Piece{1, Diamond, Red}, pos(4, 9), pos(4, 8), false},
		{"start line exception is one cell only", Piece{1, Diamond, Red}, pos(4, 9), pos(6, 9), false},
		{"start line exception uses own start line", Piece{1, Diamond, Blue}, pos(4, 9), pos(5, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(map[Position]Piece{tt.from: tt.piece})
			require.Equal(t, tt.valid, IsMoveValid(tt.piece, tt.from, tt.to, b))
		})
	}
}

func TestIsMoveValidJumps(t *testing.T) {
	square := Piece{ID: 1, Type: Square, Color: Red}
	obstacle := Piece{ID: 2, Type: Circle, Color: Blue}

	t.Run("jumping over an occupied midpoint", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(5, 5): square, pos(5, 6): obstacle})
		require.True(t, IsMoveValid(square, pos(5, 5), pos(5, 7), b), "Square should jump over (5,6)")
	})

	t.Run("jumping over an own piece", func(t *testing.T) {
		own := Piece{ID: 3, Type: Circle, Color: Red}
		b := boardWith(map[Position]Piece{pos(5, 5): square, pos(5, 6): own})
		require.True(t, IsMoveValid(square, pos(5, 5), pos(5, 7), b), "Midpoint may hold either color")
	})

	t.Run("jumping without an obstacle", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(5, 5): square})
		require.False(t, IsMoveValid(square, pos(5, 5), pos(5, 7), b), "A jump needs an occupied midpoint")
	})

	t.Run("jumping onto an occupied cell", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(5, 5): square, pos(5, 6): obstacle, pos(5, 7): {ID: 3, Type: Circle, Color: Blue}})
		require.False(t, IsMoveValid(square, pos(5, 5), pos(5, 7), b), "A jump needs an empty destination")
	})

	t.Run("jumping along a direction the piece cannot step", func(t *testing.T) {
		diamond := Piece{ID: 1, Type: Diamond, Color: Red}
		b := boardWith(map[Position]Piece{pos(5, 5): diamond, pos(5, 6): obstacle, pos(6, 6): obstacle})
		require.False(t, IsMoveValid(diamond, pos(5, 5), pos(5, 7), b), "Diamond cannot jump orthogonally")
		require.True(t, IsMoveValid(diamond, pos(5, 5), pos(7, 7), b), "Diamond can jump diagonally")
	})

	t.Run("triangle jumps follow triangle directions", func(t *testing.T) {
		triangle := Piece{ID: 1, Type: Triangle, Color: Red}
		b := boardWith(map[Position]Piece{
			pos(5, 5): triangle,
			pos(5, 4): obstacle, // straight forward
			pos(5, 6): obstacle, // straight backward
			pos(4, 4): obstacle, // diagonal forward
			pos(6, 6): obstacle, // diagonal backward
		})
		require.False(t, IsMoveValid(triangle, pos(5, 5), pos(5, 3), b), "No straight forward jump")
		require.True(t, IsMoveValid(triangle, pos(5, 5), pos(5, 7), b), "Straight backward jump")
		require.True(t, IsMoveValid(triangle, pos(5, 5), pos(3, 3), b), "Diagonal forward jump")
		require.False(t, IsMoveValid(triangle, pos(5, 5), pos(7, 7), b), "No diagonal backward jump")
	})
}

func TestIsMoveValidLeaps(t *testing.T) {
	circle := Piece{ID: 1, Type: Circle, Color: Red}
	obstacle := Piece{ID: 2, Type: Square, Color: Blue}

	t.Run("leaping over a centered obstacle", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(3, 5): obstacle})
		require.True(t, IsMoveValid(circle, pos(1, 5), pos(5, 5), b), "One empty cell on each side of the obstacle")
	})

	t.Run("leaping with longer runs", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(4, 5): obstacle})
		require.True(t, IsMoveValid(circle, pos(1, 5), pos(7, 5), b), "Two empty cells on each side of the obstacle")
	})

	t.Run("leaping diagonally", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 1): circle, pos(3, 3): obstacle})
		require.True(t, IsMoveValid(circle, pos(1, 1), pos(5, 5), b), "Circles leap along diagonals")
	})

	t.Run("leaping over an off-center obstacle", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(2, 5): obstacle})
		require.False(t, IsMoveValid(circle, pos(1, 5), pos(5, 5), b), "Obstacle must sit in the middle")
	})

	t.Run("leaping over two obstacles", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(3, 5): obstacle, pos(4, 5): {ID: 3, Type: Square, Color: Blue}})
		require.False(t, IsMoveValid(circle, pos(1, 5), pos(5, 5), b), "Only one obstacle may be leapt")
	})

	t.Run("leaping over nothing", func(t *testing.T) {
		b := boardWith(map[Position]Piece{pos(1, 5): circle})
		require.False(t, IsMoveValid(circle, pos(1, 5), pos(5, 5), b), "A leap needs an obstacle")
	})

	t.Run("rejecting even-length paths", func(t *testing.T) {
		for _, obstacleX := range []int{2, 3} {
			b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(obstacleX, 5): obstacle})
			require.False(t, IsMoveValid(circle, pos(1, 5), pos(4, 5), b),
				"Two cells between origin and destination can never be a leap (obstacle at x=%d)", obstacleX)
		}
		b := boardWith(map[Position]Piece{pos(1, 5): circle, pos(3, 5): obstacle, pos(4, 5): obstacle})
		require.False(t, IsMoveValid(circle, pos(1, 5), pos(6, 5), b), "Four cells between never leap")
	})

	t.Run("triangle leaps only backward or diagonally forward", func(t *testing.T) {
		triangle := Piece{ID: 1, Type: Triangle, Color: Red}
		b := boardWith(map[Position]Piece{pos(5, 1): triangle, pos(5, 3): obstacle})
		require.True(t, IsMoveValid(triangle, pos(5, 1), pos(5, 5), b), "Straight backward leap")

		b = boardWith(map[Position]Piece{pos(5, 5): triangle, pos(5, 3): obstacle})
		require.False(t, IsMoveValid(triangle, pos(5, 5), pos(5, 1), b), "No straight forward leap")
	})
}
