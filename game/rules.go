package game

import "jumprace/utils"

// IsMoveValid reports whether piece may move from one cell to another.
//
// A move is one of:
//   - a step to an adjacent cell in a direction allowed for the piece type
//   - a sideways step along the piece's own start line (any type)
//   - a jump of exactly two cells over an occupied midpoint
//   - a leap along a straight line over exactly one obstacle, with the same
//     number of empty cells on either side of it
//
// The destination must always be empty. Jumps and leaps follow the same
// directions as the piece's steps.
func IsMoveValid(piece Piece, from, to Position, b *Board) bool {
	if from == to || !from.InBounds() || !to.InBounds() {
		return false
	}
	if !b.IsEmpty(to) {
		return false
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	adx, ady := utils.Abs(dx), utils.Abs(dy)
	distance := max(adx, ady)

	if distance == 1 {
		if directionAllowed(piece, dx, dy) {
			return true
		}
		return isStartLineSideways(piece, from, dx, dy)
	}

	// Jumps and leaps travel along a straight or diagonal line
	if dx != 0 && dy != 0 && adx != ady {
		return false
	}
	ux, uy := utils.Sign(dx), utils.Sign(dy)
	if !directionAllowed(piece, ux, uy) {
		return false
	}

	if distance == 2 {
		return isJump(from, ux, uy, b)
	}
	return isLeap(from, ux, uy, distance, b)
}

// directionAllowed checks a unit direction against the piece's movement shape.
func directionAllowed(piece Piece, ux, uy int) bool {
	orthogonal := (ux == 0) != (uy == 0)
	diagonal := ux != 0 && uy != 0

	switch piece.Type {
	case Square:
		return orthogonal
	case Diamond:
		return diagonal
	case Circle:
		return orthogonal || diagonal
	case Triangle:
		line := LineOf(piece.Color)
		along, across := line.Split(ux, uy)
		forward := line.Forward()
		diagonalForward := along == forward && across != 0
		straightBackward := along == -forward && across == 0
		return diagonalForward || straightBackward
	}
	return false
}

// isStartLineSideways allows any piece still on its start line to shuffle
// one cell along that line.
func isStartLineSideways(piece Piece, from Position, dx, dy int) bool {
	line := LineOf(piece.Color)
	if !line.OnStart(from) {
		return false
	}
	along, across := line.Split(dx, dy)
	return along == 0 && utils.Abs(across) == 1
}

func isJump(from Position, ux, uy int, b *Board) bool {
	mid := Position{X: from.X + ux, Y: from.Y + uy}
	return !b.IsEmpty(mid)
}

// isLeap requires an odd number (2n+1, n >= 1) of cells between origin and
// destination, with the only occupied one exactly in the middle.
func isLeap(from Position, ux, uy, distance int, b *Board) bool {
	between := distance - 1
	if between < 3 || between%2 == 0 {
		return false
	}
	middle := distance / 2
	for step := 1; step < distance; step++ {
		cell := Position{X: from.X + ux*step, Y: from.Y + uy*step}
		occupied := !b.IsEmpty(cell)
		if step == middle && !occupied {
			return false
		}
		if step != middle && occupied {
			return false
		}
	}
	return true
}
