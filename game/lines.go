package game

import "jumprace/utils"

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Line describes where a color starts and where it races to. The start and
// goal are rows (AxisY) or columns (AxisX) at opposite edges of the board.
type Line struct {
	Axis  Axis
	Start int
	Goal  int
}

var lines = map[Color]Line{
	Red:    {Axis: AxisY, Start: Size - 1, Goal: 0},
	Blue:   {Axis: AxisY, Start: 0, Goal: Size - 1},
	Yellow: {Axis: AxisX, Start: 0, Goal: Size - 1},
	Green:  {Axis: AxisX, Start: Size - 1, Goal: 0},
}

// LineOf returns the start/goal line of a color.
func LineOf(c Color) Line {
	return lines[c]
}

// Forward is +1 or -1 along the line's axis.
func (l Line) Forward() int {
	return utils.Sign(l.Goal - l.Start)
}

// Coord returns the coordinate of p along the axis.
func (l Line) Coord(p Position) int {
	if l.Axis == AxisX {
		return p.X
	}
	return p.Y
}

// Split decomposes a displacement into its component along the axis and the
// component across it.
func (l Line) Split(dx, dy int) (along, across int) {
	if l.Axis == AxisX {
		return dx, dy
	}
	return dy, dx
}

func (l Line) Distance(p Position) int {
	return utils.Abs(l.Goal - l.Coord(p))
}

func (l Line) OnStart(p Position) bool {
	return l.Coord(p) == l.Start
}

func (l Line) OnGoal(p Position) bool {
	return l.Coord(p) == l.Goal
}

// TotalDistance sums the distance to goal of every piece of the color.
func TotalDistance(b *Board, c Color) int {
	line := LineOf(c)
	total := 0
	for _, p := range b.PiecesOf(c) {
		total += line.Distance(p)
	}
	return total
}

// HasFinished reports whether every live piece of c sits on its goal line.
// A color without pieces has not finished.
func HasFinished(b *Board, c Color) bool {
	line := LineOf(c)
	pieces := b.PiecesOf(c)
	if len(pieces) == 0 {
		return false
	}
	for _, p := range pieces {
		if !line.OnGoal(p) {
			return false
		}
	}
	return true
}
