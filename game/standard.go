package game

import "fmt"

// Back-row order for one side, from the low coordinate to the high one.
// Corners stay empty so the four home lines never overlap.
var homeRow = [Size - 2]PieceType{Square, Triangle, Diamond, Circle, Circle, Diamond, Triangle, Square}

// TurnOrder returns the seating order for a 2- or 4-player game.
func TurnOrder(players int) ([]Color, error) {
	switch players {
	case 2:
		return []Color{Red, Blue}, nil
	case 4:
		return []Color{Red, Green, Blue, Yellow}, nil
	}
	return nil, fmt.Errorf("unsupported player count %d: must be 2 or 4", players)
}

// NewStandardBoard lines up every color on its start line.
func NewStandardBoard(colors []Color) Board {
	var b Board
	id := 1
	for _, c := range colors {
		line := LineOf(c)
		for i, t := range homeRow {
			across := i + 1
			var p Position
			if line.Axis == AxisY {
				p = Position{X: across, Y: line.Start}
			} else {
				p = Position{X: line.Start, Y: across}
			}
			b.Place(p, Piece{ID: id, Type: t, Color: c})
			id++
		}
	}
	return b
}

// NewStandardGame sets up the initial state for a 2- or 4-player game.
func NewStandardGame(players int) (GameState, error) {
	order, err := TurnOrder(players)
	if err != nil {
		return GameState{}, err
	}
	return NewGameState(NewStandardBoard(order), order), nil
}
