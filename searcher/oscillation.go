package searcher

import (
	"github.com/samber/lo"

	"jumprace/game"
)

// recentMoves keeps the last few moves chosen for each color, oldest first.
type recentMoves struct {
	moves map[game.Color][]game.Move
}

func newRecentMoves() *recentMoves {
	return &recentMoves{moves: make(map[game.Color][]game.Move)}
}

func (r *recentMoves) Push(m game.Move) {
	c := m.Piece.Color
	buffer := append(r.moves[c], m)
	if len(buffer) > recentMovesSize {
		buffer = buffer[len(buffer)-recentMovesSize:]
	}
	r.moves[c] = buffer
}

func (r *recentMoves) Clear() {
	r.moves = make(map[game.Color][]game.Move)
}

// Reverses reports whether m undoes any recent move of its color.
func (r *recentMoves) Reverses(m game.Move) bool {
	return lo.ContainsBy(r.moves[m.Piece.Color], func(prev game.Move) bool {
		return m.Reverses(prev)
	})
}

// Repeats reports whether m was itself chosen recently.
func (r *recentMoves) Repeats(m game.Move) bool {
	return lo.ContainsBy(r.moves[m.Piece.Color], func(prev game.Move) bool {
		return sameMove(m, prev)
	})
}

// Penalty weighs reversals by recency, the latest move costing the full
// oscillationPenalty, and adds a flat bias for replaying a recent move.
func (r *recentMoves) Penalty(m game.Move) int {
	buffer := r.moves[m.Piece.Color]
	penalty := 0
	for i := len(buffer) - 1; i >= 0; i-- {
		age := len(buffer) - 1 - i
		if m.Reverses(buffer[i]) {
			penalty += oscillationPenalty * (recentMovesSize - age) / recentMovesSize
		}
		if sameMove(m, buffer[i]) {
			penalty += repeatedMoveBias
		}
	}
	return penalty
}

func sameMove(a, b game.Move) bool {
	return a.Piece.ID == b.Piece.ID && a.From == b.From && a.To == b.To
}
