package searcher

import (
	"jumprace/game"
)

// PositionHistory counts the positions reached in the current game and
// tracks, per color, whether its moves still bring it closer to the goal.
type PositionHistory struct {
	counts       map[uint64]int
	bestDistance map[game.Color]int
	stagnation   map[game.Color]int

	last    game.Board
	hasLast bool
}

func NewPositionHistory() *PositionHistory {
	h := &PositionHistory{}
	h.Reset()
	return h
}

func (h *PositionHistory) Reset() {
	h.counts = make(map[uint64]int)
	h.bestDistance = make(map[game.Color]int)
	h.stagnation = make(map[game.Color]int)
	h.last = game.Board{}
	h.hasLast = false
}

// RecordPosition registers b with nextToMove to play. The color that moved
// into b is found by diffing against the previously recorded board; its
// stagnation counter grows unless its total distance to goal hit a new low.
func (h *PositionHistory) RecordPosition(b *game.Board, nextToMove game.Color) {
	h.counts[game.ComputeHash(b, nextToMove)]++

	for _, c := range b.Colors() {
		if _, ok := h.bestDistance[c]; !ok {
			h.bestDistance[c] = game.TotalDistance(b, c)
		}
	}

	if h.hasLast {
		if mover, ok := moverBetween(&h.last, b); ok {
			distance := game.TotalDistance(b, mover)
			if distance < h.bestDistance[mover] {
				h.bestDistance[mover] = distance
				h.stagnation[mover] = 0
			} else {
				h.stagnation[mover]++
			}
		}
	}
	h.last = *b
	h.hasLast = true
}

// moverBetween returns the color of the piece that arrived on a cell between
// two consecutive boards. Passes leave the board unchanged.
func moverBetween(before, after *game.Board) (game.Color, bool) {
	for y := 0; y < game.Size; y++ {
		for x := 0; x < game.Size; x++ {
			if piece := after[y][x]; !piece.IsEmpty() && piece != before[y][x] {
				return piece.Color, true
			}
		}
	}
	return game.NoColor, false
}

// Count returns how many times the position was recorded.
func (h *PositionHistory) Count(b *game.Board, toMove game.Color) int {
	return h.counts[game.ComputeHash(b, toMove)]
}

func (h *PositionHistory) Stagnation(c game.Color) int {
	return h.stagnation[c]
}

// RepetitionPenalty doubles with every earlier occurrence of the position.
func (h *PositionHistory) RepetitionPenalty(b *game.Board, toMove game.Color, moveCount int) int {
	count := h.Count(b, toMove)
	if count == 0 {
		return 0
	}
	return rampUp(repetitionBase<<min(count-1, maxPenaltyDoublings), moveCount)
}

// StagnationPenalty applies once a color has gone more than stagnationGrace
// moves without improving, doubling per extra move.
func (h *PositionHistory) StagnationPenalty(c game.Color, moveCount int) int {
	return stagnationPenalty(h.stagnation[c], moveCount)
}

func stagnationPenalty(stagnant int, moveCount int) int {
	if stagnant <= stagnationGrace {
		return 0
	}
	excess := stagnant - stagnationGrace
	return rampUp(stagnationBase<<min(excess-1, maxPenaltyDoublings), moveCount)
}

// Penalty is the combined repetition and stagnation cost of mover producing
// b. The stagnation part is projected as if b were recorded.
func (h *PositionHistory) Penalty(b *game.Board, nextToMove, mover game.Color, moveCount int) int {
	penalty := h.RepetitionPenalty(b, nextToMove, moveCount)

	stagnant := h.stagnation[mover]
	if best, ok := h.bestDistance[mover]; ok && game.TotalDistance(b, mover) >= best {
		stagnant++
	} else {
		stagnant = 0
	}
	return penalty + stagnationPenalty(stagnant, moveCount)
}

// WouldCauseRepetition reports whether b with toMove to play was already seen.
func (h *PositionHistory) WouldCauseRepetition(b *game.Board, toMove game.Color) bool {
	return h.Count(b, toMove) >= repetitionWarnCount
}

// IsDrawByRepetition reports whether any position occurred
// repetitionDrawCount times. Nothing in the search acts on it.
func (h *PositionHistory) IsDrawByRepetition() bool {
	for _, count := range h.counts {
		if count >= repetitionDrawCount {
			return true
		}
	}
	return false
}

// rampUp scales a penalty by up to 2x over the first penaltyRampMoves plies.
func rampUp(penalty int, moveCount int) int {
	ramp := min(max(moveCount, 0), penaltyRampMoves)
	return penalty + penalty*ramp/penaltyRampMoves
}
