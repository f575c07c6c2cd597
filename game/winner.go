package game

import "github.com/samber/lo"

// CheckWinner returns a color that has finished the race and is not yet in
// placements. Colors are checked in board order.
func CheckWinner(b *Board, placements []Color) (Color, bool) {
	for _, c := range b.Colors() {
		if lo.Contains(placements, c) {
			continue
		}
		if HasFinished(b, c) {
			return c, true
		}
	}
	return NoColor, false
}

// IsGameOver reports whether enough colors have placed to end the game: the
// first finisher in a 2-player game, all but the last one otherwise.
func IsGameOver(placements []Color, playerCount int) bool {
	if playerCount <= 1 {
		return len(placements) > 0
	}
	return len(placements) >= playerCount-1
}
