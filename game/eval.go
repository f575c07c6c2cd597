package game

import "math"

// Scores are centipawn-like integers from one color's perspective.
const (
	WinScore = 100000

	materialValue         = 10
	progressWeightBase    = 10
	goalBonusBase         = 30
	almostWinBonus        = 200
	trailingPenaltyWeight = 4
	trailingPenaltyAfter  = 50

	// Escalation grows every escalationPeriod plies, up to escalationCap steps
	escalationPeriod = 20
	escalationCap    = 10

	// 4-player blend for non-root movers
	ownWeight  = 0.7
	rootWeight = 0.3

	// Score distance at which Normalize reaches ~0.73
	normalizeScale = 400.0
)

// EvaluateBoard scores the board from color's perspective. Terminal
// positions return +/-WinScore. Otherwise the color's race standing is
// compared against the mean standing of its opponents.
func EvaluateBoard(b *Board, color Color, moveCount int) int {
	if HasFinished(b, color) {
		return WinScore
	}
	colors := b.Colors()
	for _, c := range colors {
		if c != color && HasFinished(b, c) {
			return -WinScore
		}
	}

	own := sideScore(b, color, moveCount)
	opponents := 0
	opponentTotal := 0
	bestOpponentDistance := math.MaxInt
	for _, c := range colors {
		if c == color {
			continue
		}
		opponents++
		opponentTotal += sideScore(b, c, moveCount)
		bestOpponentDistance = min(bestOpponentDistance, TotalDistance(b, c))
	}

	score := own
	if opponents > 0 {
		score -= opponentTotal / opponents
	}

	// Late in the game, trailing the leader is penalized on top of the race gap
	if moveCount > trailingPenaltyAfter && opponents > 0 {
		if gap := TotalDistance(b, color) - bestOpponentDistance; gap > 0 {
			score -= gap * trailingPenaltyWeight
		}
	}
	return score
}

// sideScore is the absolute standing of one color: material, progress
// towards the goal, pieces already home and the almost-finished bonus.
func sideScore(b *Board, c Color, moveCount int) int {
	line := LineOf(c)
	escalation := min(moveCount/escalationPeriod, escalationCap)
	progressWeight := progressWeightBase + escalation
	goalBonus := goalBonusBase + 5*escalation

	score := 0
	remaining := 0
	for _, p := range b.PiecesOf(c) {
		score += materialValue
		distance := line.Distance(p)
		score += (Size - 1 - distance) * progressWeight
		if distance == 0 {
			score += goalBonus
		} else {
			remaining++
		}
	}
	if remaining == 1 {
		score += almostWinBonus
	}
	return score
}

// BlendedEvaluate applies the 4-player "everyone vs the leader"
// approximation: a mover other than the root scores a position as
// 0.7 x its own view minus 0.3 x the root's view.
func BlendedEvaluate(b *Board, mover, root Color, moveCount int, fourPlayer bool, evaluate Evaluate) float64 {
	own := float64(evaluate(b, mover, moveCount))
	if !fourPlayer || mover == root {
		return own
	}
	return ownWeight*own - rootWeight*float64(evaluate(b, root, moveCount))
}

// Phase groups move counts that EvaluateBoard scores alike. Two positions
// with the same board and phase evaluate the same.
func Phase(moveCount int) int {
	phase := 2 * min(moveCount/escalationPeriod, escalationCap)
	if moveCount > trailingPenaltyAfter {
		phase++
	}
	return phase
}

// Normalize squashes a score into [0,1]. Wins map to 1 and losses to 0.
func Normalize(score float64) float64 {
	if score >= WinScore {
		return 1
	}
	if score <= -WinScore {
		return 0
	}
	return 1 / (1 + math.Exp(-score/normalizeScale))
}
