package engine

import (
	"errors"

	"jumprace/experiments/metrics"
)

// Reasons a game ends
const (
	ReasonFinished   = "finished"   // Enough players brought every piece home
	ReasonMoveCap    = "move cap"   // Draw by reaching the move limit
	ReasonRepetition = "repetition" // Draw by repetition, only when enabled
	ReasonBlocked    = "blocked"    // Nobody left in the game can move
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

type Option func(e *Local)

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithRepetitionDraw ends the game as a draw once a position occurs three
// times. Without it repetitions are only logged.
func WithRepetitionDraw() Option {
	return func(e *Local) {
		e.repetitionDraw = true
	}
}
