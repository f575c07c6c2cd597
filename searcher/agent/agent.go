package agent

import (
	"jumprace/experiments/metrics"
	"jumprace/game"
)

type Agent interface {
	// FindMove returns a move for the player to move, false if that player
	// has to pass, and performance metrics (if collected) of the search.
	FindMove(state game.GameState) (game.Move, bool, metrics.SearchMetric)
	// Name identifies the agent in logs and experiment records.
	Name() string
}
