package agent

import (
	"fmt"

	"jumprace/experiments/metrics"
	"jumprace/game"
	"jumprace/searcher"
)

type searchAgent struct {
	name    string
	session *searcher.Session
	config  searcher.Config
}

// NewDifficultyAgent returns an agent that plays at a named difficulty. It
// searches with the caches of session, which the game loop owns.
func NewDifficultyAgent(session *searcher.Session, difficulty searcher.Difficulty) (Agent, error) {
	config, err := searcher.ConfigFor(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return searchAgent{name: string(difficulty), session: session, config: config}, nil
}

// NewConfigAgent returns an agent with a custom search configuration.
func NewConfigAgent(name string, session *searcher.Session, config searcher.Config) Agent {
	return searchAgent{name: name, session: session, config: config}
}

func (a searchAgent) FindMove(state game.GameState) (game.Move, bool, metrics.SearchMetric) {
	move, ok := a.session.BestMove(state, a.config)
	if !ok {
		return game.NoMove, false, metrics.SearchMetric{}
	}
	return move, true, a.session.LastMetric()
}

func (a searchAgent) Name() string {
	return a.name
}
