package searcher

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"jumprace/game"
)

// runMCTS grows a tree from state for a fixed number of simulations, or
// until the time limit when one is configured, and picks a root move.
func (s *Session) runMCTS(state game.GameState, sc *search) game.Move {
	cfg := sc.cfg
	t := newTree(state, sc, s.rng)

	if cfg.TimeLimit > 0 {
		s.countdown(t, cfg.TimeLimit)
	} else {
		simulations := cfg.Simulations
		if simulations <= 0 {
			simulations = DEFAULT_SIMULATIONS
		}
		s.iterate(t, simulations)
	}

	s.policy = t.policy()
	move := s.selectRootMove(t, cfg)

	log.Debug().
		Int("simulations", t.nodes[0].visits).
		Int("nodes", len(t.nodes)).
		Str("move", move.String()).
		Msg("mcts search complete")
	return move
}

func (s *Session) iterate(t *tree, simulations int) {
	for i := 0; i < simulations; i++ {
		s.simulate(t)
		s.metrics.AddSimulation()
	}
}

// countdown simulates until the deadline passes. At least one simulation
// always runs so the root has a child to choose.
func (s *Session) countdown(t *tree, limit time.Duration) {
	deadline := time.Now().Add(limit)
	for {
		s.simulate(t)
		s.metrics.AddSimulation()
		if !time.Now().Before(deadline) {
			return
		}
	}
}

func (s *Session) simulate(t *tree) {
	leaf := t.selectLeaf()
	if len(t.nodes[leaf].untried) > 0 {
		leaf = t.expand(leaf)
		s.metrics.AddNode()
	}
	result := t.rollout(leaf, s.evaluate)
	t.backup(leaf, result)
}

// selectRootMove scores each root child by visits x win rate, discounted
// for undoing or replaying recent moves and for repetition and stagnation.
func (s *Session) selectRootMove(t *tree, cfg Config) game.Move {
	root := &t.nodes[0]
	best := game.NoMove
	bestScore := math.Inf(-1)
	for _, c := range root.children {
		child := &t.nodes[c]
		score := float64(child.visits) * child.winRate()

		if s.recent.Reverses(child.move) || s.recent.Repeats(child.move) {
			score *= OSCILLATION_DISCOUNT
		}
		if cfg.RepetitionPenalty {
			b := &child.state.Board
			penalty := s.history.Penalty(b, child.state.ToMove, child.mover, child.state.MoveCount)
			score /= 1 + float64(penalty)/PENALTY_SCALE
			if s.history.WouldCauseRepetition(b, child.state.ToMove) {
				score *= REPETITION_DISCOUNT
			}
		}

		if score > bestScore {
			best, bestScore = child.move, score
		}
	}
	return best
}
