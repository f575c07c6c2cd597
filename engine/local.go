package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jumprace/experiments/metrics"
	"jumprace/game"
	"jumprace/meta"
	"jumprace/searcher"
	"jumprace/searcher/agent"
)

type Local struct {
	State game.GameState

	session        *searcher.Session
	agents         map[game.Color]agent.Agent
	placements     []game.Color
	maxMoves       int
	repetitionDraw bool
}

// LocalEngine seats one agent per player of state, in seating order. The
// session holds the game's search caches and is reset when Run starts.
func LocalEngine(state game.GameState, session *searcher.Session, agents []agent.Agent, options ...Option) (*Local, error) {
	if len(state.Players) < 2 {
		return nil, errors.New("need at least two players")
	}
	if len(state.Players) != len(agents) {
		return nil, fmt.Errorf("number of players %d does not match number of agents %d", len(state.Players), len(agents))
	}

	e := &Local{
		State:    state,
		session:  session,
		agents:   make(map[game.Color]agent.Agent, len(agents)),
		maxMoves: meta.MAX_MOVES,
	}
	for i, c := range state.Players {
		e.agents[c] = agents[i]
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Placements returns the players in the order they finished.
func (e *Local) Placements() []game.Color {
	return e.placements
}

// Run executes the entire game loop until the game is over or drawn.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	e.session.Reset()
	e.session.RecordPosition(&e.State.Board, e.State.ToMove)
	e.placements = nil

	gameMetric := metrics.GameMetric{
		Players:        len(e.State.Players),
		StartingPlayer: e.State.ToMove,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting a %d-player game", e.State.ToMove, len(e.State.Players))

	var moveMetrics []metrics.MoveMetric
	passes := 0
	warned := false
	reason := ""
	for reason == "" {
		if game.IsGameOver(e.placements, len(e.State.Players)) {
			reason = ReasonFinished
			break
		}
		if e.State.MoveCount >= e.maxMoves {
			reason = ReasonMoveCap
			break
		}

		player := e.State.ToMove
		a := e.agents[player]
		move, ok, searchMetric := a.FindMove(e.State)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.MoveCount + 1,
			Player:       player,
			Difficulty:   a.Name(),
			Passed:       !ok,
			SearchMetric: searchMetric,
		})

		if !ok {
			log.Debug().Str("player", player.String()).Msg("no legal move, passing")
			e.State = e.State.Pass()
			passes++
			if passes >= len(e.State.Players)-len(e.placements) {
				reason = ReasonBlocked
			}
			continue
		}
		passes = 0

		if !lo.Contains(e.State.LegalMoves(), move) {
			return gameMetric, moveMetrics, fmt.Errorf("%s agent %s chose %s: %w", player, a.Name(), move, ErrIllegalMove)
		}

		e.State = e.State.Play(move)
		e.session.RecordPosition(&e.State.Board, e.State.ToMove)

		for {
			finisher, found := game.CheckWinner(&e.State.Board, e.placements)
			if !found {
				break
			}
			e.placements = append(e.placements, finisher)
			log.Info().Msgf("%s finished in place %d after %d moves", finisher, len(e.placements), e.State.MoveCount)
		}
		if game.IsGameOver(e.placements, len(e.State.Players)) {
			continue
		}

		if e.session.IsDrawByRepetition() {
			if e.repetitionDraw {
				reason = ReasonRepetition
			} else if !warned {
				log.Warn().Int("move", e.State.MoveCount).Msg("position repeated three times, continuing")
				warned = true
			}
		}
	}

	gameMetric.Reason = reason
	gameMetric.Placements = e.placements
	gameMetric.Draw = len(e.placements) == 0
	if !gameMetric.Draw {
		gameMetric.Winner = e.placements[0]
	}
	gameMetric.TotalMoves = e.State.MoveCount
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves (%s), winner: %s", gameMetric.TotalMoves, reason, gameMetric.Winner)
	return gameMetric, moveMetrics, nil
}

var _ Engine = (*Local)(nil)
