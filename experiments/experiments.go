package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"jumprace/engine"
	"jumprace/experiments/metrics"
	"jumprace/game"
	"jumprace/meta"
	"jumprace/searcher"
	"jumprace/searcher/agent"
)

type Settings struct {
	Name     string
	OutDir   string
	Players  int
	Games    int // Per matchup
	MaxMoves int
	Seed     uint64 // Game i of an experiment searches with Seed+i
}

// Summary tallies the first places of an experiment by difficulty.
type Summary struct {
	Dir   string
	Games int
	Draws int
	Wins  map[searcher.Difficulty]int
}

type gameResult struct {
	seats       []searcher.Difficulty
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// RunDifficultyExperiment plays settings.Games games per matchup, up to
// meta.PARALLEL_GAMES at a time, and writes the records as CSV files.
func RunDifficultyExperiment(ctx context.Context, settings Settings, matchUps [][]searcher.Difficulty) (Summary, error) {
	for _, matchup := range matchUps {
		if len(matchup) != settings.Players {
			return Summary{}, fmt.Errorf("matchup %v does not seat %d players", matchup, settings.Players)
		}
	}
	games := settings.Games
	if games <= 0 {
		games = meta.GAMES_PER_MATCHUP
	}

	log.Info().Msgf("starting %s experiment with %d matchups of %d games...", settings.Name, len(matchUps), games)

	results := make([]gameResult, len(matchUps)*games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.PARALLEL_GAMES)
	for mi, matchup := range matchUps {
		for i := 0; i < games; i++ {
			mi, i := mi, i
			index := mi*games + i
			// Rotate seats so every difficulty gets to start
			seats := append(append([]searcher.Difficulty{}, matchup[i%len(matchup):]...), matchup[:i%len(matchup)]...)

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, games)

				gameMetric, moveMetrics, err := runGame(settings, seats, settings.Seed+uint64(index))
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[index] = gameResult{seats: seats, gameMetric: gameMetric, moveMetrics: moveMetrics}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("completed %s experiment", settings.Name)

	dir, err := store(settings, matchUps, results)
	if err != nil {
		return Summary{}, err
	}
	summary := summarize(results)
	summary.Dir = dir
	return summary, nil
}

// runGame executes a single game with one agent per seat, all sharing the
// game's session.
func runGame(settings Settings, seats []searcher.Difficulty, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.NewStandardGame(settings.Players)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	session := searcher.NewSession(searcher.WithSeed(seed), searcher.WithMetrics())
	agents := make([]agent.Agent, len(seats))
	for i, d := range seats {
		agents[i], err = agent.NewDifficultyAgent(session, d)
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
	}

	options := []engine.Option{}
	if settings.MaxMoves > 0 {
		options = append(options, engine.WithMaxMoves(settings.MaxMoves))
	}
	e, err := engine.LocalEngine(state, session, agents, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func store(settings Settings, matchUps [][]searcher.Difficulty, results []gameResult) (string, error) {
	// Agent config IDs follow the difficulty ladder
	ids := map[searcher.Difficulty]int{}
	configs := []metrics.AgentConfig{}
	for i, d := range searcher.Difficulties() {
		if lo.ContainsBy(matchUps, func(matchup []searcher.Difficulty) bool { return lo.Contains(matchup, d) }) {
			ids[d] = i + 1
			configs = append(configs, metrics.AgentConfig{ID: i + 1, Difficulty: string(d)})
		}
	}

	gameRecords := make([]metrics.GameRecord, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, result := range results {
		gameRecords[i] = metrics.GameRecord{
			ID:         i + 1,
			Agents:     lo.Map(result.seats, func(d searcher.Difficulty, _ int) int { return ids[d] }),
			GameMetric: result.gameMetric,
		}
		for _, mm := range result.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}

	// Store experiment metadata
	writer, err := metrics.NewWriter(settings.OutDir, settings.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func summarize(results []gameResult) Summary {
	summary := Summary{Games: len(results), Wins: map[searcher.Difficulty]int{}}
	for _, result := range results {
		if result.gameMetric.Draw {
			summary.Draws++
			continue
		}
		// Seats follow the turn order of the standard setup
		order, err := game.TurnOrder(len(result.seats))
		if err != nil {
			continue
		}
		if seat := lo.IndexOf(order, result.gameMetric.Winner); seat >= 0 {
			summary.Wins[result.seats[seat]]++
		}
	}
	return summary
}
