package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jumprace/experiments"
	"jumprace/meta"
	"jumprace/searcher"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs the command and returns the exit code, after deferred calls
// such as stopping the profiler have run.
func execute(args []string) int {
	fs := flag.NewFlagSet("jumprace", flag.ContinueOnError)
	players := fs.Int("players", 2, "players per game (2 or 4)")
	games := fs.Int("games", meta.GAMES_PER_MATCHUP, "games per matchup")
	matchup := fs.String("matchup", "ladder", "ladder, mirror, or a comma-separated list of difficulties per seat")
	difficultyList := fs.String("difficulties", "beginner,easy,medium", "difficulties used by ladder and mirror matchups")
	maxMoves := fs.Int("max-moves", meta.MAX_MOVES, "move cap per game")
	out := fs.String("out", "experiments", "output directory for CSV records")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "seed of the first game")
	cpuProfile := fs.Bool("profile", false, "write a CPU profile")
	profileDir := fs.String("profile-dir", ".", "directory of the CPU profile")
	verbose := fs.Bool("v", false, "log search details")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	}

	if err := run(*players, *games, *matchup, *difficultyList, *maxMoves, *out, *seed); err != nil {
		log.Error().Err(err).Msg("experiment failed")
		return 1
	}
	return 0
}

func run(players, games int, matchup, difficultyList string, maxMoves int, out string, seed uint64) error {
	difficulties, err := parseDifficulties(difficultyList)
	if err != nil {
		return err
	}

	var matchUps [][]searcher.Difficulty
	switch matchup {
	case "ladder":
		matchUps = experiments.Ladder(players, difficulties)
	case "mirror":
		matchUps = experiments.Mirror(players, difficulties)
	default:
		seats, err := parseDifficulties(matchup)
		if err != nil {
			return err
		}
		matchUps = [][]searcher.Difficulty{seats}
	}
	if len(matchUps) == 0 {
		return fmt.Errorf("matchup %q with difficulties %q yields no games", matchup, difficultyList)
	}

	settings := experiments.Settings{
		Name:     fmt.Sprintf("%s_%dp", strings.ReplaceAll(matchup, ",", "-"), players),
		OutDir:   out,
		Players:  players,
		Games:    games,
		MaxMoves: maxMoves,
		Seed:     seed,
	}
	summary, err := experiments.RunDifficultyExperiment(context.Background(), settings, matchUps)
	if err != nil {
		return err
	}

	for _, d := range searcher.Difficulties() {
		if wins, ok := summary.Wins[d]; ok {
			log.Info().Msgf("%s won %d of %d games", d, wins, summary.Games)
		}
	}
	log.Info().Msgf("%d of %d games drawn, records stored in %s", summary.Draws, summary.Games, summary.Dir)
	return nil
}

func parseDifficulties(list string) ([]searcher.Difficulty, error) {
	names := lo.Filter(strings.Split(list, ","), func(name string, _ int) bool {
		return strings.TrimSpace(name) != ""
	})
	difficulties := make([]searcher.Difficulty, len(names))
	for i, name := range names {
		d, err := searcher.ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		difficulties[i] = d
	}
	return difficulties, nil
}
