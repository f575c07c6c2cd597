package experiments

import (
	"github.com/samber/lo"

	"jumprace/searcher"
)

// Mirror seats the same difficulty in every chair, one matchup per
// difficulty, for games of even strength.
func Mirror(players int, difficulties []searcher.Difficulty) [][]searcher.Difficulty {
	return lo.Map(difficulties, func(d searcher.Difficulty, _ int) []searcher.Difficulty {
		return lo.Times(players, func(int) searcher.Difficulty { return d })
	})
}

// Ladder pairs each difficulty against the next stronger one. In 4-player
// games the two alternate around the table.
func Ladder(players int, difficulties []searcher.Difficulty) [][]searcher.Difficulty {
	matchUps := [][]searcher.Difficulty{}
	for i := 0; i+1 < len(difficulties); i++ {
		weaker, stronger := difficulties[i], difficulties[i+1]
		matchUps = append(matchUps, lo.Times(players, func(seat int) searcher.Difficulty {
			if seat%2 == 0 {
				return weaker
			}
			return stronger
		}))
	}
	return matchUps
}

// Against pairs a baseline difficulty against every other one.
func Against(players int, baseline searcher.Difficulty, difficulties []searcher.Difficulty) [][]searcher.Difficulty {
	others := lo.Without(difficulties, baseline)
	return lo.Map(others, func(d searcher.Difficulty, _ int) []searcher.Difficulty {
		return lo.Times(players, func(seat int) searcher.Difficulty {
			if seat%2 == 0 {
				return baseline
			}
			return d
		})
	})
}
