package searcher

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config selects the search strategy and its budget for one move.
type Config struct {
	Depth              int
	Randomness         int // Percent
	UseTT              bool
	IterativeDeepening bool
	UseMCTS            bool
	Simulations        int
	TimeLimit          time.Duration
	RepetitionPenalty  bool
}

type Difficulty string

const (
	Beginner Difficulty = "beginner"
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	Expert   Difficulty = "expert"
	Master   Difficulty = "master"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

var difficulties = map[Difficulty]Config{
	Beginner: {Depth: 0, Randomness: 100},
	Easy:     {Depth: 1, Randomness: 30},
	Medium:   {Depth: 2, Randomness: 10, UseTT: true},
	Hard: {
		Depth: 3, Randomness: 2, UseTT: true,
		IterativeDeepening: true, TimeLimit: 2 * time.Second,
		RepetitionPenalty: true,
	},
	Expert: {
		Depth: 4, UseTT: true,
		IterativeDeepening: true, TimeLimit: 4 * time.Second,
		RepetitionPenalty: true,
	},
	Master: {
		UseMCTS: true, Simulations: 2000,
		RepetitionPenalty: true,
	},
}

// Difficulties lists the difficulty names from weakest to strongest.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Easy, Medium, Hard, Expert, Master}
}

// ConfigFor returns the search configuration of a difficulty.
func ConfigFor(d Difficulty) (Config, error) {
	config, ok := difficulties[d]
	if !ok {
		return Config{}, fmt.Errorf("config for %q: %w", d, ErrUnknownDifficulty)
	}
	return config, nil
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := difficulties[d]; !ok {
		return "", fmt.Errorf("parse difficulty %q: %w", name, ErrUnknownDifficulty)
	}
	return d, nil
}
