// meta/meta.go
package meta

// MAX_MOVES caps the number of plies in a single AI-vs-AI game.
const MAX_MOVES = 400

// GAMES_PER_MATCHUP defines the number of games played per difficulty pairing.
const GAMES_PER_MATCHUP = 10

// PARALLEL_GAMES bounds the number of games run at once by experiments.
const PARALLEL_GAMES = 4
