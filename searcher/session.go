package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"jumprace/experiments/metrics"
	"jumprace/game"
)

type Option func(s *Session)

// Session owns every cache the searches share across the moves of one game:
// the transposition table, killer and history tables, position history and
// the anti-oscillation buffers. A Session is not safe for concurrent use.
type Session struct {
	tt       *TranspositionTable
	orderer  *MoveOrderer
	history  *PositionHistory
	recent   *recentMoves
	rng      *rand.Rand
	evaluate game.Evaluate
	metrics  metrics.Collector

	last   metrics.SearchMetric
	policy map[game.Move]float64
}

func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithTableSize(entries int) Option {
	return func(s *Session) {
		if entries > 0 {
			s.tt = NewTranspositionTable(entries)
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Session) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Session) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSession(options ...Option) *Session {
	s := &Session{ // Default values
		tt:       NewTranspositionTable(defaultTableSize),
		orderer:  NewMoveOrderer(),
		history:  NewPositionHistory(),
		recent:   newRecentMoves(),
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		evaluate: game.EvaluateBoard,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Reset clears all per-game state. Call it before every new game.
func (s *Session) Reset() {
	s.tt.Clear()
	s.orderer.Clear()
	s.history.Reset()
	s.recent.Clear()
	s.last = metrics.SearchMetric{}
	s.policy = nil
}

// RecordPosition adds a position reached in the actual game to the history.
func (s *Session) RecordPosition(b *game.Board, nextToMove game.Color) {
	s.history.RecordPosition(b, nextToMove)
}

// IsDrawByRepetition reports whether a position of the game occurred often
// enough to call a draw. The searches never consult it.
func (s *Session) IsDrawByRepetition() bool {
	return s.history.IsDrawByRepetition()
}

func (s *Session) History() *PositionHistory {
	return s.history
}

func (s *Session) Table() *TranspositionTable {
	return s.tt
}

// LastMetric returns the metrics of the most recent BestMove call. They are
// only populated when the session was built WithMetrics.
func (s *Session) LastMetric() metrics.SearchMetric {
	return s.last
}

// Policy returns the root visit distribution of the most recent MCTS search.
func (s *Session) Policy() map[game.Move]float64 {
	return s.policy
}
