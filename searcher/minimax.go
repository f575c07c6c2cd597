package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jumprace/game"
)

const (
	strategyRandom  = "random"
	strategyMinimax = "minimax"
	strategyMCTS    = "mcts"
)

// rootSalt separates table entries of searches run for different root
// colors, since scores are stored from the root's perspective. phaseSalt
// separates entries of different evaluation phases.
const (
	rootSalt  = 0x9E3779B97F4A7C15
	phaseSalt = 0xC2B2AE3D27D4EB4F
)

func ttKey(gs game.GameState, root game.Color) uint64 {
	return gs.Hash() ^ uint64(root)*rootSalt ^ uint64(game.Phase(gs.MoveCount)+1)*phaseSalt
}

// winBound separates win and loss scores from ordinary evaluations.
const winBound = game.WinScore - maxPly

// scoreToTable makes win and loss scores relative to the node at ply, so a
// stored entry stays valid when the position is reached at another ply.
func scoreToTable(score, ply int) int {
	switch {
	case score >= winBound:
		return score + ply
	case score <= -winBound:
		return score - ply
	}
	return score
}

// scoreFromTable turns a stored score back into one relative to the root.
func scoreFromTable(score, ply int) int {
	switch {
	case score >= winBound:
		return score - ply
	case score <= -winBound:
		return score + ply
	}
	return score
}

// search holds what stays fixed during one BestMove call.
type search struct {
	root   game.Color
	placed []game.Color // Colors already finished when the search started
	cfg    Config
}

func newSearch(state game.GameState, cfg Config) *search {
	return &search{
		root:   state.ToMove,
		placed: state.Finished(),
		cfg:    cfg,
	}
}

// terminal reports whether another color finished since the search started.
func (sc *search) terminal(gs game.GameState) bool {
	_, ok := game.CheckWinner(&gs.Board, sc.placed)
	return ok
}

// view hides the pieces of colors that finished before the search started,
// so they neither count as winners nor as opponents.
func (sc *search) view(b *game.Board) *game.Board {
	if len(sc.placed) == 0 {
		return b
	}
	stripped := game.WithoutColors(*b, sc.placed)
	return &stripped
}

// BestMove picks a move for the player to move in state. It returns false
// when that player has no legal move and must pass.
func (s *Session) BestMove(state game.GameState, cfg Config) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, false
	}

	sc := newSearch(state, cfg)
	s.orderer.ClearKillers()
	var move game.Move
	switch {
	case cfg.Depth <= 0 && !cfg.UseMCTS:
		s.metrics.Start(strategyRandom)
		move = s.randomMove(state, moves)
	case cfg.UseMCTS && !cfg.IterativeDeepening:
		s.metrics.Start(strategyMCTS)
		move = s.runMCTS(state, sc)
	case cfg.IterativeDeepening && cfg.TimeLimit > 0:
		s.metrics.Start(strategyMinimax)
		move = s.iterativeDeepening(state, moves, sc)
	default:
		s.metrics.Start(strategyMinimax)
		depth := max(cfg.Depth, 1)
		move, _ = s.searchRoot(state, moves, depth, sc)
		s.metrics.SetDepth(depth)
	}

	s.recent.Push(move)
	s.last = s.metrics.Complete()
	return move, true
}

// randomMove picks uniformly among the moves that do not revisit a known
// position, or among all moves when every one of them does.
func (s *Session) randomMove(state game.GameState, moves []game.Move) game.Move {
	candidates := lo.Filter(moves, func(m game.Move, _ int) bool {
		next := state.Play(m)
		return !s.history.WouldCauseRepetition(&next.Board, next.ToMove)
	})
	if len(candidates) == 0 {
		candidates = moves
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// iterativeDeepening searches depth 1, 2, ... and keeps the result of the
// last completed depth. The time limit is only checked between iterations.
func (s *Session) iterativeDeepening(state game.GameState, moves []game.Move, sc *search) game.Move {
	start := time.Now()
	budget := time.Duration(float64(sc.cfg.TimeLimit) * timeBudgetFraction)

	var best game.Move
	for depth := 1; depth <= max(sc.cfg.Depth, 1); depth++ {
		move, score := s.searchRoot(state, moves, depth, sc)
		best = move
		s.metrics.SetDepth(depth)

		elapsed := time.Since(start)
		log.Debug().
			Int("depth", depth).
			Int("score", score).
			Str("move", move.String()).
			Dur("elapsed", elapsed).
			Msg("iteration complete")
		if elapsed >= budget {
			break
		}
	}
	return best
}

// searchRoot scores every root move with alpha-beta, then adjusts the scores
// for oscillation, repetition and stagnation and adds configured noise.
func (s *Session) searchRoot(state game.GameState, moves []game.Move, depth int, sc *search) (game.Move, int) {
	cfg, root := sc.cfg, sc.root
	hash := ttKey(state, root)

	ttMove := game.NoMove
	if cfg.UseTT {
		ttMove, _ = s.tt.HashMove(hash)
	}
	ordered := s.orderer.Order(moves, ttMove, 0)

	best := ordered[0]
	bestScore, bestSearched := -infinity, -infinity
	for _, m := range ordered {
		s.metrics.AddNode()
		child := state.Play(m)
		searched := s.alphaBeta(child, depth-1, -infinity, infinity, 1, sc)

		score := searched - s.recent.Penalty(m)
		if cfg.RepetitionPenalty {
			score -= s.history.Penalty(&child.Board, child.ToMove, root, child.MoveCount)
		}
		if cfg.Randomness > 0 {
			noise := cfg.Randomness * randomnessScale
			score += s.rng.Intn(2*noise+1) - noise
		}

		if score > bestScore {
			best, bestScore, bestSearched = m, score, searched
		}
	}

	if cfg.UseTT {
		s.tt.Store(hash, depth, bestSearched, TTExact, best)
	}
	return best, bestScore
}

// alphaBeta returns the score of gs from root's perspective. The root color
// maximizes and every other color minimizes, which in a 2-player game is
// plain alternation and in a 4-player game pits everyone against the root.
func (s *Session) alphaBeta(gs game.GameState, depth, alpha, beta, ply int, sc *search) int {
	s.metrics.AddNode()

	if depth <= 0 || ply >= maxPly || sc.terminal(gs) {
		return s.leafScore(gs, sc, ply)
	}

	cfg := sc.cfg
	alphaOrig, betaOrig := alpha, beta
	hash := ttKey(gs, sc.root)
	ttMove := game.NoMove
	if cfg.UseTT {
		if entry, ok := s.tt.Lookup(hash, depth); ok {
			s.metrics.AddTTHit()
			score := scoreFromTable(entry.Score, ply)
			switch entry.Flag {
			case TTExact:
				return score
			case TTLowerBound:
				alpha = max(alpha, score)
			case TTUpperBound:
				beta = min(beta, score)
			}
			if alpha >= beta {
				return score
			}
		}
		ttMove, _ = s.tt.HashMove(hash)
	}

	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return s.alphaBeta(gs.Pass(), depth-1, alpha, beta, ply+1, sc)
	}

	maximizing := gs.ToMove == sc.root
	best := infinity
	if maximizing {
		best = -infinity
	}
	bestMove := game.NoMove

	for _, m := range s.orderer.Order(moves, ttMove, ply) {
		score := s.alphaBeta(gs.Play(m), depth-1, alpha, beta, ply+1, sc)
		if maximizing {
			if score > best {
				best, bestMove = score, m
			}
			alpha = max(alpha, best)
		} else {
			if score < best {
				best, bestMove = score, m
			}
			beta = min(beta, best)
		}

		if alpha >= beta {
			s.metrics.AddCutoff()
			s.orderer.AddKiller(m, ply)
			s.orderer.AddHistory(m, depth)
			break
		}
	}

	if cfg.UseTT {
		flag := TTExact
		if best <= alphaOrig {
			flag = TTUpperBound
		} else if best >= betaOrig {
			flag = TTLowerBound
		}
		s.tt.Store(hash, depth, scoreToTable(best, ply), flag, bestMove)
	}
	return best
}

// leafScore evaluates from root's perspective. Wins found sooner score
// higher and losses found later score higher.
func (s *Session) leafScore(gs game.GameState, sc *search, ply int) int {
	score := s.evaluate(sc.view(&gs.Board), sc.root, gs.MoveCount)
	switch {
	case score >= game.WinScore:
		return score - ply
	case score <= -game.WinScore:
		return score + ply
	}
	return score
}
