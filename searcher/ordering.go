package searcher

import (
	"slices"

	"jumprace/game"
	"jumprace/utils"
)

// Move ordering priorities
const (
	HashMoveScore = 10000000 // TT move gets highest priority
	GoalScore     = 100000   // Move lands a piece on its goal line
	KillerScore1  = 90000    // First killer move
	KillerScore2  = 80000    // Second killer move

	jumpBase      = 500
	jumpPerCell   = 100
	progressScore = 200
	centerScore   = 10
	historyCap    = 50000 // Keeps history below the killer band
)

// moveKey identifies a move independently of piece identity.
type moveKey struct {
	from, to  game.Position
	pieceType game.PieceType
	color     game.Color
}

func keyOf(m game.Move) moveKey {
	return moveKey{from: m.From, to: m.To, pieceType: m.Piece.Type, color: m.Piece.Color}
}

// MoveOrderer ranks moves so alpha-beta sees likely cutoffs first.
type MoveOrderer struct {
	// Killer moves (moves that caused beta cutoffs), by ply
	killers [maxPly][2]game.Move

	// History heuristic: sum of depth^2 over cutoffs
	history map[moveKey]int
}

// NewMoveOrderer creates a new move orderer.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{history: make(map[moveKey]int)}
}

// Clear resets killers and history for a new game.
func (mo *MoveOrderer) Clear() {
	mo.ClearKillers()
	mo.history = make(map[moveKey]int)
}

// ClearKillers forgets the killer moves but keeps the history table.
// Killers are indexed by ply, which means a different position on every
// turn, so they only carry over between iterations of one search.
func (mo *MoveOrderer) ClearKillers() {
	for i := range mo.killers {
		mo.killers[i] = [2]game.Move{}
	}
}

// Order returns a copy of moves sorted best first.
func (mo *MoveOrderer) Order(moves []game.Move, ttMove game.Move, ply int) []game.Move {
	type scored struct {
		move  game.Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{move: m, score: mo.ScoreMove(m, ttMove, ply)}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return b.score - a.score
	})
	ordered := make([]game.Move, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.move
	}
	return ordered
}

// ScoreMove returns the ordering score for a single move.
func (mo *MoveOrderer) ScoreMove(m game.Move, ttMove game.Move, ply int) int {
	// TT move gets highest priority
	if !ttMove.IsZero() && m == ttMove {
		return HashMoveScore
	}

	line := game.LineOf(m.Piece.Color)
	score := 0

	if line.OnGoal(m.To) && !line.OnGoal(m.From) {
		score += GoalScore
	}

	if ply < maxPly {
		switch m {
		case mo.killers[ply][0]:
			score += KillerScore1
		case mo.killers[ply][1]:
			score += KillerScore2
		}
	}

	if distance := m.Distance(); distance > 1 {
		score += jumpBase + jumpPerCell*distance
	}

	score += (line.Distance(m.From) - line.Distance(m.To)) * progressScore

	// Doubled coordinates keep the board center (4.5, 4.5) integral
	centerDistance := (utils.Abs(2*m.To.X-(game.Size-1)) + utils.Abs(2*m.To.Y-(game.Size-1))) / 2
	score += (game.Size - 1 - centerDistance) * centerScore

	score += min(mo.history[keyOf(m)], historyCap)
	return score
}

// AddKiller records a cutoff move at ply. The first killer seen keeps the
// top slot; later ones rotate through the second.
func (mo *MoveOrderer) AddKiller(m game.Move, ply int) {
	if ply >= maxPly {
		return
	}
	slots := &mo.killers[ply]
	if slots[0] == m || slots[1] == m {
		return
	}
	if slots[0].IsZero() {
		slots[0] = m
		return
	}
	slots[1] = m
}

// Killers returns the killer moves at ply.
func (mo *MoveOrderer) Killers(ply int) [2]game.Move {
	if ply >= maxPly {
		return [2]game.Move{}
	}
	return mo.killers[ply]
}

// AddHistory credits a cutoff move with depth^2.
func (mo *MoveOrderer) AddHistory(m game.Move, depth int) {
	mo.history[keyOf(m)] += depth * depth
}

// History returns the accumulated history score of a move.
func (mo *MoveOrderer) History(m game.Move) int {
	return mo.history[keyOf(m)]
}
