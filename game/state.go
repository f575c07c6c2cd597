package game

import (
	"github.com/samber/lo"

	"jumprace/utils"
)

// GameState is the board plus whose turn it is. Operations on GameState
// always return a new copy.
type GameState struct {
	Board     Board
	ToMove    Color
	Players   []Color // Seating order
	MoveCount int     // Plies played so far
}

// NewGameState starts a game with the first player in order to move.
func NewGameState(b Board, players []Color) GameState {
	order := make([]Color, len(players))
	copy(order, players)
	return GameState{
		Board:  b,
		ToMove: order[0],
		// Players is shared between copies and never written after this point
		Players: order,
	}
}

func (gs GameState) Player() Color {
	return gs.ToMove
}

func (gs GameState) FourPlayer() bool {
	return len(gs.Players) > 2
}

func (gs GameState) LegalMoves() []Move {
	return LegalMoves(&gs.Board, gs.ToMove)
}

// Play applies a move and hands the turn to the next unfinished player.
func (gs GameState) Play(move Move) GameState {
	next := gs
	next.Board = SimulateMove(gs.Board, move)
	next.MoveCount++
	next.ToMove = next.NextPlayer()
	return next
}

// Pass hands the turn on without moving (the mover had no legal move).
func (gs GameState) Pass() GameState {
	next := gs
	next.MoveCount++
	next.ToMove = next.NextPlayer()
	return next
}

// NextPlayer returns the player after ToMove in seating order, skipping
// players that have already finished. It returns ToMove if nobody else is
// left.
func (gs GameState) NextPlayer() Color {
	i := utils.FindIndex(gs.Players, gs.ToMove)
	for step := 1; step <= len(gs.Players); step++ {
		c := gs.Players[(i+step)%len(gs.Players)]
		if !HasFinished(&gs.Board, c) {
			return c
		}
	}
	return gs.ToMove
}

func (gs GameState) Hash() uint64 {
	return ComputeHash(&gs.Board, gs.ToMove)
}

// Winner returns the first color that has finished, if any.
func (gs GameState) Winner() (Color, bool) {
	return CheckWinner(&gs.Board, nil)
}

// Finished returns the players that have already brought every piece home,
// in seating order.
func (gs GameState) Finished() []Color {
	return lo.Filter(gs.Players, func(c Color, _ int) bool {
		return HasFinished(&gs.Board, c)
	})
}
