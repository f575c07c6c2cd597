package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	for _, players := range []int{2, 4} {
		gs, err := NewStandardGame(players)
		require.NoError(t, err)

		for _, color := range gs.Players {
			moves := LegalMoves(&gs.Board, color)
			require.NotEmpty(t, moves, "%s should have opening moves in a %d-player game", color, players)
			for _, m := range moves {
				require.True(t, gs.Board.IsEmpty(m.To), "Move %s targets an occupied cell", m)
				require.Equal(t, color, m.Piece.Color, "Move %s should belong to %s", m, color)
				require.Equal(t, gs.Board.At(m.From), m.Piece, "Move %s should snapshot the moving piece", m)
				require.True(t, IsMoveValid(m.Piece, m.From, m.To, &gs.Board), "Move %s should be valid", m)
			}
		}
	}

	t.Run("walking a random game keeps every move on an empty cell", func(t *testing.T) {
		gs, err := NewStandardGame(2)
		require.NoError(t, err)
		for ply := 0; ply < 60; ply++ {
			moves := gs.LegalMoves()
			if len(moves) == 0 {
				gs = gs.Pass()
				continue
			}
			for _, m := range moves {
				require.True(t, gs.Board.IsEmpty(m.To), "Move %s targets an occupied cell", m)
			}
			gs = gs.Play(moves[(ply*7)%len(moves)])
		}
	})

	t.Run("color without pieces has no moves", func(t *testing.T) {
		b := NewStandardBoard([]Color{Red, Blue})
		require.Empty(t, LegalMoves(&b, Green))
		require.False(t, HasLegalMove(&b, Green))
		require.True(t, HasLegalMove(&b, Red))
	})
}

func TestSimulateMove(t *testing.T) {
	b := NewStandardBoard([]Color{Red, Blue})
	before := b
	piece := b.At(pos(1, 9))
	m := Move{From: pos(1, 9), To: pos(1, 8), Piece: piece}

	after := SimulateMove(b, m)

	require.Equal(t, before, b, "Input board should not change")
	require.True(t, after.IsEmpty(pos(1, 9)), "Origin should be empty")
	require.Equal(t, piece, after.At(pos(1, 8)), "Piece should land on the destination")
}
