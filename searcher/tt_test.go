package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jumprace/game"
)

func TestTranspositionTable(t *testing.T) {
	move := game.Move{
		From:  game.Position{X: 4, Y: 9},
		To:    game.Position{X: 4, Y: 8},
		Piece: game.Piece{ID: 4, Type: game.Circle, Color: game.Red},
	}

	t.Run("depth-preferred replacement", func(t *testing.T) {
		tt := NewTranspositionTable(16)
		tt.Store(1, 3, 50, TTExact, move)
		tt.Store(1, 2, -20, TTUpperBound, game.NoMove)

		entry, ok := tt.Lookup(1, 3)
		require.True(t, ok, "Deeper entry should survive a shallower store")
		require.Equal(t, 50, entry.Score)
		require.Equal(t, TTExact, entry.Flag)

		tt.Store(1, 3, 70, TTLowerBound, move)
		entry, ok = tt.Lookup(1, 3)
		require.True(t, ok)
		require.Equal(t, 70, entry.Score, "Equal depth should overwrite")

		tt.Store(1, 5, 10, TTExact, move)
		entry, ok = tt.Lookup(1, 5)
		require.True(t, ok)
		require.Equal(t, 5, entry.Depth, "Deeper depth should overwrite")
	})

	t.Run("lookup requires sufficient depth", func(t *testing.T) {
		tt := NewTranspositionTable(16)
		tt.Store(7, 2, 10, TTExact, move)

		_, ok := tt.Lookup(7, 3)
		require.False(t, ok, "A depth-2 entry cannot answer a depth-3 query")

		entry, ok := tt.Lookup(7, 1)
		require.True(t, ok, "A depth-2 entry answers a depth-1 query")
		require.Equal(t, 2, entry.Depth)

		_, ok = tt.Lookup(8, 0)
		require.False(t, ok, "Unknown hash should miss")
		require.InDelta(t, 100.0/3.0, tt.HitRate(), 1e-9)
	})

	t.Run("hash move ignores depth", func(t *testing.T) {
		tt := NewTranspositionTable(16)
		tt.Store(9, 1, 0, TTLowerBound, move)

		got, ok := tt.HashMove(9)
		require.True(t, ok)
		require.Equal(t, move, got)

		_, ok = tt.HashMove(10)
		require.False(t, ok)
	})

	t.Run("evicting the oldest quarter", func(t *testing.T) {
		tt := NewTranspositionTable(8)
		for hash := uint64(1); hash <= 9; hash++ {
			tt.Store(hash, 1, int(hash), TTExact, game.NoMove)
		}

		// 9 entries over a capacity of 8 drops the 2 oldest
		require.Equal(t, 7, tt.Len())
		for hash := uint64(1); hash <= 2; hash++ {
			_, ok := tt.Lookup(hash, 0)
			require.False(t, ok, "Entry %d should have been evicted", hash)
		}
		for hash := uint64(3); hash <= 9; hash++ {
			_, ok := tt.Lookup(hash, 0)
			require.True(t, ok, "Entry %d should have been kept", hash)
		}
	})

	t.Run("overwriting does not count as a new entry", func(t *testing.T) {
		tt := NewTranspositionTable(8)
		for i := 0; i < 20; i++ {
			tt.Store(42, i, i, TTExact, game.NoMove)
		}
		require.Equal(t, 1, tt.Len())
	})

	t.Run("clearing", func(t *testing.T) {
		tt := NewTranspositionTable(8)
		tt.Store(1, 1, 1, TTExact, move)
		tt.Lookup(1, 1)
		tt.Clear()

		require.Zero(t, tt.Len())
		require.Zero(t, tt.HitRate())
		_, ok := tt.HashMove(1)
		require.False(t, ok)
	})
}

func TestTableKeys(t *testing.T) {
	state := standardGame(t, 2)
	later := state
	later.MoveCount = 10
	much := state
	much.MoveCount = 60

	require.Equal(t, ttKey(state, game.Red), ttKey(later, game.Red), "Same evaluation phase")
	require.NotEqual(t, ttKey(state, game.Red), ttKey(much, game.Red), "Later phases evaluate differently")
	require.NotEqual(t, ttKey(state, game.Red), ttKey(state, game.Blue), "Roots score from their own side")
}

func TestTableScores(t *testing.T) {
	t.Run("win distance is relative to the stored node", func(t *testing.T) {
		// A win found 5 plies below the root by a node at ply 3
		stored := scoreToTable(game.WinScore-5, 3)
		require.Equal(t, game.WinScore-2, stored)
		require.Equal(t, game.WinScore-5, scoreFromTable(stored, 3))
		require.Equal(t, game.WinScore-3, scoreFromTable(stored, 1), "Reached sooner, the win is closer")
	})

	t.Run("losses mirror wins", func(t *testing.T) {
		stored := scoreToTable(-game.WinScore+4, 2)
		require.Equal(t, -game.WinScore+2, stored)
		require.Equal(t, -game.WinScore+6, scoreFromTable(stored, 4))
	})

	t.Run("ordinary scores pass through", func(t *testing.T) {
		require.Equal(t, 350, scoreToTable(350, 7))
		require.Equal(t, -120, scoreFromTable(-120, 7))
	})

	t.Run("searching with the table still finds the shortest win", func(t *testing.T) {
		s := NewSession(WithSeed(1))
		cfg := Config{Depth: 3, UseTT: true}
		for i := 0; i < 2; i++ {
			move, ok := s.BestMove(nearlyWon(), cfg)
			require.True(t, ok)
			require.Equal(t, game.Position{X: 5, Y: 0}, move.To)
		}
	})
}
