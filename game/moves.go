package game

import "github.com/samber/lo"

// LegalMoves enumerates every valid move for color by trying each of its
// pieces against each empty cell. Jumps and leaps make the reachable set
// irregular, so the brute-force scan is kept on purpose.
func LegalMoves(b *Board, color Color) []Move {
	moves := []Move{}
	for _, from := range b.PiecesOf(color) {
		piece := b.At(from)
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				to := Position{X: x, Y: y}
				if !b.IsEmpty(to) {
					continue
				}
				if IsMoveValid(piece, from, to, b) {
					moves = append(moves, Move{From: from, To: to, Piece: piece})
				}
			}
		}
	}
	return moves
}

// HasLegalMove is a cheaper LegalMoves(b, color) != empty.
func HasLegalMove(b *Board, color Color) bool {
	for _, from := range b.PiecesOf(color) {
		piece := b.At(from)
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				to := Position{X: x, Y: y}
				if b.IsEmpty(to) && IsMoveValid(piece, from, to, b) {
					return true
				}
			}
		}
	}
	return false
}

// SimulateMove returns the board after m. The input board is not modified.
func SimulateMove(b Board, m Move) Board {
	piece := b.At(m.From)
	b[m.From.Y][m.From.X] = Piece{}
	b[m.To.Y][m.To.X] = piece
	return b
}

// WithoutColors returns a copy of b with every piece of the given colors
// removed.
func WithoutColors(b Board, colors []Color) Board {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if piece := b[y][x]; !piece.IsEmpty() && lo.Contains(colors, piece.Color) {
				b[y][x] = Piece{}
			}
		}
	}
	return b
}
