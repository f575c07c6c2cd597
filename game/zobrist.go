package game

import "golang.org/x/exp/rand"

const zobristSeed = 0x9e3779b97f4a7c15

var (
	pieceKeys [Size * Size][len(pieceNames)][len(colorNames)]uint64
	sideKeys  [len(colorNames)]uint64
)

func init() {
	// Fixed seed keeps hashes stable between runs
	rng := rand.New(rand.NewSource(zobristSeed))
	next := func() uint64 {
		v := rng.Uint64()
		for v == 0 {
			v = rng.Uint64()
		}
		return v
	}
	for cell := range pieceKeys {
		for t := range pieceKeys[cell] {
			for c := range pieceKeys[cell][t] {
				pieceKeys[cell][t][c] = next()
			}
		}
	}
	for c := range sideKeys {
		sideKeys[c] = next()
	}
}

// ComputeHash fingerprints a board together with the color to move.
func ComputeHash(b *Board, toMove Color) uint64 {
	var hash uint64
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			piece := b[y][x]
			if piece.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[y*Size+x][piece.Type][piece.Color]
		}
	}
	return hash ^ sideKeys[toMove]
}
