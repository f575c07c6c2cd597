package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT precomputes c^2*ln(N) for a parent visited N times.
func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

// evaluate returns the UCB1 priority of a child with total value q over n
// visits. Unvisited children are always tried first.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	// UCB1 = q/n + c*sqrt(ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}
