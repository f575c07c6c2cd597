package searcher

import (
	"golang.org/x/exp/rand"

	"jumprace/game"
)

const noParent = -1

// node is one position in the search tree. Nodes live in the tree's arena
// and refer to each other by index.
type node struct {
	state    game.GameState
	mover    game.Color // Color that played move; NoColor at the root
	move     game.Move
	parent   int
	children []int
	visits   int
	value    float64 // Sum of results from mover's perspective
	untried  []game.Move
}

func (n *node) winRate() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.value / float64(n.visits)
}

type tree struct {
	nodes      []node
	root       game.Color
	fourPlayer bool
	sc         *search
	rng        *rand.Rand
}

func newTree(state game.GameState, sc *search, rng *rand.Rand) *tree {
	t := &tree{
		root:       sc.root,
		fourPlayer: state.FourPlayer(),
		sc:         sc,
		rng:        rng,
	}
	t.nodes = append(t.nodes, node{
		state:   state,
		mover:   game.NoColor,
		parent:  noParent,
		untried: t.shuffled(state.LegalMoves()),
	})
	return t
}

// untriedMoves lists the moves to expand from state in random order.
// Finished games have none.
func (t *tree) untriedMoves(state game.GameState) []game.Move {
	if t.sc.terminal(state) {
		return nil
	}
	return t.shuffled(state.LegalMoves())
}

func (t *tree) shuffled(moves []game.Move) []game.Move {
	t.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves
}

// selectLeaf descends by UCB1 through fully expanded nodes.
func (t *tree) selectLeaf() int {
	i := 0
	for len(t.nodes[i].untried) == 0 && len(t.nodes[i].children) > 0 {
		i = t.bestChild(i)
	}
	return i
}

func (t *tree) bestChild(i int) int {
	parent := &t.nodes[i]
	u := newUCT(EXPLORATION, float64(parent.visits))

	best := parent.children[0]
	bestPriority := -1.0
	for _, c := range parent.children {
		child := &t.nodes[c]
		priority := u.evaluate(child.value, float64(child.visits))
		if priority > bestPriority {
			best, bestPriority = c, priority
		}
	}
	return best
}

// expand pops one untried move of node i and adds the resulting child.
// Players without a legal move pass until someone can move.
func (t *tree) expand(i int) int {
	untried := t.nodes[i].untried
	move := untried[len(untried)-1]
	t.nodes[i].untried = untried[:len(untried)-1]

	state := t.nodes[i].state
	mover := state.ToMove
	next := state.Play(move)
	moves := t.untriedMoves(next)
	for passes := 1; len(moves) == 0 && passes < len(next.Players); passes++ {
		if t.sc.terminal(next) {
			break
		}
		next = next.Pass()
		moves = t.untriedMoves(next)
	}

	t.nodes = append(t.nodes, node{
		state:   next,
		mover:   mover,
		move:    move,
		parent:  i,
		untried: moves,
	})
	child := len(t.nodes) - 1
	t.nodes[i].children = append(t.nodes[i].children, child)
	return child
}

// rollout scores node i with a single evaluation from its mover's
// perspective, squashed into [0,1].
func (t *tree) rollout(i int, evaluate game.Evaluate) float64 {
	n := &t.nodes[i]
	mover := n.mover
	if mover == game.NoColor {
		mover = t.root
	}
	score := game.BlendedEvaluate(t.sc.view(&n.state.Board), mover, t.root, n.state.MoveCount, t.fourPlayer, evaluate)
	return game.Normalize(score)
}

// backup credits result to every node on the path from node i to the root.
// With two players the result flips at every level, starting with the raw
// result at node i. With four players nodes played by the root color
// receive the raw result and all other nodes its complement.
func (t *tree) backup(i int, result float64) {
	for i != noParent {
		n := &t.nodes[i]
		n.visits++
		if t.fourPlayer {
			if n.mover == t.root {
				n.value += result
			} else {
				n.value += 1 - result
			}
		} else {
			n.value += result
			result = 1 - result
		}
		i = n.parent
	}
}

// policy returns the share of root visits each root move received.
func (t *tree) policy() map[game.Move]float64 {
	root := &t.nodes[0]
	policy := make(map[game.Move]float64, len(root.children))
	if root.visits == 0 {
		return policy
	}
	for _, c := range root.children {
		child := &t.nodes[c]
		policy[child.move] = float64(child.visits) / float64(root.visits)
	}
	return policy
}
