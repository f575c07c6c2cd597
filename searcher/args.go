package searcher

// Hyperparameters for MCTS

const EXPLORATION = 1.41 // UCB1 exploration constant

const DEFAULT_SIMULATIONS = 1000

// Root child discounts applied at final move selection
const OSCILLATION_DISCOUNT = 0.5
const REPETITION_DISCOUNT = 0.1
const PENALTY_SCALE = 100.0 // Penalty points that halve a child's score

// Hyperparameters for minimax

const (
	infinity = 1 << 30
	maxPly   = 64

	// Stop deepening once this share of the time budget is spent
	timeBudgetFraction = 0.8

	// Score points of noise per percent of configured randomness
	randomnessScale = 5

	defaultTableSize = 1 << 18

	// Entries kept per color in the anti-oscillation buffer
	recentMovesSize    = 6
	oscillationPenalty = 150
	repeatedMoveBias   = 60
)

// Hyperparameters for position history

const (
	repetitionBase      = 40
	stagnationBase      = 25
	stagnationGrace     = 3 // Stagnant moves tolerated before the penalty starts
	maxPenaltyDoublings = 10
	penaltyRampMoves    = 200 // Penalties reach twice their base size after this many plies
	repetitionWarnCount = 1   // Occurrences after which a position is avoided
	repetitionDrawCount = 3
)
