package searcher

import "jumprace/game"

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry is immutable once stored. A deeper search replaces it wholesale.
type TTEntry struct {
	Hash     uint64
	Depth    int
	Score    int
	Flag     TTFlag
	BestMove game.Move
}

// TranspositionTable caches search results by position hash. When full,
// the oldest quarter of entries (by insertion) is dropped in one sweep.
type TranspositionTable struct {
	entries  map[uint64]TTEntry
	order    []uint64 // Insertion order, oldest first
	capacity int

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a table holding at most capacity entries.
func NewTranspositionTable(capacity int) *TranspositionTable {
	capacity = max(capacity, 4)
	return &TranspositionTable{
		entries:  make(map[uint64]TTEntry),
		capacity: capacity,
	}
}

// Lookup returns the entry for hash if it was searched at least as deep as
// depth. Shallower entries count as a miss.
func (tt *TranspositionTable) Lookup(hash uint64, depth int) (TTEntry, bool) {
	tt.probes++
	entry, ok := tt.entries[hash]
	if !ok || entry.Depth < depth {
		return TTEntry{}, false
	}
	tt.hits++
	return entry, true
}

// HashMove returns the best move stored for hash at any depth.
func (tt *TranspositionTable) HashMove(hash uint64) (game.Move, bool) {
	entry, ok := tt.entries[hash]
	if !ok || entry.BestMove.IsZero() {
		return game.NoMove, false
	}
	return entry.BestMove, true
}

// Store saves a search result. An existing entry is only replaced by one
// of equal or greater depth.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove game.Move) {
	existing, ok := tt.entries[hash]
	if ok && depth < existing.Depth {
		return
	}
	if !ok {
		tt.order = append(tt.order, hash)
	}
	tt.entries[hash] = TTEntry{
		Hash:     hash,
		Depth:    depth,
		Score:    score,
		Flag:     flag,
		BestMove: bestMove,
	}
	if len(tt.entries) > tt.capacity {
		tt.evict()
	}
}

func (tt *TranspositionTable) evict() {
	drop := max(len(tt.order)/4, 1)
	for _, hash := range tt.order[:drop] {
		delete(tt.entries, hash)
	}
	remaining := make([]uint64, len(tt.order)-drop, tt.capacity)
	copy(remaining, tt.order[drop:])
	tt.order = remaining
}

// Clear empties the table and its statistics.
func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[uint64]TTEntry)
	tt.order = nil
	tt.hits = 0
	tt.probes = 0
}

// Len returns the number of stored entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}
