package engine

import "github.com/corvidchess/corvid/board"

// Bound describes which side of the search window a stored score is exact
// or only a bound for.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundAlpha
	BoundBeta
)

type ttEntry struct {
	key   uint64
	score int16
	depth int16
	bound Bound
	move  board.Move
}

// TranspositionTable is a fixed-size, direct-mapped hash table. Each slot
// holds at most one entry; the replacement policy (see Store) favors
// deeper and more exact entries over shallower, approximate ones rather
// than always overwriting.
type TranspositionTable struct {
	entries []ttEntry
}

// NewTranspositionTable allocates a table sized to approximately
// megabytes MiB, rounded down to a power of two slot count.
func NewTranspositionTable(megabytes int) *TranspositionTable {
	if megabytes < 1 {
		megabytes = 1
	}
	bytesPerEntry := 24
	slots := megabytes * 1024 * 1024 / bytesPerEntry
	slots = roundDownPowerOfTwo(slots)
	if slots < 1024 {
		slots = 1024
	}
	return &TranspositionTable{entries: make([]ttEntry, slots)}
}

func roundDownPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func (tt *TranspositionTable) index(key uint64) uint64 {
	return key & uint64(len(tt.entries)-1)
}

// Probe returns the stored entry for key, if any, and whether it was found.
func (tt *TranspositionTable) Probe(key uint64) (score int, depth int, bound Bound, move board.Move, ok bool) {
	e := &tt.entries[tt.index(key)]
	if e.key != key || e.bound == BoundNone {
		return 0, 0, BoundNone, board.MoveNone, false
	}
	return int(e.score), int(e.depth), e.bound, e.move, true
}

// Store writes an entry, applying the narrow replacement policy: overwrite
// unless the existing entry has the same key, a strictly greater depth, is
// EXACT, and the new entry's bound is not EXACT.
func (tt *TranspositionTable) Store(key uint64, score, depth int, bound Bound, move board.Move) {
	e := &tt.entries[tt.index(key)]
	if e.key == key && int(e.depth) > depth && e.bound == BoundExact && bound != BoundExact {
		return
	}
	e.key = key
	e.score = int16(score)
	e.depth = int16(depth)
	e.bound = bound
	e.move = move
}

// Clear resets every slot, discarding all stored entries.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttEntry{}
	}
}
