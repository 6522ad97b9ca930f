// File: tuple.go
// Role: Tuple, the composition state triple, and StateTable, which
// interns tuples to dense ids.

package compose

import (
	"sync"

	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/fst"
)

// Tuple is a composition state: a state in each operand plus a filter
// state. Equality and hashing are componentwise, which a plain
// comparable struct gives for free as a Go map key.
type Tuple struct {
	S1     fst.StateId
	S2     fst.StateId
	Filter cfilter.FilterState
}

// StateTable interns Tuples into dense composition state ids,
// assigned in insertion order starting at 0.
type StateTable struct {
	mu sync.Mutex

	tupleToID map[Tuple]fst.StateId
	idToTuple []Tuple

	ceiling int // 0 means unlimited
	errored bool
}

// NewStateTable creates an empty table. ceiling, if positive, caps the
// number of distinct tuples it will intern before setting its sticky
// error bit.
func NewStateTable(ceiling int) *StateTable {
	return &StateTable{
		tupleToID: make(map[Tuple]fst.StateId),
		ceiling:   ceiling,
	}
}

// FindOrInsert returns tuple's id, assigning a new one if tuple has
// not been seen before. Once Error is true, FindOrInsert returns
// fst.NoStateId for any tuple not already interned.
func (t *StateTable) FindOrInsert(tuple Tuple) fst.StateId {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.tupleToID[tuple]; ok {
		return id
	}
	if t.errored || (t.ceiling > 0 && len(t.idToTuple) >= t.ceiling) {
		t.errored = true
		return fst.NoStateId
	}
	id := fst.StateId(len(t.idToTuple))
	t.idToTuple = append(t.idToTuple, tuple)
	t.tupleToID[tuple] = id
	return id
}

// Tuple recovers the tuple interned at id.
func (t *StateTable) Tuple(id fst.StateId) (Tuple, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 0 || int(id) >= len(t.idToTuple) {
		return Tuple{}, false
	}
	return t.idToTuple[id], true
}

// Error reports whether the table's ceiling was exceeded.
func (t *StateTable) Error() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errored
}
