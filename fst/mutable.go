// File: mutable.go
// Role: MutableFst, the mutable random-access transducer backing
// store. Two locks split the concerns the way core.Graph splits
// muVert from muEdgeAdj: muStates guards state identity (count, start,
// final weights, symbol tables, properties) and muArcs guards the
// per-state arc lists. Both are taken together only by operations that
// touch both, such as DeleteStates.
package fst

import (
	"sync"

	"github.com/arunjayapal/wfst/symtab"
)

// stateRecord is one state's final weight and outgoing arc list.
type stateRecord struct {
	final Weight
	arcs  []Arc
}

// MutableFst is an indexed, append-only-by-default transducer store.
// The zero value is not usable; construct with NewMutableFst.
type MutableFst struct {
	muStates sync.RWMutex
	muArcs   sync.RWMutex

	zero   Weight // this automaton's semiring zero; the default final weight
	start  StateId
	states []stateRecord

	props PropertySet

	inputSyms  *symtab.SymbolTable
	outputSyms *symtab.SymbolTable
}

// NewMutableFst creates an empty store over the semiring whose zero is
// given. zero becomes every new state's initial (non-final) weight.
func NewMutableFst(zero Weight) *MutableFst {
	return &MutableFst{
		zero:  zero,
		start: NoStateId,
	}
}

// AddState appends a new, non-final state with no arcs and returns its
// id. Complexity: O(1) amortized.
func (f *MutableFst) AddState() StateId {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	id := StateId(len(f.states))
	f.states = append(f.states, stateRecord{final: f.zero})
	return id
}

// ReserveStates pre-grows the backing slice's capacity to at least n,
// avoiding repeated reallocation when the final state count is known
// ahead of time.
func (f *MutableFst) ReserveStates(n int) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	if cap(f.states) >= n {
		return
	}
	grown := make([]stateRecord, len(f.states), n)
	copy(grown, f.states)
	f.states = grown
}

// NumStates returns the number of states currently in the store.
func (f *MutableFst) NumStates() StateId {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return StateId(len(f.states))
}

// Start returns the start state, or NoStateId if none has been set.
func (f *MutableFst) Start() StateId {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return f.start
}

// SetStart designates s as the start state. Passing NoStateId clears
// it. Returns ErrNoSuchState if s is out of range.
func (f *MutableFst) SetStart(s StateId) error {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	if s != NoStateId && !f.inRangeLocked(s) {
		return ErrNoSuchState
	}
	f.start = s
	return nil
}

// Final returns s's final weight; the store's zero means s is not
// final.
func (f *MutableFst) Final(s StateId) Weight {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	if !f.inRangeLocked(s) {
		return f.zero
	}
	return f.states[s].final
}

// SetFinal sets s's final weight. Returns ErrNoSuchState if s is out
// of range.
func (f *MutableFst) SetFinal(s StateId, w Weight) error {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	if !f.inRangeLocked(s) {
		return ErrNoSuchState
	}
	f.states[s].final = w
	return nil
}

// NumArcs returns the number of outgoing arcs at s, or 0 if s is out
// of range.
func (f *MutableFst) NumArcs(s StateId) int {
	f.muArcs.RLock()
	defer f.muArcs.RUnlock()
	if !f.inRangeArcsLocked(s) {
		return 0
	}
	return len(f.states[s].arcs)
}

// Arcs returns a restartable iterator over a snapshot of s's outgoing
// arcs. The snapshot is taken under lock so the returned iterator is
// safe to drive after the lock is released, matching the "iterator
// stable until eviction" guarantee delayed views need.
func (f *MutableFst) Arcs(s StateId) ArcIterator {
	f.muArcs.RLock()
	defer f.muArcs.RUnlock()
	if !f.inRangeArcsLocked(s) {
		return NewSliceArcIterator(nil)
	}
	snapshot := make([]Arc, len(f.states[s].arcs))
	copy(snapshot, f.states[s].arcs)
	return NewSliceArcIterator(snapshot)
}

// AddArc appends arc to s's outgoing arc list in declared order.
// Returns ErrNoSuchState if s is out of range, or ErrForwardArc if
// arc.NextState references a state id beyond the current maximum.
func (f *MutableFst) AddArc(s StateId, arc Arc) error {
	f.muStates.RLock()
	inRange := f.inRangeLocked(s)
	maxState := StateId(len(f.states))
	f.muStates.RUnlock()
	if !inRange {
		return ErrNoSuchState
	}
	if arc.NextState != NoStateId && arc.NextState >= maxState {
		return ErrForwardArc
	}
	f.muArcs.Lock()
	defer f.muArcs.Unlock()
	f.states[s].arcs = append(f.states[s].arcs, arc)
	return nil
}

// ReplaceArcs overwrites s's entire outgoing arc list with arcs,
// taking ownership of the slice. Used by whole-state rewrites (label
// inversion, arc sorting) that don't fit the append-only AddArc path.
// Returns ErrNoSuchState if s is out of range.
func (f *MutableFst) ReplaceArcs(s StateId, arcs []Arc) error {
	f.muArcs.Lock()
	defer f.muArcs.Unlock()
	if !f.inRangeArcsLocked(s) {
		return ErrNoSuchState
	}
	f.states[s].arcs = arcs
	return nil
}

// InputSymbols returns the input symbol table, or nil if unset.
func (f *MutableFst) InputSymbols() *symtab.SymbolTable {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return f.inputSyms
}

// OutputSymbols returns the output symbol table, or nil if unset.
func (f *MutableFst) OutputSymbols() *symtab.SymbolTable {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return f.outputSyms
}

// SetInputSymbols associates (or, passed nil, clears) the input symbol
// table.
func (f *MutableFst) SetInputSymbols(t *symtab.SymbolTable) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	f.inputSyms = t
}

// SetOutputSymbols associates (or, passed nil, clears) the output
// symbol table.
func (f *MutableFst) SetOutputSymbols(t *symtab.SymbolTable) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	f.outputSyms = t
}

// Properties returns the subset of mask this store currently knows.
func (f *MutableFst) Properties(mask PropertyMask) PropertySet {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return f.props.Masked(mask)
}

// SetProperties asserts props for exactly the properties named by
// mask, overwriting whatever this store previously knew about them.
// This is a caller-trusted operation: callers that assert incorrect
// properties get incorrect downstream behavior; there is no
// verification pass.
func (f *MutableFst) SetProperties(mask PropertyMask, props PropertySet) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	f.props.known &^= mask
	f.props.value &^= mask
	masked := props.Masked(mask)
	f.props.known |= masked.known
	f.props.value |= masked.value
}

func (f *MutableFst) inRangeLocked(s StateId) bool {
	return s >= 0 && int(s) < len(f.states)
}

func (f *MutableFst) inRangeArcsLocked(s StateId) bool {
	return s >= 0 && int(s) < len(f.states)
}

var _ Automaton = (*MutableFst)(nil)
