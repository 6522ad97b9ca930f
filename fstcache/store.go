// File: store.go
// Role: Store, the cache-backed lazy-state memoization table, and its
// eviction discipline.

package fstcache

import (
	"container/list"
	"sync"

	"github.com/arunjayapal/wfst/fst"
)

// approxArcBytes estimates one cached Arc's footprint for GCLimit
// accounting: two labels, an interface-valued weight, and a next
// state, each word-sized.
const approxArcBytes = 32

// entry is one state's cached expansion. Fields fill in monotonically;
// SetFinal and SetArcs are no-ops once already set, and the only way a
// filled field reverts to empty is whole-entry eviction.
type entry struct {
	final         fst.Weight
	finalComputed bool

	arcs         []fst.Arc
	arcsExpanded bool

	startComputed bool

	pinCount   int
	lastAccess int64
}

// Store memoizes per-state expansion records for one delayed
// transducer view. The zero value is not usable; construct with
// NewStore.
type Store struct {
	mu   sync.Mutex
	opts Options

	entries map[fst.StateId]*entry
	lru     *list.List // front = least recently used; back = most recent
	lruElem map[fst.StateId]*list.Element

	arcBytes int64
	clock    int64

	hasInFlight bool
	inFlight    fst.StateId
}

// NewStore creates an empty cache configured by opts.
func NewStore(opts Options) *Store {
	return &Store{
		opts:    opts,
		entries: make(map[fst.StateId]*entry),
		lru:     list.New(),
		lruElem: make(map[fst.StateId]*list.Element),
	}
}

// getOrCreateLocked returns s's entry, creating an empty one on first
// access, and records the access for LRU purposes. Caller must hold
// mu.
func (s *Store) getOrCreateLocked(id fst.StateId) *entry {
	e, ok := s.entries[id]
	if !ok {
		e = &entry{}
		s.entries[id] = e
	}
	s.clock++
	e.lastAccess = s.clock
	if elem, ok := s.lruElem[id]; ok {
		s.lru.MoveToBack(elem)
	} else {
		s.lruElem[id] = s.lru.PushBack(id)
	}
	return e
}

// Pin marks id as in flight, preventing eviction of its entry until
// Unpin is called. The composition engine does not use Pin; it
// protects the state it is expanding with SetInFlight.
func (s *Store) Pin(id fst.StateId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	e.pinCount++
}

// Unpin releases one pin previously taken by Pin.
func (s *Store) Unpin(id fst.StateId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok && e.pinCount > 0 {
		e.pinCount--
	}
}

// FinalComputed reports whether id's final weight has been cached.
func (s *Store) FinalComputed(id fst.StateId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return ok && e.finalComputed
}

// Final returns id's cached final weight; ok is false if it has not
// been computed yet.
func (s *Store) Final(id fst.StateId) (w fst.Weight, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	if !e.finalComputed {
		return nil, false
	}
	return e.final, true
}

// SetFinal caches id's final weight. A second call for the same id is
// a no-op, preserving the monotonic lattice.
func (s *Store) SetFinal(id fst.StateId, w fst.Weight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	if e.finalComputed {
		return
	}
	e.final = w
	e.finalComputed = true
}

// ArcsExpanded reports whether id's outgoing arcs have been cached.
func (s *Store) ArcsExpanded(id fst.StateId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return ok && e.arcsExpanded
}

// Arcs returns id's cached arc list; ok is false if it has not been
// expanded yet. The returned slice must not be mutated: once
// arcsExpanded is set, the arc list is immutable for the lifetime of
// that entry.
func (s *Store) Arcs(id fst.StateId) (arcs []fst.Arc, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	if !e.arcsExpanded {
		return nil, false
	}
	return e.arcs, true
}

// SetArcs caches id's fully expanded outgoing arc list and runs
// eviction if configured. A second call for an already-expanded id is
// a no-op.
func (s *Store) SetArcs(id fst.StateId, arcs []fst.Arc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	if e.arcsExpanded {
		return
	}
	e.arcs = arcs
	e.arcsExpanded = true
	s.arcBytes += int64(len(arcs)) * approxArcBytes
	s.evictLocked(id)
}

// StartComputed reports whether id's "start computed" flag has been
// set.
func (s *Store) StartComputed(id fst.StateId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return ok && e.startComputed
}

// SetStartComputed sets id's "start computed" flag.
func (s *Store) SetStartComputed(id fst.StateId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.getOrCreateLocked(id)
	e.startComputed = true
}

// evictLocked discards non-pinned, non-in-flight entries until the
// cached-arc byte count is back under opts.GCLimit, in ascending
// last-access order. When GCLimit is 0 it instead keeps only the
// state that triggered this eviction (besides pinned/in-flight
// entries). No-op when GC is disabled.
func (s *Store) evictLocked(justExpanded fst.StateId) {
	if !s.opts.GC {
		return
	}
	if s.opts.GCLimit == 0 {
		s.evictAllExceptLocked(justExpanded)
		return
	}
	for s.arcBytes > s.opts.GCLimit {
		victim, ok := s.nextVictimLocked()
		if !ok {
			return
		}
		s.evictOneLocked(victim)
	}
}

// nextVictimLocked returns the least-recently-used evictable state id,
// skipping pinned entries and the in-flight state.
func (s *Store) nextVictimLocked() (fst.StateId, bool) {
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		id := elem.Value.(fst.StateId)
		e, ok := s.entries[id]
		if !ok || e.pinCount > 0 {
			continue
		}
		if s.hasInFlight && id == s.inFlight {
			continue
		}
		if !e.arcsExpanded {
			continue
		}
		return id, true
	}
	return fst.NoStateId, false
}

func (s *Store) evictAllExceptLocked(keep fst.StateId) {
	for elem := s.lru.Front(); elem != nil; {
		next := elem.Next()
		id := elem.Value.(fst.StateId)
		if id == keep {
			elem = next
			continue
		}
		e, ok := s.entries[id]
		if ok && (e.pinCount > 0 || (s.hasInFlight && id == s.inFlight) || !e.arcsExpanded) {
			elem = next
			continue
		}
		s.evictOneLocked(id)
		elem = next
	}
}

func (s *Store) evictOneLocked(id fst.StateId) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	if e.arcsExpanded {
		s.arcBytes -= int64(len(e.arcs)) * approxArcBytes
	}
	if elem, ok := s.lruElem[id]; ok {
		s.lru.Remove(elem)
		delete(s.lruElem, id)
	}
	delete(s.entries, id)
}

// SetInFlight marks id as the state currently being expanded, pinning
// it against eviction for the duration; pass fst.NoStateId to clear.
// compose.Fst calls this around each state expansion rather than using Pin/Unpin
// directly so that a state being expanded for the first time (and
// thus not yet in the cache) is still protected.
func (s *Store) SetInFlight(id fst.StateId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == fst.NoStateId {
		s.hasInFlight = false
		return
	}
	s.hasInFlight = true
	s.inFlight = id
}
