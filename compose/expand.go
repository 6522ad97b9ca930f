// File: expand.go
// Role: the ordered expansion algorithm: on first access to a
// composition state, decide the driven/driving split, walk the driven
// side's arcs (self-loop first), and pair each against the driving
// side's matcher.

package compose

import (
	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/matcher"
	"github.com/arunjayapal/wfst/semiring"
)

// expand populates s's cache entry with its composition arcs, unless
// already expanded. s is pinned against eviction for the duration.
func (f *Fst) expand(s fst.StateId) {
	if f.cache.ArcsExpanded(s) {
		return
	}
	tuple, ok := f.table.Tuple(s)
	if !ok {
		f.cache.SetArcs(s, nil)
		return
	}

	f.cache.SetInFlight(s)
	defer f.cache.SetInFlight(fst.NoStateId)

	f.filter.SetState(tuple.S1, tuple.S2, tuple.Filter)

	driveB, ok := f.decideDrivenSide(tuple)
	if !ok {
		f.setError()
		f.cache.SetArcs(s, nil)
		return
	}

	var result []fst.Arc
	failed := false

	emit := func(arcA, arcB fst.Arc) {
		fs2 := f.filter.FilterArc(&arcA, &arcB)
		if fs2 == cfilter.NoState {
			return
		}
		next := f.table.FindOrInsert(Tuple{S1: arcA.NextState, S2: arcB.NextState, Filter: fs2})
		if f.table.Error() {
			f.setError()
			failed = true
			return
		}
		result = append(result, fst.Arc{
			ILabel:    arcA.ILabel,
			OLabel:    arcB.OLabel,
			Weight:    semiring.Times(arcA.Weight, arcB.Weight),
			NextState: next,
		})
	}

	if driveB {
		f.matcher1.SetState(tuple.S1)
		f.walkDriven(f.b, tuple.S2, f.matcher1, func(a fst.Arc) fst.Label { return a.ILabel },
			func(driven, queried fst.Arc) bool { emit(queried, driven); return !failed })
	} else {
		f.matcher2.SetState(tuple.S2)
		f.walkDriven(f.a, tuple.S1, f.matcher2, func(a fst.Arc) fst.Label { return a.OLabel },
			func(driven, queried fst.Arc) bool { emit(driven, queried); return !failed })
	}

	f.cache.SetArcs(s, result)
}

// walkDriven iterates drivenState's outgoing arcs in drivenAut,
// prefixed with a synthetic non-consuming self-loop, and for each
// calls queryMatcher.Find on the label matchLabel selects, invoking
// pair(driven, queried) once per match. Iteration stops early if pair
// returns false.
func (f *Fst) walkDriven(
	drivenAut fst.Automaton,
	drivenState fst.StateId,
	queryMatcher matcher.Matcher,
	matchLabel func(fst.Arc) fst.Label,
	pair func(driven, queried fst.Arc) bool,
) {
	selfLoop := fst.Arc{ILabel: fst.Epsilon, OLabel: fst.Epsilon, Weight: f.one, NextState: drivenState}
	driven := []fst.Arc{selfLoop}
	it := drivenAut.Arcs(drivenState)
	for !it.Done() {
		driven = append(driven, it.Value())
		it.Next()
	}

	for _, d := range driven {
		if !queryMatcher.Find(matchLabel(d)) {
			continue
		}
		for !queryMatcher.Done() {
			if !pair(d, queryMatcher.Value()) {
				return
			}
			queryMatcher.Next()
		}
	}
}

// decideDrivenSide picks which operand's arcs are iterated directly
// (true = B is driven, A's matcher1 is the query side). A matcher
// that raises RequiresMatch is always the query side; absent that, the
// side with the smaller-or-tied arc count drives, with A (matcher1)
// winning ties.
func (f *Fst) decideDrivenSide(tuple Tuple) (driveB bool, ok bool) {
	req1 := f.matcher1.Flags()&matcher.RequiresMatch != 0
	req2 := f.matcher2.Flags()&matcher.RequiresMatch != 0
	if req1 && req2 {
		return false, false
	}
	if req1 {
		return true, true
	}
	if req2 {
		return false, true
	}
	p1 := f.matcher1.Priority(tuple.S1)
	p2 := f.matcher2.Priority(tuple.S2)
	return p1 > p2, true
}
