// File: materialize.go
// Role: Compose, the top-level entry point that realizes a delayed
// Fst into a concrete fst.MutableFst by breadth-first traversal, then
// optionally trims it.

package compose

import (
	"github.com/arunjayapal/wfst/connect"
	"github.com/arunjayapal/wfst/fst"
)

// Compose builds the relational product of a and b and materializes
// it into a fresh fst.MutableFst. Semantic failures (symbol mismatch,
// missing sort, conflicting REQUIRES_MATCH, state-table overflow, a
// non-commutative semiring over weighted operands) do not produce a Go
// error: they set fst.PropError on the returned store, which may be
// empty or truncated at the point expansion failed. The only Go error
// this returns is for caller misuse.
func Compose(a, b fst.Automaton, opts Options) (*fst.MutableFst, error) {
	view, err := NewFst(a, b, opts)
	if err != nil {
		return nil, err
	}

	out := fst.NewMutableFst(opts.Zero)
	out.SetInputSymbols(view.InputSymbols())
	out.SetOutputSymbols(view.OutputSymbols())

	start := view.Start()
	if start == fst.NoStateId {
		if view.Error() {
			out.SetProperties(fst.Mask(fst.PropError), fst.PropertySet{}.Set(fst.PropError, true))
		}
		return out, nil
	}

	ids := map[fst.StateId]fst.StateId{start: out.AddState()}
	if err := out.SetStart(ids[start]); err != nil {
		return out, err
	}
	queue := []fst.StateId{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		outState := ids[cur]

		if err := out.SetFinal(outState, view.Final(cur)); err != nil {
			return out, err
		}

		it := view.Arcs(cur)
		for !it.Done() {
			arc := it.Value()
			nextOut, seen := ids[arc.NextState]
			if !seen {
				nextOut = out.AddState()
				ids[arc.NextState] = nextOut
				queue = append(queue, arc.NextState)
			}
			if err := out.AddArc(outState, fst.Arc{
				ILabel: arc.ILabel, OLabel: arc.OLabel,
				Weight: arc.Weight, NextState: nextOut,
			}); err != nil {
				return out, err
			}
			it.Next()
		}
	}

	if view.Error() {
		out.SetProperties(fst.Mask(fst.PropError), fst.PropertySet{}.Set(fst.PropError, true))
	}

	if opts.Connect {
		connect.Connect(out)
	}

	return out, nil
}
