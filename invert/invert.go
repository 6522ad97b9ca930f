// File: invert.go
// Role: Invert, the input/output tape swap.

package invert

import "github.com/arunjayapal/wfst/fst"

// Invert swaps every arc's ILabel and OLabel and swaps f's input and
// output symbol tables, in place. Applying Invert twice restores the
// original transducer. Any known ILabel/OLabel sortedness property
// swaps sides along with the labels.
func Invert(f *fst.MutableFst) {
	inSyms, outSyms := f.InputSymbols(), f.OutputSymbols()
	f.SetInputSymbols(outSyms)
	f.SetOutputSymbols(inSyms)

	for s := fst.StateId(0); s < f.NumStates(); s++ {
		it := f.Arcs(s)
		var swapped []fst.Arc
		for !it.Done() {
			arc := it.Value()
			arc.ILabel, arc.OLabel = arc.OLabel, arc.ILabel
			swapped = append(swapped, arc)
			it.Next()
		}
		_ = f.ReplaceArcs(s, swapped)
	}

	sortMask := fst.Mask(fst.PropILabelSorted, fst.PropOLabelSorted)
	sorted := f.Properties(sortMask)
	swappedSort := fst.PropertySet{}
	if sorted.Known(fst.PropOLabelSorted) {
		swappedSort = swappedSort.Set(fst.PropILabelSorted, sorted.True(fst.PropOLabelSorted))
	}
	if sorted.Known(fst.PropILabelSorted) {
		swappedSort = swappedSort.Set(fst.PropOLabelSorted, sorted.True(fst.PropILabelSorted))
	}
	f.SetProperties(sortMask, swappedSort)
}
