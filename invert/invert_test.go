package invert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/invert"
	"github.com/arunjayapal/wfst/semiring"
	"github.com/arunjayapal/wfst/symtab"
)

func TestInvert_SwapsLabels(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalOne()))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalOne(), NextState: s1}))

	invert.Invert(f)

	it := f.Arcs(s0)
	require.False(t, it.Done())
	arc := it.Value()
	assert.Equal(t, fst.Label(2), arc.ILabel)
	assert.Equal(t, fst.Label(1), arc.OLabel)
}

func TestInvert_TwiceRestoresOriginal(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalOne()))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 3, OLabel: 7, Weight: semiring.TropicalOne(), NextState: s1}))

	invert.Invert(f)
	invert.Invert(f)

	it := f.Arcs(s0)
	arc := it.Value()
	assert.Equal(t, fst.Label(3), arc.ILabel)
	assert.Equal(t, fst.Label(7), arc.OLabel)
}

func TestInvert_SwapsSymbolTables(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	in := symtab.NewSymbolTable("in")
	out := symtab.NewSymbolTable("out")
	f.SetInputSymbols(in)
	f.SetOutputSymbols(out)

	invert.Invert(f)

	assert.Same(t, out, f.InputSymbols())
	assert.Same(t, in, f.OutputSymbols())
}
