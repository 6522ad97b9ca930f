package fst_test

import (
 "testing"

 "github.com/stretchr/testify/assert"
 "github.com/stretchr/testify/require"

 "github.com/arunjayapal/wfst/fst"
 "github.com/arunjayapal/wfst/semiring"
)

func TestMutableFst_AddStateAndArc(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 s0 := f.AddState()
 s1 := f.AddState()
 require.NoError(t, f.SetStart(s0))
 require.NoError(t, f.SetFinal(s1, semiring.TropicalOne()))
 require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalWeight(1.5), NextState: s1}))

 assert.Equal(t, s0, f.Start())
 assert.Equal(t, 1, f.NumArcs(s0))
 assert.True(t, f.Final(s1).(semiring.TropicalWeight) == semiring.TropicalOne())

 it := f.Arcs(s0)
 require.False(t, it.Done())
 arc := it.Value()
 assert.Equal(t, fst.Label(1), arc.ILabel)
 assert.Equal(t, s1, arc.NextState)
 it.Next()
 assert.True(t, it.Done())
}

func TestMutableFst_AddArc_RejectsForwardReference(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 s0 := f.AddState()
 err := f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: 5})
 assert.ErrorIs(t, err, fst.ErrForwardArc)
}

func TestMutableFst_SetStart_RejectsOutOfRange(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 err := f.SetStart(7)
 assert.ErrorIs(t, err, fst.ErrNoSuchState)
}

func TestMutableFst_DeleteStates_CompactsAndDropsDanglingArcs(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 s0 := f.AddState() // survives -> 0
 s1 := f.AddState() // deleted
 s2 := f.AddState() // survives -> 1
 require.NoError(t, f.SetStart(s0))
 require.NoError(t, f.SetFinal(s2, semiring.TropicalOne()))
 require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
 require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne(), NextState: s2}))

 f.DeleteStates([]fst.StateId{s1})

 assert.Equal(t, fst.StateId(2), f.NumStates())
 assert.Equal(t, fst.StateId(0), f.Start())
 assert.Equal(t, 1, f.NumArcs(0))
 it := f.Arcs(0)
 arc := it.Value()
 assert.Equal(t, fst.StateId(1), arc.NextState)
}

func TestMutableFst_DeleteStates_DropsStartWhenDeleted(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 s0 := f.AddState()
 require.NoError(t, f.SetStart(s0))
 f.DeleteStates([]fst.StateId{s0})
 assert.Equal(t, fst.NoStateId, f.Start())
 assert.Equal(t, fst.StateId(0), f.NumStates())
}

func TestMutableFst_SetProperties_Masked(t *testing.T) {
 f := fst.NewMutableFst(semiring.TropicalZero())
 mask := fst.Mask(fst.PropAcceptor, fst.PropILabelSorted)
 props := fst.PropertySet{}.Set(fst.PropAcceptor, true).Set(fst.PropILabelSorted, false)
 f.SetProperties(mask, props)

 got := f.Properties(fst.AllProperties)
 assert.True(t, got.Known(fst.PropAcceptor))
 assert.True(t, got.True(fst.PropAcceptor))
 assert.True(t, got.Known(fst.PropILabelSorted))
 assert.False(t, got.True(fst.PropILabelSorted))
 assert.False(t, got.Known(fst.PropWeighted))
}
