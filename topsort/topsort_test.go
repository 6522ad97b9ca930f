package topsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/semiring"
	"github.com/arunjayapal/wfst/topsort"
)

func TestTopSort_LinearChain(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
	require.NoError(t, f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s2}))

	acyclic, order := topsort.TopSort(f)
	require.True(t, acyclic)
	require.Len(t, order, 3)

	pos := make(map[fst.StateId]int, 3)
	for i, s := range order {
		pos[s] = i
	}
	assert.Less(t, pos[s0], pos[s1])
	assert.Less(t, pos[s1], pos[s2])
}

func TestTopSort_DetectsCycle(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0, s1 := f.AddState(), f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
	require.NoError(t, f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s0}))

	acyclic, order := topsort.TopSort(f)
	assert.False(t, acyclic)
	assert.Nil(t, order)
}

func TestTopSort_SelfLoopIsCyclic(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s0}))

	acyclic, _ := topsort.TopSort(f)
	assert.False(t, acyclic)
}
