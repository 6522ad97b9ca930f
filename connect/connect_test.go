package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunjayapal/wfst/connect"
	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/semiring"
)

func TestConnect_RemovesNonCoaccessibleDeadEnd(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState() // on a successful path
	s2 := f.AddState() // dead end: not co-accessible
	s3 := f.AddState() // never reached from start: not accessible

	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalOne()))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne(), NextState: s2}))
	_ = s3

	connect.Connect(f)

	assert.Equal(t, fst.StateId(2), f.NumStates())
	assert.Equal(t, 1, f.NumArcs(f.Start()))
}

func TestConnect_KeepsEverythingOnASimplePath(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalOne()))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))

	connect.Connect(f)

	assert.Equal(t, fst.StateId(2), f.NumStates())
}

func TestConnect_HandlesCycleThatReachesFinal(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState() // final
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalOne()))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
	require.NoError(t, f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s0}))
	require.NoError(t, f.AddArc(s1, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.TropicalOne(), NextState: s2}))

	connect.Connect(f)

	assert.Equal(t, fst.StateId(3), f.NumStates())
}

func TestConnect_DropsCycleThatNeverReachesFinal(t *testing.T) {
	f := fst.NewMutableFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s1}))
	require.NoError(t, f.AddArc(s1, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: s0}))

	connect.Connect(f)

	assert.Equal(t, fst.StateId(0), f.NumStates())
}
