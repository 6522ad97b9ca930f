package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/compose"
	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/matcher"
	"github.com/arunjayapal/wfst/semiring"
)

func sortedFst(t *testing.T) *fst.MutableFst {
	t.Helper()
	f := fst.NewMutableFst(semiring.TropicalZero())
	f.SetProperties(fst.Mask(fst.PropILabelSorted, fst.PropOLabelSorted),
		fst.PropertySet{}.Set(fst.PropILabelSorted, true).Set(fst.PropOLabelSorted, true))
	return f
}

func defaultOpts() compose.Options {
	return compose.DefaultOptions(semiring.TropicalOne(), semiring.TropicalZero())
}

func TestCompose_TrivialPassthrough(t *testing.T) {
	a := sortedFst(t)
	a0 := a.AddState()
	a1 := a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 2, Weight: semiring.TropicalOne(), NextState: a1}))

	b := sortedFst(t)
	b0 := b.AddState()
	b1 := b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddArc(b0, fst.Arc{ILabel: 2, OLabel: 3, Weight: semiring.TropicalOne(), NextState: b1}))

	out, err := compose.Compose(a, b, defaultOpts())
	require.NoError(t, err)
	assert.False(t, out.Properties(fst.Mask(fst.PropError)).True(fst.PropError))
	assert.Equal(t, fst.StateId(2), out.NumStates())
	assert.Equal(t, 1, out.NumArcs(out.Start()))

	it := out.Arcs(out.Start())
	arc := it.Value()
	assert.Equal(t, fst.Label(1), arc.ILabel)
	assert.Equal(t, fst.Label(3), arc.OLabel)
}

func TestCompose_WeightMultiplication(t *testing.T) {
	a := sortedFst(t)
	a0, a1 := a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(2), NextState: a1}))

	b := sortedFst(t)
	b0, b1 := b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddArc(b0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalWeight(3), NextState: b1}))

	out, err := compose.Compose(a, b, defaultOpts())
	require.NoError(t, err)
	it := out.Arcs(out.Start())
	require.False(t, it.Done())
	got := it.Value().Weight.(semiring.TropicalWeight)
	assert.InDelta(t, float64(semiring.TropicalWeight(5)), float64(got), 1e-9)
}

func TestCompose_SortFailure_SetsErrorAndEmptyStart(t *testing.T) {
	a := fst.NewMutableFst(semiring.TropicalZero()) // no sort declared
	a0, a1 := a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: a1}))

	b := fst.NewMutableFst(semiring.TropicalZero()) // no sort declared
	b0, b1 := b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddArc(b0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: b1}))

	out, err := compose.Compose(a, b, defaultOpts())
	require.NoError(t, err)
	assert.True(t, out.Properties(fst.Mask(fst.PropError)).True(fst.PropError))
	assert.Equal(t, fst.NoStateId, out.Start())
}

func TestCompose_EitherOperandHasNoStart_YieldsEmptyResult(t *testing.T) {
	a := sortedFst(t)
	a.AddState()
	b := sortedFst(t)
	b0 := b.AddState()
	require.NoError(t, b.SetStart(b0))

	out, err := compose.Compose(a, b, defaultOpts())
	require.NoError(t, err)
	assert.Equal(t, fst.NoStateId, out.Start())
}

// An epsilon-on-the-output-side arc in A must still let the path
// through B's real arc succeed under the Sequence filter, reaching a
// final state.
func TestCompose_EpsilonChain_SequenceFilterReachesFinal(t *testing.T) {
	a := sortedFst(t)
	a0, a1, a2 := a.AddState(), a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a2, semiring.TropicalOne()))
	require.NoError(t, a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 0, Weight: semiring.TropicalOne(), NextState: a1}))
	require.NoError(t, a.AddArc(a1, fst.Arc{ILabel: 0, OLabel: 2, Weight: semiring.TropicalOne(), NextState: a2}))

	b := sortedFst(t)
	b0, b1 := b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddArc(b0, fst.Arc{ILabel: 2, OLabel: 3, Weight: semiring.TropicalOne(), NextState: b1}))

	opts := defaultOpts()
	opts.FilterKind = cfilter.Sequence
	out, err := compose.Compose(a, b, opts)
	require.NoError(t, err)
	assert.False(t, out.Properties(fst.Mask(fst.PropError)).True(fst.PropError))
	require.Greater(t, out.NumStates(), fst.StateId(0))

	// some state reachable from start must be final: the epsilon-laced
	// path through A still lines up with B's single real arc.
	foundFinal := false
	for s := fst.StateId(0); s < out.NumStates(); s++ {
		if !out.Final(s).IsZero() {
			foundFinal = true
		}
	}
	assert.True(t, foundFinal)
}

// spyMatcher wraps a real matcher, reports a fixed Priority, and
// records whether Find was ever called on it.
type spyMatcher struct {
	matcher.Matcher
	priority int
	found    bool
}

func (s *spyMatcher) Priority(fst.StateId) int { return s.priority }

func (s *spyMatcher) Find(label fst.Label) bool {
	s.found = true
	return s.Matcher.Find(label)
}

// On an equal-priority tie, decideDrivenSide must drive A: only B's
// matcher (matcher2) should ever see a Find call, since A's own arcs
// are walked directly instead of queried through matcher1.
func TestCompose_EqualPriority_ADrivesTie(t *testing.T) {
	a := sortedFst(t)
	a0, a1 := a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.AddArc(a0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: a1}))

	b := sortedFst(t)
	b0, b1 := b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddArc(b0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.TropicalOne(), NextState: b1}))

	m1Real, err := matcher.NewSortedMatcher(a, matcher.Output, semiring.TropicalOne())
	require.NoError(t, err)
	m2Real, err := matcher.NewSortedMatcher(b, matcher.Input, semiring.TropicalOne())
	require.NoError(t, err)
	m1 := &spyMatcher{Matcher: m1Real, priority: 1}
	m2 := &spyMatcher{Matcher: m2Real, priority: 1}

	opts := defaultOpts()
	opts.Matcher1 = m1
	opts.Matcher2 = m2
	out, err := compose.Compose(a, b, opts)
	require.NoError(t, err)
	assert.False(t, out.Properties(fst.Mask(fst.PropError)).True(fst.PropError))

	assert.True(t, m2.found, "A must drive on a tie, querying matcher2")
	assert.False(t, m1.found, "matcher1 must not be queried while A drives")
}

func TestCompose_MissingIdentities_ReturnsError(t *testing.T) {
	a := sortedFst(t)
	b := sortedFst(t)
	opts := compose.Options{}
	_, err := compose.Compose(a, b, opts)
	assert.ErrorIs(t, err, compose.ErrMissingIdentities)
}
