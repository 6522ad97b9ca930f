package cfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/fst"
)

func TestNullFilter_AcceptsEverything(t *testing.T) {
	f := cfilter.NewNullFilter()
	a := fst.Arc{ILabel: 1, OLabel: 0}
	b := fst.Arc{ILabel: 0, OLabel: 2}
	assert.Equal(t, cfilter.StartState, f.FilterArc(&a, &b))
}

func TestSequenceFilter_AEpsilonAlwaysOpensRun(t *testing.T) {
	f := cfilter.NewSequenceFilter()
	a := fst.Arc{ILabel: 1, OLabel: 0} // A-epsilon-out
	b := fst.Arc{ILabel: 0, OLabel: 0} // synthetic self-loop on B
	fs := f.FilterArc(&a, &b)
	assert.NotEqual(t, cfilter.NoState, fs)
}

func TestSequenceFilter_BEpsilonBlockedMidARun(t *testing.T) {
	f := cfilter.NewSequenceFilter()
	aEps := fst.Arc{ILabel: 1, OLabel: 0}
	selfLoop := fst.Arc{ILabel: 0, OLabel: 0}
	running := f.FilterArc(&aEps, &selfLoop)
	f.SetState(0, 0, running)

	bEps := fst.Arc{ILabel: 0, OLabel: 2}
	next := f.FilterArc(&selfLoop, &bEps)
	assert.Equal(t, cfilter.NoState, next)
}

func TestSequenceFilter_ResetAllowsEitherDirectionAgain(t *testing.T) {
	f := cfilter.NewSequenceFilter()
	f.SetState(0, 0, cfilter.StartState)
	real := fst.Arc{ILabel: 1, OLabel: 1}
	other := fst.Arc{ILabel: 1, OLabel: 1}
	assert.Equal(t, cfilter.StartState, f.FilterArc(&real, &other))
}

func TestAltSequenceFilter_BEpsilonAlwaysOpensRun(t *testing.T) {
	f := cfilter.NewAltSequenceFilter()
	selfLoop := fst.Arc{ILabel: 0, OLabel: 0}
	bEps := fst.Arc{ILabel: 0, OLabel: 2}
	fs := f.FilterArc(&selfLoop, &bEps)
	assert.NotEqual(t, cfilter.NoState, fs)
}

func TestMatchFilter_SecondDirectionBlockedUntilReset(t *testing.T) {
	f := cfilter.NewMatchFilter()
	aEps := fst.Arc{ILabel: 1, OLabel: 0}
	selfLoop := fst.Arc{ILabel: 0, OLabel: 0}
	running := f.FilterArc(&aEps, &selfLoop)
	f.SetState(0, 0, running)

	bEps := fst.Arc{ILabel: 0, OLabel: 2}
	assert.Equal(t, cfilter.NoState, f.FilterArc(&selfLoop, &bEps))
}

func TestNew_AutoResolvesToSequenceBehavior(t *testing.T) {
	f := cfilter.New(cfilter.Auto)
	_, ok := f.(*cfilter.SequenceFilter)
	assert.True(t, ok)
}

func TestNew_AllKindsConstructWithoutPanic(t *testing.T) {
	for _, k := range []cfilter.Kind{cfilter.Null, cfilter.Trivial, cfilter.Sequence, cfilter.AltSequence, cfilter.Match} {
		assert.NotNil(t, cfilter.New(k))
	}
}
