package fst_test

import (
 "testing"

 "github.com/stretchr/testify/assert"

 "github.com/arunjayapal/wfst/fst"
)

func TestPropertySet_UnknownByDefault(t *testing.T) {
 var p fst.PropertySet
 assert.False(t, p.Known(fst.PropAcceptor))
 assert.False(t, p.True(fst.PropAcceptor))
}

func TestPropertySet_SetAndUnset(t *testing.T) {
 p := fst.PropertySet{}.Set(fst.PropCyclic, true)
 assert.True(t, p.Known(fst.PropCyclic))
 assert.True(t, p.True(fst.PropCyclic))

 p = p.Unset(fst.PropCyclic)
 assert.False(t, p.Known(fst.PropCyclic))
}

func TestPropertySet_Masked(t *testing.T) {
 p := fst.PropertySet{}.Set(fst.PropCyclic, true).Set(fst.PropAcceptor, false)
 only := p.Masked(fst.Mask(fst.PropCyclic))
 assert.True(t, only.Known(fst.PropCyclic))
 assert.False(t, only.Known(fst.PropAcceptor))
}

func TestPropertySet_Merge_OtherWins(t *testing.T) {
 a := fst.PropertySet{}.Set(fst.PropCyclic, true)
 b := fst.PropertySet{}.Set(fst.PropCyclic, false).Set(fst.PropAcceptor, true)
 merged := a.Merge(b)
 assert.False(t, merged.True(fst.PropCyclic))
 assert.True(t, merged.True(fst.PropAcceptor))
}
