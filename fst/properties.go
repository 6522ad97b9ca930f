// File: properties.go
// Role: the properties bitset: for each named property there is a
// "known" bit and a "true" bit, with the invariant that the truth bit
// is only meaningful when the known bit is set.

package fst

// Property names one fact an Automaton may or may not have computed
// about itself.
type Property uint

const (
	// PropError is sticky: once set true, it is never cleared, and
	// marks the automaton/view as having failed during construction
	// or expansion.
	PropError Property = iota
	// PropAcceptor holds when every arc has ILabel == OLabel.
	PropAcceptor
	// PropILabelSorted holds when every state's arcs are sorted by
	// ascending ILabel.
	PropILabelSorted
	// PropOLabelSorted holds when every state's arcs are sorted by
	// ascending OLabel.
	PropOLabelSorted
	// PropWeighted holds when some arc or final weight is not One.
	PropWeighted
	// PropCyclic holds when the automaton's state graph has a cycle
	// reachable from the start state.
	PropCyclic
	// PropAccessible holds when every state is reachable from start.
	PropAccessible
	// PropCoAccessible holds when every state can reach a final state.
	PropCoAccessible

	numProperties
)

// PropertyMask selects a subset of Property values, one bit per
// Property ordinal.
type PropertyMask uint64

// Mask returns the PropertyMask containing exactly the given properties.
func Mask(props ...Property) PropertyMask {
	var m PropertyMask
	for _, p := range props {
		m |= 1 << p
	}
	return m
}

// AllProperties is the mask selecting every defined Property.
var AllProperties = Mask(allPropertyList()...)

func allPropertyList() []Property {
	list := make([]Property, 0, numProperties)
	for p := Property(0); p < numProperties; p++ {
		list = append(list, p)
	}
	return list
}

// PropertySet is the tri-state ("unknown" / "known true" / "known
// false") value of every Property, packed two bits per property.
type PropertySet struct {
	known PropertyMask
	value PropertyMask
}

// Known reports whether prop's truth value has been computed.
func (p PropertySet) Known(prop Property) bool {
	return p.known&(1<<prop) != 0
}

// True reports whether prop is known and holds. An unknown property
// reports false here; callers that need to distinguish "known false"
// from "unknown" must call Known first.
func (p PropertySet) True(prop Property) bool {
	return p.Known(prop) && p.value&(1<<prop) != 0
}

// Set marks prop as known with the given truth value and returns the
// updated set.
func (p PropertySet) Set(prop Property, truth bool) PropertySet {
	bit := PropertyMask(1) << prop
	p.known |= bit
	if truth {
		p.value |= bit
	} else {
		p.value &^= bit
	}
	return p
}

// Unset marks prop as unknown and returns the updated set.
func (p PropertySet) Unset(prop Property) PropertySet {
	bit := PropertyMask(1) << prop
	p.known &^= bit
	p.value &^= bit
	return p
}

// Masked returns the subset of p restricted to the properties named by
// mask; this is what Automaton.Properties(mask) hands back.
func (p PropertySet) Masked(mask PropertyMask) PropertySet {
	return PropertySet{known: p.known & mask, value: p.value & mask}
}

// Merge combines two property sets, giving priority to other's known
// bits where both sets claim knowledge of the same property.
func (p PropertySet) Merge(other PropertySet) PropertySet {
	return PropertySet{
		known: p.known | other.known,
		value: (p.value &^ other.known) | (other.value & other.known),
	}
}
