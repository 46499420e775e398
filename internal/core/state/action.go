// Package state provides the generic state-management machinery for
// todoloop: actions, reducers, reducer composition, and the store that
// owns canonical state and sequences every transition.
package state

// InitType is the reserved action type dispatched once at store
// construction so every slice reducer supplies its default value.
// User-defined actions must not use it.
const InitType = "@@INIT"

// Action is an immutable record describing something that happened.
// Implementations carry their payload as exported fields and must not
// be mutated after construction.
type Action interface {
	Type() string
}

// initAction is dispatched internally by New and Combine's contract
// check. It never reaches user code.
type initAction struct{}

func (initAction) Type() string { return InitType }
