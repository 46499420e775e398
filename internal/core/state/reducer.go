package state

import (
	"fmt"
	"reflect"
)

// Reducer computes the next state from the prior state and an action.
// Reducers must be pure: no mutation of prior or a, no side effects,
// and an unrecognized action type returns prior unchanged.
type Reducer[S any] func(prior S, a Action) S

// SliceReducer binds one named slice of S to the reducer that owns it.
// Construct entries with Slice and compose them with Combine.
type SliceReducer[S any] struct {
	name  string
	apply func(prior S, a Action) S
	check func() error
}

// Slice declares that the V-typed portion of S read by get and written
// by set is owned by r. set must return a copy of S with only that
// portion replaced, leaving every other field untouched.
func Slice[S, V any](name string, r func(prior V, a Action) V, get func(S) V, set func(S, V) S) SliceReducer[S] {
	return SliceReducer[S]{
		name: name,
		apply: func(prior S, a Action) S {
			return set(prior, r(get(prior), a))
		},
		check: func() error {
			var zero V
			if isAbsent(r(zero, initAction{})) {
				return fmt.Errorf("%w: slice %q has no default for the init action", ErrReducerContract, name)
			}
			return nil
		},
	}
}

// Combine builds a root reducer from statically declared slice
// reducers. Each slice is probed with the init action at construction
// time; a reducer whose default value is absent fails with
// ErrReducerContract. The returned reducer applies every slice in
// declaration order and assembles the next whole state.
func Combine[S any](slices ...SliceReducer[S]) (Reducer[S], error) {
	for _, s := range slices {
		if err := s.check(); err != nil {
			return nil, err
		}
	}

	return func(prior S, a Action) S {
		next := prior
		for _, s := range slices {
			next = s.apply(next, a)
		}
		return next
	}, nil
}

// isAbsent reports whether v is a nil value of a nilable kind. Value
// kinds (strings, ints, structs) always count as present; their slice
// reducers are expected to map the zero value to a meaningful default.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
