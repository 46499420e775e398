package state

import "fmt"

// Store owns the canonical application state and sequences every
// transition. It is built for a single-goroutine event loop (the
// Bubble Tea update loop): Dispatch runs the reducer and all listener
// notifications inline before returning, and a dispatch started from
// inside that window is rejected rather than queued.
type Store[S any] struct {
	reducer     Reducer[S]
	state       S
	listeners   []listener
	nextID      int
	dispatching bool
	onDispatch  []func(a Action, next S)
}

type listener struct {
	id int
	fn func()
}

// New creates a store driven by root. The initial state is produced by
// invoking root with the zero state and the reserved init action.
func New[S any](root Reducer[S]) *Store[S] {
	s := &Store[S]{reducer: root}
	var zero S
	s.state = root(zero, initAction{})
	return s
}

// GetState returns the current state. Callers must treat the returned
// value and everything reachable from it as read-only.
func (s *Store[S]) GetState() S {
	return s.state
}

// Dispatch folds a into the current state and notifies subscribers in
// subscription order. It returns ErrInvalidAction for a nil action or
// an empty action type, and ErrReentrantDispatch when called from a
// reducer or listener while a prior dispatch is still in flight.
func (s *Store[S]) Dispatch(a Action) error {
	if a == nil || a.Type() == "" {
		return fmt.Errorf("%w: action must be non-nil with a non-empty type", ErrInvalidAction)
	}
	if s.dispatching {
		return fmt.Errorf("%w: action %q", ErrReentrantDispatch, a.Type())
	}

	s.dispatching = true
	defer func() { s.dispatching = false }()

	s.state = s.reducer(s.state, a)

	// Snapshot so listeners that subscribe or unsubscribe during the
	// notification pass do not affect this pass.
	subs := make([]listener, len(s.listeners))
	copy(subs, s.listeners)
	for _, l := range subs {
		l.fn()
	}

	for _, fn := range s.onDispatch {
		fn(a, s.state)
	}
	return nil
}

// Subscribe registers fn to run after every dispatch. The returned
// closure removes exactly this registration; calling it more than once
// is a no-op, and calling it during a notification pass is safe.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// OnDispatch registers a hook that fires after each successful dispatch
// with the action and the state it produced. Hooks run after listener
// notification and must not dispatch.
func (s *Store[S]) OnDispatch(fn func(a Action, next S)) {
	s.onDispatch = append(s.onDispatch, fn)
}
