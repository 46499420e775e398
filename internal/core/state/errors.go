package state

import "errors"

var (
	// ErrInvalidAction is returned by Dispatch for a nil action or an
	// action with an empty type.
	ErrInvalidAction = errors.New("invalid action")

	// ErrReentrantDispatch is returned when Dispatch is called while a
	// prior dispatch is still reducing or notifying listeners.
	ErrReentrantDispatch = errors.New("dispatch called during an in-flight dispatch")

	// ErrReducerContract is returned by Combine when a slice reducer
	// fails to produce a usable default for the init action.
	ErrReducerContract = errors.New("reducer contract violation")
)
