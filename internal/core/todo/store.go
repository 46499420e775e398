package todo

import "github.com/colonyops/todoloop/internal/core/state"

// NewStore wires the root reducer into a store holding the initial
// application state: no todos, FilterAll.
func NewStore() (*state.Store[AppState], error) {
	root, err := RootReducer()
	if err != nil {
		return nil, err
	}
	return state.New(root), nil
}
