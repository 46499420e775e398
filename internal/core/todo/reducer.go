package todo

import "github.com/colonyops/todoloop/internal/core/state"

// itemReducer computes a single todo from the prior todo and an
// action. Add ignores prior; Toggle replaces the matching todo with a
// copy whose Completed flag is flipped; every other action passes
// prior through by identity.
func itemReducer(prior *Todo, a state.Action) *Todo {
	switch act := a.(type) {
	case Add:
		return &Todo{ID: act.ID, Text: act.Text}
	case Toggle:
		if prior == nil || prior.ID != act.ID {
			return prior
		}
		return &Todo{ID: prior.ID, Text: prior.Text, Completed: !prior.Completed}
	default:
		return prior
	}
}

// todosReducer computes the todo-list slice. Elements untouched by an
// action keep their pointer identity, so the view layer can detect
// change by comparison.
func todosReducer(prior []*Todo, a state.Action) []*Todo {
	if prior == nil {
		prior = []*Todo{}
	}

	switch a.(type) {
	case Add:
		next := make([]*Todo, len(prior), len(prior)+1)
		copy(next, prior)
		return append(next, itemReducer(nil, a))
	case Toggle:
		next := make([]*Todo, len(prior))
		for i, t := range prior {
			next[i] = itemReducer(t, a)
		}
		return next
	default:
		return prior
	}
}

// filterReducer stores the requested filter verbatim, without checking
// it against the known set. VisibleTodos treats unknown values as
// FilterAll.
func filterReducer(prior Filter, a state.Action) Filter {
	if prior == "" {
		prior = FilterAll
	}
	if act, ok := a.(SetFilter); ok {
		return act.Filter
	}
	return prior
}

// RootReducer composes the slice reducers into the whole-state
// reducer. It fails only when a slice reducer breaks the init-action
// contract.
func RootReducer() (state.Reducer[AppState], error) {
	return state.Combine(
		state.Slice("todos", todosReducer,
			func(s AppState) []*Todo { return s.Todos },
			func(s AppState, v []*Todo) AppState { s.Todos = v; return s },
		),
		state.Slice("filter", filterReducer,
			func(s AppState) Filter { return s.Filter },
			func(s AppState, v Filter) AppState { s.Filter = v; return s },
		),
	)
}
