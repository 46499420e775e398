package todo

// VisibleTodos projects the todo list through the visibility filter.
// FilterAll and any unrecognized value return the list as-is; an
// unrecognized value can reach the state because filterReducer stores
// whatever SetFilter carries.
func VisibleTodos(todos []*Todo, f Filter) []*Todo {
	switch f {
	case FilterActive:
		return keep(todos, func(t *Todo) bool { return !t.Completed })
	case FilterCompleted:
		return keep(todos, func(t *Todo) bool { return t.Completed })
	default:
		return todos
	}
}

func keep(todos []*Todo, pred func(*Todo) bool) []*Todo {
	out := make([]*Todo, 0, len(todos))
	for _, t := range todos {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
