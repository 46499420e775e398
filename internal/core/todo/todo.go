// Package todo defines the todo-list domain: the state shape, the
// reducers that fold actions into it, and the selector the view layer
// reads through.
package todo

// Todo is a single task-list entry. Records are immutable once
// created; a completed-state change produces a replacement record
// rather than mutating in place.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Filter selects which todos the view layer shows.
type Filter string

const (
	FilterAll       Filter = "SHOW_ALL"
	FilterActive    Filter = "SHOW_ACTIVE"
	FilterCompleted Filter = "SHOW_COMPLETED"
)

// AppState is the whole application state owned by the store. Todos
// keep insertion order; IDs are unique and never reused.
type AppState struct {
	Todos  []*Todo
	Filter Filter
}
