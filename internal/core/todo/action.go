package todo

import "github.com/colonyops/todoloop/internal/core/state"

// Wire-level action type names. These are the replay vocabulary: the
// journal records them and the debug log prints them.
const (
	TypeAdd       = "ADD_TODO"
	TypeToggle    = "TOGGLE_TODO"
	TypeSetFilter = "SET_VISIBILITY_FILTER"
)

// Add appends a new todo with the given ID and text.
type Add struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func (Add) Type() string { return TypeAdd }

// Toggle flips the completed flag on the todo with the matching ID.
type Toggle struct {
	ID int `json:"id"`
}

func (Toggle) Type() string { return TypeToggle }

// SetFilter replaces the visibility filter.
type SetFilter struct {
	Filter Filter `json:"filter"`
}

func (SetFilter) Type() string { return TypeSetFilter }

// Actions creates domain actions and owns the ID sequence for new
// todos. The zero value starts IDs at 0. It is not safe for concurrent
// use; it lives alongside the store in the event loop.
type Actions struct {
	nextID int
}

// NewActions returns an action creator whose ID sequence starts at 0.
func NewActions() *Actions {
	return &Actions{}
}

// AddTodo creates an ADD_TODO action, drawing the next ID from the
// creator's sequence.
func (a *Actions) AddTodo(text string) state.Action {
	id := a.nextID
	a.nextID++
	return Add{ID: id, Text: text}
}

// ToggleTodo creates a TOGGLE_TODO action for the given ID.
func (a *Actions) ToggleTodo(id int) state.Action {
	return Toggle{ID: id}
}

// SetVisibilityFilter creates a SET_VISIBILITY_FILTER action.
func (a *Actions) SetVisibilityFilter(f Filter) state.Action {
	return SetFilter{Filter: f}
}

// Seed advances the ID sequence past every todo in existing, so that
// IDs stay unique after a journal replay.
func (a *Actions) Seed(existing []*Todo) {
	for _, t := range existing {
		if t.ID >= a.nextID {
			a.nextID = t.ID + 1
		}
	}
}
