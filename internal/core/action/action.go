// Package action defines the UI commands that keybindings trigger.
// These are the event-binding vocabulary: a key press resolves to a
// Type, and the view layer translates the Type into a store dispatch.
package action

// Type identifies the kind of UI command a keybinding triggers.
type Type string

const (
	TypeNone            Type = "none"
	TypeAddTodo         Type = "add"
	TypeToggleTodo      Type = "toggle"
	TypeFilterAll       Type = "filter-all"
	TypeFilterActive    Type = "filter-active"
	TypeFilterCompleted Type = "filter-completed"
	TypeQuit            Type = "quit"
)

// configActions are action types that can be bound to keys via the
// YAML config. None is internal-only.
var configActions = map[Type]bool{
	TypeAddTodo:         true,
	TypeToggleTodo:      true,
	TypeFilterAll:       true,
	TypeFilterActive:    true,
	TypeFilterCompleted: true,
	TypeQuit:            true,
}

// IsConfigAction reports whether t is a valid action for use in YAML
// config keybindings.
func IsConfigAction(t Type) bool {
	return configActions[t]
}
