// Package tui implements the todoloop view layer: a Bubble Tea model
// that reads state through the selector and dispatches domain actions
// through an injected store handle.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/todoloop/internal/core/action"
	"github.com/colonyops/todoloop/internal/core/config"
	"github.com/colonyops/todoloop/internal/core/state"
	"github.com/colonyops/todoloop/internal/core/todo"
	"github.com/colonyops/todoloop/internal/core/validate"
)

// Model is the root Bubble Tea model. It owns no application state:
// the store is canonical, and the model re-reads it through the
// selector on every render. The model's own fields are view concerns
// only (cursor, input focus, transient error line).
type Model struct {
	store   *state.Store[todo.AppState]
	actions *todo.Actions
	cfg     *config.Config
	log     zerolog.Logger

	input  textinput.Model
	adding bool
	cursor int
	errMsg string
}

// New constructs the view model around an injected store handle and
// action creator. It subscribes to the store so the cursor is clamped
// to the visible range after every transition, no matter who
// dispatched it.
func New(store *state.Store[todo.AppState], actions *todo.Actions, cfg *config.Config, log zerolog.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "what needs doing?"
	input.CharLimit = 200

	m := &Model{
		store:   store,
		actions: actions,
		cfg:     cfg,
		log:     log,
	}
	m.input = input

	store.Subscribe(m.clampCursor)
	return m
}

// Init applies the configured default filter before the first render.
func (m *Model) Init() tea.Cmd {
	m.dispatch(m.actions.SetVisibilityFilter(todo.Filter(m.cfg.DefaultFilter)))
	return nil
}

// Update translates terminal events into store dispatches.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.adding {
			return m.updateAdding(key)
		}
		return m.updateList(key)
	}
	return m, nil
}

// updateAdding handles keys while the new-todo input is focused.
func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.errMsg = ""
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		if err := validate.TodoTextField("text", text); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.dispatch(m.actions.AddTodo(text))
		m.adding = false
		m.errMsg = ""
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateList handles keys in list mode: built-in navigation plus the
// configured keybindings.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	kb, ok := m.cfg.Keybindings[key]
	if !ok {
		return m, nil
	}

	switch kb.Action {
	case action.TypeAddTodo:
		m.adding = true
		m.errMsg = ""
		m.input.Focus()
		return m, textinput.Blink
	case action.TypeToggleTodo:
		visible := m.visible()
		if m.cursor < len(visible) {
			m.dispatch(m.actions.ToggleTodo(visible[m.cursor].ID))
		}
		return m, nil
	case action.TypeFilterAll:
		m.dispatch(m.actions.SetVisibilityFilter(todo.FilterAll))
		return m, nil
	case action.TypeFilterActive:
		m.dispatch(m.actions.SetVisibilityFilter(todo.FilterActive))
		return m, nil
	case action.TypeFilterCompleted:
		m.dispatch(m.actions.SetVisibilityFilter(todo.FilterCompleted))
		return m, nil
	case action.TypeQuit:
		return m, tea.Quit
	}

	return m, nil
}

// dispatch sends an action to the store. Dispatch errors are a bug in
// the view layer (the store rejects only malformed or reentrant
// actions), so they are logged and surfaced on the error line rather
// than dropped.
func (m *Model) dispatch(a state.Action) {
	if err := m.store.Dispatch(a); err != nil {
		m.log.Error().Err(err).Str("action", a.Type()).Msg("dispatch failed")
		m.errMsg = err.Error()
	}
}

// visible projects the current state through the selector.
func (m *Model) visible() []*todo.Todo {
	st := m.store.GetState()
	return todo.VisibleTodos(st.Todos, st.Filter)
}

// clampCursor keeps the cursor inside the visible range. Runs as a
// store listener after every dispatch.
func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
