package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todoloop/internal/core/config"
	"github.com/colonyops/todoloop/internal/core/state"
	"github.com/colonyops/todoloop/internal/core/todo"
	"github.com/colonyops/todoloop/pkg/tuitest"
)

func newTestModel(t *testing.T) (*Model, *state.Store[todo.AppState], *todo.Actions) {
	t.Helper()

	store, err := todo.NewStore()
	require.NoError(t, err)
	actions := todo.NewActions()

	m := New(store, actions, config.Default(), zerolog.Nop())
	m.Init()
	return m, store, actions
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModel_AddTodoFlow(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tuitest.KeyPress('a'))
	assert.True(t, m.adding)

	press(m, tuitest.Type("buy milk")...)
	press(m, tuitest.KeyEnter())

	assert.False(t, m.adding)
	todos := store.GetState().Todos
	require.Len(t, todos, 1)
	assert.Equal(t, &todo.Todo{ID: 0, Text: "buy milk", Completed: false}, todos[0])
}

func TestModel_AddTodo_RejectsBlankText(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tuitest.KeyPress('a'))
	press(m, tuitest.KeyEnter())

	assert.True(t, m.adding)
	assert.NotEmpty(t, m.errMsg)
	assert.Empty(t, store.GetState().Todos)
}

func TestModel_AddTodo_EscCancels(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tuitest.KeyPress('a'))
	press(m, tuitest.Type("half-typed")...)
	press(m, tuitest.KeyEsc())

	assert.False(t, m.adding)
	assert.Empty(t, store.GetState().Todos)
}

func TestModel_ToggleUnderCursor(t *testing.T) {
	m, store, actions := newTestModel(t)
	require.NoError(t, store.Dispatch(actions.AddTodo("buy milk")))
	require.NoError(t, store.Dispatch(actions.AddTodo("walk dog")))

	press(m, tuitest.KeyDown())
	press(m, tuitest.KeyEnter())

	todos := store.GetState().Todos
	assert.False(t, todos[0].Completed)
	assert.True(t, todos[1].Completed)
}

func TestModel_FilterKeys(t *testing.T) {
	m, store, _ := newTestModel(t)

	press(m, tuitest.KeyPress('2'))
	assert.Equal(t, todo.FilterActive, store.GetState().Filter)

	press(m, tuitest.KeyPress('3'))
	assert.Equal(t, todo.FilterCompleted, store.GetState().Filter)

	press(m, tuitest.KeyPress('1'))
	assert.Equal(t, todo.FilterAll, store.GetState().Filter)
}

func TestModel_CursorClampsWhenVisibleShrinks(t *testing.T) {
	m, store, actions := newTestModel(t)
	require.NoError(t, store.Dispatch(actions.AddTodo("buy milk")))
	require.NoError(t, store.Dispatch(actions.AddTodo("walk dog")))

	// Complete the second todo, then hide completed todos.
	press(m, tuitest.KeyDown())
	press(m, tuitest.KeyEnter())
	press(m, tuitest.KeyPress('2'))

	require.Len(t, m.visible(), 1)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_QuitKey(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewRendersStateThroughSelector(t *testing.T) {
	m, store, actions := newTestModel(t)
	require.NoError(t, store.Dispatch(actions.AddTodo("buy milk")))
	require.NoError(t, store.Dispatch(actions.AddTodo("walk dog")))
	require.NoError(t, store.Dispatch(actions.ToggleTodo(0)))
	require.NoError(t, store.Dispatch(actions.SetVisibilityFilter(todo.FilterCompleted)))

	out := tuitest.StripANSI(m.View())

	assert.Contains(t, out, "todoloop")
	assert.Contains(t, out, "[x] buy milk")
	assert.NotContains(t, out, "walk dog")
	assert.Contains(t, out, "completed")
}

func TestModel_ViewEmptyState(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "nothing to show")
}
