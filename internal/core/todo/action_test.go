package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions_AddTodoSequence(t *testing.T) {
	actions := NewActions()

	first := actions.AddTodo("buy milk")
	second := actions.AddTodo("walk dog")

	require.IsType(t, Add{}, first)
	assert.Equal(t, Add{ID: 0, Text: "buy milk"}, first)
	assert.Equal(t, Add{ID: 1, Text: "walk dog"}, second)
}

func TestActions_Seed(t *testing.T) {
	actions := NewActions()
	actions.Seed([]*Todo{{ID: 4, Text: "buy milk"}, {ID: 2, Text: "walk dog"}})

	assert.Equal(t, Add{ID: 5, Text: "write tests"}, actions.AddTodo("write tests"))
}

func TestActions_Types(t *testing.T) {
	actions := NewActions()

	assert.Equal(t, TypeAdd, actions.AddTodo("x").Type())
	assert.Equal(t, TypeToggle, actions.ToggleTodo(0).Type())
	assert.Equal(t, TypeSetFilter, actions.SetVisibilityFilter(FilterActive).Type())
}
