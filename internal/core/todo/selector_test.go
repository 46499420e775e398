package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleTodos(t *testing.T) {
	todos := []*Todo{
		{ID: 0, Text: "buy milk", Completed: true},
		{ID: 1, Text: "walk dog"},
		{ID: 2, Text: "write tests", Completed: true},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{name: "all", filter: FilterAll, want: []int{0, 1, 2}},
		{name: "active", filter: FilterActive, want: []int{1}},
		{name: "completed", filter: FilterCompleted, want: []int{0, 2}},
		{name: "unknown falls back to all", filter: "SHOW_NONSENSE", want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleTodos(todos, tt.filter)
			ids := make([]int, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestVisibleTodos_SharesElements(t *testing.T) {
	todos := []*Todo{
		{ID: 0, Text: "buy milk", Completed: true},
		{ID: 1, Text: "walk dog"},
	}

	got := VisibleTodos(todos, FilterCompleted)
	assert.Same(t, todos[0], got[0])

	// SHOW_ALL is a passthrough, not a copy.
	all := VisibleTodos(todos, FilterAll)
	assert.True(t, &all[0] == &todos[0])
}

func TestVisibleTodos_Empty(t *testing.T) {
	assert.Empty(t, VisibleTodos(nil, FilterActive))
	assert.Empty(t, VisibleTodos([]*Todo{}, FilterAll))
}
