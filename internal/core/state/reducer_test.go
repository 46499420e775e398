package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairState struct {
	Items []string
	Mode  string
}

func itemsReducer(prior []string, a Action) []string {
	if prior == nil {
		prior = []string{}
	}
	if a.Type() == "push" {
		next := make([]string, len(prior), len(prior)+1)
		copy(next, prior)
		return append(next, "x")
	}
	return prior
}

func modeReducer(prior string, a Action) string {
	if prior == "" {
		prior = "normal"
	}
	if a.Type() == "mode" {
		return "alt"
	}
	return prior
}

func TestCombine_Defaults(t *testing.T) {
	root, err := Combine(
		Slice("items", itemsReducer,
			func(s pairState) []string { return s.Items },
			func(s pairState, v []string) pairState { s.Items = v; return s },
		),
		Slice("mode", modeReducer,
			func(s pairState) string { return s.Mode },
			func(s pairState, v string) pairState { s.Mode = v; return s },
		),
	)
	require.NoError(t, err)

	init := root(pairState{}, initAction{})
	assert.NotNil(t, init.Items)
	assert.Empty(t, init.Items)
	assert.Equal(t, "normal", init.Mode)
}

func TestCombine_RoutesActionsToEverySlice(t *testing.T) {
	root, err := Combine(
		Slice("items", itemsReducer,
			func(s pairState) []string { return s.Items },
			func(s pairState, v []string) pairState { s.Items = v; return s },
		),
		Slice("mode", modeReducer,
			func(s pairState) string { return s.Mode },
			func(s pairState, v string) pairState { s.Mode = v; return s },
		),
	)
	require.NoError(t, err)

	st := root(pairState{}, initAction{})
	st = root(st, testAction("push"))
	st = root(st, testAction("mode"))

	assert.Equal(t, []string{"x"}, st.Items)
	assert.Equal(t, "alt", st.Mode)
}

func TestCombine_UnknownActionSharesSlices(t *testing.T) {
	root, err := Combine(
		Slice("items", itemsReducer,
			func(s pairState) []string { return s.Items },
			func(s pairState, v []string) pairState { s.Items = v; return s },
		),
	)
	require.NoError(t, err)

	st := root(pairState{}, initAction{})
	st = root(st, testAction("push"))
	next := root(st, testAction("UNKNOWN"))

	// The items slice must pass through untouched, same backing array.
	require.Len(t, next.Items, 1)
	assert.True(t, &next.Items[0] == &st.Items[0])
}

func TestCombine_RejectsAbsentDefault(t *testing.T) {
	// A slice reducer that passes a nil slice through for the init
	// action has no well-defined default.
	broken := func(prior []string, _ Action) []string { return prior }

	_, err := Combine(
		Slice("items", broken,
			func(s pairState) []string { return s.Items },
			func(s pairState, v []string) pairState { s.Items = v; return s },
		),
	)
	require.ErrorIs(t, err, ErrReducerContract)
	assert.Contains(t, err.Error(), `"items"`)
}
