package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/colonyops/todoloop/internal/core/styles"
	"github.com/colonyops/todoloop/internal/core/todo"
)

// View renders the current store state. The store is read fresh on
// every render; nothing here is cached across dispatches.
func (m *Model) View() string {
	st := m.store.GetState()
	visible := todo.VisibleTodos(st.Todos, st.Filter)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("todoloop"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if len(visible) == 0 {
		b.WriteString(styles.HelpStyle.Render("nothing to show"))
		b.WriteString("\n")
	}
	for i, t := range visible {
		cursor := "  "
		if i == m.cursor && !m.adding {
			cursor = styles.CursorStyle.Render("> ")
		}

		line := fmt.Sprintf("[%s] %s", checkbox(t), t.Text)
		if t.Completed {
			line = styles.DoneStyle.Render(line)
		} else {
			line = styles.PendingStyle.Render(line)
		}

		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.filterTabs(st.Filter))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func checkbox(t *todo.Todo) string {
	if t.Completed {
		return "x"
	}
	return " "
}

// filterTabs renders the three filters, highlighting the active one.
// An unrecognized stored filter highlights nothing, which matches the
// selector treating it as SHOW_ALL without claiming it is SHOW_ALL.
func (m *Model) filterTabs(active todo.Filter) string {
	tabs := []struct {
		filter todo.Filter
		label  string
	}{
		{todo.FilterAll, "all"},
		{todo.FilterActive, "active"},
		{todo.FilterCompleted, "completed"},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.filter == active {
			parts = append(parts, styles.FilterOnStyle.Render(tab.label))
		} else {
			parts = append(parts, styles.FilterOffStyle.Render(tab.label))
		}
	}
	return strings.Join(parts, " | ")
}

// helpLine builds the footer from the configured keybindings, sorted
// by key so the output is stable.
func (m *Model) helpLine() string {
	keys := make([]string, 0, len(m.cfg.Keybindings))
	for k := range m.cfg.Keybindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, m.cfg.Keybindings[k].Help))
	}
	return strings.Join(parts, " • ")
}
