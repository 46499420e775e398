package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/todoloop/internal/core/config"
	"github.com/colonyops/todoloop/internal/core/state"
	"github.com/colonyops/todoloop/internal/core/todo"
)

// Run starts the interactive session and blocks until the user quits.
func Run(store *state.Store[todo.AppState], actions *todo.Actions, cfg *config.Config, log zerolog.Logger) error {
	p := tea.NewProgram(New(store, actions, cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
