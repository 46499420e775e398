package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoloop/internal/core/journal"
	"github.com/colonyops/todoloop/internal/core/logging"
	"github.com/colonyops/todoloop/internal/core/state"
	"github.com/colonyops/todoloop/internal/core/todo"
	"github.com/colonyops/todoloop/internal/tui"
	"github.com/colonyops/todoloop/pkg/iojson"
)

// TUICmd opens the interactive todo list.
type TUICmd struct {
	flags       *Flags
	app         *App
	journalPath string
}

// NewTUICmd creates the tui command.
func NewTUICmd(flags *Flags, app *App) *TUICmd {
	return &TUICmd{flags: flags, app: app}
}

// Register adds the tui command and makes it the default action.
func (cmd *TUICmd) Register(root *cli.Command) *cli.Command {
	run := func(_ context.Context, _ *cli.Command) error {
		return cmd.run()
	}

	root.Commands = append(root.Commands, &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive todo list (default)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "journal",
				Aliases:     []string{"j"},
				Usage:       "write the session's action journal to this file on exit",
				Destination: &cmd.journalPath,
			},
		},
		Action: run,
	})
	root.Action = run
	return root
}

func (cmd *TUICmd) run() error {
	store, err := todo.NewStore()
	if err != nil {
		return err
	}
	actions := todo.NewActions()

	log := logging.Component("store")
	state.RegisterDebugLogger(store, log)

	j := &journal.Journal{}
	j.Attach(store)

	if err := tui.Run(store, actions, cmd.app.Cfg, logging.Component("tui")); err != nil {
		return err
	}

	if cmd.journalPath != "" {
		f, err := os.Create(cmd.journalPath)
		if err != nil {
			return fmt.Errorf("create journal file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return iojson.WriteWith(f, j.Records())
	}
	return nil
}
