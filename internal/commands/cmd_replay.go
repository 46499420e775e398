package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoloop/internal/core/journal"
	"github.com/colonyops/todoloop/internal/core/todo"
	"github.com/colonyops/todoloop/pkg/iojson"
)

// ReplayCmd rebuilds application state from a recorded action journal.
type ReplayCmd struct {
	flags *Flags
	file  string
}

// NewReplayCmd creates the replay command.
func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{flags: flags}
}

// Register adds the replay command.
func (cmd *ReplayCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:  "replay",
		Usage: "Replay a JSON action journal and print the resulting state",
		UsageText: `todoloop replay [options]

Read from stdin:
  todoloop tui -j session.json && todoloop replay < session.json

Read from file:
  todoloop replay -f session.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to journal JSON (reads from stdin if not provided)",
				Destination: &cmd.file,
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			return cmd.run(os.Stdout)
		},
	})
	return root
}

// replayOutput is the printed result: the full state plus the todos
// currently visible under the replayed filter.
type replayOutput struct {
	Todos   []*todo.Todo `json:"todos"`
	Filter  todo.Filter  `json:"filter"`
	Visible []*todo.Todo `json:"visible"`
}

func (cmd *ReplayCmd) run(w io.Writer) error {
	records, err := iojson.Read[[]journal.Record](cmd.file)
	if err != nil {
		return err
	}

	st, err := journal.Replay(records)
	if err != nil {
		return fmt.Errorf("replay journal: %w", err)
	}

	return iojson.WriteWith(w, replayOutput{
		Todos:   st.Todos,
		Filter:  st.Filter,
		Visible: todo.VisibleTodos(st.Todos, st.Filter),
	})
}
