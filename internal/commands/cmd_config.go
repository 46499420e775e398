package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoloop/internal/core/config"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates the config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command with its validate subcommand.
func (cmd *ConfigCmd) Register(root *cli.Command) *cli.Command {
	root.Commands = append(root.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration helpers",
		Commands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Validate the config file and report the effective settings",
				Action: func(_ context.Context, _ *cli.Command) error {
					return cmd.runValidate()
				},
			},
		},
	})
	return root
}

func (cmd *ConfigCmd) runValidate() error {
	cfg, err := config.Load(cmd.flags.ConfigPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "config ok: default_filter=%s keybindings=%d\n",
		cfg.DefaultFilter, len(cfg.Keybindings))
	return nil
}
