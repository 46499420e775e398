// Package commands implements the todoloop CLI command layer.
package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/todoloop/internal/core/config"
)

// Flags holds global CLI flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
}

// App carries state built during CLI setup into the commands.
type App struct {
	Cfg *config.Config
}

// DefaultConfigPath returns the user config file location, falling
// back to a relative path when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(home, ".config", "todoloop", "config.yml")
}
