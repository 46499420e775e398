// Package config handles configuration loading and validation for
// todoloop.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/todoloop/internal/core/action"
	"github.com/colonyops/todoloop/internal/core/validate"
)

// defaultKeybindings provides built-in keybindings that users can
// override.
var defaultKeybindings = map[string]Keybinding{
	"a":     {Action: action.TypeAddTodo, Help: "add todo"},
	"enter": {Action: action.TypeToggleTodo, Help: "toggle done"},
	"1":     {Action: action.TypeFilterAll, Help: "show all"},
	"2":     {Action: action.TypeFilterActive, Help: "show active"},
	"3":     {Action: action.TypeFilterCompleted, Help: "show completed"},
	"q":     {Action: action.TypeQuit, Help: "quit"},
}

// Config holds the application configuration.
type Config struct {
	DefaultFilter string                `yaml:"default_filter"`
	Log           LogConfig             `yaml:"log"`
	Keybindings   map[string]Keybinding `yaml:"keybindings"`
}

// LogConfig controls the zerolog root logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Keybinding maps a key to a UI action.
type Keybinding struct {
	Action action.Type `yaml:"action"`
	Help   string      `yaml:"help"`
}

// Default returns the built-in configuration.
func Default() *Config {
	kb := make(map[string]Keybinding, len(defaultKeybindings))
	for k, v := range defaultKeybindings {
		kb[k] = v
	}

	return &Config{
		DefaultFilter: "SHOW_ALL",
		Log:           LogConfig{Level: "info"},
		Keybindings:   kb,
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; the defaults apply as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.DefaultFilter != "" {
		c.DefaultFilter = o.DefaultFilter
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Log.File != "" {
		c.Log.File = o.Log.File
	}
	for k, v := range o.Keybindings {
		c.Keybindings[k] = v
	}
}

// Validate checks the configuration for values that would misbehave at
// runtime: an unknown default filter or a keybinding bound to an
// action that does not exist.
func (c *Config) Validate() error {
	if err := validate.VisibilityFilterField("default_filter", c.DefaultFilter); err != nil {
		return err
	}

	for key, kb := range c.Keybindings {
		if !action.IsConfigAction(kb.Action) {
			return fmt.Errorf("keybinding %q: unknown action %q", key, kb.Action)
		}
	}
	return nil
}
