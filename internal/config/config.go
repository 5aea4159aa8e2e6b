// Package config loads the optional YAML configuration for the to-do CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storex/internal/todo"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the YAML document.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Todo TodoConfig `yaml:"todo"`
}

// LogConfig selects level and format; see internal/logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// TodoConfig configures the to-do sample.
type TodoConfig struct {
	// Seed is the initial list shown before anything is loaded.
	Seed []string `yaml:"seed,omitempty"`
	// Items, when set, replaces the demo items served on load.
	Items         []string      `yaml:"items,omitempty"`
	LoadDelay     time.Duration `yaml:"loadDelay"`
	MinTextLength int           `yaml:"minTextLength"`
	QueueSize     int           `yaml:"queueSize"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "INFO",
			Format: "CONSOLE",
		},
		Todo: TodoConfig{
			LoadDelay:     2 * time.Second,
			MinTextLength: todo.DefaultMinTextLength,
			QueueSize:     64,
		},
	}
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var problems []string
	if c.Todo.LoadDelay < 0 {
		problems = append(problems, "todo.loadDelay must not be negative")
	}
	if c.Todo.MinTextLength < 0 {
		problems = append(problems, "todo.minTextLength must not be negative")
	}
	if c.Todo.QueueSize <= 0 {
		problems = append(problems, "todo.queueSize must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Fetcher returns the fetcher described by the config.
func (c TodoConfig) Fetcher() todo.Fetcher {
	var items []string
	if len(c.Items) > 0 {
		items = append(items, c.Items...)
	}
	return todo.DummyFetcher{Delay: c.LoadDelay, Items: items}
}
