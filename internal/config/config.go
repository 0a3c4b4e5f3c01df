package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/idilsaglam/tasktracker/internal/ui"
)

// Config describes runtime settings loaded from environment variables.
type Config struct {
	Theme    string
	Color    ui.ColorMode
	LogLevel slog.Level
}

// Load reads configuration from environment variables, applying defaults when necessary.
// NO_COLOR, when set to anything, wins over TASKS_COLOR.
func Load() (*Config, error) {
	cfg := &Config{
		Theme:    "classic",
		Color:    ui.ColorAuto,
		LogLevel: slog.LevelWarn,
	}

	if theme := os.Getenv("TASKS_THEME"); theme != "" {
		if _, err := ui.LookupTheme(theme); err != nil {
			return nil, fmt.Errorf("parse TASKS_THEME: %w", err)
		}
		cfg.Theme = theme
	}

	if color := os.Getenv("TASKS_COLOR"); color != "" {
		mode, err := ui.ParseColorMode(color)
		if err != nil {
			return nil, fmt.Errorf("parse TASKS_COLOR: %w", err)
		}
		cfg.Color = mode
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = ui.ColorNever
	}

	if level := os.Getenv("TASKS_LOG_LEVEL"); level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			return nil, fmt.Errorf("parse TASKS_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = l
	}

	return cfg, nil
}
