package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/idilsaglam/tasktracker/internal/cli"
	"github.com/idilsaglam/tasktracker/internal/config"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	// Root flags (apply to every subcommand); they override the environment.
	themeName := flag.String("theme", cfg.Theme, "colour theme: classic, neon or mono")
	colorMode := flag.String("color", string(cfg.Color), "colour output: auto, always or never")
	verbose := flag.Bool("v", false, "debug logging on stderr")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	theme, err := ui.LookupTheme(*themeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "theme:", err)
		os.Exit(2)
	}
	mode, err := ui.ParseColorMode(*colorMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "color:", err)
		os.Exit(2)
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		Theme:  theme,
		Color:  mode,
		Logger: logger,
	}))
}
