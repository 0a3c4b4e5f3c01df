package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/idilsaglam/tasktracker/internal/command"
	"github.com/idilsaglam/tasktracker/internal/registry"
	"github.com/idilsaglam/tasktracker/internal/tui"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

// Options carry the process-level wiring from main.
type Options struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
	Theme          ui.Theme
	Color          ui.ColorMode
	Logger         *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Theme.Name == "" {
		o.Theme = ui.DefaultTheme()
	}
	if o.Color == "" {
		o.Color = ui.ColorAuto
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// Every one-shot command works on a fresh, empty registry.
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}

	switch args[0] {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "shell":
		return doShell(opt)
	}
	return doCommand(registry.New(), args, opt)
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tasks - a tiny task tracker

Usage:
  tasks [flags] <command> [key...]

Commands:
  add <key>            Track a new task as pending (no-op if already tracked)
  mark-done <key>      Mark a tracked task as done
  mark-pending <key>   Mark a tracked task as pending again
  list                 List tasks grouped into "# TO DO" and "# DONE"
  shell                Interactive session keeping tasks until you quit

Flags:
  -theme classic|neon|mono   Colour theme (env TASKS_THEME)
  -color auto|always|never   Colour output (env TASKS_COLOR, NO_COLOR)
  -v                         Debug logging on stderr (env TASKS_LOG_LEVEL)

Examples:
  tasks add "Buy milk"
  tasks mark-done "Buy milk"
  tasks list
  tasks shell
`)
}

// -------------- subcommand impls ----------------

func doCommand(reg *registry.Registry, args []string, opt Options) int {
	out := ui.NewPrinter(opt.Stdout, opt.Theme, opt.Color)
	errOut := ui.NewPrinter(opt.Stderr, opt.Theme, opt.Color)

	cmd, err := command.Parse(args)
	var res command.Result
	if err == nil {
		opt.Logger.Debug("dispatch", "command", cmd.Name, "key", cmd.Key)
		res, err = command.Exec(reg, cmd)
	}
	if err != nil {
		opt.Logger.Debug("command failed", "error", err)
		errOut.Fail(command.Message(err))
		if command.IsUsage(err) {
			return 2
		}
		return 1
	}

	if res.Listing != nil {
		printListing(out, *res.Listing)
	}
	out.OK("SUCCESS")
	return 0
}

// doShell runs the interactive session and prints what was left in the
// registry once it ends.
func doShell(opt Options) int {
	reg := registry.New()
	opt.Logger.Debug("session start", "theme", opt.Theme.Name)
	if err := tui.Run(reg, opt.Theme, opt.Color, opt.Stdin, opt.Stdout); err != nil {
		ui.NewPrinter(opt.Stderr, opt.Theme, opt.Color).Fail(err.Error())
		return 1
	}
	opt.Logger.Debug("session end", "tasks", reg.Len())
	return doCommand(reg, []string{command.List}, opt)
}

// -------------- rendering helpers --------------

func printListing(p *ui.Printer, l command.Listing) {
	p.Heading("# TO DO")
	for _, k := range l.Pending {
		p.Bullet(k)
	}
	p.Blank()
	p.Heading("# DONE")
	for _, k := range l.Done {
		p.Bullet(k)
	}
}
