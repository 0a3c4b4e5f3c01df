// Package command parses task commands and executes them against a registry.
// It is shared by the one-shot CLI and the interactive session.
package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/idilsaglam/tasktracker/internal/registry"
)

const (
	Add         = "add"
	MarkDone    = "mark-done"
	MarkPending = "mark-pending"
	List        = "list"
)

var (
	ErrNoCommand = errors.New("no command given")
	ErrEmptyKey  = errors.New("empty key")
)

// UnknownCommandError reports a command name nobody handles.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Command %s not recognised", e.Name)
}

// Command is a parsed invocation: a name plus an optional key.
type Command struct {
	Name string
	Key  string
}

// Listing is the registry contents split by status, each side sorted by key.
type Listing struct {
	Pending []string
	Done    []string
}

// Result is what a successful command produced. Key is set for mutating
// commands, Listing only for list.
type Result struct {
	Key     string
	Listing *Listing
}

// Parse takes the command name from args[0]; the rest is joined into the key
// so multi-word keys work without quoting.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrNoCommand
	}
	return Command{
		Name: args[0],
		Key:  strings.TrimSpace(strings.Join(args[1:], " ")),
	}, nil
}

// ParseLine splits a prompt line on whitespace and parses it.
func ParseLine(line string) (Command, error) {
	return Parse(strings.Fields(line))
}

func Exec(reg *registry.Registry, cmd Command) (Result, error) {
	switch cmd.Name {
	case Add:
		if cmd.Key == "" {
			return Result{}, ErrEmptyKey
		}
		reg.Add(cmd.Key)
		return Result{Key: cmd.Key}, nil

	case MarkDone, MarkPending:
		if cmd.Key == "" {
			return Result{}, ErrEmptyKey
		}
		status := registry.Done
		if cmd.Name == MarkPending {
			status = registry.Pending
		}
		key, err := reg.SetStatus(cmd.Key, status)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", cmd.Name, err)
		}
		return Result{Key: key}, nil

	case List:
		pending, done := reg.List()
		slices.Sort(pending)
		slices.Sort(done)
		return Result{Listing: &Listing{Pending: pending, Done: done}}, nil
	}
	return Result{}, &UnknownCommandError{Name: cmd.Name}
}

// Message renders err the way users see it after "ERROR: ".
func Message(err error) string {
	var uk *registry.UnknownKeyError
	var uc *UnknownCommandError
	switch {
	case errors.As(err, &uk):
		return "Invalid key " + uk.Key
	case errors.As(err, &uc):
		return uc.Error()
	case errors.Is(err, ErrEmptyKey):
		return "Key cannot be empty!"
	}
	return err.Error()
}

// IsUsage reports whether err stems from a malformed invocation rather than
// from registry state.
func IsUsage(err error) bool {
	var uc *UnknownCommandError
	return errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrNoCommand) || errors.As(err, &uc)
}
