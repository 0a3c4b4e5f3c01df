package command

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/idilsaglam/tasktracker/internal/registry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"name only", []string{"list"}, Command{Name: "list"}},
		{"single key", []string{"add", "milk"}, Command{Name: "add", Key: "milk"}},
		{"multi word key", []string{"add", "buy", "milk"}, Command{Name: "add", Key: "buy milk"}},
		{"blank key", []string{"add", "  "}, Command{Name: "add"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if _, err := Parse(nil); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestParseLine(t *testing.T) {
	got, err := ParseLine("  mark-done   buy  milk ")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got.Name != MarkDone || got.Key != "buy milk" {
		t.Fatalf("unexpected command %+v", got)
	}
}

func TestExecScenario(t *testing.T) {
	reg := registry.New()
	for _, k := range []string{"A", "B", "C"} {
		if _, err := Exec(reg, Command{Name: Add, Key: k}); err != nil {
			t.Fatalf("add %s: %v", k, err)
		}
	}
	res, err := Exec(reg, Command{Name: MarkDone, Key: "C"})
	if err != nil {
		t.Fatalf("mark-done: %v", err)
	}
	if res.Key != "C" {
		t.Fatalf("expected echoed key C, got %q", res.Key)
	}

	res, err = Exec(reg, Command{Name: List})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !slices.Equal(res.Listing.Pending, []string{"A", "B"}) {
		t.Fatalf("unexpected pending: %v", res.Listing.Pending)
	}
	if !slices.Equal(res.Listing.Done, []string{"C"}) {
		t.Fatalf("unexpected done: %v", res.Listing.Done)
	}
}

func TestExecMarkPending(t *testing.T) {
	reg := registry.New()
	reg.Add("A")
	if _, err := Exec(reg, Command{Name: MarkDone, Key: "A"}); err != nil {
		t.Fatalf("mark-done: %v", err)
	}
	if _, err := Exec(reg, Command{Name: MarkPending, Key: "A"}); err != nil {
		t.Fatalf("mark-pending: %v", err)
	}
	if s, _ := reg.Status("A"); s != registry.Pending {
		t.Fatalf("expected pending, got %v", s)
	}
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		msg   string
		usage bool
	}{
		{"add without key", Command{Name: Add}, "Key cannot be empty!", true},
		{"mark-done without key", Command{Name: MarkDone}, "Key cannot be empty!", true},
		{"mark-done unknown key", Command{Name: MarkDone, Key: "X"}, "Invalid key X", false},
		{"mark-pending unknown key", Command{Name: MarkPending, Key: "X"}, "Invalid key X", false},
		{"unknown command", Command{Name: "frobnicate"}, "Command frobnicate not recognised", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			_, err := Exec(reg, tt.cmd)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := Message(err); got != tt.msg {
				t.Fatalf("expected message %q, got %q", tt.msg, got)
			}
			if IsUsage(err) != tt.usage {
				t.Fatalf("IsUsage = %v, want %v", IsUsage(err), tt.usage)
			}
			if reg.Len() != 0 {
				t.Fatalf("registry changed: %d items", reg.Len())
			}
		})
	}
}

func TestExecUnknownKeyUnwraps(t *testing.T) {
	_, err := Exec(registry.New(), Command{Name: MarkDone, Key: "X"})
	if !errors.Is(err, registry.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey in chain, got %v", err)
	}
}

func TestMessageWrapsEmptyKey(t *testing.T) {
	err := fmt.Errorf("add: %w", ErrEmptyKey)
	if got := Message(err); got != "Key cannot be empty!" {
		t.Fatalf("unexpected message %q", got)
	}
	if ErrEmptyKey.Error() != "empty key" {
		t.Fatalf("unexpected sentinel text %q", ErrEmptyKey)
	}
}
