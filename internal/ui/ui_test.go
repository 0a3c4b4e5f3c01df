package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLookupTheme(t *testing.T) {
	for _, name := range []string{"classic", "NEON", " mono "} {
		if _, err := LookupTheme(name); err != nil {
			t.Fatalf("LookupTheme(%q): %v", name, err)
		}
	}
	if _, err := LookupTheme("solarized"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"Always": ColorAlways,
		"never":  ColorNever,
	}
	for in, want := range tests {
		got, err := ParseColorMode(in)
		if err != nil {
			t.Fatalf("ParseColorMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColorMode(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, DefaultTheme(), ColorNever)
	p.Heading("# TO DO")
	p.Bullet("milk")
	p.Blank()
	p.Fail("Invalid key X")
	p.OK("SUCCESS")

	want := "# TO DO\n * milk\n\nERROR: Invalid key X\nSUCCESS\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestPrinterForcedColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, DefaultTheme(), ColorAlways)
	p.OK("SUCCESS")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", buf.String())
	}
}

func TestMonoThemeIgnoresForcedColor(t *testing.T) {
	mono, _ := LookupTheme("mono")
	var buf bytes.Buffer
	NewPrinter(&buf, mono, ColorAlways).OK("SUCCESS")
	if buf.String() != "SUCCESS\n" {
		t.Fatalf("expected plain output, got %q", buf.String())
	}
}

func TestProgressBar(t *testing.T) {
	st := DefaultTheme().Styles(lipgloss.NewRenderer(io.Discard))
	got := st.ProgressBar(1, 2, 10)
	if !strings.HasPrefix(got, strings.Repeat("█", 5)+strings.Repeat("░", 5)) {
		t.Fatalf("unexpected bar %q", got)
	}
	if !strings.HasSuffix(got, " 50%") {
		t.Fatalf("unexpected percentage in %q", got)
	}
	if got := st.ProgressBar(0, 0, 1); !strings.HasSuffix(got, "  0%") {
		t.Fatalf("unexpected empty bar %q", got)
	}
}

func TestProgressBarColoured(t *testing.T) {
	r := NewRenderer(io.Discard, DefaultTheme(), ColorAlways)
	got := DefaultTheme().Styles(r).ProgressBar(3, 4, 8)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", got)
	}
	if !strings.HasSuffix(got, " 75%") {
		t.Fatalf("unexpected percentage in %q", got)
	}
}
