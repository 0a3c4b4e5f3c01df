package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode decides whether output carries ANSI colour.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// NewRenderer returns a lipgloss renderer for w honouring mode and theme.
func NewRenderer(w io.Writer, theme Theme, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case theme.Plain, mode == ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case mode == ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// Printer writes themed status lines to one writer.
type Printer struct {
	w  io.Writer
	st Styles
}

func NewPrinter(w io.Writer, theme Theme, mode ColorMode) *Printer {
	return &Printer{
		w:  w,
		st: theme.Styles(NewRenderer(w, theme, mode)),
	}
}

func (p *Printer) OK(msg string) { fmt.Fprintln(p.w, p.st.Success.Render(msg)) }

// Fail prints "ERROR: msg".
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.w, p.st.Error.Render("ERROR:")+" "+msg)
}

func (p *Printer) Heading(s string) { fmt.Fprintln(p.w, p.st.Title.Render(s)) }

// Bullet prints one list entry prefixed with " * ".
func (p *Printer) Bullet(s string) { fmt.Fprintln(p.w, " * "+s) }

func (p *Printer) Blank() { fmt.Fprintln(p.w) }
