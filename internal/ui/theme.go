package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	Border                                        lipgloss.Border
	SymDone, SymPending                           string
	// Plain disables colour regardless of the terminal.
	Plain bool
}

var themes = map[string]Theme{
	"classic": {
		Name:  "classic",
		Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
		Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		Border:  lipgloss.RoundedBorder(),
		SymDone: "✔", SymPending: "•",
	},
	"neon": {
		Name:  "neon",
		Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
		Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
		BoxUnchecked: "◻", BoxChecked: "◼",
		Border:  lipgloss.RoundedBorder(),
		SymDone: "✔", SymPending: "•",
	},
	"mono": {
		Name:  "mono",
		Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
		Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		Border:  lipgloss.NormalBorder(),
		SymDone: "x", SymPending: "-",
		Plain:   true,
	},
}

// LookupTheme returns the named theme; names are case-insensitive.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want classic, neon or mono)", name)
	}
	return t, nil
}

func DefaultTheme() Theme { return themes["classic"] }

// Styles are a theme's colours bound to one renderer.
type Styles struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	DoneText, Selected, Frame                     lipgloss.Style
}

func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(t.Title),
		Muted:    r.NewStyle().Foreground(t.Muted).Faint(true),
		Accent:   r.NewStyle().Foreground(t.Accent),
		Success:  r.NewStyle().Foreground(t.Success),
		Error:    r.NewStyle().Foreground(t.Error).Bold(true),
		Pending:  r.NewStyle().Foreground(t.Pending),
		DoneText: r.NewStyle().Faint(true).Strikethrough(true),
		Selected: r.NewStyle().Bold(true).Reverse(true),
		Frame:    r.NewStyle().Border(t.Border).BorderForeground(t.Muted).Padding(0, 1),
	}
}
