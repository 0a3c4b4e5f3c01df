// Package tui is the interactive session: one registry kept alive for the
// whole process, driven by a command prompt and a selectable task list.
package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasktracker/internal/command"
	"github.com/idilsaglam/tasktracker/internal/registry"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

// listItem adapts a registry entry to bubbles/list.Item
type listItem struct {
	Key  string
	Done bool
}

func (i listItem) FilterValue() string { return i.Key }

// single-line rows: checkbox + key
type itemDelegate struct {
	theme ui.Theme
	st    ui.Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.Muted.Render(d.theme.BoxUnchecked)
	text := it.Key
	if it.Done {
		box = d.st.Success.Render(d.theme.BoxChecked)
		text = d.st.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type keyMap struct {
	Prompt, Add, Toggle, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prompt: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model of a session.
type Model struct {
	reg   *registry.Registry
	theme ui.Theme
	st    ui.Styles
	keys  keyMap

	list  list.Model
	input textinput.Model

	prompting bool
	reselect  string // key to select once a pending filter pass lands
	status    string // outcome of the last command
	statusErr bool

	width, height int
}

// New builds a session model over reg. Styles are bound to r.
func New(reg *registry.Registry, theme ui.Theme, r *lipgloss.Renderer) Model {
	st := theme.Styles(r)
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{theme: theme, st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.Title
	l.Styles.HelpStyle = st.Muted
	l.Styles.PaginationStyle = st.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.KeyMap.Quit = keys.Quit
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Prompt, keys.Add, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "add <key> | mark-done <key> | mark-pending <key> | list | quit"
	ti.CharLimit = 200

	m := Model{
		reg:    reg,
		theme:  theme,
		st:     st,
		keys:   keys,
		list:   l,
		input:  ti,
		width:  80,
		height: 24,
	}
	m.refresh()
	m.resize()
	return m
}

// Run starts an alt-screen session writing to out and blocks until it ends.
func Run(reg *registry.Registry, theme ui.Theme, mode ui.ColorMode, in io.Reader, out io.Writer) error {
	m := New(reg, theme, ui.NewRenderer(out, theme, mode))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.Prompt):
			return m.openPrompt("")
		case key.Matches(k, m.keys.Add):
			return m.openPrompt(command.Add + " ")
		case key.Matches(k, m.keys.Toggle):
			cmd := m.toggleSelected()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if _, ok := msg.(list.FilterMatchesMsg); ok && m.reselect != "" {
		m.selectKey(m.reselect)
		m.reselect = ""
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			line := m.input.Value()
			m.closePrompt()
			cmd := m.exec(line)
			return m, cmd
		case "esc":
			m.closePrompt()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(prefill string) (tea.Model, tea.Cmd) {
	m.prompting = true
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	m.resize()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

// exec runs one prompt line against the registry.
func (m *Model) exec(line string) tea.Cmd {
	cmd, err := command.ParseLine(line)
	if err == nil && (cmd.Name == "quit" || cmd.Name == "exit") {
		return tea.Quit
	}
	if err == nil {
		_, err = command.Exec(m.reg, cmd)
	}
	if err != nil {
		m.setStatus("ERROR: "+command.Message(err), true)
		return nil
	}
	m.setStatus("SUCCESS", false)
	return m.refresh()
}

// toggleSelected flips the selected task. With a filter applied the list is
// rebuilt by the returned command, so selection waits for its result.
func (m *Model) toggleSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	next := registry.Done
	if it.Done {
		next = registry.Pending
	}
	if _, err := m.reg.SetStatus(it.Key, next); err != nil {
		m.setStatus("ERROR: "+command.Message(err), true)
		return nil
	}
	m.setStatus("SUCCESS", false)
	cmd := m.refresh()
	if cmd == nil {
		m.selectKey(it.Key)
		return nil
	}
	m.reselect = it.Key
	return cmd
}

// selectKey moves the cursor to k among the visible items.
func (m *Model) selectKey(k string) {
	for i, it := range m.list.VisibleItems() {
		if li, ok := it.(listItem); ok && li.Key == k {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// refresh rebuilds the list from the registry: pending first, then done.
func (m *Model) refresh() tea.Cmd {
	pending, done := m.reg.List()
	slices.Sort(pending)
	slices.Sort(done)

	items := make([]list.Item, 0, len(pending)+len(done))
	for _, k := range pending {
		items = append(items, listItem{Key: k})
	}
	for _, k := range done {
		items = append(items, listItem{Key: k, Done: true})
	}
	m.list.Title = m.header(len(done), len(pending))
	return m.list.SetItems(items)
}

func (m Model) header(done, pending int) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"Tasks",
		m.theme.SymDone, done,
		m.theme.SymPending, pending,
		"Total", done+pending,
	)
}

func (m *Model) resize() {
	listHeight := m.height - 6
	if m.prompting {
		listHeight -= 3
	}
	if listHeight < 3 {
		listHeight = 3
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	m.list.SetSize(width, listHeight)
}

func (m Model) View() string {
	pending, done := m.reg.List()
	total := len(pending) + len(done)

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.st.ProgressBar(len(done), total, 28))

	if m.prompting {
		box := m.st.Frame.Render(m.st.Accent.Render("Command") + "\n" + m.input.View())
		b.WriteString("\n" + box)
	} else if m.status != "" {
		style := m.st.Success
		if m.statusErr {
			style = m.st.Error
		}
		b.WriteString("\n" + style.Render(m.status))
	}
	return m.st.Frame.Render(b.String())
}
