// ABOUTME: Bubble Tea model for browsing, cycling and selecting themes
// ABOUTME: Reads state from a Controller and calls its mutators on key input

package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/themeswitch/pkg/tui/theme"
	"github.com/mauromedda/themeswitch/pkg/tui/width"
)

// Controller is the part of the theme manager the picker drives.
type Controller interface {
	Catalog() theme.Catalog
	ActiveID() string
	Current() (theme.Theme, bool)
	IsDarkMode() bool
	Select(id string) bool
	Next() bool
	Previous() bool
}

const helpLine = "←/→ cycle · ↑/↓ move · enter select · / filter · q quit"

// Model is the picker view. Implements tea.Model with value semantics.
type Model struct {
	ctl  Controller
	load func() error

	all       theme.Catalog
	visible   theme.Catalog
	cursor    int
	scrollOff int
	filter    string
	filtering bool
	loadErr   error
	width     int
	height    int
	quitting  bool
}

var _ tea.Model = Model{}

// New returns a picker over ctl. When load is non-nil Init runs it as a
// command; a failure arrives as LoadFailedMsg.
func New(ctl Controller, load func() error) Model {
	m := Model{ctl: ctl, load: load}
	m.refresh()
	return m
}

// Init starts the catalog load, if any.
func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	load := m.load
	return func() tea.Msg {
		if err := load(); err != nil {
			return LoadFailedMsg{Err: err}
		}
		return nil
	}
}

// Update handles manager events, key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		m.loadErr = nil
		m.refresh()
	case LoadFailedMsg:
		m.loadErr = msg.Err
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScroll()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.setFilter("")
		case tea.KeyEnter:
			m.filtering = false
		case tea.KeyBackspace:
			if r := []rune(m.filter); len(r) > 0 {
				m.setFilter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.setFilter(m.filter + string(msg.Runes))
		case tea.KeyUp:
			m.move(-1)
		case tea.KeyDown:
			m.move(1)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if m.ctl.Previous() {
			m.refresh()
		}
	case "right", "l":
		if m.ctl.Next() {
			m.refresh()
		}
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter", " ":
		if t, ok := m.Highlighted(); ok && m.ctl.Select(t.ID) {
			m.refresh()
		}
	case "/":
		m.filtering = true
	case "esc":
		m.setFilter("")
	}
	return m, nil
}

// refresh re-reads the catalog and puts the cursor on the active theme.
func (m *Model) refresh() {
	m.all = m.ctl.Catalog()
	m.applyFilter()
	if i := m.visible.Index(m.ctl.ActiveID()); i >= 0 {
		m.cursor = i
	}
	m.clampCursor()
	m.adjustScroll()
}

func (m *Model) setFilter(f string) {
	m.filter = f
	m.cursor = 0
	m.scrollOff = 0
	m.applyFilter()
	if i := m.visible.Index(m.ctl.ActiveID()); i >= 0 && f == "" {
		m.cursor = i
	}
	m.adjustScroll()
}

func (m *Model) applyFilter() {
	m.visible = m.all.Search(m.filter)
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.adjustScroll()
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.visible)-1))
}

func (m *Model) adjustScroll() {
	rows := m.listRows()
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+rows {
		m.scrollOff = m.cursor - rows + 1
	}
}

// listRows is how many catalog rows fit under the header and help line.
func (m Model) listRows() int {
	if m.height <= 0 {
		return 100
	}
	return max(1, m.height-5)
}

// Highlighted returns the theme under the cursor.
func (m Model) Highlighted() (theme.Theme, bool) {
	if len(m.visible) == 0 {
		return theme.Theme{}, false
	}
	return m.visible[m.cursor], true
}

// Filter returns the current filter text.
func (m Model) Filter() string { return m.filter }

// Filtering reports whether filter input is active.
func (m Model) Filtering() bool { return m.filtering }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// View renders the header, theme list and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := StylesFor(m.ctl.IsDarkMode())
	var b strings.Builder

	b.WriteString(m.header(s))
	b.WriteByte('\n')

	if m.filtering || m.filter != "" {
		b.WriteString(s.Filter.Render("/" + m.filter))
		b.WriteByte('\n')
	}

	switch {
	case len(m.all) == 0 && m.loadErr != nil:
		b.WriteString(s.ErrorMsg.Render(m.fit("Failed to load themes: " + m.loadErr.Error())))
	case len(m.all) == 0:
		b.WriteString(s.Muted.Render("Loading themes..."))
	case len(m.visible) == 0:
		b.WriteString(s.Muted.Render("No matching themes"))
	default:
		b.WriteString(m.list(s))
	}

	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(m.fit(helpLine)))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m Model) header(s Styles) string {
	indicator := "☾ dark"
	if !m.ctl.IsDarkMode() {
		indicator = "☀ light"
	}
	label := m.ctl.ActiveID()
	if t, ok := m.ctl.Current(); ok {
		label = t.Label()
	}
	return s.Title.Render("Theme") + " " + s.Item.Render(m.fit(label)) + s.Badge.Render(indicator)
}

func (m Model) list(s Styles) string {
	active := m.ctl.ActiveID()
	end := min(m.scrollOff+m.listRows(), len(m.visible))

	var b strings.Builder
	for i := m.scrollOff; i < end; i++ {
		t := m.visible[i]
		pointer := "  "
		if i == m.cursor {
			pointer = "› "
		}
		mark := "  "
		if t.ID == active {
			mark = "● "
		}
		line := m.fit(pointer + mark + width.PadRight(t.Label(), 24) + " " + t.Mode())

		if i > m.scrollOff {
			b.WriteByte('\n')
		}
		switch {
		case i == m.cursor:
			b.WriteString(s.Cursor.Render(line))
		case t.ID == active:
			b.WriteString(s.Active.Render(line))
		default:
			b.WriteString(s.Item.Render(line))
		}
	}
	if end < len(m.visible) {
		fmt.Fprintf(&b, "\n%s", s.Muted.Render(fmt.Sprintf("  … %d more", len(m.visible)-end)))
	}
	return b.String()
}

func (m Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return width.Truncate(line, m.width)
}
