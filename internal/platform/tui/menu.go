package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
)

// MenuKeyMap defines the key bindings for the maze picker.
type MenuKeyMap struct {
	Up            key.Binding
	Down          key.Binding
	NextHeuristic key.Binding
	PrevHeuristic key.Binding
	Select        key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextHeuristic, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextHeuristic, k.PrevHeuristic},
		{k.Select, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		NextHeuristic: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next heuristic"),
		),
		PrevHeuristic: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev heuristic"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "watch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Selection is what the user picked in the menu.
type Selection struct {
	Maze      mazes.Maze
	Heuristic registry.Info
}

// MenuModel is the Bubble Tea model for the maze picker.
type MenuModel struct {
	mazes      []mazes.Maze
	heuristics []registry.Info
	cursor     int
	heuristic  int
	styles     *Styles
	keys       MenuKeyMap
	help       help.Model
	width      int
	message    string // last error, shown under the list
	quitting   bool
	selected   *Selection // Set when user selects a maze
}

// NewMenuModel creates a new menu over the given mazes. The cursor starts
// on the maze with id current and the heuristic named heuristic, when present.
func NewMenuModel(all []mazes.Maze, heuristics []registry.Info, current, heuristic string, styles *Styles) MenuModel {
	if styles == nil {
		styles = NewStyles(nil)
	}
	m := MenuModel{
		mazes:      all,
		heuristics: heuristics,
		styles:     styles,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	for i, mz := range all {
		if mz.ID == current {
			m.cursor = i
		}
	}
	for i, h := range heuristics {
		if h.Name == heuristic {
			m.heuristic = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.resized(msg), nil
	}

	return m, nil
}

func (m MenuModel) resized(msg tea.WindowSizeMsg) MenuModel {
	m.width = msg.Width
	m.help.Width = msg.Width
	return m
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.mazes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextHeuristic):
		if len(m.heuristics) > 0 {
			m.heuristic = (m.heuristic + 1) % len(m.heuristics)
		}

	case key.Matches(msg, m.keys.PrevHeuristic):
		if len(m.heuristics) > 0 {
			m.heuristic = (m.heuristic + len(m.heuristics) - 1) % len(m.heuristics)
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.mazes) > 0 && len(m.heuristics) > 0 {
			m.selected = &Selection{
				Maze:      m.mazes[m.cursor],
				Heuristic: m.heuristics[m.heuristic],
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("P A T H F I N D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a maze", m.width))
	b.WriteString("\n\n")

	for i, mz := range m.mazes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s %dx%d  %s", cursor, mz.ID, mz.Grid.Rows(), mz.Grid.Cols(), mz.Name)
		if i == m.cursor {
			line = m.styles.Path.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.heuristics) > 0 {
		b.WriteString("\n")
		h := m.heuristics[m.heuristic]
		b.WriteString(centerText("Heuristic: "+m.styles.Current.Render(h.Name)+"  "+m.styles.Muted.Render(h.Title), m.width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.styles.Goal.Render(m.message), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
