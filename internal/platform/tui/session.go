package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
)

// Options builds viewer options for the selection on top of base, which
// supplies delay, styles and session id.
func (s Selection) Options(base WatchOptions) (WatchOptions, error) {
	start, goal, err := s.Maze.Endpoints()
	if err != nil {
		return WatchOptions{}, err
	}
	h, info, err := registry.Lookup(s.Heuristic.Name)
	if err != nil {
		return WatchOptions{}, err
	}

	opts := base
	opts.Title = s.Maze.Name + " · " + info.Title
	opts.Grid = s.Maze.Grid
	opts.Start = start
	opts.Goal = goal
	opts.Heuristic = h
	opts.Informed = info.Informed
	return opts, nil
}

// SessionModel manages the full flow: viewer -> menu -> viewer.
// This is the top-level model used for SSH sessions and `watch --menu`.
type SessionModel struct {
	menu     MenuModel
	watch    *WatchModel
	base     WatchOptions
	size     *tea.WindowSizeMsg // last known size, replayed to new viewers
	nextGen  int                // first tick generation for the next viewer
	quitting bool
}

// NewSessionModel creates a session that starts watching first and lets
// the user go back to a picker over all.
func NewSessionModel(all []mazes.Maze, heuristics []registry.Info, first Selection, base WatchOptions) (SessionModel, error) {
	base.Embedded = true
	m := SessionModel{
		menu: NewMenuModel(all, heuristics, first.Maze.ID, first.Heuristic.Name, base.Styles),
		base: base,
	}

	opts, err := first.Options(base)
	if err != nil {
		return SessionModel{}, err
	}
	watch, err := NewWatchModel(opts)
	if err != nil {
		return SessionModel{}, err
	}
	m.watch = &watch
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.watch != nil {
		return m.watch.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.size = &wsm
		m.menu = m.menu.resized(wsm)
	}

	if m.watch != nil {
		return m.updateWatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if a maze was selected
	if selected := m.menu.Selected(); selected != nil {
		m.menu.selected = nil

		opts, err := selected.Options(m.base)
		if err == nil {
			var watch WatchModel
			if watch, err = NewWatchModel(opts); err == nil {
				// Ticks of earlier viewers may still be in flight.
				watch.gen = m.nextGen
				if m.size != nil {
					watch.width, watch.height = m.size.Width, m.size.Height
					watch.help.Width = m.size.Width
				}
				m.menu.message = ""
				m.watch = &watch
				return m, m.watch.Init()
			}
		}
		m.menu.message = err.Error()
		return m, nil
	}

	return m, cmd
}

// updateWatch handles updates when the viewer is active.
func (m SessionModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watch, ok := newModel.(WatchModel); ok {
		m.watch = &watch
	}

	// Check if user went back to the menu
	if m.watch.BackToMenu() {
		m.nextGen = m.watch.gen + 1
		m.watch = nil
		return m, nil
	}

	// Check if user quit entirely
	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// InMenu reports whether the picker is showing.
func (m SessionModel) InMenu() bool {
	return m.watch == nil
}

// Watch returns the active viewer, or nil in the menu.
func (m SessionModel) Watch() *WatchModel {
	return m.watch
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.watch != nil {
		return m.watch.View()
	}
	return m.menu.View()
}
