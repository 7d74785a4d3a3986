package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/search"
)

// Step delay bounds for the +/- keys.
const (
	minStepDelay = 10 * time.Millisecond
	maxStepDelay = 5 * time.Second
)

// WatchOptions configures a viewer.
type WatchOptions struct {
	Title     string
	Grid      *grid.Grid
	Start     grid.Coord
	Goal      grid.Coord
	Heuristic search.Heuristic
	Informed  bool // show the heuristic column in the status line
	Delay     time.Duration
	Paused    bool    // start paused
	Styles    *Styles // nil: default renderer
	Session   string  // shown in the footer when set
	Embedded  bool    // running inside a SessionModel; enables the back key
}

// WatchModel is the Bubble Tea model that animates a search expansion by
// expansion.
type WatchModel struct {
	opts    WatchOptions
	stepper *search.Stepper
	last    *search.Event
	styles  *Styles
	keys    WatchKeyMap
	help    help.Model
	delay   time.Duration
	paused  bool
	gen     int // current tick chain
	width   int
	height  int

	quitting   bool
	backToMenu bool
}

// NewWatchModel creates a viewer for one search. It fails when the
// endpoints are outside the grid.
func NewWatchModel(opts WatchOptions) (WatchModel, error) {
	stepper, err := newStepper(opts)
	if err != nil {
		return WatchModel{}, err
	}

	styles := opts.Styles
	if styles == nil {
		styles = NewStyles(nil)
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	keys := DefaultWatchKeyMap()
	keys.Back.SetEnabled(opts.Embedded)

	return WatchModel{
		opts:    opts,
		stepper: stepper,
		styles:  styles,
		keys:    keys,
		help:    help.New(),
		delay:   clampDelay(delay),
		paused:  opts.Paused,
	}, nil
}

func newStepper(opts WatchOptions) (*search.Stepper, error) {
	return search.NewStepper(opts.Grid, opts.Start, opts.Goal, search.WithHeuristic(opts.Heuristic))
}

func clampDelay(d time.Duration) time.Duration {
	return min(max(d, minStepDelay), maxStepDelay)
}

// Init starts the animation unless the viewer starts paused.
func (m WatchModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return stepCmd(m.gen, m.delay)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StepMsg:
		return m.handleStep(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		m.gen++
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.gen++
		if m.paused || m.stepper.Done() {
			return m, nil
		}
		return m, stepCmd(m.gen, m.delay)

	case key.Matches(msg, m.keys.Step):
		// A single step always leaves the viewer paused.
		if !m.paused {
			m.paused = true
			m.gen++
		}
		m.advance()
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		m.delay = clampDelay(m.delay / 2)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.delay = clampDelay(m.delay * 2)
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleStep advances the animation by one expansion.
func (m WatchModel) handleStep(msg StepMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.paused {
		return m, nil
	}
	m.advance()
	if m.stepper.Done() {
		return m, nil
	}
	return m, stepCmd(m.gen, m.delay)
}

func (m *WatchModel) advance() {
	if ev, ok := m.stepper.Step(); ok {
		m.last = &ev
	}
}

// restart discards the current run and starts a fresh one.
func (m WatchModel) restart() (tea.Model, tea.Cmd) {
	stepper, err := newStepper(m.opts)
	if err != nil {
		// The endpoints were validated by NewWatchModel.
		return m, nil
	}
	m.stepper = stepper
	m.last = nil
	m.gen++
	if m.paused {
		return m, nil
	}
	return m, stepCmd(m.gen, m.delay)
}

// Stepper returns the run being animated.
func (m WatchModel) Stepper() *search.Stepper {
	return m.stepper
}

// Paused reports whether the animation is paused.
func (m WatchModel) Paused() bool {
	return m.paused
}

// Delay returns the current delay between expansions.
func (m WatchModel) Delay() time.Duration {
	return m.delay
}

// BackToMenu returns true if the user asked for the maze picker.
func (m WatchModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.opts.Title))
	b.WriteString("\n\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.progressLine()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	if m.opts.Session != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("session " + m.opts.Session))
	}
	return b.String()
}

// renderSearch draws the grid with finalized, frontier and current cells
// and, once the goal is reached, the path.
func (m WatchModel) renderSearch() string {
	g := m.stepper.Grid()

	onPath := make(map[grid.Coord]bool)
	for _, c := range m.stepper.Path() {
		onPath[c] = true
	}
	onFrontier := make(map[grid.Coord]bool)
	for _, c := range m.stepper.FrontierCoords() {
		onFrontier[c] = true
	}

	return renderCells(g, func(c grid.Coord) (rune, lipgloss.Style) {
		switch {
		case onPath[c]:
			return grid.CellPath.Char(), m.styles.Path
		case c == m.stepper.Start():
			return grid.CellStart.Char(), m.styles.Start
		case c == m.stepper.Goal():
			return grid.CellGoal.Char(), m.styles.Goal
		case m.last != nil && c == m.last.Coord && !m.stepper.Done():
			return glyphCurrent, m.styles.Current
		case m.stepper.Finalized(c):
			return glyphFinalized, m.styles.Finalized
		case onFrontier[c]:
			return glyphFrontier, m.styles.Frontier
		}
		cell := g.At(c)
		return cell.Char(), m.styles.cellStyle(cell)
	})
}

// statusLine describes the last expansion in trace format.
func (m WatchModel) statusLine() string {
	if m.last == nil {
		return "Ready."
	}
	line := m.last.Line(m.opts.Informed)
	switch m.stepper.State() {
	case search.Succeeded:
		return fmt.Sprintf("%s\nPath found: %d moves.", line, len(m.stepper.Path())-1)
	case search.Exhausted:
		return line + "\nNo path found."
	}
	return line
}

func (m WatchModel) progressLine() string {
	state := m.stepper.State().String()
	if m.paused && !m.stepper.Done() {
		state = "paused"
	}
	return fmt.Sprintf("%s | expanded %d | frontier %d | delay %v",
		state, len(m.stepper.Expansions()), len(m.stepper.FrontierCoords()), m.delay)
}

// Run starts the Bubble Tea program with the given model.
func Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
