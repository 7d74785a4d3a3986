package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Glyphs used by the viewer on top of the grid alphabet.
const (
	glyphFinalized = '*'
	glyphFrontier  = '+'
	glyphCurrent   = '@'
)

// Styles holds the lipgloss styles for every kind of cell the grid and
// the viewer draw.
type Styles struct {
	Free      lipgloss.Style
	Blocked   lipgloss.Style
	Start     lipgloss.Style
	Goal      lipgloss.Style
	Path      lipgloss.Style
	Finalized lipgloss.Style
	Frontier  lipgloss.Style
	Current   lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds the styles on the given renderer. A nil renderer uses
// lipgloss's default one.
func NewStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		Free:      r.NewStyle().Foreground(lipgloss.Color("245")),
		Blocked:   r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")),
		Start:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Goal:      r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Path:      r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Finalized: r.NewStyle().Foreground(lipgloss.Color("6")),
		Frontier:  r.NewStyle().Foreground(lipgloss.Color("13")),
		Current:   r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),

		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status: r.NewStyle().Foreground(lipgloss.Color("7")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// cellStyle returns the style for a plain grid cell.
func (s *Styles) cellStyle(c grid.Cell) lipgloss.Style {
	switch c {
	case grid.CellBlocked:
		return s.Blocked
	case grid.CellStart:
		return s.Start
	case grid.CellGoal:
		return s.Goal
	case grid.CellPath:
		return s.Path
	default:
		return s.Free
	}
}

// RenderGrid renders g in the same layout as grid.Render. With nil styles
// the output is identical to grid.Render.
func RenderGrid(g *grid.Grid, styles *Styles) string {
	if styles == nil {
		return grid.Render(g)
	}
	return renderCells(g, func(c grid.Coord) (rune, lipgloss.Style) {
		cell := g.At(c)
		return cell.Char(), styles.cellStyle(cell)
	})
}

// renderCells lays out one glyph per cell, each followed by a space,
// one row per line.
func renderCells(g *grid.Grid, cell func(grid.Coord) (rune, lipgloss.Style)) string {
	var sb strings.Builder
	sb.Grow(g.Len()*2 + g.Rows())

	for r := range g.Rows() {
		for c := range g.Cols() {
			ch, style := cell(grid.C(r, c))
			sb.WriteString(style.Render(string(ch)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
