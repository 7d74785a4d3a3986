package grid

import "strings"

// Render draws the grid as text, one row per line. Every cell is written as
// its display character followed by a single space.
func Render(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*2 + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderCompact renders the grid as a single line (for hashing/comparison).
func RenderCompact(g *Grid) string {
	var sb strings.Builder
	sb.Grow(len(g.cells))
	for _, v := range g.cells {
		sb.WriteRune(v.Char())
	}
	return sb.String()
}

// FormatPath writes coordinates the way the solver reports a path:
// each "(r, c)" followed by a space.
func FormatPath(path []Coord) string {
	var sb strings.Builder
	for _, c := range path {
		sb.WriteString(c.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}
