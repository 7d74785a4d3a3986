// Package grid provides the static 2-D map searched by the path finder:
// coordinates, cell states, bounds and obstacle queries, and the display
// helpers that stamp markers and solution paths onto copies of a grid.
package grid

import "strings"

// Grid is an immutable rectangular map of cell states.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid builds a grid from rows of integer cell codes
// (0 free, 1 blocked, 2 goal, 3 start, 4 path). The input is copied.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, invalid(CodeEmptyGrid, "grid has no rows or no columns")
	}
	rows, cols := len(values), len(values[0])

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, invalid(CodeNonRectangular, "row %d has %d columns, expected %d", r, len(row), cols)
		}
		for c, v := range row {
			if v < 0 || v > int(CellPath) {
				return nil, invalid(CodeUnknownCell, "cell (%d, %d) has unknown value %d", r, c, v)
			}
			g.cells[r*cols+c] = Cell(v)
		}
	}
	return g, nil
}

// ParseRows builds a grid from text rows written in the render alphabet
// ('.', 'X' or '#', 'G', 'S', 'P'). Whitespace inside a row is ignored,
// so the output of Render parses back to the same grid.
func ParseRows(lines []string) (*Grid, error) {
	values := make([][]int, 0, len(lines))
	for r, line := range lines {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			if ch == ' ' || ch == '\t' {
				continue
			}
			cell, ok := ParseCell(ch)
			if !ok {
				return nil, invalid(CodeUnknownCell, "row %d has unknown character %q", r, ch)
			}
			row = append(row, int(cell))
		}
		values = append(values, row)
	}
	return NewGrid(values)
}

// MustParse is like ParseRows but panics on error. Intended for fixtures.
func MustParse(text string) *Grid {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	g, err := ParseRows(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index converts an in-bounds coordinate to its flat cell index.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordAt is the inverse of Index.
func (g *Grid) CoordAt(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// InBounds reports whether 0 <= row < Rows and 0 <= col < Cols.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. Out-of-bounds coordinates read as blocked.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return CellBlocked
	}
	return g.cells[g.Index(c)]
}

// IsFree reports whether c is inside the grid and does not hold the
// blocked marker. Start, goal and path markers are all traversable.
func (g *Grid) IsFree(c Coord) bool {
	return g.At(c) != CellBlocked
}

// Neighbors returns the in-bounds orthogonal neighbours of c in expansion
// order (see Dirs). Blocked neighbours are included; callers filter with IsFree.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Dirs))
	for _, d := range Dirs {
		if n := c.Step(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first coordinate in row-major order holding cell.
func (g *Grid) Find(cell Cell) (Coord, bool) {
	for i, v := range g.cells {
		if v == cell {
			return g.CoordAt(i), true
		}
	}
	return Coord{}, false
}

// FreeCount returns the number of traversable cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, v := range g.cells {
		if v != CellBlocked {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// WithMarkers returns a copy with the start and goal markers stamped at the
// given coordinates. Markers are for display only; search never reads them.
func (g *Grid) WithMarkers(start, goal Coord) *Grid {
	out := g.Clone()
	out.set(start, CellStart)
	out.set(goal, CellGoal)
	return out
}

// MarkPath returns a copy in which exactly the path coordinates hold
// CellPath. Coordinates outside the grid are ignored.
func (g *Grid) MarkPath(path []Coord) *Grid {
	out := g.Clone()
	for _, c := range path {
		out.set(c, CellPath)
	}
	return out
}

func (g *Grid) set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[g.Index(c)] = cell
	}
}
