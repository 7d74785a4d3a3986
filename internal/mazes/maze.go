// Package mazes loads grids to search from YAML maze files, either from a
// directory on disk or from the built-in set compiled into the binary.
package mazes

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Maze is a grid plus optional explicit endpoints.
type Maze struct {
	ID       string
	Name     string
	Grid     *grid.Grid
	Start    *grid.Coord // nil: use the S marker
	Goal     *grid.Coord // nil: use the G marker
	Metadata map[string]string
	FilePath string // empty for built-ins
}

// Endpoints returns the start and goal coordinates. Explicit values win;
// otherwise the first S and G markers in row-major order are used.
func (m Maze) Endpoints() (start, goal grid.Coord, err error) {
	start, err = m.endpoint("start", m.Start, grid.CellStart)
	if err != nil {
		return start, goal, err
	}
	goal, err = m.endpoint("goal", m.Goal, grid.CellGoal)
	return start, goal, err
}

func (m Maze) endpoint(what string, explicit *grid.Coord, marker grid.Cell) (grid.Coord, error) {
	if explicit != nil {
		if err := m.Grid.CheckBounds(what, *explicit); err != nil {
			return grid.Coord{}, fmt.Errorf("mazes: %s: %w", m.ID, err)
		}
		return *explicit, nil
	}
	if c, ok := m.Grid.Find(marker); ok {
		return c, nil
	}
	return grid.Coord{}, fmt.Errorf("mazes: %s: no %s given and no %c marker in grid", m.ID, what, marker.Char())
}

// Display returns the grid with start and goal markers stamped on it.
func (m Maze) Display(start, goal grid.Coord) *grid.Grid {
	return m.Grid.WithMarkers(start, goal)
}
