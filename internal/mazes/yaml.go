package mazes

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// YAMLMaze represents the YAML structure of a maze file.
// Exactly one of Cells and Rows must be set.
type YAMLMaze struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Start    []int             `yaml:"start,omitempty"` // [row, col]
	Goal     []int             `yaml:"goal,omitempty"`  // [row, col]
	Cells    [][]int           `yaml:"cells,omitempty"` // 0 free, 1 blocked, 2 goal, 3 start
	Rows     []string          `yaml:"rows,omitempty"`  // ". X G S" alphabet
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Parse parses a YAML maze file.
func Parse(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, errors.New("maze has no id")
	}

	var (
		g   *grid.Grid
		err error
	)
	switch {
	case len(ym.Cells) > 0 && len(ym.Rows) > 0:
		return Maze{}, fmt.Errorf("maze %s: cells and rows are mutually exclusive", ym.ID)
	case len(ym.Rows) > 0:
		g, err = grid.ParseRows(ym.Rows)
	default:
		g, err = grid.NewGrid(ym.Cells)
	}
	if err != nil {
		return Maze{}, fmt.Errorf("maze %s: %w", ym.ID, err)
	}

	m := Maze{
		ID:       ym.ID,
		Name:     ym.Name,
		Grid:     g,
		Metadata: ym.Metadata,
	}
	if m.Name == "" {
		m.Name = ym.ID
	}
	if m.Start, err = parseCoord("start", ym.Start); err != nil {
		return Maze{}, fmt.Errorf("maze %s: %w", ym.ID, err)
	}
	if m.Goal, err = parseCoord("goal", ym.Goal); err != nil {
		return Maze{}, fmt.Errorf("maze %s: %w", ym.ID, err)
	}
	return m, nil
}

func parseCoord(what string, v []int) (*grid.Coord, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 2:
		c := grid.C(v[0], v[1])
		return &c, nil
	}
	return nil, fmt.Errorf("%s must be [row, col], got %v", what, v)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
