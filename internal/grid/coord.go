package grid

import "fmt"

// Coord addresses a cell by row and column. Row increases downward.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats the coordinate the way search traces print it: "(r, c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the coordinate one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// Chebyshev returns the Chebyshev distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir is one of the four orthogonal moves.
type Dir uint8

// Neighbor expansion order. The labels follow the historical naming of the
// maze solver this tool reproduces: "west" moves one row up and "north" one
// column left. Output is defined by this order, so it must not change.
const (
	DirWest Dir = iota
	DirNorth
	DirEast
	DirSouth
)

// Dirs lists the directions in expansion order.
var Dirs = [4]Dir{DirWest, DirNorth, DirEast, DirSouth}

// Delta returns the (row, col) offset of the direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirWest:
		return -1, 0
	case DirNorth:
		return 0, -1
	case DirEast:
		return 0, 1
	case DirSouth:
		return 1, 0
	}
	return 0, 0
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirWest:
		return "west"
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	}
	return "unknown"
}
