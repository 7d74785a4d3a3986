package grid

// Cell is the state stored at one grid position.
// The numeric values are the encoding used by maze files.
type Cell uint8

const (
	CellFree    Cell = 0
	CellBlocked Cell = 1
	CellGoal    Cell = 2
	CellStart   Cell = 3
	CellPath    Cell = 4
)

// Valid reports whether c is one of the known cell states.
func (c Cell) Valid() bool {
	return c <= CellPath
}

// Char returns the single-character display form of the cell.
func (c Cell) Char() rune {
	switch c {
	case CellPath:
		return 'P'
	case CellBlocked:
		return 'X'
	case CellGoal:
		return 'G'
	case CellStart:
		return 'S'
	default:
		return '.'
	}
}

// String returns a readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case CellFree:
		return "free"
	case CellBlocked:
		return "blocked"
	case CellGoal:
		return "goal"
	case CellStart:
		return "start"
	case CellPath:
		return "path"
	}
	return "unknown"
}

// ParseCell converts a display character back into a cell state.
// '#' is accepted as an alternative spelling of a blocked cell.
func ParseCell(r rune) (Cell, bool) {
	switch r {
	case '.':
		return CellFree, true
	case 'X', 'x', '#':
		return CellBlocked, true
	case 'G', 'g':
		return CellGoal, true
	case 'S', 's':
		return CellStart, true
	case 'P', 'p':
		return CellPath, true
	}
	return CellFree, false
}
