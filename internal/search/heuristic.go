package search

import "github.com/vovakirdan/tui-pathfind/internal/grid"

// Heuristic estimates the remaining cost from a to b. It must be
// non-negative, and must never overestimate for results to be optimal.
type Heuristic func(a, b grid.Coord) int

// Zero is the constant-zero heuristic; it turns the engine into plain
// uniform-cost search.
func Zero(_, _ grid.Coord) int { return 0 }

// Manhattan is |Δrow| + |Δcol|, exact on an empty 4-connected grid.
func Manhattan(a, b grid.Coord) int { return a.Manhattan(b) }

// Chebyshev is max(|Δrow|, |Δcol|). It never exceeds Manhattan, so it is
// admissible here too, just less informed.
func Chebyshev(a, b grid.Coord) int { return a.Chebyshev(b) }
