// Package search implements best-first path search on a grid.
//
// A single engine covers both variants of the solver:
//
//   - uniform-cost search, when the heuristic is Zero (priority = cost);
//   - A*, when an admissible heuristic such as Manhattan is supplied
//     (priority = cost + estimate).
//
// Two entry points are exposed:
//
//   - Search: run to completion and get a Result.
//   - Stepper: advance one expansion at a time to drive visualizers.
//
// The frontier keeps duplicate entries for a coordinate and discards stale
// ones lazily when they are popped. Equal priorities are resolved in
// insertion order, so a run is fully deterministic.
package search
