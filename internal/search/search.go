package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// ErrBudgetExceeded is returned when a run hits its expansion budget
// before terminating.
var ErrBudgetExceeded = errors.New("expansion budget exceeded")

// Result contains the outcome of a search.
type Result struct {
	Path       []grid.Coord // start to goal, empty when not found
	Cost       int          // number of moves along Path
	Found      bool
	State      State
	Terminal   NodeID
	Expansions []Event
	Nodes      int // nodes created
	Discarded  int // stale frontier entries dropped
}

// Finalized returns the set of expanded coordinates.
func (r Result) Finalized() map[grid.Coord]bool {
	set := make(map[grid.Coord]bool, len(r.Expansions))
	for _, ev := range r.Expansions {
		set[ev.Coord] = true
	}
	return set
}

// Options defines parameters for a run.
type Options struct {
	heuristic     Heuristic
	observer      func(Event)
	maxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic sets the heuristic. Nil selects Zero.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.heuristic = h }
}

// WithObserver registers a callback invoked after every expansion.
func WithObserver(fn func(Event)) Option {
	return func(o *Options) { o.observer = fn }
}

// WithMaxExpansions bounds the number of expansions Search may perform.
// Zero or negative means unbounded.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.maxExpansions = n }
}

func newOptions(options []Option) Options {
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	if opts.heuristic == nil {
		opts.heuristic = Zero
	}
	return opts
}

// Search runs a best-first search from start to goal to completion.
// Not finding a path is a normal outcome: Found is false and err is nil.
// Errors are reserved for invalid input, cancellation and budget overrun;
// in the latter two cases the partial Result is returned as well.
func Search(ctx context.Context, g *grid.Grid, start, goal grid.Coord, options ...Option) (Result, error) {
	stepper, err := NewStepper(g, start, goal, options...)
	if err != nil {
		return Result{Terminal: NoNode}, err
	}
	budget := newOptions(options).maxExpansions

	for !stepper.Done() {
		if err := ctx.Err(); err != nil {
			return stepper.Result(), err
		}
		if budget > 0 && len(stepper.Expansions()) >= budget {
			return stepper.Result(), fmt.Errorf("search: %w after %d expansions", ErrBudgetExceeded, budget)
		}
		stepper.Step()
	}
	return stepper.Result(), nil
}
