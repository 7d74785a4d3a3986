package search

import (
	"fmt"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// State is the lifecycle state of a run.
type State int

const (
	Running State = iota
	Succeeded
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Event describes one expansion: a node popped with minimum priority whose
// coordinate was not finalized yet.
type Event struct {
	Level      int // zero-based count of expansions before this one
	Node       NodeID
	Coord      grid.Coord
	Cost       int
	Heuristic  int
	Discovered []grid.Coord // successors pushed by this expansion, in push order
	Goal       bool
}

// Line formats the event as a trace line. The heuristic column is only
// printed for informed searches.
func (e Event) Line(informed bool) string {
	if informed {
		return fmt.Sprintf("Level: %d, Position: %v, Cost: %d, Heuristic: %d", e.Level, e.Coord, e.Cost, e.Heuristic)
	}
	return fmt.Sprintf("Level: %d, Position: %v, Cost: %d", e.Level, e.Coord, e.Cost)
}

// Stepper runs the search one expansion at a time.
// It is not safe for concurrent use.
type Stepper struct {
	grid      *grid.Grid
	start     grid.Coord
	goal      grid.Coord
	heuristic Heuristic
	observer  func(Event)

	arena     Arena
	frontier  Frontier
	finalized []bool
	events    []Event
	discarded int

	state    State
	terminal NodeID
}

// NewStepper validates the endpoints and seeds the frontier with the start
// node. A blocked start is searched from anyway; a blocked goal simply
// cannot be reached.
func NewStepper(g *grid.Grid, start, goal grid.Coord, options ...Option) (*Stepper, error) {
	if err := g.CheckBounds("start", start); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if err := g.CheckBounds("goal", goal); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	opts := newOptions(options)
	s := &Stepper{
		grid:      g,
		start:     start,
		goal:      goal,
		heuristic: opts.heuristic,
		observer:  opts.observer,
		finalized: make([]bool, g.Len()),
		state:     Running,
		terminal:  NoNode,
	}

	root := s.arena.Add(Node{
		Coord:     start,
		Cost:      0,
		Heuristic: s.heuristic(start, goal),
		Parent:    NoNode,
	})
	s.frontier.Push(root, s.arena.Node(root).Priority())
	return s, nil
}

// Step advances the search to its next expansion and returns it.
// Stale frontier entries popped on the way are discarded silently.
// ok is false once the run has terminated and nothing was expanded.
func (s *Stepper) Step() (ev Event, ok bool) {
	for s.state == Running {
		id, more := s.frontier.PopMin()
		if !more {
			s.state = Exhausted
			return Event{}, false
		}

		node := s.arena.Node(id)
		idx := s.grid.Index(node.Coord)
		if s.finalized[idx] {
			s.discarded++
			continue
		}
		s.finalized[idx] = true

		ev = Event{
			Level:     len(s.events),
			Node:      id,
			Coord:     node.Coord,
			Cost:      node.Cost,
			Heuristic: node.Heuristic,
		}

		if node.Coord == s.goal {
			ev.Goal = true
			s.state = Succeeded
			s.terminal = id
		} else {
			ev.Discovered = s.expand(id, node)
		}

		s.events = append(s.events, ev)
		if s.observer != nil {
			s.observer(ev)
		}
		return ev, true
	}
	return Event{}, false
}

// expand pushes every free, non-finalized neighbour of node.
func (s *Stepper) expand(id NodeID, node Node) []grid.Coord {
	var discovered []grid.Coord
	for _, next := range s.grid.Neighbors(node.Coord) {
		if s.finalized[s.grid.Index(next)] || !s.grid.IsFree(next) {
			continue
		}
		child := s.arena.Add(Node{
			Coord:     next,
			Cost:      node.Cost + 1,
			Heuristic: s.heuristic(next, s.goal),
			Parent:    id,
		})
		s.frontier.Push(child, s.arena.Node(child).Priority())
		discovered = append(discovered, next)
	}
	return discovered
}

// Run steps until the search terminates.
func (s *Stepper) Run() {
	for s.state == Running {
		s.Step()
	}
}

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.state }

// Done reports whether the run has terminated.
func (s *Stepper) Done() bool { return s.state != Running }

// Grid returns the grid being searched.
func (s *Stepper) Grid() *grid.Grid { return s.grid }

// Start returns the start coordinate.
func (s *Stepper) Start() grid.Coord { return s.start }

// Goal returns the goal coordinate.
func (s *Stepper) Goal() grid.Coord { return s.goal }

// Terminal returns the goal node once the run has succeeded, NoNode otherwise.
func (s *Stepper) Terminal() NodeID { return s.terminal }

// Expansions returns every expansion so far, in order. The slice is shared.
func (s *Stepper) Expansions() []Event { return s.events }

// Discarded returns how many stale frontier entries were dropped.
func (s *Stepper) Discarded() int { return s.discarded }

// Nodes returns how many nodes the run has created.
func (s *Stepper) Nodes() int { return s.arena.Len() }

// Finalized reports whether c has been expanded.
func (s *Stepper) Finalized(c grid.Coord) bool {
	return s.grid.InBounds(c) && s.finalized[s.grid.Index(c)]
}

// FrontierCoords returns the distinct coordinates still waiting in the
// frontier that have not been finalized.
func (s *Stepper) FrontierCoords() []grid.Coord {
	seen := make(map[grid.Coord]bool)
	var coords []grid.Coord
	for _, id := range s.frontier.Nodes() {
		c := s.arena.Node(id).Coord
		if seen[c] || s.Finalized(c) {
			continue
		}
		seen[c] = true
		coords = append(coords, c)
	}
	return coords
}

// Path returns the start-to-goal path, or nil if the goal has not been
// reached.
func (s *Stepper) Path() []grid.Coord {
	return s.arena.Path(s.terminal)
}

// PathTo returns the path leading to the node expanded in ev.
func (s *Stepper) PathTo(ev Event) []grid.Coord {
	return s.arena.Path(ev.Node)
}

// Result summarizes the run in its current state.
func (s *Stepper) Result() Result {
	r := Result{
		State:      s.state,
		Found:      s.state == Succeeded,
		Terminal:   s.terminal,
		Expansions: s.events,
		Nodes:      s.arena.Len(),
		Discarded:  s.discarded,
	}
	if r.Found {
		r.Path = s.Path()
		r.Cost = s.arena.Node(s.terminal).Cost
	}
	return r
}
