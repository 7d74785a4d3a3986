package search

import "github.com/vovakirdan/tui-pathfind/internal/grid"

// NodeID addresses a node inside an Arena.
type NodeID int

// NoNode marks the missing predecessor of the start node, and the missing
// terminal node of a run that found no path.
const NoNode NodeID = -1

// Node is one (coordinate, path-so-far) state of the search.
// Cost equals the parent's Cost plus one; nodes never change once added.
type Node struct {
	Coord     grid.Coord
	Cost      int
	Heuristic int
	Parent    NodeID
}

// Priority is the frontier key: cost plus heuristic estimate.
func (n Node) Priority() int {
	return n.Cost + n.Heuristic
}

// Arena owns every node created during one run. Parent links are indices
// into the arena, so the whole predecessor tree is released at once.
type Arena struct {
	nodes []Node
}

// Add stores n and returns its id.
func (a *Arena) Add(n Node) NodeID {
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

// Node returns the node with the given id.
func (a *Arena) Node(id NodeID) Node {
	return a.nodes[id]
}

// Len returns the number of nodes created so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Path follows parent links from id back to the root and returns the
// coordinates in root-to-id order. NoNode yields an empty path.
func (a *Arena) Path(id NodeID) []grid.Coord {
	var path []grid.Coord
	for cur := id; cur != NoNode; cur = a.nodes[cur].Parent {
		path = append(path, a.nodes[cur].Coord)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
