package search

import "container/heap"

type frontierItem struct {
	node     NodeID
	priority int
	seq      uint64
}

type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	// First inserted wins among equal priorities.
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is the open set: a min-heap of node ids keyed by
// (priority, insertion sequence). It grows without bound and accepts
// several entries for the same coordinate.
type Frontier struct {
	items frontierHeap
	seq   uint64
}

// Push inserts a node with the given priority.
func (f *Frontier) Push(id NodeID, priority int) {
	heap.Push(&f.items, frontierItem{node: id, priority: priority, seq: f.seq})
	f.seq++
}

// PopMin removes and returns the node with the smallest priority, the
// earliest inserted one on ties. ok is false when the frontier is empty.
func (f *Frontier) PopMin() (id NodeID, ok bool) {
	if len(f.items) == 0 {
		return NoNode, false
	}
	item := heap.Pop(&f.items).(frontierItem)
	return item.node, true
}

// Len returns the number of pending entries, stale duplicates included.
func (f *Frontier) Len() int {
	return len(f.items)
}

// Nodes returns the pending node ids in no particular order.
func (f *Frontier) Nodes() []NodeID {
	ids := make([]NodeID, len(f.items))
	for i, item := range f.items {
		ids[i] = item.node
	}
	return ids
}
