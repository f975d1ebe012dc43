package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// entry is one frontier record. seq is the insertion counter used to break
// f ties in favor of the earliest push.
type entry struct {
	pos gridgraph.Position
	f   int
	seq int
}

// frontier is a min-heap of *entry ordered by (f, seq).
// Entries may go stale when a cell's score improves while it waits;
// they are popped and expanded like any other entry.
type frontier []*entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f ascending, then by seq ascending.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be *entry. Called by heap.Push.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*entry)) }

// Pop removes the last entry. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
