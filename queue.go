package optics

import (
	"container/heap"
	"sort"
)

// PriorityQueue is the seed-queue collaborator used by the frontier
// expansion. It holds frontier candidates keyed by their current reachability
// estimate, smallest first. Any structure satisfying this contract can be
// substituted via Config.Queue:
//
//   - Insert adds an item at the given priority. An item is inserted at most
//     once between removals; lowering a priority is expressed as Remove then
//     Insert.
//   - Remove deletes a specific item by identity regardless of position.
//     Removing an absent item is a no-op.
//   - Ordered returns the current contents in ascending-priority order
//     without draining the queue. It must reflect all insertions and
//     removals made since the previous call: the expansion re-reads it after
//     every consumption as the frontier grows.
//   - Ties must break deterministically; the built-in queue breaks them by
//     ascending item value so that runs are reproducible.
type PriorityQueue interface {
	Insert(item int, priority float64)
	Remove(item int)
	Ordered() []int
	Len() int
}

// seedQueue is the default PriorityQueue: an indexed binary min-heap over
// (priority, item) with an item→slot map for O(log n) removal by identity.
type seedQueue struct {
	entries []seedEntry
	slot    map[int]int // item → index into entries
}

type seedEntry struct {
	item     int
	priority float64
}

// newSeedQueue returns an empty default seed queue.
func newSeedQueue() PriorityQueue {
	return &seedQueue{slot: make(map[int]int)}
}

func (q *seedQueue) Insert(item int, priority float64) {
	heap.Push((*seedHeap)(q), seedEntry{item: item, priority: priority})
}

func (q *seedQueue) Remove(item int) {
	i, ok := q.slot[item]
	if !ok {
		return
	}
	heap.Remove((*seedHeap)(q), i)
}

func (q *seedQueue) Len() int { return len(q.entries) }

// Ordered returns the queued items in ascending (priority, item) order.
// The heap itself is left untouched; the caller gets a fresh snapshot.
func (q *seedQueue) Ordered() []int {
	snapshot := make([]seedEntry, len(q.entries))
	copy(snapshot, q.entries)
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].priority != snapshot[j].priority {
			return snapshot[i].priority < snapshot[j].priority
		}
		return snapshot[i].item < snapshot[j].item
	})
	items := make([]int, len(snapshot))
	for i, e := range snapshot {
		items[i] = e.item
	}
	return items
}

// seedHeap adapts seedQueue to container/heap.
type seedHeap seedQueue

func (h *seedHeap) Len() int { return len(h.entries) }

func (h *seedHeap) Less(i, j int) bool {
	if h.entries[i].priority != h.entries[j].priority {
		return h.entries[i].priority < h.entries[j].priority
	}
	return h.entries[i].item < h.entries[j].item
}

func (h *seedHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slot[h.entries[i].item] = i
	h.slot[h.entries[j].item] = j
}

func (h *seedHeap) Push(x any) {
	e := x.(seedEntry)
	h.slot[e.item] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *seedHeap) Pop() any {
	last := len(h.entries) - 1
	e := h.entries[last]
	h.entries = h.entries[:last]
	delete(h.slot, e.item)
	return e
}
