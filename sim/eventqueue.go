// Package sim: the unified scheduling queue of the single-list engine.
package sim

import (
	"container/heap"

	"github.com/katalvlaran/gatesim/logic"
)

// Queue phases. Updates at time t always pop before evaluations at time
// t — the sub-marker ordering that keeps same-time semantics coherent.
const (
	phaseUpdate uint8 = iota
	phaseEval
)

// queueItem is one scheduled action: a net update (phaseUpdate, net+val)
// or a gate evaluation (phaseEval, gate). The sequence number breaks ties
// deterministically and keys the invalidation side table.
type queueItem struct {
	time  int
	phase uint8
	seq   int64
	net   int
	val   logic.Value
	gate  int
}

// itemHeap implements heap.Interface over queueItems keyed
// (time, phase, seq).
type itemHeap []queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	if h[i].phase != h[j].phase {
		return h[i].phase < h[j].phase
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(queueItem)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// eventQueue wraps the heap with a monotonic sequence counter.
type eventQueue struct {
	h   itemHeap
	seq int64
}

// len returns the number of scheduled items.
func (q *eventQueue) len() int { return q.h.Len() }

// push schedules an item and returns its assigned sequence number.
func (q *eventQueue) push(it queueItem) int64 {
	it.seq = q.seq
	q.seq++
	heap.Push(&q.h, it)

	return it.seq
}

// pop removes and returns the item with the smallest (time, phase, seq).
func (q *eventQueue) pop() queueItem {
	return heap.Pop(&q.h).(queueItem)
}
