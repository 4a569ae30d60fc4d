package lmcut

import "container/heap"

// bucketQueue is the adaptive priority queue used by the relaxed
// exploration engine: it starts as an array of buckets indexed by integer
// key and promotes to a binary heap once the key range grows past
// bucketPromoteThreshold buckets, per spec.md §9's "adaptive priority queue"
// design note. Virtual pushes (pushVirtual) let incremental re-exploration
// record work that didn't need a real queue entry without counting toward
// the promotion threshold, so a burst of no-op relaxations doesn't
// prematurely force a heap.
type bucketQueue struct {
	buckets [][]int // buckets[key-base] = stack of proposition ids
	base    int     // absolute key of buckets[0]; buckets grows as keys arrive
	front   int     // index of the first bucket that may still hold entries

	promoted bool
	h        propHeap

	realPushes    int
	virtualPushes int
}

const bucketPromoteThreshold = 4096

func newBucketQueue() *bucketQueue {
	return &bucketQueue{}
}

// pushVirtual records a push-equivalent unit of work that produced no queue
// entry (e.g. a relaxation attempt that did not strictly improve a cost),
// keeping the promotion decision based on real, useful pushes only.
func (q *bucketQueue) pushVirtual() {
	q.virtualPushes++
}

func (q *bucketQueue) push(key, propID int) {
	q.realPushes++
	if q.promoted {
		heap.Push(&q.h, heapItem{key: key, propID: propID})
		return
	}

	if len(q.buckets) == 0 {
		q.base = key
	}
	if key < q.base {
		// Grow backward: shift is rare (keys only decrease during
		// incremental re-exploration after a cost cut) — reinsert via
		// prepend.
		shift := q.base - key
		grown := make([][]int, shift+len(q.buckets))
		copy(grown[shift:], q.buckets)
		q.buckets = grown
		q.base = key
	}
	idx := key - q.base
	for idx >= len(q.buckets) {
		q.buckets = append(q.buckets, nil)
	}
	q.buckets[idx] = append(q.buckets[idx], propID)

	if len(q.buckets) > bucketPromoteThreshold && q.realPushes > 2*q.virtualPushes {
		q.promoteToHeap()
	}
}

func (q *bucketQueue) promoteToHeap() {
	q.promoted = true
	q.h = q.h[:0]
	for offset, bucket := range q.buckets {
		for _, propID := range bucket {
			q.h = append(q.h, heapItem{key: q.base + offset, propID: propID})
		}
	}
	heap.Init(&q.h)
	q.buckets = nil
}

// popMin returns the lowest-key entry, or ok=false if the queue is empty.
func (q *bucketQueue) popMin() (key, propID int, ok bool) {
	if q.promoted {
		if q.h.Len() == 0 {
			return 0, 0, false
		}
		item := heap.Pop(&q.h).(heapItem)
		return item.key, item.propID, true
	}

	for q.front < len(q.buckets) {
		bucket := q.buckets[q.front]
		if len(bucket) == 0 {
			q.front++
			continue
		}
		propID := bucket[len(bucket)-1]
		q.buckets[q.front] = bucket[:len(bucket)-1]
		return q.base + q.front, propID, true
	}
	return 0, 0, false
}

type heapItem struct {
	key    int
	propID int
}

type propHeap []heapItem

func (h propHeap) Len() int            { return len(h) }
func (h propHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h propHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *propHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *propHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
