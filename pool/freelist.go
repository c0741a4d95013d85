package pool

import "container/heap"

// freeList is the free-slot registry: a min-heap of retired handles so the
// smallest one is reused first, keeping the live handle range compact.
type freeList struct {
	h handleHeap
}

func (f *freeList) push(h Handle) {
	heap.Push(&f.h, h)
}

func (f *freeList) pop() (Handle, bool) {
	if len(f.h) == 0 {
		return 0, false
	}
	return heap.Pop(&f.h).(Handle), true
}

func (f *freeList) len() int {
	return len(f.h)
}

type handleHeap []Handle

func (h handleHeap) Len() int           { return len(h) }
func (h handleHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h handleHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *handleHeap) Push(x any) {
	*h = append(*h, x.(Handle))
}

func (h *handleHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
