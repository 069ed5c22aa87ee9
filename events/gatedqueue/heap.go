/*
Copyright 2026 The EventGate Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package gatedqueue

import (
	"container/heap"
)

// entry is a record in the ready queue or in a deferred bucket.
// seq is assigned on submission and kept when the record moves between containers.
type entry[E comparable, D any] struct {
	record Record[E, D]
	seq    uint64
}

// recordHeap implements heap.Interface.
// Higher priorities come first; equal priorities are ordered by submission (FIFO).
type recordHeap[E comparable, D any] []*entry[E, D]

func (h recordHeap[E, D]) Len() int {
	return len(h)
}

func (h recordHeap[E, D]) Less(i, j int) bool {
	if c := h[i].record.priority.Compare(h[j].record.priority); c != 0 {
		return c > 0
	}
	return h[i].seq < h[j].seq
}

func (h recordHeap[E, D]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *recordHeap[E, D]) Push(x any) {
	*h = append(*h, x.(*entry[E, D]))
}

func (h *recordHeap[E, D]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// pushEntry adds e to the heap.
func (h *recordHeap[E, D]) pushEntry(e *entry[E, D]) {
	heap.Push(h, e)
}

// popEntry removes and returns the first entry, or nil if the heap is empty.
func (h *recordHeap[E, D]) popEntry() *entry[E, D] {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*entry[E, D])
}
