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
	"github.com/eventgate/kit/concurrency"
)

type outcome uint8

const (
	outcomeSubmitted outcome = iota
	outcomeAccepted
	outcomeExpired
	outcomeUnavailable
	outcomeDeferred
	outcomeReleased
)

// counters tracks how records moved through the queue.
type counters struct {
	m concurrency.AtomicMap[outcome, int64]
}

func newCounters() *counters {
	return &counters{
		m: concurrency.NewAtomicMap[outcome, int64](),
	}
}

func (c *counters) add(o outcome) {
	c.addN(o, 1)
}

func (c *counters) addN(o outcome, n int64) {
	c.m.GetOrCreate(o, 0).Add(n)
}

func (c *counters) get(o outcome) int64 {
	v, ok := c.m.Get(o)
	if !ok {
		return 0
	}
	return v.Load()
}

// Stats is a snapshot of a Queue's counters.
type Stats struct {
	// Submitted is the number of records submitted while the queue was open.
	Submitted int64
	// Accepted is the number of records handed to the processor.
	Accepted int64
	// Expired is the number of records dropped because their lifespan elapsed.
	Expired int64
	// Unavailable is the number of records dropped because their capability wasn't registered.
	Unavailable int64
	// Deferred counts every time a record was moved into a deferred bucket.
	Deferred int64
	// Released counts every record moved back from a deferred bucket to the ready queue.
	Released int64

	// Ready is the number of records currently in the ready queue.
	Ready int
	// Waiting is the number of records currently held in deferred buckets.
	Waiting int
}

// Dropped returns the number of records discarded without delivery.
func (s Stats) Dropped() int64 {
	return s.Expired + s.Unavailable
}

// Stats returns a snapshot of the queue's counters.
func (q *Queue[E, D]) Stats() Stats {
	q.lock.Lock()
	defer q.lock.Unlock()

	s := Stats{
		Submitted:   q.counters.get(outcomeSubmitted),
		Accepted:    q.counters.get(outcomeAccepted),
		Expired:     q.counters.get(outcomeExpired),
		Unavailable: q.counters.get(outcomeUnavailable),
		Deferred:    q.counters.get(outcomeDeferred),
		Released:    q.counters.get(outcomeReleased),
		Ready:       q.ready.Len(),
	}
	for _, bucket := range q.deferred {
		s.Waiting += bucket.Len()
	}
	return s
}
