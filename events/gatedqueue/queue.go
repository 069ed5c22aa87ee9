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
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	kclock "k8s.io/utils/clock"

	"github.com/eventgate/kit/logger"
)

var (
	// ErrNilProcessor is returned by New when no processor is given.
	ErrNilProcessor = errors.New("processor is nil")

	// ErrSelfDefer is the panic value when a record is deferred until its own event.
	ErrSelfDefer = errors.New("cannot defer a record until its own event")

	// ErrInvalidCapability is the panic value when a capability id can't be compared.
	ErrInvalidCapability = errors.New("capability id is not comparable")

	// ErrNotConsumer is the panic value when records are dequeued by anything other than the queue's worker.
	ErrNotConsumer = errors.New("records can only be dequeued by the queue's worker")
)

// dequeueResult is the outcome of a single dequeueNext call.
type dequeueResult uint8

const (
	// resultEmpty means the ready queue is empty.
	resultEmpty dequeueResult = iota
	// resultSkipped means a record was dropped or deferred; the caller should try again.
	resultSkipped
	// resultAccepted means a record was accepted for delivery.
	resultAccepted
)

// Queue is a prioritized event queue with a single consumer.
// E is the event type, D the payload type.
type Queue[E comparable, D any] struct {
	log             logger.Logger
	clock           kclock.PassiveClock
	defaultPriority Priority
	defaultLifespan time.Duration

	// All fields below are guarded by lock.
	lock         sync.Mutex
	cond         *sync.Cond
	ready        recordHeap[E, D]
	deferred     map[E]*recordHeap[E, D]
	seen         map[E]struct{}
	capabilities map[CapabilityID]struct{}
	seq          uint64

	closed   atomic.Bool
	consumer *worker[E, D]
	wg       sync.WaitGroup
	counters *counters
}

// New returns a new Queue and starts its worker.
// processor is invoked on the worker goroutine for every record accepted for delivery.
func New[E comparable, D any](processor Processor[E, D], opts Options) (*Queue[E, D], error) {
	if processor == nil {
		return nil, ErrNilProcessor
	}

	q := newQueue[E, D](opts)
	q.consumer = &worker[E, D]{
		queue:     q,
		processor: processor,
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.consumer.run()
	}()

	return q, nil
}

// newQueue returns a Queue with no worker.
func newQueue[E comparable, D any](opts Options) *Queue[E, D] {
	opts.setDefaults()

	q := &Queue[E, D]{
		log:             opts.Logger,
		clock:           opts.Clock,
		defaultPriority: opts.DefaultPriority,
		defaultLifespan: opts.DefaultLifespan,
		deferred:        make(map[E]*recordHeap[E, D]),
		seen:            make(map[E]struct{}),
		capabilities:    make(map[CapabilityID]struct{}),
		counters:        newCounters(),
	}
	q.cond = sync.NewCond(&q.lock)
	return q
}

// RegisterCapability marks id as available. Registering an id more than once has no further effect.
// It panics with ErrInvalidCapability if id is not comparable.
func (q *Queue[E, D]) RegisterCapability(id CapabilityID) {
	mustBeComparable(id)

	q.lock.Lock()
	defer q.lock.Unlock()

	if _, ok := q.capabilities[id]; ok {
		return
	}
	q.capabilities[id] = struct{}{}
	q.log.Debugf("Capability registered: %v", id)
}

// DeregisterCapability marks id as unavailable. Deregistering an unknown id is a no-op.
func (q *Queue[E, D]) DeregisterCapability(id CapabilityID) {
	mustBeComparable(id)

	q.lock.Lock()
	defer q.lock.Unlock()

	if _, ok := q.capabilities[id]; !ok {
		return
	}
	delete(q.capabilities, id)
	q.log.Debugf("Capability deregistered: %v", id)
}

// HasCapability returns true if id is currently registered.
func (q *Queue[E, D]) HasCapability(id CapabilityID) bool {
	mustBeComparable(id)

	q.lock.Lock()
	defer q.lock.Unlock()

	_, ok := q.capabilities[id]
	return ok
}

// Close stops the worker and discards every record still queued.
// If the processor implements io.Closer, it is closed before waiting for the worker, so a
// delivery in progress can be interrupted; its error is returned.
// This method blocks until the worker returns, so it must not be invoked from the processor.
// Records submitted after Close are ignored.
func (q *Queue[E, D]) Close() error {
	defer q.wg.Wait()

	if !q.shutdown() {
		return nil
	}

	if q.consumer == nil {
		return nil
	}
	if closer, ok := q.consumer.processor.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return fmt.Errorf("failed to close processor: %w", err)
		}
	}

	return nil
}

// shutdown marks the queue as closed, discards the queued records and wakes the worker.
// It returns false if the queue was already closed.
func (q *Queue[E, D]) shutdown() bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	if !q.closed.CompareAndSwap(false, true) {
		return false
	}

	discarded := q.ready.Len()
	for _, bucket := range q.deferred {
		discarded += bucket.Len()
	}
	q.ready = nil
	clear(q.deferred)

	// Wake the worker so it observes the closed flag
	q.cond.Broadcast()
	q.log.Infof("Queue closed, %d queued records discarded", discarded)

	return true
}

// submit inserts a record in the ready queue and wakes the worker.
func (q *Queue[E, D]) submit(r Record[E, D]) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.closed.Load() {
		q.log.Debugf("Queue is closed, ignoring %s", r)
		return
	}

	q.seq++
	q.ready.pushEntry(&entry[E, D]{
		record: r,
		seq:    q.seq,
	})
	q.counters.add(outcomeSubmitted)
	q.log.Verbosef("Submitted %s", r)

	q.cond.Signal()
}

// dequeueNext pops the highest-priority ready record and decides its fate.
// Only the queue's worker may call this; any other caller is a programming error and panics.
func (q *Queue[E, D]) dequeueNext(w *worker[E, D]) (Record[E, D], dequeueResult) {
	var zero Record[E, D]

	if w == nil || w != q.consumer {
		panic(ErrNotConsumer)
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	e := q.ready.popEntry()
	if e == nil {
		return zero, resultEmpty
	}
	r := e.record

	if r.Expired(q.clock.Now()) {
		q.counters.add(outcomeExpired)
		q.log.Infof("Dropping expired %s", r)
		return zero, resultSkipped
	}

	if !q.capabilityAvailable(r) {
		q.counters.add(outcomeUnavailable)
		q.log.Infof("Dropping %s: capability is not registered", r)
		return zero, resultSkipped
	}

	if ev, ok := r.DeferUntil(); ok {
		if _, seen := q.seen[ev]; !seen {
			bucket, ok := q.deferred[ev]
			if !ok {
				bucket = &recordHeap[E, D]{}
				q.deferred[ev] = bucket
			}
			bucket.pushEntry(e)
			q.counters.add(outcomeDeferred)
			q.log.Debugf("Deferring %s until %v is delivered", r, ev)
			return zero, resultSkipped
		}
	}

	q.seen[r.event] = struct{}{}
	if bucket, ok := q.deferred[r.event]; ok {
		// Release the whole bucket at once, while still holding the lock
		for _, be := range *bucket {
			q.ready.pushEntry(be)
		}
		delete(q.deferred, r.event)
		q.counters.addN(outcomeReleased, int64(bucket.Len()))
		q.log.Debugf("Released %d records deferred until %v", bucket.Len(), r.event)
	}

	q.counters.add(outcomeAccepted)
	q.log.Debugf("Accepted %s", r)
	return r, resultAccepted
}

// capabilityAvailable reports whether the record's dependency allows it to proceed.
// A record with an unregistered dependency can still proceed through its defer path,
// unless a bucket for its defer target already exists.
// This must be invoked while the caller holds the lock.
func (q *Queue[E, D]) capabilityAvailable(r Record[E, D]) bool {
	id, ok := r.DependsOn()
	if !ok {
		return true
	}
	if _, registered := q.capabilities[id]; registered {
		return true
	}
	ev, ok := r.DeferUntil()
	if !ok {
		return false
	}
	_, exists := q.deferred[ev]
	return !exists
}

// waitForWork blocks until the ready queue has records or the queue is closed.
// It returns false if the queue is closed.
// The emptiness check and the wait happen under the same lock, so a submission can't be missed.
func (q *Queue[E, D]) waitForWork() bool {
	q.lock.Lock()
	defer q.lock.Unlock()

	for q.ready.Len() == 0 && !q.closed.Load() {
		q.log.Verbose("Worker waiting for records")
		q.cond.Wait()
		if q.ready.Len() == 0 && !q.closed.Load() {
			q.log.Verbose("Worker woke up with no records ready")
		}
	}

	return !q.closed.Load()
}

// mustBeComparable panics with ErrInvalidCapability if id can't be used as a map key.
func mustBeComparable(id CapabilityID) {
	if id != nil && !reflect.TypeOf(id).Comparable() {
		panic(fmt.Errorf("%w: %T", ErrInvalidCapability, id))
	}
}
