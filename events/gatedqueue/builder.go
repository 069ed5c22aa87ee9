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
	"fmt"
	"time"

	"github.com/eventgate/kit/ptr"
)

// Builder configures a single record before it's submitted.
// A Builder is not safe for concurrent use.
type Builder[E comparable, D any] struct {
	queue  *Queue[E, D]
	record Record[E, D]
}

// NewRecord starts the configuration of a record for event, carrying data.
// The record has the queue's default priority and lifespan until changed.
func (q *Queue[E, D]) NewRecord(event E, data D) *Builder[E, D] {
	return &Builder[E, D]{
		queue: q,
		record: Record[E, D]{
			event:    event,
			data:     data,
			priority: q.defaultPriority,
			lifespan: q.defaultLifespan,
		},
	}
}

// WithPriority sets the priority of the record.
// Values that aren't a declared priority are replaced with PriorityNormal.
func (b *Builder[E, D]) WithPriority(p Priority) *Builder[E, D] {
	if !p.Valid() {
		p = PriorityNormal
	}
	b.record.priority = p
	return b
}

// WithLifespan sets how long the record stays deliverable after it's built.
// Zero means it never expires; negative values are treated as zero.
func (b *Builder[E, D]) WithLifespan(d time.Duration) *Builder[E, D] {
	b.record.lifespan = max(d, 0)
	return b
}

// DeferUntil holds the record back until a record for event has been delivered.
// It panics with ErrSelfDefer if event is the record's own event.
func (b *Builder[E, D]) DeferUntil(event E) *Builder[E, D] {
	if event == b.record.event {
		panic(fmt.Errorf("%w: %v", ErrSelfDefer, event))
	}
	b.record.deferUntil = ptr.Of(event)
	return b
}

// DependsOn requires the capability id to be registered for the record to be delivered.
// A nil id clears the dependency. It panics with ErrInvalidCapability if id is not comparable.
func (b *Builder[E, D]) DependsOn(id CapabilityID) *Builder[E, D] {
	mustBeComparable(id)
	b.record.dependsOn = id
	return b
}

// Build returns the configured record, stamped with the queue's current time.
func (b *Builder[E, D]) Build() Record[E, D] {
	r := b.record
	r.createdAt = b.queue.clock.Now()
	return r
}

// Submit builds the record and adds it to the queue.
// If the queue is closed, the record is silently discarded.
func (b *Builder[E, D]) Submit() {
	b.queue.submit(b.Build())
}
