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
	"reflect"
	"strings"
	"time"
)

// CapabilityID identifies an external precondition a record can depend on.
// Any comparable value can be used; non-comparable values panic with ErrInvalidCapability where they are passed in.
type CapabilityID = any

// CapabilityOf returns a capability identifier for the type T.
// This is convenient for plugin architectures, where a plugin registers its own type once it's loaded.
func CapabilityOf[T any]() CapabilityID {
	return reflect.TypeFor[T]()
}

// Record is an immutable item in the queue.
// Records are created with a Builder, obtained from Queue.NewRecord.
type Record[E comparable, D any] struct {
	event      E
	data       D
	priority   Priority
	deferUntil *E
	dependsOn  CapabilityID
	createdAt  time.Time
	lifespan   time.Duration
}

// Event returns the event the record represents.
func (r Record[E, D]) Event() E {
	return r.event
}

// Data returns the payload handed to the processor.
func (r Record[E, D]) Data() D {
	return r.data
}

// Priority returns the priority of the record.
func (r Record[E, D]) Priority() Priority {
	return r.priority
}

// DeferUntil returns the event that must be delivered before this record, if any.
func (r Record[E, D]) DeferUntil() (E, bool) {
	if r.deferUntil == nil {
		var zero E
		return zero, false
	}
	return *r.deferUntil, true
}

// DependsOn returns the capability this record requires, if any.
func (r Record[E, D]) DependsOn() (CapabilityID, bool) {
	return r.dependsOn, r.dependsOn != nil
}

// CreatedAt returns the time the record was built.
func (r Record[E, D]) CreatedAt() time.Time {
	return r.createdAt
}

// Lifespan returns how long the record stays deliverable. Zero means forever.
func (r Record[E, D]) Lifespan() time.Duration {
	return r.lifespan
}

// Expired returns true if the record is older than its lifespan at now.
func (r Record[E, D]) Expired(now time.Time) bool {
	return r.lifespan != 0 && now.Sub(r.createdAt) > r.lifespan
}

func (r Record[E, D]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Record|ev %v|data %q|pri %s", r.event, fmt.Sprint(r.data), r.priority)
	if r.deferUntil != nil {
		fmt.Fprintf(&b, "|defer %v", *r.deferUntil)
	}
	if r.dependsOn != nil {
		fmt.Fprintf(&b, "|dep %v", r.dependsOn)
	}
	if r.lifespan != 0 {
		fmt.Fprintf(&b, "|ttl %s", r.lifespan)
	}
	return b.String()
}
