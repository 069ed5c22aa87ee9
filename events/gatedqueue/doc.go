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

// Package gatedqueue implements an in-memory, prioritized event queue with a single consumer.
//
// Producers, on any goroutine, build records with Queue.NewRecord and submit them without blocking.
// A single background goroutine owned by the Queue drains records in priority order and hands each
// accepted record to the Processor. Delivery of a record can be gated in three ways:
//
//   - DeferUntil: the record is held back until a record for another event has been delivered once.
//   - DependsOn: the record requires a capability to be registered with RegisterCapability.
//   - WithLifespan: the record is discarded if it is older than its lifespan when examined.
//
// Delivery is best-effort. Records that expire or whose capability is missing are dropped silently;
// producers are never notified. Callers needing acknowledgements must implement them out of band.
//
// The Processor runs on the queue's goroutine, one record at a time. It must not block indefinitely,
// or delivery for the whole queue stalls.
package gatedqueue
