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

// worker is the single consumer of a Queue.
// It is bound to one queue and one processor for its lifetime.
type worker[E comparable, D any] struct {
	queue     *Queue[E, D]
	processor Processor[E, D]
}

// Processing loop.
func (w *worker[E, D]) run() {
	q := w.queue
	defer q.log.Debug("Worker stopped")

	for {
		// Blocks until there's something in the ready queue, or returns false when closed
		if !q.waitForWork() {
			return
		}

		// Drain the ready queue; records that are dropped or deferred don't stop the drain
		for {
			if q.closed.Load() {
				return
			}

			r, res := q.dequeueNext(w)
			if res == resultEmpty {
				break
			}
			if res == resultAccepted {
				// Invoked without holding the lock, so producers are never blocked by the processor
				q.log.Debugf("Worker processing %s", r)
				w.processor.Process(r.Event(), r.Data())
			}
		}
	}
}
