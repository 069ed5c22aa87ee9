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

// Package concurrency contains typed containers that are safe for concurrent use.
package concurrency

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// AtomicValue is an integer counter safe for concurrent use.
type AtomicValue[T constraints.Integer] struct {
	lock  sync.RWMutex
	value T
}

func (a *AtomicValue[T]) Load() T {
	a.lock.RLock()
	defer a.lock.RUnlock()
	return a.value
}

func (a *AtomicValue[T]) Store(v T) {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.value = v
}

// Add adds v and returns the new value.
func (a *AtomicValue[T]) Add(v T) T {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.value += v
	return a.value
}

// AtomicMap is a map of counters, created on first use.
type AtomicMap[K comparable, T constraints.Integer] interface {
	Get(key K) (*AtomicValue[T], bool)
	GetOrCreate(key K, createT T) *AtomicValue[T]
	ForEach(fn func(key K, value *AtomicValue[T]))
}

type atomicMap[K comparable, T constraints.Integer] struct {
	lock  sync.RWMutex
	items map[K]*AtomicValue[T]
}

func NewAtomicMap[K comparable, T constraints.Integer]() AtomicMap[K, T] {
	return &atomicMap[K, T]{
		items: make(map[K]*AtomicValue[T]),
	}
}

func (a *atomicMap[K, T]) Get(key K) (*AtomicValue[T], bool) {
	a.lock.RLock()
	defer a.lock.RUnlock()

	item, ok := a.items[key]
	return item, ok
}

// GetOrCreate returns the counter for key, creating it with createT if it doesn't exist.
func (a *atomicMap[K, T]) GetOrCreate(key K, createT T) *AtomicValue[T] {
	a.lock.RLock()
	item, ok := a.items[key]
	a.lock.RUnlock()
	if ok {
		return item
	}

	a.lock.Lock()
	defer a.lock.Unlock()
	// Another goroutine may have created it while we were waiting for the write lock
	item, ok = a.items[key]
	if !ok {
		item = &AtomicValue[T]{value: createT}
		a.items[key] = item
	}
	return item
}

func (a *atomicMap[K, T]) ForEach(fn func(key K, value *AtomicValue[T])) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	for k, v := range a.items {
		fn(k, v)
	}
}
