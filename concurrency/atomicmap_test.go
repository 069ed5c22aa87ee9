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

package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicMap(t *testing.T) {
	m := NewAtomicMap[string, int64]()

	t.Run("basic operations", func(t *testing.T) {
		_, ok := m.Get("accepted")
		require.False(t, ok)

		m.GetOrCreate("accepted", 10)
		v, ok := m.Get("accepted")
		require.True(t, ok)
		assert.Equal(t, int64(10), v.Load())

		// Existing counters are not reset
		m.GetOrCreate("accepted", 0).Add(5)
		assert.Equal(t, int64(15), v.Load())

		v.Store(1)
		assert.Equal(t, int64(1), v.Load())
	})

	t.Run("concurrent increments", func(t *testing.T) {
		const goroutines, increments = 10, 100

		var wg sync.WaitGroup
		wg.Add(goroutines)
		for range goroutines {
			go func() {
				defer wg.Done()
				for range increments {
					m.GetOrCreate("dropped", 0).Add(1)
				}
			}()
		}
		wg.Wait()

		v, ok := m.Get("dropped")
		require.True(t, ok)
		assert.Equal(t, int64(goroutines*increments), v.Load())
	})

	t.Run("for each", func(t *testing.T) {
		seen := map[string]int64{}
		m.ForEach(func(key string, value *AtomicValue[int64]) {
			seen[key] = value.Load()
		})
		assert.Equal(t, map[string]int64{"accepted": 1, "dropped": 1000}, seen)
	})
}
