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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityCompare(t *testing.T) {
	ordered := []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}
	for i, p := range ordered {
		for j, o := range ordered {
			switch {
			case i < j:
				assert.Equal(t, -1, p.Compare(o), "%s vs %s", p, o)
			case i > j:
				assert.Equal(t, 1, p.Compare(o), "%s vs %s", p, o)
			default:
				assert.Equal(t, 0, p.Compare(o), "%s vs %s", p, o)
			}
		}
	}

	t.Run("undeclared values rank lowest", func(t *testing.T) {
		assert.False(t, Priority(0).Valid())
		assert.False(t, Priority(42).Valid())
		assert.Equal(t, -1, Priority(42).Compare(PriorityLow))
		assert.Equal(t, "Priority(42)", Priority(42).String())
	})
}

func TestParsePriority(t *testing.T) {
	tests := map[string]Priority{
		"low":      PriorityLow,
		"Normal":   PriorityNormal,
		" HIGH ":   PriorityHigh,
		"critical": PriorityCritical,
	}

	for in, expect := range tests {
		t.Run(in, func(t *testing.T) {
			p, err := ParsePriority(in)
			require.NoError(t, err)
			assert.Equal(t, expect, p)

			var decoded Priority
			require.NoError(t, decoded.DecodeString(in))
			assert.Equal(t, expect, decoded)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParsePriority("urgent")
		require.Error(t, err)

		p := PriorityLow
		require.Error(t, p.DecodeString("urgent"))
		assert.Equal(t, PriorityLow, p)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, p := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical} {
			parsed, err := ParsePriority(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})
}
