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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventgate/kit/config"
)

func TestPrefixedBy(t *testing.T) {
	tests := map[string]struct {
		prefix   string
		input    any
		expected any
		err      string
	}{
		"map of string to string": {
			prefix: "backOff",
			input: map[string]string{
				"":                "",
				"backOff":         "no key left",
				"ignore":          "don't include me",
				"backOffPolicy":   "constant",
				"backOffDuration": "1s",
			},
			expected: map[string]string{
				"policy":   "constant",
				"duration": "1s",
			},
		},
		"map of interface{} to interface{}": {
			prefix: "backOff",
			input: map[any]any{
				"ignore":        "don't include me",
				"backOffPolicy": "exponential",
			},
			expected: map[string]any{
				"policy": "exponential",
			},
		},
		"not a map": {
			prefix:   "backOff",
			input:    "backOffPolicy",
			expected: "backOffPolicy",
		},
		"invalid key": {
			prefix: "backOff",
			input: map[any]any{
				1: "one",
			},
			err: "error parsing config field: 1",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := config.PrefixedBy(tc.input, tc.prefix)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual, "unexpected output")
		})
	}
}
