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

// Package config decodes loosely typed configuration maps into structs.
package config

import (
	"fmt"
)

// Normalize converts maps with interface{} keys, as produced by some YAML decoders,
// into maps with string keys, recursively.
func Normalize(input any) (any, error) {
	switch x := input.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("error parsing config field: %v", k)
			}
			normalized, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			m[key] = normalized
		}
		return m, nil
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			normalized, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			m[k] = normalized
		}
		return m, nil
	case []any:
		s := make([]any, len(x))
		for i, v := range x {
			normalized, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			s[i] = normalized
		}
		return s, nil
	}

	return input, nil
}
