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

package config

import (
	"strings"
	"unicode"
)

// PrefixedBy returns the entries of input whose key starts with prefix, with the prefix removed and
// the first letter of the remaining key lowercased: with prefix "backOff", "backOffMaxRetries"
// becomes "maxRetries". Inputs that aren't maps are returned unchanged.
func PrefixedBy(input any, prefix string) (any, error) {
	normalized, err := Normalize(input)
	if err != nil {
		return input, err
	}

	switch m := normalized.(type) {
	case map[string]any:
		return filterPrefixed(m, prefix), nil
	case map[string]string:
		return filterPrefixed(m, prefix), nil
	}

	return normalized, nil
}

func filterPrefixed[V any](m map[string]V, prefix string) map[string]V {
	converted := make(map[string]V, len(m))
	for k, v := range m {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		key := uncapitalize(strings.TrimPrefix(k, prefix))
		if key == "" {
			continue
		}
		converted[key] = v
	}
	return converted
}

// uncapitalize lowercases the initial letter of str.
func uncapitalize(str string) string {
	if len(str) == 0 {
		return str
	}

	vv := []rune(str)
	vv[0] = unicode.ToLower(vv[0])

	return string(vv)
}
