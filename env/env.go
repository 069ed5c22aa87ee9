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

// Package env reads typed configuration values from environment variables.
package env

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetDurationWithRange returns the time.Duration value of the environment variable specified by `envVar`.
// The value is either a Go duration string ("1m30s") or an integer number of milliseconds.
// If the environment variable is not set, it returns `defaultValue`.
// If the value is set but is not valid (not a valid duration or falls outside the specified range
// [minValue, maxValue] inclusively), it returns `defaultValue` and an error.
func GetDurationWithRange(envVar string, defaultValue, minValue, maxValue time.Duration) (time.Duration, error) {
	v := os.Getenv(envVar)
	if v == "" {
		return defaultValue, nil
	}

	val, err := parseDuration(v)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid duration value %q for the %s env variable: %w", v, envVar, err)
	}

	if val < minValue || val > maxValue {
		return defaultValue, fmt.Errorf("invalid value for the %s env variable: value should be between %s and %s, got %s", envVar, minValue, maxValue, val)
	}

	return val, nil
}

func parseDuration(v string) (time.Duration, error) {
	val, err := time.ParseDuration(v)
	if err == nil {
		return val, nil
	}

	ms, errInt := strconv.ParseInt(v, 10, 64)
	if errInt != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
