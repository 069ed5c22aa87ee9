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
	"cmp"
	"fmt"
	"strings"
)

// Priority of a record. Higher priorities are delivered first.
type Priority uint8

const (
	PriorityLow Priority = iota + 1
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

// rank is the explicit ordering of priorities.
// Values that are not one of the declared priorities rank below PriorityLow.
func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Compare returns -1 if p is lower than o, +1 if it is higher, and 0 if they are equal.
func (p Priority) Compare(o Priority) int {
	return cmp.Compare(p.rank(), o.rank())
}

// Valid returns true if p is one of the declared priorities.
func (p Priority) Valid() bool {
	return p.rank() > 0
}

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityNormal:
		return "NORMAL"
	case PriorityLow:
		return "LOW"
	default:
		return fmt.Sprintf("Priority(%d)", uint8(p))
	}
}

// ParsePriority returns the priority named by s, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return PriorityCritical, nil
	case "high":
		return PriorityHigh, nil
	case "normal":
		return PriorityNormal, nil
	case "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority: %q", s)
	}
}

// DecodeString implements config.StringDecoder.
func (p *Priority) DecodeString(value string) error {
	parsed, err := ParsePriority(value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
