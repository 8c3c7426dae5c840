// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"slices"
)

// BehaviorFlags represents options that change which code is checked.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to report diagnostics in generated code.
	IncludeGenerated BehaviorFlags = 1 << iota

	// HonorNoLint specifies whether suppression comments and directives are respected.
	HonorNoLint
)

func (f BehaviorFlags) String() string {
	switch f {
	case IncludeGenerated:
		return "include-generated"
	case HonorNoLint:
		return "honor-nolint"
	default:
		return fmt.Sprintf("BehaviorFlags(%d)", uint8(f))
	}
}

// Behavior holds the enabled [BehaviorFlags].
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the behavior used when nothing is configured.
func DefaultBehavior() Behavior {
	return NewBitMask(HonorNoLint)
}

// BehaviorNames returns the names of the flags enabled in b.
func BehaviorNames(b Behavior) []string {
	var names []string
	for f := range b.Flags() {
		names = append(names, f.String())
	}

	return slices.Clip(names)
}
