// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package driver

import (
	"cmp"
	"slices"

	"fillmore-labs.com/redundantdelegate/internal/rule"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Finding is a diagnostic with resolved source positions.
type Finding struct {
	Diagnostic rule.Diagnostic
	Start      syntax.Position
	End        syntax.Position
}

// Result summarizes a [Run].
type Result struct {
	Files      []string
	Lines      int
	Bytes      int
	Generated  int // files entirely generated
	Suppressed int // findings disabled by '#pragma warning'
	Findings   []Finding
}

// Count returns the number of findings with at least severity min.
func (r *Result) Count(minimum rule.Severity) int {
	n := 0

	for _, f := range r.Findings {
		if f.Diagnostic.Severity() >= minimum {
			n++
		}
	}

	return n
}

func sortFindings(findings []Finding) {
	slices.SortFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Start.Filename, b.Start.Filename),
			cmp.Compare(a.Start.Offset, b.Start.Offset),
			cmp.Compare(a.Diagnostic.ID(), b.Diagnostic.ID()),
		)
	})
}
