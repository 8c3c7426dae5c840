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

package csharp

import (
	"bytes"
	"regexp"
	"slices"
	"strings"
)

// pragma is a '#pragma warning disable|restore' directive.
type pragma struct {
	offset  int
	disable bool
	ids     []string // nil applies to all diagnostics
}

// pragmas are the warning directives of a file in source order.
type pragmas []pragma

var pragmaPattern = regexp.MustCompile(`^\s*#\s*pragma\s+warning\s+(disable|restore)\b([^/\r\n]*)`)

// parsePragmas scans src line by line for warning directives.
func parsePragmas(src []byte) pragmas {
	var result pragmas

	offset := 0
	for line := range bytes.Lines(src) {
		if m := pragmaPattern.FindSubmatch(line); m != nil {
			result = append(result, pragma{
				offset:  offset,
				disable: string(m[1]) == "disable",
				ids:     pragmaIDs(string(m[2])),
			})
		}

		offset += len(line)
	}

	return result
}

func pragmaIDs(list string) []string {
	var ids []string

	for id := range strings.SplitSeq(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// suppressed reports whether id is disabled at offset.
func (p pragmas) suppressed(id string, offset int) bool {
	disabled := false

	for _, d := range p {
		if d.offset > offset {
			break
		}

		if d.ids == nil || slices.Contains(d.ids, id) {
			disabled = d.disable
		}
	}

	return disabled
}
