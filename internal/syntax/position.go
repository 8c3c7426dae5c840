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

package syntax

import (
	"fmt"
	"sort"
)

// Position is a human-readable source location. Line and Column are 1-based;
// Column counts bytes.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// String formats the position as file:line:column.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// LineTable maps byte offsets of one file to line and column numbers.
type LineTable struct {
	filename string
	lines    []int // offsets of line starts
	size     int
}

// NewLineTable indexes the line starts of src.
func NewLineTable(filename string, src []byte) *LineTable {
	lines := []int{0}

	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &LineTable{filename: filename, lines: lines, size: len(src)}
}

// Position converts offset into a [Position]. Offsets are clamped to the file size.
func (t *LineTable) Position(offset int) Position {
	offset = max(0, min(offset, t.size))

	line := sort.Search(len(t.lines), func(i int) bool { return t.lines[i] > offset }) - 1

	return Position{
		Filename: t.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - t.lines[line] + 1,
	}
}

// Lines returns the number of lines in the file.
func (t *LineTable) Lines() int { return len(t.lines) }

// Size returns the file size in bytes.
func (t *LineTable) Size() int { return t.size }
