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

// Package output renders run results for people and tools.
package output

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a report layout.
type Format uint8

//go:generate go tool stringer -type Format -linecomment

const (
	Text  Format = iota // text
	JSON                // json
	Table               // table
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format { return []Format{Text, JSON, Table} }

// ParseFormat returns the format named name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
