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

package rule

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Severity is the reporting level of a diagnostic.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment

const (
	Hidden  Severity = iota // hidden
	Info                    // info
	Warning                 // warning
	Error                   // error
)

// ErrUnknownSeverity is returned by [ParseSeverity] for unrecognized names.
var ErrUnknownSeverity = errors.New("unknown severity")

// ParseSeverity parses a severity name. The name "none" returns enabled == false.
func ParseSeverity(name string) (severity Severity, enabled bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off":
		return Hidden, false, nil
	case "hidden", "silent":
		return Hidden, true, nil
	case "info", "suggestion":
		return Info, true, nil
	case "warning", "warn":
		return Warning, true, nil
	case "error":
		return Error, true, nil
	default:
		return Hidden, false, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
}

// CustomTagUnnecessary marks diagnostics whose span can be rendered as unnecessary (e.g. faded or struck through).
const CustomTagUnnecessary = "Unnecessary"

// Descriptor is the immutable metadata shared by all diagnostics of a rule.
type Descriptor struct {
	ID               string
	Title            string
	MessageFormat    string
	Category         string
	DefaultSeverity  Severity
	EnabledByDefault bool
	HelpLinkURI      string
	customTags       []string
}

// NewDescriptor creates a [Descriptor], copying the custom tags.
func NewDescriptor(id, title, message, category string, severity Severity, enabled bool, helpLink string, tags ...string) *Descriptor {
	return &Descriptor{
		ID:               id,
		Title:            title,
		MessageFormat:    message,
		Category:         category,
		DefaultSeverity:  severity,
		EnabledByDefault: enabled,
		HelpLinkURI:      helpLink,
		customTags:       slices.Clone(tags),
	}
}

// CustomTags returns a copy of the custom tags.
func (d *Descriptor) CustomTags() []string { return slices.Clone(d.customTags) }

// HasTag reports whether the descriptor carries the custom tag.
func (d *Descriptor) HasTag(tag string) bool { return slices.Contains(d.customTags, tag) }

// Descriptor values for the redundant delegate creation rule.
const (
	ID       = "RDC0001"
	Title    = "Explicit delegate creation expression is redundant"
	Message  = "Redundant explicit delegate declaration"
	Category = "Redundancies in Code"
	HelpLink = "https://pkg.go.dev/fillmore-labs.com/redundantdelegate#" + ID
)

var defaultDescriptor = NewDescriptor(ID, Title, Message, Category, Warning, true, HelpLink, CustomTagUnnecessary)

// DefaultDescriptor returns the process-wide descriptor of the redundant delegate creation rule.
func DefaultDescriptor() *Descriptor { return defaultDescriptor }
