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
	"log/slog"

	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Diagnostic is a single finding of a rule.
//
// Diagnostics are created per match and not modified afterwards.
type Diagnostic struct {
	descriptor *Descriptor
	message    string
	severity   Severity
	location   syntax.Span
}

// NewDiagnostic creates a [Diagnostic] with the descriptor's message and default severity.
func NewDiagnostic(d *Descriptor, location syntax.Span) Diagnostic {
	return Diagnostic{
		descriptor: d,
		message:    d.MessageFormat,
		severity:   d.DefaultSeverity,
		location:   location,
	}
}

// WithSeverity returns a copy of d reported at severity.
func (d Diagnostic) WithSeverity(severity Severity) Diagnostic {
	d.severity = severity

	return d
}

// Descriptor returns the shared rule descriptor.
func (d Diagnostic) Descriptor() *Descriptor { return d.descriptor }

func (d Diagnostic) ID() string             { return d.descriptor.ID }
func (d Diagnostic) Title() string          { return d.descriptor.Title }
func (d Diagnostic) Message() string        { return d.message }
func (d Diagnostic) Category() string       { return d.descriptor.Category }
func (d Diagnostic) Severity() Severity     { return d.severity }
func (d Diagnostic) EnabledByDefault() bool { return d.descriptor.EnabledByDefault }
func (d Diagnostic) HelpLink() string       { return d.descriptor.HelpLinkURI }
func (d Diagnostic) CustomTags() []string   { return d.descriptor.CustomTags() }
func (d Diagnostic) Location() syntax.Span  { return d.location }

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (d Diagnostic) LogAttr() slog.Attr {
	return slog.Group("diagnostic",
		slog.String("id", d.ID()),
		slog.String("file", d.location.File),
		slog.Int("start", d.location.Start),
		slog.Int("length", d.location.Length),
	)
}
