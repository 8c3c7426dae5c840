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
	"log/slog"

	"fillmore-labs.com/redundantdelegate/internal/config"
	"fillmore-labs.com/redundantdelegate/internal/rule"
)

// Options configure a [Run].
type Options struct {
	// Rule is the check to run, nil selects the default rule.
	Rule *rule.Rule

	// Severity is the effective severity of reported diagnostics.
	Severity rule.Severity

	// Enabled turns the rule on.
	Enabled bool

	// Behavior holds the generated code and suppression options.
	Behavior config.Behavior

	// Jobs limits the number of files processed concurrently, 0 means GOMAXPROCS.
	Jobs int
}

// DefaultOptions returns the options of an unconfigured run.
func DefaultOptions() *Options {
	d := rule.DefaultDescriptor()

	return &Options{
		Rule:     rule.New(d),
		Severity: d.DefaultSeverity,
		Enabled:  d.EnabledByDefault,
		Behavior: config.DefaultBehavior(),
	}
}

// NewOptions derives run options from settings.
func NewOptions(s *config.Settings) *Options {
	o := DefaultOptions()
	o.Severity, o.Enabled = s.RuleSeverity(o.Rule.Descriptor())
	o.Behavior = s.Behavior()
	o.Jobs = s.Jobs

	return o
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("severity", o.Severity.String()),
		slog.Bool("enabled", o.Enabled),
		slog.Any("behavior", config.BehaviorNames(o.Behavior)),
		slog.Int("jobs", o.Jobs),
	)
}
