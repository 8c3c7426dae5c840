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

package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/redundantdelegate/internal/config"
	"fillmore-labs.com/redundantdelegate/internal/driver"
	"fillmore-labs.com/redundantdelegate/internal/output"
	"fillmore-labs.com/redundantdelegate/internal/rule"
)

// ErrInvalidColor is returned for unsupported --color values.
var ErrInvalidColor = errors.New("color must be auto, on or off")

type checkFlags struct {
	format           string
	jobs             int
	includeGenerated bool
	severity         string
	color            string
	quiet            bool
}

func newCheckCommand(g *globalFlags) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check C# files and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.loadSettings(cmd)
			if err != nil {
				return err
			}

			f.override(cmd, s)

			if err := s.Validate(); err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			return runCheck(cmd, s, &f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.format, config.KeyFormat, "f", config.DefaultFormat, "output format: text, json or table")
	flags.IntVarP(&f.jobs, config.KeyJobs, "j", 0, "number of files processed in parallel (0 for all CPUs)")
	flags.BoolVar(&f.includeGenerated, config.KeyIncludeGenerated, false, "report diagnostics in generated code")
	flags.StringVar(&f.severity, config.KeySeverity, "", "override the rule severity (none, hidden, info, warning, error)")
	flags.StringVar(&f.color, "color", "auto", "colorize text output: auto, on or off")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "do not print the summary")

	return cmd
}

// override applies explicitly set flags to s.
func (f *checkFlags) override(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()

	if flags.Changed(config.KeyFormat) {
		s.Format = f.format
	}

	if flags.Changed(config.KeyJobs) {
		s.Jobs = f.jobs
	}

	if flags.Changed(config.KeyIncludeGenerated) {
		s.IncludeGenerated = f.includeGenerated
	}

	if flags.Changed(config.KeySeverity) {
		s.Severity = f.severity
	}
}

func (f *checkFlags) colored() (bool, error) {
	switch f.color {
	case "auto", "":
		return !color.NoColor, nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidColor, f.color)
	}
}

func runCheck(cmd *cobra.Command, s *config.Settings, f *checkFlags, paths []string) error {
	format, err := output.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	colored, err := f.colored()
	if err != nil {
		return err
	}

	files, err := driver.Discover(paths, s.ExcludeDirs)
	if err != nil {
		return err
	}

	result, err := driver.Run(cmd.Context(), files, driver.NewOptions(s))
	if err != nil {
		return err
	}

	if err := output.NewPrinter(format, colored).Print(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !f.quiet && format != output.JSON {
		fmt.Fprintln(cmd.ErrOrStderr(), output.Summary(result))
	}

	if result.Count(rule.Warning) > 0 {
		return ErrFindings
	}

	return nil
}
