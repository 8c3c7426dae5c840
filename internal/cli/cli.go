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

// Package cli implements the redundantdelegate command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/redundantdelegate/internal/config"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFindings    = 1
	ExitOperational = 2
)

// ErrFindings is returned by the check command when diagnostics of at least warning severity were reported.
var ErrFindings = errors.New("diagnostics reported")

type globalFlags struct {
	configPath string
	verbose    bool
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	switch {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrFindings):
		return ExitFindings

	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return ExitOperational
	}
}

// NewRootCommand creates the root command writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "redundantdelegate",
		Short: "Report redundant explicit delegate creation in C# code",
		Long: `redundantdelegate finds assignments like

    Changed += new EventHandler(OnChanged);

where the explicit delegate creation can be replaced by the method group.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "configuration file (default ./"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		newCheckCommand(&g),
		newConfigCommand(&g),
		newVersionCommand(),
	)

	return root
}

// loadSettings reads the configuration and installs the logger.
func (g *globalFlags) loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	level, err := s.Level()
	if err != nil {
		return nil, err
	}

	if g.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.DebugContext(cmd.Context(), "Loaded configuration", slog.Any("settings", s))

	return s, nil
}
