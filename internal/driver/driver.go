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

// Package driver runs the redundant delegate rule over C# source trees.
//
// [Discover] selects the files, [Run] parses them in parallel into one
// [csharp.Compilation] and dispatches every syntax node to the actions the
// rule registered for its kind.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/redundantdelegate/internal/config"
	"fillmore-labs.com/redundantdelegate/internal/csharp"
	"fillmore-labs.com/redundantdelegate/internal/rule"
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Run analyzes files and returns the findings sorted by position.
func Run(ctx context.Context, files []string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	r := opts.Rule
	if r == nil {
		r = rule.New(nil)
	}

	ctx, task := trace.NewTask(ctx, "RedundantDelegate")
	defer task.End()

	slog.DebugContext(ctx, "Starting run", slog.Int("files", len(files)), slog.Any("options", opts))

	parsed, err := parseFiles(ctx, files, opts.Jobs)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: files}

	for _, f := range parsed {
		result.Lines += f.Lines().Lines()
		result.Bytes += f.Lines().Size()

		if f.Generated() {
			result.Generated++
		}
	}

	if !opts.Enabled {
		slog.DebugContext(ctx, "Rule disabled", slog.String("id", r.Descriptor().ID))

		return result, nil
	}

	a := analysis{
		compilation: csharp.NewCompilation(parsed...),
		handlers:    make(map[syntax.Kind][]rule.Handler),
		severity:    opts.Severity,
		behavior:    opts.Behavior,
	}

	for _, action := range r.Actions() {
		a.handlers[action.Kind] = append(a.handlers[action.Kind], action.Handler)
	}

	findings := make([][]Finding, len(parsed))
	suppressed := make([]int, len(parsed))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs(opts.Jobs, len(parsed)))

	for i, f := range parsed {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			findings[i], suppressed[i] = a.file(gctx, f)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range parsed {
		result.Findings = append(result.Findings, findings[i]...)
		result.Suppressed += suppressed[i]
	}

	sortFindings(result.Findings)

	slog.DebugContext(ctx, "Finished run", slog.Int("findings", len(result.Findings)), slog.Int("suppressed", result.Suppressed))

	return result, nil
}

func jobs(n, files int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return max(1, min(n, files))
}

// parseFiles reads and parses files concurrently, keeping their order.
func parseFiles(ctx context.Context, files []string, n int) ([]*csharp.File, error) {
	defer trace.StartRegion(ctx, "parseFiles").End()

	parsed := make([]*csharp.File, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs(n, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			f, err := csharp.Parse(gctx, path, src)
			if err != nil {
				return err
			}

			slog.DebugContext(gctx, "Parsed file", slog.String("file", path), slog.Bool("generated", f.Generated()))

			parsed[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return parsed, nil
}

// analysis is the shared state of the dispatch phase.
type analysis struct {
	compilation *csharp.Compilation
	handlers    map[syntax.Kind][]rule.Handler
	severity    rule.Severity
	behavior    config.Behavior
}

// file dispatches the nodes of f and returns its findings and the number of suppressed diagnostics.
func (a *analysis) file(ctx context.Context, f *csharp.File) ([]Finding, int) {
	defer trace.StartRegion(ctx, "analyzeFile").End()

	var (
		findings   []Finding
		suppressed int
	)

	model := a.compilation.Model(f)
	includeGenerated := a.behavior.Enabled(config.IncludeGenerated)
	honorNoLint := a.behavior.Enabled(config.HonorNoLint)

	syntax.Inspect(f.Root(), func(n syntax.Node) bool {
		handlers := a.handlers[n.Kind()]
		if len(handlers) == 0 {
			return true
		}

		c := nodeContext{
			node:      n,
			model:     model,
			generated: !includeGenerated && f.IsGenerated(n),
		}

		for _, handle := range handlers {
			d, ok := handle(c)
			if !ok {
				continue
			}

			loc := d.Location()
			if honorNoLint && f.Suppressed(d.ID(), loc.Start) {
				suppressed++
				continue
			}

			findings = append(findings, Finding{
				Diagnostic: d.WithSeverity(a.severity),
				Start:      f.Lines().Position(loc.Start),
				End:        f.Lines().Position(loc.End()),
			})

			slog.DebugContext(ctx, "Reported", d.LogAttr())
		}

		return true
	})

	return findings, suppressed
}

// nodeContext is the [rule.Context] of one dispatched node.
type nodeContext struct {
	node      syntax.Node
	model     semantic.Model
	generated bool
}

func (c nodeContext) Node() syntax.Node             { return c.node }
func (c nodeContext) SemanticModel() semantic.Model { return c.model }
func (c nodeContext) IsGeneratedCode() bool         { return c.generated }
