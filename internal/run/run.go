// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/redundantdelegate/internal/astutil"
	"fillmore-labs.com/redundantdelegate/internal/config"
	"fillmore-labs.com/redundantdelegate/internal/goast"
	"fillmore-labs.com/redundantdelegate/internal/rule"
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the redundantdelegate analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("redundantdelegate: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ru := r.Rule
	if ru == nil {
		ru = rule.New(nil)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "RedundantDelegate")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	var handlers []rule.Handler

	for _, action := range ru.Actions() {
		if action.Kind == syntax.KindExpressionStatement {
			handlers = append(handlers, action.Handler)
		}
	}

	includeGenerated := r.Behavior.Enabled(config.IncludeGenerated)
	honorNoLint := r.Behavior.Enabled(config.HonorNoLint)
	id := ru.Descriptor().ID

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip files with nolint comment
		if honorNoLint && file.Doc != nil && astutil.Suppresses(file.Doc.List[len(file.Doc.List)-1], id) {
			continue
		}

		tree := goast.New(p.TypesInfo, currentFile.Handle())
		generated := currentFile.Generated() && !includeGenerated

		region := trace.StartRegion(ctx, "file")

		// Loop over all assignments in this file
		for c := range f.Preorder((*ast.AssignStmt)(nil)) {
			stmt := c.Node().(*ast.AssignStmt)

			if honorNoLint && currentFile.NoLintComment(stmt.End(), id) {
				continue
			}

			lowered := tree.Statement(stmt)
			nc := nodeContext{node: lowered, model: tree, generated: generated}

			for _, handle := range handlers {
				if d, ok := handle(nc); ok {
					report(p, tree, d)
				}
			}
		}

		region.End()
	}

	return nil, nil
}

// report converts d into an [analysis.Diagnostic].
func report(p *analysis.Pass, tree *goast.Tree, d rule.Diagnostic) {
	pos, end := tree.Range(d.Location())

	p.Report(analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: d.Category(),
		Message:  d.Message(),
		URL:      d.HelpLink(),
	})
}

// nodeContext is the [rule.Context] of one assignment.
type nodeContext struct {
	node      syntax.Node
	model     semantic.Model
	generated bool
}

func (c nodeContext) Node() syntax.Node             { return c.node }
func (c nodeContext) SemanticModel() semantic.Model { return c.model }
func (c nodeContext) IsGeneratedCode() bool         { return c.generated }
