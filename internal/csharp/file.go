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
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// File is a lowered C# source file.
//
// A File is read-only after [Parse] returns and safe for concurrent use.
type File struct {
	name        string
	lines       *syntax.LineTable
	root        *syntax.CompilationUnit
	generated   bool
	scopes      map[syntax.Node]*scope
	inGenerated map[syntax.Node]bool
	types       []*typeDecl
	pragmas     pragmas
}

// Name returns the file name given to [Parse].
func (f *File) Name() string { return f.name }

// Root returns the syntax tree of the file.
func (f *File) Root() *syntax.CompilationUnit { return f.root }

// Lines returns the line table of the file.
func (f *File) Lines() *syntax.LineTable { return f.lines }

// Generated reports whether the whole file is generated code.
func (f *File) Generated() bool { return f.generated }

// IsGenerated reports whether node belongs to generated code, either because
// the file is generated or because an enclosing declaration carries a
// GeneratedCode attribute.
func (f *File) IsGenerated(node syntax.Node) bool {
	return f.generated || f.inGenerated[node]
}

// Suppressed reports whether diagnostic id is disabled by a
// '#pragma warning disable' directive in effect at offset.
func (f *File) Suppressed(id string, offset int) bool {
	return f.pragmas.suppressed(id, offset)
}
