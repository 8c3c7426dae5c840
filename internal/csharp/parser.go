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

// Package csharp turns C# source files into [syntax] trees and answers type
// queries for them from the declarations of a [Compilation].
//
// Parsing uses the tree-sitter C# grammar. The type information is
// declaration based: it knows the types, members, locals and parameters
// declared in the analyzed files plus a small set of well-known framework
// types, and resolves nothing else.
//
// Parentheses around the value of an assignment are dropped during
// lowering, so x = (new D(m)) lowers like x = new D(m).
package csharp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexaandru/go-sitter-forest/c_sharp"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Sentinel errors for parsing.
var (
	ErrParse    = errors.New("csharp: parse failed")
	errPoolType = errors.New("csharp: pool returned unexpected type")
	errNoRoot   = errors.New("csharp: no root node")
)

var language = sync.OnceValue(func() *sitter.Language {
	return sitter.NewLanguage(c_sharp.GetLanguage())
})

var parserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(language())

		return p
	},
}

// Parse parses src and lowers it into a [File].
//
// The returned file holds no tree-sitter resources. Parse is safe for
// concurrent use; a cancelled ctx is checked before and after parsing.
func Parse(ctx context.Context, filename string, src []byte) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := parserPool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}
	defer parserPool.Put(p)

	// Pooled parsers must not watch a caller context: a late cancellation
	// would set the cancellation flag of a parser already reused elsewhere.
	tree, err := p.ParseString(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, errNoRoot)
	}

	l := newLowering(filename, src)
	l.lowerFile(root)

	f := &File{
		name:        filename,
		lines:       syntax.NewLineTable(filename, src),
		root:        syntax.NewCompilationUnit(l.span(root), l.nodes...),
		generated:   l.fileGenerated,
		scopes:      l.scopes,
		inGenerated: l.inGenerated,
		types:       l.types,
		pragmas:     parsePragmas(src),
	}

	return f, nil
}
