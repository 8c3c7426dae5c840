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

package goast_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/redundantdelegate/internal/goast"
	"fillmore-labs.com/redundantdelegate/internal/rule"
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
	"fillmore-labs.com/redundantdelegate/internal/testsource"
)

const decls = `type Handler func(int)

type Other func(int)

type Widget struct{ OnClick Handler }

func work(int) {}

var (
	h, g  Handler
	w     Widget
	x     any
	n     int64
	other Other
)`

type context struct {
	node  syntax.Node
	model semantic.Model
}

func (c context) Node() syntax.Node              { return c.node }
func (c context) SemanticModel() semantic.Model { return c.model }
func (c context) IsGeneratedCode() bool          { return false }

func TestStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		assignment bool
		creation   bool
		reported   bool
	}{
		{"Conversion", "h = Handler(work)", true, true, true},
		{"Field", "w.OnClick = Handler(work)", true, true, true},
		{"Literal", "h = Handler(func(int) {})", true, true, true},
		{"Parenthesized", "h = (Handler(work))", true, true, true},
		{"Direct", "h = work", true, false, false},
		{"Define", "k := Handler(work)\n_ = k", false, false, false},
		{"Blank", "_ = Handler(work)", true, false, false},
		{"NotAssignable", "h = Handler(other)", true, false, false},
		{"Interface", "x = Handler(work)", true, false, false},
		{"Tuple", "h, g = Handler(work), Handler(work)", false, false, false},
		{"NonFunc", "n = int64(3)", true, false, false},
	}

	r := rule.New(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, fn := testsource.Parse(t, decls, tt.body)
			_, info := testsource.Check(t, fset, f)

			var stmt *ast.AssignStmt
			for _, s := range fn.Body.List {
				if a, ok := s.(*ast.AssignStmt); ok {
					stmt = a

					break
				}
			}

			if stmt == nil {
				t.Fatal("No assignment found")
			}

			tree := New(info, fset.File(f.FileStart))
			lowered := tree.Statement(stmt)

			a, ok := syntax.AsAssignment(lowered.Expression)
			if ok != tt.assignment {
				t.Fatalf("Got assignment %t, want %t", ok, tt.assignment)
			}

			if ok {
				_, creation := syntax.AsObjectCreation(a.Right)
				if creation != tt.creation {
					t.Errorf("Got object creation %t, want %t", creation, tt.creation)
				}
			}

			d, reported := r.Analyze(context{node: lowered, model: tree})
			if reported != tt.reported {
				t.Fatalf("Got reported %t, want %t", reported, tt.reported)
			}

			if !reported {
				return
			}

			pos, end := tree.Range(d.Location())
			if pos != stmt.Pos() || end != stmt.End() {
				t.Errorf("Got range %s-%s, want %s-%s", fset.Position(pos), fset.Position(end), fset.Position(stmt.Pos()), fset.Position(stmt.End()))
			}
		})
	}
}

func TestConvertedType(t *testing.T) {
	t.Parallel()

	fset, f, fn := testsource.Parse(t, decls, "h = Handler(work)")
	_, info := testsource.Check(t, fset, f)

	tree := New(info, fset.File(f.FileStart))
	lowered := tree.Statement(fn.Body.List[0].(*ast.AssignStmt))

	a, _ := syntax.AsAssignment(lowered.Expression)

	typ := tree.ConvertedType(a.Left)
	if typ == nil {
		t.Fatal("Expected type for h")
	}

	if got, want := typ.Name, "test.Handler"; got != want {
		t.Errorf("Got type %q, want %q", got, want)
	}

	if typ.Kind != semantic.NamedType || !typ.IsDelegate() {
		t.Errorf("Got %v, want named delegate type", typ)
	}

	if got := tree.ConvertedType(syntax.NewIdentifier(syntax.Span{}, "h")); got != nil {
		t.Errorf("Got type %v for foreign expression, want nil", got)
	}

	creation, _ := syntax.AsObjectCreation(a.Right)
	if e, ok := tree.Node(creation); !ok {
		t.Error("Object creation not mapped to Go expression")
	} else if _, ok := e.(*ast.CallExpr); !ok {
		t.Errorf("Got %T, want *ast.CallExpr", e)
	}
}
