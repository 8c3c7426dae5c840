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

package csharp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundantdelegate/internal/csharp"
	"fillmore-labs.com/redundantdelegate/internal/rule"
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

const publisher = `using System;

namespace Demo
{
    public class Publisher
    {
        public event EventHandler<EventArgs> Changed;
        private Action<int> callback;

        void HandleChanged(object sender, EventArgs e) { }

        void DoWork(int n) { }

        void Subscribe(Action<int> parameter)
        {
            Changed += new EventHandler<EventArgs>(HandleChanged);
            Changed -= HandleChanged;
            callback = new Action<int>(DoWork);
            this.callback = new Action<int>(DoWork);
            Action<int> x;
            x = new Action<int>(DoWork);
            var y = new Action<int>(DoWork);
            y = new Action<int>(DoWork);
            parameter = new Action<int>(DoWork);
            unknown = new Action<int>(DoWork);
            var z = Compute();
            z = new Action<int>(DoWork);
        }
    }
}
`

// assignments returns the first assignment expression of each left operand text.
func assignments(t *testing.T, f *File, src string) map[string]*syntax.AssignmentExpression {
	t.Helper()

	result := make(map[string]*syntax.AssignmentExpression)

	for _, n := range f.Root().Nodes {
		stmt, ok := syntax.AsExpressionStatement(n)
		if !ok {
			continue
		}

		a, ok := syntax.AsAssignment(stmt.Expression)
		if !ok {
			continue
		}

		left := a.Left.Span()
		if key := src[left.Start:left.End()]; result[key] == nil {
			result[key] = a
		}
	}

	return result
}

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse(t.Context(), "Publisher.cs", []byte(publisher))
	require.NoError(t, err)

	assert.Equal(t, "Publisher.cs", f.Name())
	assert.False(t, f.Generated())

	var events, statements int

	syntax.Inspect(f.Root(), func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindEventFieldDeclaration:
			events++
		case syntax.KindExpressionStatement:
			statements++
		}

		return true
	})

	assert.Equal(t, 1, events)
	assert.Equal(t, 9, statements)

	as := assignments(t, f, publisher)
	require.Contains(t, as, "Changed")

	changed := as["Changed"]
	assert.Equal(t, syntax.OperatorAddAssign, changed.Operator)

	creation, ok := syntax.AsObjectCreation(changed.Right)
	require.True(t, ok, "right operand is %s", changed.Right.Kind())
	assert.Equal(t, 1, creation.ArgumentCount())

	span := changed.Span()
	assert.Equal(t, "Changed += new EventHandler<EventArgs>(HandleChanged)", publisher[span.Start:span.End()])
}

func TestModel(t *testing.T) {
	t.Parallel()

	f, err := Parse(t.Context(), "Publisher.cs", []byte(publisher))
	require.NoError(t, err)

	model := NewCompilation(f).Model(f)
	as := assignments(t, f, publisher)

	tests := []struct {
		left     string
		name     string
		kind     semantic.SymbolKind
		typeKind semantic.TypeKind
	}{
		{"Changed", "EventHandler<EventArgs>", semantic.NamedType, semantic.TypeKindDelegate},
		{"callback", "Action<int>", semantic.NamedType, semantic.TypeKindDelegate},
		{"this.callback", "Action<int>", semantic.NamedType, semantic.TypeKindDelegate},
		{"x", "Action<int>", semantic.NamedType, semantic.TypeKindDelegate},
		{"y", "Action<int>", semantic.NamedType, semantic.TypeKindDelegate},
		{"parameter", "Action<int>", semantic.NamedType, semantic.TypeKindDelegate},
		{"z", "var", semantic.ErrorType, semantic.TypeKindError},
	}

	for _, tt := range tests {
		t.Run(tt.left, func(t *testing.T) {
			t.Parallel()

			a, ok := as[tt.left]
			require.True(t, ok, "no assignment to %s", tt.left)

			typ := model.ConvertedType(a.Left)
			require.NotNil(t, typ)

			assert.Equal(t, tt.name, typ.Name)
			assert.Equal(t, tt.kind, typ.Kind)
			assert.Equal(t, tt.typeKind, typ.TypeKind)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		a, ok := as["unknown"]
		require.True(t, ok)
		assert.Nil(t, model.ConvertedType(a.Left))
	})
}

func TestPartialTypes(t *testing.T) {
	t.Parallel()

	const (
		declaration = `namespace Demo { partial class Widget { public Handler OnClick; } delegate void Handler(); }`
		usage       = `namespace Demo { partial class Widget { void Init() { OnClick = new Handler(Click); } void Click() { } } }`
	)

	decl, err := Parse(t.Context(), "Widget.cs", []byte(declaration))
	require.NoError(t, err)

	use, err := Parse(t.Context(), "Widget.Init.cs", []byte(usage))
	require.NoError(t, err)

	as := assignments(t, use, usage)
	require.Contains(t, as, "OnClick")

	typ := NewCompilation(decl, use).Model(use).ConvertedType(as["OnClick"].Left)
	require.NotNil(t, typ)
	assert.Equal(t, semantic.TypeKindDelegate, typ.TypeKind)

	assert.Nil(t, NewCompilation(use).Model(use).ConvertedType(as["OnClick"].Left), "member of other file resolved without it")
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	const body = `class C { System.Action a; void B() { } void M() { a = new System.Action(B); } }`

	tests := []struct {
		name     string
		filename string
		src      string
		file     bool
		node     bool
	}{
		{"Plain", "C.cs", body, false, false},
		{"Designer", "Form1.Designer.cs", body, true, true},
		{"GeneratedSuffix", "C.g.cs", body, true, true},
		{"Header", "C.cs", "// <auto-generated/>\n" + body, true, true},
		{"LateComment", "C.cs", body + "\n// <auto-generated/>\n", false, false},
		{"Attribute", "C.cs", `[System.CodeDom.Compiler.GeneratedCode("tool", "1.0")]` + "\n" + body, false, true},
		{"MethodAttribute", "C.cs", `class C { System.Action a; void B() { } [GeneratedCodeAttribute("t", "1")] void M() { a = new System.Action(B); } }`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse(t.Context(), tt.filename, []byte(tt.src))
			require.NoError(t, err)

			assert.Equal(t, tt.file, f.Generated())

			var stmt syntax.Node

			syntax.Inspect(f.Root(), func(n syntax.Node) bool {
				if n.Kind() == syntax.KindExpressionStatement {
					stmt = n
				}

				return stmt == nil
			})
			require.NotNil(t, stmt)

			assert.Equal(t, tt.node, f.IsGenerated(stmt))
		})
	}
}

func TestPragmaSuppression(t *testing.T) {
	t.Parallel()

	const src = `class C {
#pragma warning disable RDC0001, CS0168 // not now
    void M() { }
#pragma warning restore RDC0001
    void N() { }
#pragma warning disable
    void O() { }
}
`

	f, err := Parse(t.Context(), "C.cs", []byte(src))
	require.NoError(t, err)

	offset := func(s string) int {
		t.Helper()

		for i := range len(src) - len(s) + 1 {
			if src[i:i+len(s)] == s {
				return i
			}
		}

		t.Fatalf("%q not found", s)

		return -1
	}

	assert.False(t, f.Suppressed("RDC0001", offset("class C")))
	assert.True(t, f.Suppressed("RDC0001", offset("void M")))
	assert.True(t, f.Suppressed("CS0168", offset("void N")))
	assert.False(t, f.Suppressed("RDC0001", offset("void N")))
	assert.True(t, f.Suppressed("RDC0001", offset("void O")))
	assert.True(t, f.Suppressed("ANY", offset("void O")))
}

func TestParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Parse(ctx, "Publisher.cs", []byte(publisher))
	require.ErrorIs(t, err, context.Canceled)

	f, err := Parse(t.Context(), "Publisher.cs", []byte(publisher))
	require.NoError(t, err)
	assert.NotEmpty(t, f.Root().Nodes)
}

func TestParseConcurrent(t *testing.T) {
	t.Parallel()

	for i := range 32 {
		t.Run(fmt.Sprintf("File%d", i), func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			f, err := Parse(ctx, fmt.Sprintf("C%d.cs", i), []byte(publisher))
			require.NoError(t, err)

			as := assignments(t, f, publisher)
			assert.Contains(t, as, "callback")
		})
	}
}

func TestParenthesizedCreation(t *testing.T) {
	t.Parallel()

	const src = `class C {
    System.Action<int> a;
    void D(int n) { }
    void M() {
        a = (new System.Action<int>(D));
        a = ((new System.Action<int>(D)));
    }
}`

	f, err := Parse(t.Context(), "C.cs", []byte(src))
	require.NoError(t, err)

	var matched int

	for _, n := range f.Root().Nodes {
		if _, ok := rule.Match(n); ok {
			matched++
		}
	}

	assert.Equal(t, 2, matched)
}
