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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/redundantdelegate/internal/syntax"
)

func TestViews(t *testing.T) {
	t.Parallel()

	span := Span{File: "a.cs", Start: 0, Length: 10}
	creation := NewObjectCreation(span, NewIdentifier(span, "Action"), NewArgumentList(span, NewIdentifier(span, "Run")))
	assignment := NewAssignment(span, NewIdentifier(span, "x"), OperatorAssign, creation)
	stmt := NewExpressionStatement(span, assignment)

	if s, ok := AsExpressionStatement(stmt); !ok || s != stmt {
		t.Errorf("AsExpressionStatement(stmt) = %v, %t", s, ok)
	}

	if _, ok := AsAssignment(stmt); ok {
		t.Error("AsAssignment(stmt) succeeded, want failure")
	}

	if a, ok := AsAssignment(stmt.Expression); !ok || a != assignment {
		t.Errorf("AsAssignment(expr) = %v, %t", a, ok)
	}

	if c, ok := AsObjectCreation(assignment.Right); !ok || c.ArgumentCount() != 1 {
		t.Errorf("AsObjectCreation(right) = %v, %t", c, ok)
	}

	var nilCreation *ObjectCreationExpression
	if _, ok := AsObjectCreation(nilCreation); ok {
		t.Error("AsObjectCreation(nil) succeeded, want failure")
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var span Span

	creation := NewObjectCreation(span, NewIdentifier(span, "Action"), nil)
	stmt := NewExpressionStatement(span,
		NewAssignment(span, NewMemberAccess(span, NewThis(span), "x"), OperatorAddAssign, creation))
	root := NewCompilationUnit(span, stmt)

	var kinds []Kind

	Inspect(root, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindObjectCreationExpression
	})

	want := []Kind{
		KindCompilationUnit,
		KindExpressionStatement,
		KindAssignmentExpression,
		KindMemberAccessExpression,
		KindThisExpression,
		KindObjectCreationExpression,
	}

	if len(kinds) != len(want) {
		t.Fatalf("Inspect visited %v, want %v", kinds, want)
	}

	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Node %d is %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestLineTable(t *testing.T) {
	t.Parallel()

	src := []byte("ab\ncd\n\nef")
	table := NewLineTable("f.cs", src)

	tests := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
		{100, 4, 3},
	}

	for _, tt := range tests {
		got := table.Position(tt.offset)
		if got.Line != tt.line || got.Column != tt.column {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tt.offset, got.Line, got.Column, tt.line, tt.column)
		}
	}

	if got := table.Position(3).String(); got != "f.cs:2:1" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseAssignOperator(t *testing.T) {
	t.Parallel()

	for token, want := range map[string]AssignOperator{
		"=":  OperatorAssign,
		"+=": OperatorAddAssign,
		"-=": OperatorSubtractAssign,
		"*=": OperatorOther,
	} {
		if got := ParseAssignOperator(token); got != want {
			t.Errorf("ParseAssignOperator(%q) = %s, want %s", token, got, want)
		}
	}
}
