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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/redundantdelegate/internal/astutil"
)

func TestSuppresses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:redundantdelegate", true},
		{"// nolint:gosec,RedundantDelegate", true},
		{"//nolint:all", true},
		{"//nolint:gosec", false},
		{"//nolint:RDC0001", true},
		{"//nolint:gosec, rdc0001", true},
		{"//nolint:RDC0002", false},
		{"// a comment", false},
	}

	for _, tt := range tests {
		if got := Suppresses(&ast.Comment{Text: tt.text}, "RDC0001"); got != tt.want {
			t.Errorf("Suppresses(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by test. DO NOT EDIT.

package test

var h, g func()

func _() {
	h = g //nolint:redundantdelegate
	g = h
	h = g //nolint:RDC0001
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	c := NewCurrentFile(fset, f)
	if !c.Valid() || !c.Generated() || c.Handle() == nil {
		t.Fatalf("Got valid %t, generated %t, want generated file", c.Valid(), c.Generated())
	}

	body := f.Decls[1].(*ast.FuncDecl).Body.List

	if !c.NoLintComment(body[0].End(), "RDC0001") {
		t.Error("Expected nolint comment on first assignment")
	}

	if c.NoLintComment(body[1].End(), "RDC0001") {
		t.Error("Unexpected nolint comment on second assignment")
	}

	if !c.NoLintComment(body[2].End(), "RDC0001") {
		t.Error("Expected diagnostic id to suppress third assignment")
	}

	if c.NoLintComment(body[2].End(), "RDC0002") {
		t.Error("Unexpected suppression of other diagnostic id")
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected invalid file for nil")
	}
}
