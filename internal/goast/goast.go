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

// Package goast lowers Go assignments into [syntax] trees and answers type
// queries for them from [types.Info].
//
// A conversion T(f), where T has a function underlying type and the
// function value f is assignable to the assignment target, is the Go
// counterpart of an explicit delegate creation and lowers to an
// [syntax.ObjectCreationExpression]. Parentheses around the converted value
// are dropped, as in the C# lowering.
package goast

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Tree lowers the statements of one file.
type Tree struct {
	info  *types.Info
	file  *token.File
	exprs map[syntax.Expr]ast.Expr
}

var _ semantic.Model = (*Tree)(nil)

// New creates a [Tree] for the file handle using the type information of its package.
func New(info *types.Info, file *token.File) *Tree {
	return &Tree{info: info, file: file, exprs: make(map[syntax.Expr]ast.Expr)}
}

// Statement lowers an assignment statement.
//
// Only a plain or compound assignment with one operand on each side lowers
// to an [syntax.AssignmentExpression]; short variable declarations and tuple
// assignments lower to opaque expressions.
func (t *Tree) Statement(stmt *ast.AssignStmt) *syntax.ExpressionStatement {
	span := t.span(stmt)

	op, ok := assignOperator(stmt.Tok)
	if !ok || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return syntax.NewExpressionStatement(span, syntax.NewOther(span, stmt.Tok.String()))
	}

	left := t.expr(stmt.Lhs[0])
	right := t.value(stmt.Rhs[0], stmt.Lhs[0])

	return syntax.NewExpressionStatement(span, syntax.NewAssignment(span, left, op, right))
}

func assignOperator(tok token.Token) (syntax.AssignOperator, bool) {
	switch tok {
	case token.ASSIGN:
		return syntax.OperatorAssign, true
	case token.ADD_ASSIGN:
		return syntax.OperatorAddAssign, true
	case token.SUB_ASSIGN:
		return syntax.OperatorSubtractAssign, true
	case token.DEFINE:
		return syntax.OperatorOther, false
	default:
		if tok.IsOperator() {
			return syntax.OperatorOther, true
		}

		return syntax.OperatorOther, false
	}
}

// value lowers the right side of an assignment to target.
func (t *Tree) value(e, target ast.Expr) syntax.Expr {
	if call, ok := ast.Unparen(e).(*ast.CallExpr); ok && t.isRedundantConversion(call, target) {
		typ := t.expr(call.Fun)
		args := syntax.NewArgumentList(t.argsSpan(call), t.expr(call.Args[0]))

		return t.record(syntax.NewObjectCreation(t.span(call), typ, args), call)
	}

	return t.expr(e)
}

// isRedundantConversion reports whether call converts a function value to a
// function type where the value could be assigned to target directly.
func (t *Tree) isRedundantConversion(call *ast.CallExpr, target ast.Expr) bool {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return false
	}

	fun, ok := t.info.Types[call.Fun]
	if !ok || !fun.IsType() {
		return false
	}

	if _, ok := fun.Type.Underlying().(*types.Signature); !ok {
		return false
	}

	arg, ok := t.info.Types[call.Args[0]]
	if !ok || !arg.IsValue() || arg.IsNil() {
		return false
	}

	if _, ok := arg.Type.Underlying().(*types.Signature); !ok {
		return false
	}

	targetType := t.info.TypeOf(target)
	if targetType == nil {
		return false
	}

	// Assigning to an interface stores a different dynamic type.
	if _, ok := targetType.Underlying().(*types.Signature); !ok {
		return false
	}

	return types.AssignableTo(arg.Type, targetType)
}

func (t *Tree) expr(e ast.Expr) syntax.Expr {
	span := t.span(e)

	switch e := e.(type) {
	case *ast.Ident:
		return t.record(syntax.NewIdentifier(span, e.Name), e)

	case *ast.SelectorExpr:
		return t.record(syntax.NewMemberAccess(span, t.expr(e.X), e.Sel.Name), e)

	case *ast.ParenExpr:
		return t.record(syntax.NewOther(span, "()"), e)

	default:
		return t.record(syntax.NewOther(span, ""), e)
	}
}

func (t *Tree) record(s syntax.Expr, e ast.Expr) syntax.Expr {
	t.exprs[s] = e

	return s
}

// Node returns the Go expression s was lowered from.
func (t *Tree) Node(s syntax.Expr) (ast.Expr, bool) {
	e, ok := t.exprs[s]

	return e, ok
}

func (t *Tree) span(n ast.Node) syntax.Span {
	start, end := t.file.Offset(n.Pos()), t.file.Offset(n.End())

	return syntax.Span{File: t.file.Name(), Start: start, Length: end - start}
}

func (t *Tree) argsSpan(call *ast.CallExpr) syntax.Span {
	start, end := t.file.Offset(call.Lparen), t.file.Offset(call.Rparen)+1

	return syntax.Span{File: t.file.Name(), Start: start, Length: end - start}
}

// Range converts a span of this file back to token positions.
func (t *Tree) Range(s syntax.Span) (pos, end token.Pos) {
	return t.file.Pos(s.Start), t.file.Pos(s.End())
}
