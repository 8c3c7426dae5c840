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

package rule

import (
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Match decomposes an expression statement into an assignment whose right
// operand creates an object with exactly one argument.
//
// The operator is not inspected, so '=', '+=' and '-=' all match.
func Match(node syntax.Node) (*syntax.AssignmentExpression, bool) {
	stmt, ok := syntax.AsExpressionStatement(node)
	if !ok {
		return nil, false
	}

	assignment, ok := syntax.AsAssignment(stmt.Expression)
	if !ok {
		return nil, false
	}

	creation, ok := syntax.AsObjectCreation(assignment.Right)
	if !ok || creation.ArgumentCount() != 1 {
		return nil, false
	}

	return assignment, true
}

// Resolve reports whether the converted type of left is known and passes the event guard.
func Resolve(model semantic.Model, left syntax.Expr) bool {
	if model == nil || left == nil {
		return false
	}

	typ := model.ConvertedType(left)
	if typ == nil || typ.IsError() {
		return false
	}

	// A symbol kind never equals a syntax kind: the event guard does not trigger,
	// and event subscriptions are reported like any other assignment.
	if any(typ.Kind) == any(syntax.KindEventDeclaration) {
		return false
	}

	return true
}

// Emit creates the diagnostic for a matched assignment, located at the assignment expression.
func Emit(d *Descriptor, assignment *syntax.AssignmentExpression) Diagnostic {
	return NewDiagnostic(d, assignment.Span())
}
