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

package syntax

// AsExpressionStatement returns n as an [ExpressionStatement] when it is one.
func AsExpressionStatement(n Node) (*ExpressionStatement, bool) {
	s, ok := n.(*ExpressionStatement)
	return s, ok && s != nil
}

// AsAssignment returns n as an [AssignmentExpression] when it is one.
func AsAssignment(n Node) (*AssignmentExpression, bool) {
	a, ok := n.(*AssignmentExpression)
	return a, ok && a != nil
}

// AsObjectCreation returns n as an [ObjectCreationExpression] when it is one.
func AsObjectCreation(n Node) (*ObjectCreationExpression, bool) {
	c, ok := n.(*ObjectCreationExpression)
	return c, ok && c != nil
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var children []Node

	add := func(c Node) {
		if !isNil(c) {
			children = append(children, c)
		}
	}

	switch n := n.(type) {
	case *CompilationUnit:
		for _, c := range n.Nodes {
			add(c)
		}

	case *ExpressionStatement:
		add(n.Expression)

	case *AssignmentExpression:
		add(n.Left)
		add(n.Right)

	case *ObjectCreationExpression:
		add(n.Type)

		if n.Arguments != nil {
			add(n.Arguments)
		}

	case *ArgumentList:
		for _, c := range n.Arguments {
			add(c)
		}

	case *MemberAccessExpression:
		add(n.Expression)
	}

	return children
}

// Inspect traverses the tree rooted at n in preorder, calling f for each node.
// When f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}

	switch n := n.(type) {
	case *CompilationUnit:
		return n == nil
	case *ExpressionStatement:
		return n == nil
	case *AssignmentExpression:
		return n == nil
	case *ObjectCreationExpression:
		return n == nil
	case *ArgumentList:
		return n == nil
	case *IdentifierName:
		return n == nil
	case *MemberAccessExpression:
		return n == nil
	case *ThisExpression:
		return n == nil
	case *OtherExpression:
		return n == nil
	case *EventDeclaration:
		return n == nil
	}

	return false
}
