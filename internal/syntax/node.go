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

// Package syntax defines a small, immutable syntax tree model shared by the
// front ends and the redundant delegate rule.
//
// Nodes are tagged by [Kind]. Typed views such as [AsAssignment] replace
// unchecked downcasts: they return false when a node has a different kind.
package syntax

// Span is a byte range in a source file.
type Span struct {
	File   string
	Start  int
	Length int
}

// End returns the offset following the span.
func (s Span) End() int { return s.Start + s.Length }

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool { return s.Start <= offset && offset < s.End() }

// Node is an element of a syntax tree.
type Node interface {
	Kind() Kind
	Span() Span
}

// Expr is a [Node] that can appear as an operand.
type Expr interface {
	Node
	exprNode()
}

// CompilationUnit is the root of one source file.
type CompilationUnit struct {
	Nodes []Node
	span  Span
}

// NewCompilationUnit creates a [CompilationUnit] containing the given top-level nodes.
func NewCompilationUnit(span Span, nodes ...Node) *CompilationUnit {
	return &CompilationUnit{Nodes: nodes, span: span}
}

func (*CompilationUnit) Kind() Kind   { return KindCompilationUnit }
func (n *CompilationUnit) Span() Span { return n.span }

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	Expression Expr
	span       Span
}

// NewExpressionStatement creates an [ExpressionStatement].
func NewExpressionStatement(span Span, expr Expr) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr, span: span}
}

func (*ExpressionStatement) Kind() Kind   { return KindExpressionStatement }
func (n *ExpressionStatement) Span() Span { return n.span }

// AssignmentExpression is a simple or compound assignment.
type AssignmentExpression struct {
	Left     Expr
	Right    Expr
	Operator AssignOperator
	span     Span
}

// NewAssignment creates an [AssignmentExpression].
func NewAssignment(span Span, left Expr, op AssignOperator, right Expr) *AssignmentExpression {
	return &AssignmentExpression{Left: left, Right: right, Operator: op, span: span}
}

func (*AssignmentExpression) Kind() Kind   { return KindAssignmentExpression }
func (n *AssignmentExpression) Span() Span { return n.span }
func (*AssignmentExpression) exprNode()    {}

// ObjectCreationExpression constructs a value of Type with Arguments.
type ObjectCreationExpression struct {
	Type      Expr
	Arguments *ArgumentList // nil when written without parentheses
	span      Span
}

// NewObjectCreation creates an [ObjectCreationExpression].
func NewObjectCreation(span Span, typ Expr, args *ArgumentList) *ObjectCreationExpression {
	return &ObjectCreationExpression{Type: typ, Arguments: args, span: span}
}

func (*ObjectCreationExpression) Kind() Kind   { return KindObjectCreationExpression }
func (n *ObjectCreationExpression) Span() Span { return n.span }
func (*ObjectCreationExpression) exprNode()    {}

// ArgumentCount returns the number of constructor arguments.
func (n *ObjectCreationExpression) ArgumentCount() int {
	if n.Arguments == nil {
		return 0
	}

	return len(n.Arguments.Arguments)
}

// ArgumentList is the parenthesized argument list of a creation or invocation.
type ArgumentList struct {
	Arguments []Expr
	span      Span
}

// NewArgumentList creates an [ArgumentList].
func NewArgumentList(span Span, args ...Expr) *ArgumentList {
	return &ArgumentList{Arguments: args, span: span}
}

func (*ArgumentList) Kind() Kind   { return KindArgumentList }
func (n *ArgumentList) Span() Span { return n.span }

// IdentifierName is a simple name, possibly with type arguments.
type IdentifierName struct {
	Name string
	span Span
}

// NewIdentifier creates an [IdentifierName].
func NewIdentifier(span Span, name string) *IdentifierName {
	return &IdentifierName{Name: name, span: span}
}

func (*IdentifierName) Kind() Kind   { return KindIdentifierName }
func (n *IdentifierName) Span() Span { return n.span }
func (*IdentifierName) exprNode()    {}

// MemberAccessExpression selects Name from Expression.
type MemberAccessExpression struct {
	Expression Expr
	Name       string
	span       Span
}

// NewMemberAccess creates a [MemberAccessExpression].
func NewMemberAccess(span Span, expr Expr, name string) *MemberAccessExpression {
	return &MemberAccessExpression{Expression: expr, Name: name, span: span}
}

func (*MemberAccessExpression) Kind() Kind   { return KindMemberAccessExpression }
func (n *MemberAccessExpression) Span() Span { return n.span }
func (*MemberAccessExpression) exprNode()    {}

// ThisExpression refers to the current instance.
type ThisExpression struct {
	span Span
}

// NewThis creates a [ThisExpression].
func NewThis(span Span) *ThisExpression { return &ThisExpression{span: span} }

func (*ThisExpression) Kind() Kind   { return KindThisExpression }
func (n *ThisExpression) Span() Span { return n.span }
func (*ThisExpression) exprNode()    {}

// OtherExpression is any expression the model does not break down further.
type OtherExpression struct {
	Text string
	span Span
}

// NewOther creates an [OtherExpression] for source text.
func NewOther(span Span, text string) *OtherExpression {
	return &OtherExpression{Text: text, span: span}
}

func (*OtherExpression) Kind() Kind   { return KindOtherExpression }
func (n *OtherExpression) Span() Span { return n.span }
func (*OtherExpression) exprNode()    {}

// EventDeclaration declares an event, either field-like or with accessors.
type EventDeclaration struct {
	Name      string
	Type      string
	FieldLike bool
	span      Span
}

// NewEventDeclaration creates an [EventDeclaration].
func NewEventDeclaration(span Span, name, typ string, fieldLike bool) *EventDeclaration {
	return &EventDeclaration{Name: name, Type: typ, FieldLike: fieldLike, span: span}
}

func (n *EventDeclaration) Kind() Kind {
	if n.FieldLike {
		return KindEventFieldDeclaration
	}

	return KindEventDeclaration
}

func (n *EventDeclaration) Span() Span { return n.span }
