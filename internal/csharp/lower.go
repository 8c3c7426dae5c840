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
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// lowering converts a tree-sitter C# tree into [syntax] nodes while
// collecting declarations and scopes.
type lowering struct {
	filename      string
	src           []byte
	namespace     string
	fileGenerated bool

	nodes       []syntax.Node
	scopes      map[syntax.Node]*scope
	inGenerated map[syntax.Node]bool
	types       []*typeDecl
}

func newLowering(filename string, src []byte) *lowering {
	return &lowering{
		filename:      filename,
		src:           src,
		fileGenerated: generatedFileName(filename),
		scopes:        make(map[syntax.Node]*scope),
		inGenerated:   make(map[syntax.Node]bool),
	}
}

func (l *lowering) lowerFile(root sitter.Node) {
	if !l.fileGenerated {
		l.fileGenerated = l.autoGeneratedHeader(root)
	}

	l.walk(root, newLocalScope(nil), false)
}

// Declaration node types with their type kinds.
var typeDeclarations = map[string]semantic.TypeKind{
	"class_declaration":         semantic.TypeKindClass,
	"record_declaration":        semantic.TypeKindClass,
	"struct_declaration":        semantic.TypeKindStruct,
	"record_struct_declaration": semantic.TypeKindStruct,
	"interface_declaration":     semantic.TypeKindInterface,
	"enum_declaration":          semantic.TypeKindEnum,
	"delegate_declaration":      semantic.TypeKindDelegate,
}

// Node types that open a new local variable space.
var localScopes = map[string]bool{
	"method_declaration":              true,
	"constructor_declaration":         true,
	"destructor_declaration":          true,
	"operator_declaration":            true,
	"conversion_operator_declaration": true,
	"indexer_declaration":             true,
	"accessor_declaration":            true,
	"local_function_statement":        true,
	"lambda_expression":               true,
	"anonymous_method_expression":     true,
	"block":                           true,
	"for_statement":                   true,
	"foreach_statement":               true,
	"using_statement":                 true,
	"catch_clause":                    true,
	"switch_section":                  true,
}

// walk lowers n and its descendants.
func (l *lowering) walk(n sitter.Node, sc *scope, generated bool) {
	if n.IsNull() {
		return
	}

	typ := n.Type()

	switch typ {
	case "namespace_declaration":
		l.walkNamespace(n, sc, generated)
		return

	case "file_scoped_namespace_declaration":
		// Applies to the following declarations of the compilation unit.
		l.namespace = qualify(l.namespace, l.text(n.ChildByFieldName("name")))

	case "expression_statement":
		l.lowerStatement(n, sc, generated)

	case "field_declaration", "event_field_declaration":
		l.declareFields(n, sc)

	case "event_declaration", "property_declaration":
		l.declareMember(n, sc)

	case "method_declaration":
		if t := sc.typ; t != nil {
			t.members[l.text(n.ChildByFieldName("name"))] = member{kind: semantic.Method}
		}

	case "local_declaration_statement", "variable_declaration", "declaration_expression", "parameter":
		l.declareLocals(n, sc, generated)
		return
	}

	if kind, ok := typeDeclarations[typ]; ok {
		l.walkType(n, sc, kind, generated)
		return
	}

	if localScopes[typ] {
		sc = newLocalScope(sc)
		generated = generated || l.hasGeneratedAttribute(n)

		if typ == "foreach_statement" {
			sc.declare(l.text(n.ChildByFieldName("left")), l.typeText(n.ChildByFieldName("type"), sitter.Node{}))
		}
	}

	for i := range n.NamedChildCount() {
		l.walk(n.NamedChild(i), sc, generated)
	}
}

func (l *lowering) walkNamespace(n sitter.Node, sc *scope, generated bool) {
	outer := l.namespace
	l.namespace = qualify(outer, l.text(n.ChildByFieldName("name")))

	for i := range n.NamedChildCount() {
		l.walk(n.NamedChild(i), sc, generated)
	}

	l.namespace = outer
}

func (l *lowering) walkType(n sitter.Node, sc *scope, kind semantic.TypeKind, generated bool) {
	name := l.text(n.ChildByFieldName("name"))

	prefix := l.namespace
	for t := range sc.enclosingTypes {
		prefix = t.fullName
		break
	}

	decl := newTypeDecl(name, qualify(prefix, name), kind)
	l.types = append(l.types, decl)

	if kind == semantic.TypeKindDelegate {
		return
	}

	sc = newTypeScope(sc, decl)
	generated = generated || l.hasGeneratedAttribute(n)

	for i := range n.NamedChildCount() {
		l.walk(n.NamedChild(i), sc, generated)
	}
}

// lowerStatement records an expression statement.
func (l *lowering) lowerStatement(n sitter.Node, sc *scope, generated bool) {
	exprNode, ok := firstNamedChild(n)
	if !ok || exprNode.Type() == "comment" {
		return
	}

	expr := l.lowerExpr(exprNode, sc)
	stmt := syntax.NewExpressionStatement(l.span(n), expr)

	l.nodes = append(l.nodes, stmt)
	l.scopes[stmt] = sc

	if generated {
		l.inGenerated[stmt] = true
	}
}

// lowerExpr converts an expression, recording the scope of every lowered node.
func (l *lowering) lowerExpr(n sitter.Node, sc *scope) syntax.Expr {
	if n.IsNull() {
		return syntax.NewOther(syntax.Span{File: l.filename}, "")
	}

	var expr syntax.Expr

	span := l.span(n)

	switch n.Type() {
	case "assignment_expression":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left.IsNull() || right.IsNull() {
			expr = syntax.NewOther(span, l.text(n))
			break
		}

		op := strings.TrimSpace(string(l.src[left.EndByte():right.StartByte()]))
		expr = syntax.NewAssignment(span, l.lowerExpr(left, sc), syntax.ParseAssignOperator(op), l.lowerExpr(unparen(right), sc))

	case "object_creation_expression":
		typ := n.ChildByFieldName("type")

		var args *syntax.ArgumentList
		if list, ok := l.argumentList(n); ok {
			args = l.lowerArguments(list, sc)
		}

		expr = syntax.NewObjectCreation(span, l.lowerExpr(typ, sc), args)

	case "member_access_expression":
		inner := n.ChildByFieldName("expression")
		name := n.ChildByFieldName("name")

		if inner.IsNull() || name.IsNull() {
			expr = syntax.NewOther(span, l.text(n))
			break
		}

		expr = syntax.NewMemberAccess(span, l.lowerExpr(inner, sc), l.text(name))

	case "identifier", "generic_name", "qualified_name", "predefined_type":
		expr = syntax.NewIdentifier(span, compact(l.text(n)))

	case "this_expression", "this":
		expr = syntax.NewThis(span)

	default:
		expr = syntax.NewOther(span, l.text(n))
	}

	l.scopes[expr] = sc

	return expr
}

// unparen strips enclosing parentheses from an assigned value.
func unparen(n sitter.Node) sitter.Node {
	for n.Type() == "parenthesized_expression" {
		inner, ok := firstNamedChild(n)
		if !ok {
			break
		}

		n = inner
	}

	return n
}

func (l *lowering) argumentList(n sitter.Node) (sitter.Node, bool) {
	if list := n.ChildByFieldName("arguments"); !list.IsNull() {
		return list, true
	}

	for i := range n.NamedChildCount() {
		if c := n.NamedChild(i); c.Type() == "argument_list" {
			return c, true
		}
	}

	return sitter.Node{}, false
}

func (l *lowering) lowerArguments(list sitter.Node, sc *scope) *syntax.ArgumentList {
	var args []syntax.Expr

	for i := range list.NamedChildCount() {
		arg := list.NamedChild(i)
		if arg.Type() != "argument" {
			continue
		}

		// The value is the last named child, after an optional name and modifier.
		value, ok := lastNamedChild(arg)
		if !ok {
			value = arg
		}

		args = append(args, l.lowerExpr(value, sc))
	}

	argList := syntax.NewArgumentList(l.span(list), args...)
	l.scopes[argList] = sc

	return argList
}

// declareFields records the variables of a field or field-like event declaration.
func (l *lowering) declareFields(n sitter.Node, sc *scope) {
	if sc.typ == nil {
		return
	}

	kind := semantic.Field
	if n.Type() == "event_field_declaration" {
		kind = semantic.Event
	}

	decl, ok := childOfType(n, "variable_declaration")
	if !ok {
		return
	}

	typ := l.typeText(decl.ChildByFieldName("type"), sitter.Node{})

	for i := range decl.NamedChildCount() {
		d := decl.NamedChild(i)
		if d.Type() != "variable_declarator" {
			continue
		}

		name := l.declaratorName(d)
		sc.typ.members[name] = member{kind: kind, typ: typ}

		if kind == semantic.Event {
			l.nodes = append(l.nodes, syntax.NewEventDeclaration(l.span(n), name, typ, true))
		}
	}
}

// declareMember records a property or an event with accessors.
func (l *lowering) declareMember(n sitter.Node, sc *scope) {
	if sc.typ == nil {
		return
	}

	name := l.text(n.ChildByFieldName("name"))
	typ := l.typeText(n.ChildByFieldName("type"), sitter.Node{})

	kind := semantic.Property
	if n.Type() == "event_declaration" {
		kind = semantic.Event
		l.nodes = append(l.nodes, syntax.NewEventDeclaration(l.span(n), name, typ, false))
	}

	sc.typ.members[name] = member{kind: kind, typ: typ}
}

// declareLocals records locals and parameters in sc and lowers statements nested in initializers.
func (l *lowering) declareLocals(n sitter.Node, sc *scope, generated bool) {
	switch n.Type() {
	case "local_declaration_statement":
		if decl, ok := childOfType(n, "variable_declaration"); ok {
			l.declareLocals(decl, sc, generated)
		}

	case "variable_declaration":
		typeNode := n.ChildByFieldName("type")

		for i := range n.NamedChildCount() {
			d := n.NamedChild(i)
			if d.Type() != "variable_declarator" {
				continue
			}

			init, _ := declaratorInitializer(d)
			sc.declare(l.declaratorName(d), l.typeText(typeNode, init))

			if !init.IsNull() {
				l.walk(init, sc, generated)
			}
		}

	case "declaration_expression", "parameter":
		sc.declare(l.text(n.ChildByFieldName("name")), l.typeText(n.ChildByFieldName("type"), sitter.Node{}))
	}
}

// typeText returns the declared type, inferring 'var' from an object creation or cast initializer.
func (l *lowering) typeText(typeNode, init sitter.Node) string {
	if typeNode.IsNull() {
		return ""
	}

	typ := compact(l.text(typeNode))
	if typ != "var" || init.IsNull() {
		return typ
	}

	switch init.Type() {
	case "object_creation_expression", "cast_expression", "array_creation_expression":
		if t := init.ChildByFieldName("type"); !t.IsNull() {
			return compact(l.text(t))
		}
	}

	return typ
}

func (l *lowering) declaratorName(d sitter.Node) string {
	if name := d.ChildByFieldName("name"); !name.IsNull() {
		return l.text(name)
	}

	if id, ok := childOfType(d, "identifier"); ok {
		return l.text(id)
	}

	return ""
}

// declaratorInitializer returns the initializer expression of a variable declarator.
func declaratorInitializer(d sitter.Node) (sitter.Node, bool) {
	name := d.ChildByFieldName("name")

	for i := range d.NamedChildCount() {
		c := d.NamedChild(i)

		switch {
		case c.Type() == "equals_value_clause":
			return firstNamedChild(c)

		case c.Type() == "bracketed_argument_list", c.Type() == "identifier" && c.StartByte() == name.StartByte():
			continue

		case name.IsNull() && i == 0:
			continue // the name in grammars without field names

		default:
			return c, true
		}
	}

	return sitter.Node{}, false
}

func (l *lowering) span(n sitter.Node) syntax.Span {
	start, end := int(n.StartByte()), int(n.EndByte())

	return syntax.Span{File: l.filename, Start: start, Length: end - start}
}

func (l *lowering) text(n sitter.Node) string {
	if n.IsNull() {
		return ""
	}

	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(l.src) || start > end {
		return ""
	}

	return string(l.src[start:end])
}

func firstNamedChild(n sitter.Node) (sitter.Node, bool) {
	if n.NamedChildCount() == 0 {
		return sitter.Node{}, false
	}

	return n.NamedChild(0), true
}

func lastNamedChild(n sitter.Node) (last sitter.Node, ok bool) {
	for i := range n.NamedChildCount() {
		last, ok = n.NamedChild(i), true
	}

	return last, ok
}

func childOfType(n sitter.Node, typ string) (sitter.Node, bool) {
	for i := range n.NamedChildCount() {
		if c := n.NamedChild(i); c.Type() == typ {
			return c, true
		}
	}

	return sitter.Node{}, false
}

// qualify joins a name to a dot-separated prefix.
func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}

	if name == "" {
		return prefix
	}

	return prefix + "." + name
}

// compact removes white space from type text.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
