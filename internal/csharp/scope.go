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

import "fillmore-labs.com/redundantdelegate/internal/semantic"

// member is a field, property, event or method of a declared type.
type member struct {
	kind semantic.SymbolKind
	typ  string // declared type text, empty for methods
}

// typeDecl is one declaration of a type. Partial declarations produce one
// typeDecl per part, merged by full name in a [Compilation].
type typeDecl struct {
	name     string // simple name without type parameters
	fullName string // namespace and enclosing types, dot separated
	kind     semantic.TypeKind
	members  map[string]member
}

func newTypeDecl(name, fullName string, kind semantic.TypeKind) *typeDecl {
	return &typeDecl{name: name, fullName: fullName, kind: kind, members: make(map[string]member)}
}

// scope is a lexical scope: a type body or a local variable space.
type scope struct {
	parent *scope
	typ    *typeDecl         // non-nil for type scopes
	locals map[string]string // name → declared type text
}

func newTypeScope(parent *scope, typ *typeDecl) *scope {
	return &scope{parent: parent, typ: typ}
}

func newLocalScope(parent *scope) *scope {
	return &scope{parent: parent, locals: make(map[string]string)}
}

// declare adds a local variable or parameter.
func (s *scope) declare(name, typ string) {
	if s.locals == nil || name == "" || name == "_" {
		return
	}

	s.locals[name] = typ
}

// local returns the declared type of a local variable or parameter visible from s.
func (s *scope) local(name string) (typ string, ok bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.typ != nil {
			// Locals of an enclosing method are not visible in a nested type.
			return "", false
		}

		if typ, ok := sc.locals[name]; ok {
			return typ, true
		}
	}

	return "", false
}

// enclosingTypes yields the type declarations enclosing s, innermost first.
func (s *scope) enclosingTypes(yield func(*typeDecl) bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.typ != nil && !yield(sc.typ) {
			return
		}
	}
}
