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
	"maps"
	"strings"

	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Compilation is the set of files analyzed together. It merges the type
// declarations of all files, so members of partial types declared in other
// files are visible.
//
// A Compilation is read-only after [NewCompilation] and safe for concurrent use.
type Compilation struct {
	files    []*File
	types    map[string]*typeDecl   // by full name
	bySimple map[string][]*typeDecl // by simple name
}

// NewCompilation indexes the declarations of files.
func NewCompilation(files ...*File) *Compilation {
	c := &Compilation{
		files:    files,
		types:    make(map[string]*typeDecl),
		bySimple: make(map[string][]*typeDecl),
	}

	for _, f := range files {
		for _, t := range f.types {
			merged, ok := c.types[t.fullName]
			if !ok {
				merged = newTypeDecl(t.name, t.fullName, t.kind)
				c.types[t.fullName] = merged
				c.bySimple[t.name] = append(c.bySimple[t.name], merged)
			}

			maps.Copy(merged.members, t.members)
		}
	}

	return c
}

// Files returns the files of the compilation.
func (c *Compilation) Files() []*File { return c.files }

// Model returns the [semantic.Model] for f.
func (c *Compilation) Model(f *File) *Model {
	return &Model{compilation: c, file: f}
}

// Model resolves expression types of one file.
type Model struct {
	compilation *Compilation
	file        *File
}

var _ semantic.Model = (*Model)(nil)

// ConvertedType implements [semantic.Model].
func (m *Model) ConvertedType(expr syntax.Expr) *semantic.TypeSymbol {
	sc, ok := m.file.scopes[expr]
	if !ok {
		return nil
	}

	typ, ok := m.typeOf(expr, sc)
	if !ok {
		return nil
	}

	return m.compilation.bind(typ)
}

// typeOf returns the declared type text of expr.
func (m *Model) typeOf(expr syntax.Expr, sc *scope) (string, bool) {
	switch e := expr.(type) {
	case *syntax.IdentifierName:
		if typ, ok := sc.local(e.Name); ok {
			return typ, typ != ""
		}

		for t := range sc.enclosingTypes {
			if mem, ok := m.compilation.member(t.fullName, e.Name); ok {
				return mem.typ, mem.typ != ""
			}
		}

	case *syntax.ThisExpression:
		for t := range sc.enclosingTypes {
			return t.fullName, true
		}

	case *syntax.MemberAccessExpression:
		owner, ok := m.ownerType(e.Expression, sc)
		if !ok {
			return "", false
		}

		if mem, ok := m.compilation.member(owner.fullName, e.Name); ok {
			return mem.typ, mem.typ != ""
		}

	case *syntax.AssignmentExpression:
		return m.typeOf(e.Left, sc)

	case *syntax.ObjectCreationExpression:
		if id, ok := e.Type.(*syntax.IdentifierName); ok {
			return id.Name, true
		}
	}

	return "", false
}

// ownerType resolves the declared type that the left side of a member access refers to.
func (m *Model) ownerType(expr syntax.Expr, sc *scope) (*typeDecl, bool) {
	if id, ok := expr.(*syntax.IdentifierName); ok {
		// A variable shadows a type of the same name.
		if _, ok := m.typeOf(id, sc); !ok {
			return m.compilation.lookup(id.Name)
		}
	}

	typ, ok := m.typeOf(expr, sc)
	if !ok {
		return nil, false
	}

	if t, ok := m.compilation.types[typ]; ok {
		return t, true
	}

	return m.compilation.lookup(typ)
}

func (c *Compilation) member(fullName, name string) (member, bool) {
	t, ok := c.types[fullName]
	if !ok {
		return member{}, false
	}

	mem, ok := t.members[name]

	return mem, ok
}

// lookup finds a declared type by possibly qualified, possibly generic name.
func (c *Compilation) lookup(name string) (*typeDecl, bool) {
	if t, ok := c.types[name]; ok {
		return t, true
	}

	candidates := c.bySimple[simpleName(name)]
	if len(candidates) == 0 {
		return nil, false
	}

	return candidates[0], true
}

// bind maps declared type text to a type symbol.
func (c *Compilation) bind(typ string) *semantic.TypeSymbol {
	typ = compact(typ)

	switch {
	case typ == "":
		return nil

	case typ == "var":
		return semantic.NewErrorType(typ)

	case typ == "dynamic":
		return &semantic.TypeSymbol{Name: typ, Kind: semantic.DynamicType, TypeKind: semantic.TypeKindDynamic}

	case strings.HasSuffix(typ, "?"):
		return c.bind(strings.TrimSuffix(typ, "?"))

	case strings.HasSuffix(typ, "]"):
		return &semantic.TypeSymbol{Name: typ, Kind: semantic.ArrayType, TypeKind: semantic.TypeKindArray}

	case strings.HasSuffix(typ, "*"):
		return &semantic.TypeSymbol{Name: typ, Kind: semantic.PointerType, TypeKind: semantic.TypeKindPointer}
	}

	if t, ok := c.lookup(typ); ok {
		return semantic.NewNamedType(typ, t.kind)
	}

	simple := simpleName(typ)

	if kind, ok := predefinedTypes[simple]; ok {
		return semantic.NewNamedType(typ, kind)
	}

	if wellKnownDelegates[simple] {
		return semantic.NewNamedType(typ, semantic.TypeKindDelegate)
	}

	return semantic.NewNamedType(typ, semantic.TypeKindUnknown)
}

// simpleName strips namespace qualifiers and type arguments:
// "System.Collections.Generic.List<int>" becomes "List".
func simpleName(typ string) string {
	if i := strings.IndexByte(typ, '<'); i >= 0 {
		typ = typ[:i]
	}

	if i := strings.LastIndexAny(typ, ".:"); i >= 0 {
		typ = typ[i+1:]
	}

	return typ
}

var predefinedTypes = map[string]semantic.TypeKind{
	"bool": semantic.TypeKindStruct, "byte": semantic.TypeKindStruct, "sbyte": semantic.TypeKindStruct,
	"char": semantic.TypeKindStruct, "decimal": semantic.TypeKindStruct, "double": semantic.TypeKindStruct,
	"float": semantic.TypeKindStruct, "int": semantic.TypeKindStruct, "uint": semantic.TypeKindStruct,
	"long": semantic.TypeKindStruct, "ulong": semantic.TypeKindStruct, "short": semantic.TypeKindStruct,
	"ushort": semantic.TypeKindStruct, "nint": semantic.TypeKindStruct, "nuint": semantic.TypeKindStruct,
	"object": semantic.TypeKindClass, "string": semantic.TypeKindClass,
	"Delegate": semantic.TypeKindClass, "MulticastDelegate": semantic.TypeKindClass,
}

var wellKnownDelegates = map[string]bool{
	"Action":                                true,
	"Func":                                  true,
	"Predicate":                             true,
	"Comparison":                            true,
	"Converter":                             true,
	"EventHandler":                          true,
	"AsyncCallback":                         true,
	"ThreadStart":                           true,
	"ParameterizedThreadStart":              true,
	"TimerCallback":                         true,
	"WaitCallback":                          true,
	"SendOrPostCallback":                    true,
	"ResolveEventHandler":                   true,
	"UnhandledExceptionEventHandler":        true,
	"PropertyChangedEventHandler":           true,
	"PropertyChangingEventHandler":          true,
	"NotifyCollectionChangedEventHandler":   true,
	"RoutedEventHandler":                    true,
	"ElapsedEventHandler":                   true,
	"FileSystemEventHandler":                true,
	"RenamedEventHandler":                   true,
	"ErrorEventHandler":                     true,
	"DataReceivedEventHandler":              true,
	"ConsoleCancelEventHandler":             true,
	"CancelEventHandler":                    true,
	"MouseEventHandler":                     true,
	"KeyEventHandler":                       true,
	"PaintEventHandler":                     true,
	"DoWorkEventHandler":                    true,
	"RunWorkerCompletedEventHandler":        true,
	"ProgressChangedEventHandler":           true,
	"DependencyPropertyChangedEventHandler": true,
}
