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

package goast

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// ConvertedType implements [semantic.Model].
func (t *Tree) ConvertedType(expr syntax.Expr) *semantic.TypeSymbol {
	e, ok := t.exprs[expr]
	if !ok {
		return nil
	}

	typ := t.typeOf(e)
	if typ == nil {
		return nil
	}

	return symbol(typ)
}

func (t *Tree) typeOf(e ast.Expr) types.Type {
	if id, ok := e.(*ast.Ident); ok {
		if obj := t.info.ObjectOf(id); obj != nil {
			if _, ok := obj.(*types.Var); !ok {
				return nil
			}

			return obj.Type()
		}
	}

	return t.info.TypeOf(e)
}

func symbol(typ types.Type) *semantic.TypeSymbol {
	name := types.TypeString(typ, (*types.Package).Name)

	if basic, ok := typ.(*types.Basic); ok && basic.Kind() == types.Invalid {
		return semantic.NewErrorType(name)
	}

	kind := typeKind(typ.Underlying())

	switch typ.(type) {
	case *types.Named, *types.Alias, *types.Basic:
		return semantic.NewNamedType(name, kind)

	case *types.TypeParam:
		return &semantic.TypeSymbol{Name: name, Kind: semantic.TypeParameter, TypeKind: kind}

	case *types.Pointer:
		return &semantic.TypeSymbol{Name: name, Kind: semantic.PointerType, TypeKind: kind}

	case *types.Slice, *types.Array:
		return &semantic.TypeSymbol{Name: name, Kind: semantic.ArrayType, TypeKind: kind}

	default:
		return semantic.NewNamedType(name, kind)
	}
}

func typeKind(u types.Type) semantic.TypeKind {
	switch u := u.(type) {
	case *types.Signature:
		return semantic.TypeKindDelegate
	case *types.Struct:
		return semantic.TypeKindStruct
	case *types.Interface:
		return semantic.TypeKindInterface
	case *types.Pointer:
		return semantic.TypeKindPointer
	case *types.Slice, *types.Array:
		return semantic.TypeKindArray
	case *types.Basic:
		if u.Kind() == types.Invalid {
			return semantic.TypeKindError
		}

		return semantic.TypeKindStruct
	default:
		return semantic.TypeKindClass
	}
}
