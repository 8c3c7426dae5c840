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

// Package semantic describes the type information a front end supplies for
// syntax nodes.
package semantic

import (
	"log/slog"

	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// SymbolKind is the category of a resolved symbol.
//
// It is unrelated to [syntax.Kind], which categorizes syntax nodes.
type SymbolKind uint8

//go:generate go tool stringer -type SymbolKind

const (
	Alias SymbolKind = iota
	ArrayType
	DynamicType
	ErrorType
	Event
	Field
	Label
	Local
	Method
	NamedType
	Namespace
	Parameter
	PointerType
	Property
	TypeParameter
)

// TypeKind classifies a type symbol.
type TypeKind uint8

//go:generate go tool stringer -type TypeKind -trimprefix TypeKind

const (
	TypeKindUnknown TypeKind = iota
	TypeKindClass
	TypeKindStruct
	TypeKindInterface
	TypeKindEnum
	TypeKindDelegate
	TypeKindArray
	TypeKindPointer
	TypeKindDynamic
	TypeKindError
)

// TypeSymbol is a resolved type.
type TypeSymbol struct {
	Name     string
	Kind     SymbolKind
	TypeKind TypeKind
}

// NewNamedType returns a [NamedType] symbol.
func NewNamedType(name string, kind TypeKind) *TypeSymbol {
	return &TypeSymbol{Name: name, Kind: NamedType, TypeKind: kind}
}

// NewErrorType returns an [ErrorType] symbol for a type that could not be bound.
func NewErrorType(name string) *TypeSymbol {
	return &TypeSymbol{Name: name, Kind: ErrorType, TypeKind: TypeKindError}
}

// IsError reports whether t is an error type.
func (t *TypeSymbol) IsError() bool {
	return t != nil && (t.Kind == ErrorType || t.TypeKind == TypeKindError)
}

// IsDelegate reports whether t is a delegate type.
func (t *TypeSymbol) IsDelegate() bool {
	return t != nil && t.TypeKind == TypeKindDelegate
}

// LogValue implements [slog.LogValuer].
func (t *TypeSymbol) LogValue() slog.Value {
	if t == nil {
		return slog.StringValue("<nil>")
	}

	return slog.GroupValue(
		slog.String("name", t.Name),
		slog.String("kind", t.Kind.String()),
		slog.String("type", t.TypeKind.String()),
	)
}

// Model answers type queries for the expressions of one syntax tree.
//
// Implementations must be safe for concurrent use.
type Model interface {
	// ConvertedType returns the type expr is converted to in its context,
	// or nil when it cannot be resolved.
	ConvertedType(expr syntax.Expr) *TypeSymbol
}

// ModelFunc adapts a function to the [Model] interface.
type ModelFunc func(expr syntax.Expr) *TypeSymbol

// ConvertedType calls f(expr).
func (f ModelFunc) ConvertedType(expr syntax.Expr) *TypeSymbol { return f(expr) }
