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

// Kind tags the syntactic category of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind

const (
	KindInvalid Kind = iota
	KindCompilationUnit
	KindExpressionStatement
	KindAssignmentExpression
	KindObjectCreationExpression
	KindArgumentList
	KindIdentifierName
	KindMemberAccessExpression
	KindThisExpression
	KindEventDeclaration
	KindEventFieldDeclaration
	KindOtherExpression
)

// AssignOperator is the operator of an [AssignmentExpression].
type AssignOperator uint8

//go:generate go tool stringer -type AssignOperator -linecomment

const (
	OperatorOther          AssignOperator = iota // ?=
	OperatorAssign                               // =
	OperatorAddAssign                            // +=
	OperatorSubtractAssign                       // -=
)

// ParseAssignOperator maps an operator token to an [AssignOperator].
func ParseAssignOperator(token string) AssignOperator {
	switch token {
	case "=":
		return OperatorAssign
	case "+=":
		return OperatorAddAssign
	case "-=":
		return OperatorSubtractAssign
	default:
		return OperatorOther
	}
}
