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

// Package rule implements the redundant delegate creation check.
//
// # Overview
//
// The rule flags expression statements of the form
//
//	target = new DelegateType(handler);
//	target += new DelegateType(handler);
//
// because the method group handler can be assigned directly:
//
//	target = handler;
//	target += handler;
//
// # Pipeline
//
// A host calls [Rule.Actions] once and invokes the returned handlers for
// every node of the registered kinds. Each invocation runs four stateless
// steps:
//
//   - NodeFilter: skip generated code ([Rule.Analyze])
//   - PatternMatcher: statement → assignment → object creation with exactly one argument ([Match])
//   - TypeResolver: the left operand's converted type must resolve ([Resolve])
//   - DiagnosticEmitter: a diagnostic spanning the assignment expression ([Emit])
//
// Any failing step yields no diagnostic. A [Rule] is immutable and safe for
// concurrent use.
package rule

import (
	"fillmore-labs.com/redundantdelegate/internal/semantic"
	"fillmore-labs.com/redundantdelegate/internal/syntax"
)

// Context is the host-supplied view of one rule invocation.
type Context interface {
	// Node is the syntax node the action was registered for.
	Node() syntax.Node
	// SemanticModel answers type queries for the node's tree.
	SemanticModel() semantic.Model
	// IsGeneratedCode reports whether the node originates from generated code.
	IsGeneratedCode() bool
}

// Handler evaluates one node, returning a diagnostic when the rule matches.
type Handler func(ctx Context) (Diagnostic, bool)

// Action binds a [Handler] to a node kind.
type Action struct {
	Kind    syntax.Kind
	Handler Handler
}

// Rule is the redundant delegate creation check.
type Rule struct {
	descriptor *Descriptor
}

// New creates a [Rule] reporting with the given descriptor.
// A nil descriptor selects [DefaultDescriptor].
func New(d *Descriptor) *Rule {
	if d == nil {
		d = DefaultDescriptor()
	}

	return &Rule{descriptor: d}
}

// Descriptor returns the descriptor used for diagnostics.
func (r *Rule) Descriptor() *Descriptor { return r.descriptor }

// Actions returns the node kinds the rule wants to receive together with their handlers.
func (r *Rule) Actions() []Action {
	return []Action{{Kind: syntax.KindExpressionStatement, Handler: r.Analyze}}
}

// Analyze evaluates an expression statement.
func (r *Rule) Analyze(ctx Context) (Diagnostic, bool) {
	if ctx.IsGeneratedCode() {
		return Diagnostic{}, false
	}

	assignment, ok := Match(ctx.Node())
	if !ok {
		return Diagnostic{}, false
	}

	if !Resolve(ctx.SemanticModel(), assignment.Left) {
		return Diagnostic{}, false
	}

	return Emit(r.descriptor, assignment), true
}
