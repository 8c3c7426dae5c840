// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the redundantdelegate static analysis pass.
//
// # Overview
//
// redundantdelegate reports assignments that convert a function value to the
// function type of the assignment target, the Go form of an explicit
// delegate creation.
//
// # Example
//
// Reported:
//
//	type Handler func(event string)
//
//	func (s *Server) init() {
//	    s.onEvent = Handler(s.log)
//	}
//
// Equivalent without the conversion:
//
//	func (s *Server) init() {
//	    s.onEvent = s.log
//	}
//
// Conversions are only reported when the value is assignable to the target
// without them. Assignments to interface typed targets, short variable
// declarations and tuple assignments are not reported.
//
// # Flags
//
//   - -generated: also check generated files
//   - -nolint: honor //nolint:redundantdelegate comments (default true)
package analyzer
