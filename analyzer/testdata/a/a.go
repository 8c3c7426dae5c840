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

package a

type Handler func(string)

type Other func(string)

type Server struct {
	onEvent Handler
}

func (s *Server) log(string) {}

func handle(string) {}

func redundant(s *Server) Handler {
	var h Handler

	h = Handler(handle) // want "Redundant explicit delegate declaration"

	s.onEvent = Handler(s.log) // want "Redundant explicit delegate declaration"

	h = Handler(func(string) {}) // want "Redundant explicit delegate declaration"

	h = (Handler(handle)) // want "Redundant explicit delegate declaration"

	return h
}

func required(o Other) (Handler, Handler, any) {
	var (
		h Handler
		x any
	)

	h = handle

	h = Handler(o)

	x = Handler(handle)

	k := Handler(handle)

	h = Handler(handle) //nolint:redundantdelegate

	h = Handler(handle) //nolint:RDC0001

	_ = Handler(handle)

	h, k = Handler(handle), Handler(handle)

	return h, k, x
}
