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
	"path/filepath"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// generatedSuffixes are file name endings used by code generators.
var generatedSuffixes = [...]string{
	".designer.cs",
	".generated.cs",
	".g.cs",
	".g.i.cs",
}

// generatedFileName reports whether the file name follows a generated code convention.
func generatedFileName(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))

	if strings.HasPrefix(base, "temporarygeneratedfile_") {
		return true
	}

	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	return false
}

// autoGeneratedHeader reports whether the comments leading the file contain an auto-generated marker.
func (l *lowering) autoGeneratedHeader(root sitter.Node) bool {
	for i := range root.NamedChildCount() {
		c := root.NamedChild(i)
		if c.Type() != "comment" {
			break
		}

		if text := l.text(c); strings.Contains(text, "<auto-generated") || strings.Contains(text, "<autogenerated") {
			return true
		}
	}

	return false
}

// hasGeneratedAttribute reports whether a declaration carries [GeneratedCode].
func (l *lowering) hasGeneratedAttribute(n sitter.Node) bool {
	for i := range n.NamedChildCount() {
		list := n.NamedChild(i)
		if list.Type() != "attribute_list" {
			continue
		}

		for j := range list.NamedChildCount() {
			attr := list.NamedChild(j)
			if attr.Type() != "attribute" {
				continue
			}

			if isGeneratedCodeAttribute(l.text(attr.ChildByFieldName("name"))) {
				return true
			}
		}
	}

	return false
}

func isGeneratedCodeAttribute(name string) bool {
	name = compact(name)
	if i := strings.LastIndexAny(name, ".:"); i >= 0 {
		name = name[i+1:]
	}

	return name == "GeneratedCode" || name == "GeneratedCodeAttribute"
}
