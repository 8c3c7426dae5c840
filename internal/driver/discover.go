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

package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/src-d/enry/v2"
)

const language = "C#"

// Discover returns the C# source files below roots in sorted order.
//
// Directories named in exclude, hidden directories and vendored paths are
// skipped. Files given explicitly in roots are always included.
func Discover(roots, exclude []string) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover: %w", err)
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(root))
			continue
		}

		walk := func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if rel != "." && skipDir(rel, d.Name(), exclude) {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && isCSharp(d.Name()) {
				files = append(files, path)
			}

			return nil
		}

		if err := filepath.WalkDir(root, walk); err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func skipDir(rel, name string, exclude []string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(exclude, name) || enry.IsVendor(rel+"/")
}

func isCSharp(name string) bool {
	return slices.Contains(enry.GetLanguagesByExtension(name, nil, nil), language)
}
