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

// Package source discovers the TypeScript files to analyze.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/subguard/internal/tsast"
)

const nodeModules = "node_modules"

// Filter selects the files returned by [Discover].
type Filter struct {
	// Tests includes *.spec.ts and *.test.ts files.
	Tests bool

	// Exclude lists glob patterns matched against slash-separated paths relative to the
	// discovery root and against base names. A trailing "/**" matches a directory and its contents.
	Exclude []string

	// SkipPackages skips subdirectories containing Go files.
	SkipPackages bool
}

// Discover returns the sorted TypeScript files below root. A root naming a file is returned
// as is when it is a TypeScript source.
func Discover(root string, filter Filter) ([]string, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("can't discover sources: %w", err)
	}

	if !fi.IsDir() {
		if !tsast.IsTypeScript(root) {
			return nil, fmt.Errorf("%s: %w", root, tsast.ErrUnsupportedFile)
		}

		return []string{root}, nil
	}

	var files []string

	err = filepath.WalkDir(root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, file)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if file == root {
				return nil
			}

			if filter.skipDir(file, rel, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if filter.accept(rel, d.Name()) {
			files = append(files, file)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't discover sources in %s: %w", root, err)
	}

	slices.Sort(files)

	return files, nil
}

func (f Filter) skipDir(dir, rel, name string) bool {
	if name == nodeModules || strings.HasPrefix(name, ".") {
		return true
	}

	if f.excluded(rel, name) {
		return true
	}

	return f.SkipPackages && hasGoFiles(dir)
}

func (f Filter) accept(rel, name string) bool {
	if !tsast.IsTypeScript(name) {
		return false
	}

	if !f.Tests && IsTest(name) {
		return false
	}

	return !f.excluded(rel, name)
}

func (f Filter) excluded(rel, name string) bool {
	for _, pattern := range f.Exclude {
		if dir, ok := strings.CutSuffix(pattern, "/**"); ok {
			pattern = dir
		}

		if match(pattern, rel) || match(pattern, name) {
			return true
		}
	}

	return false
}

// match ignores malformed patterns.
func match(pattern, name string) bool {
	ok, _ := path.Match(pattern, name)

	return ok
}

// IsTest returns true for *.spec.* and *.test.* TypeScript files.
func IsTest(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	return strings.HasSuffix(stem, ".spec") || strings.HasSuffix(stem, ".test")
}

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	return slices.ContainsFunc(entries, func(e fs.DirEntry) bool {
		name := e.Name()

		// external test packages are skipped by the analyzer, their directory belongs to the parent
		return !e.IsDir() && filepath.Ext(name) == ".go" && !strings.HasSuffix(name, "_test.go")
	})
}
