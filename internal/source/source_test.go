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

package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/subguard/internal/source"
	"fillmore-labs.com/subguard/internal/tsast"
)

func tree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()

	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Can't create directory for %s: %v", name, err)
		}

		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return root
}

func relative(t *testing.T, root string, files []string) []string {
	t.Helper()

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("Can't relativize %s: %v", f, err)
		}

		rel = append(rel, filepath.ToSlash(r))
	}

	return rel
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := tree(t,
		"main.go",
		"web/app.component.ts",
		"web/app.component.spec.ts",
		"web/app.component.html",
		"web/types.d.ts",
		"web/view.tsx",
		"web/legacy.stories.ts",
		"web/node_modules/rxjs/index.ts",
		"web/.angular/cache.ts",
		"web/dist/main.ts",
		"api/handler.go",
		"api/client.ts",
		"e2e/e2e_test.go",
		"e2e/page.ts",
	)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "default",
			filter: Filter{},
			want: []string{
				"api/client.ts",
				"e2e/page.ts",
				"web/app.component.ts",
				"web/dist/main.ts",
				"web/legacy.stories.ts",
				"web/view.tsx",
			},
		},
		{
			name:   "tests",
			filter: Filter{Tests: true},
			want: []string{
				"api/client.ts",
				"e2e/page.ts",
				"web/app.component.spec.ts",
				"web/app.component.ts",
				"web/dist/main.ts",
				"web/legacy.stories.ts",
				"web/view.tsx",
			},
		},
		{
			name:   "exclude",
			filter: Filter{Exclude: []string{"web/dist/**", "*.stories.ts"}},
			want: []string{
				"api/client.ts",
				"e2e/page.ts",
				"web/app.component.ts",
				"web/view.tsx",
			},
		},
		{
			name:   "packages",
			filter: Filter{SkipPackages: true},
			want: []string{
				"e2e/page.ts",
				"web/app.component.ts",
				"web/dist/main.ts",
				"web/legacy.stories.ts",
				"web/view.tsx",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := Discover(root, tt.filter)
			if err != nil {
				t.Fatalf("Discover failed: %v", err)
			}

			if got := relative(t, root, files); !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFile(t *testing.T) {
	t.Parallel()

	root := tree(t, "app.component.spec.ts", "index.html")

	spec := filepath.Join(root, "app.component.spec.ts")

	files, err := Discover(spec, Filter{})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if want := []string{spec}; !slices.Equal(files, want) {
		t.Errorf("Got %q, want %q", files, want)
	}

	if _, err := Discover(filepath.Join(root, "index.html"), Filter{}); !errors.Is(err, tsast.ErrUnsupportedFile) {
		t.Errorf("Got error %v, want %v", err, tsast.ErrUnsupportedFile)
	}

	if _, err := Discover(filepath.Join(root, "missing"), Filter{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestIsTest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"app.component.spec.ts", true},
		{"util.test.tsx", true},
		{"app.component.ts", false},
		{"inspector.ts", false},
	}

	for _, tt := range tests {
		if got := IsTest(tt.name); got != tt.want {
			t.Errorf("IsTest(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
