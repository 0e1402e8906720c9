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

package analyzer_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/subguard/analyzer"
)

// runAnalyzer runs a on the Go package in testdata/src/dir and returns
// the base names of files with diagnostics.
func runAnalyzer(t *testing.T, a *analysis.Analyzer, dir string) []string {
	t.Helper()

	fset := token.NewFileSet()
	pkgDir := filepath.Join("testdata", "src", dir)

	matches, err := filepath.Glob(filepath.Join(pkgDir, "*.go"))
	if err != nil || len(matches) == 0 {
		t.Fatalf("No Go files in %s: %v", pkgDir, err)
	}

	var files []*ast.File

	for _, name := range matches {
		f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("Can't parse %s: %v", name, err)
		}

		files = append(files, f)
	}

	var diagnosed []string

	p := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    files,
		Pkg:      types.NewPackage("example.com/"+dir, files[0].Name.Name),
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)
			if !pos.IsValid() {
				t.Errorf("Diagnostic %q without valid position", d.Message)
			}

			diagnosed = append(diagnosed, filepath.Base(pos.Filename))
		},
	}

	if _, err := a.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	slices.Sort(diagnosed)

	return diagnosed
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    []string
	}{
		{
			name: "Default",
			want: []string{"clock.component.ts"},
		},
		{
			name:    "Lexical",
			options: WithLexical(true),
			want:    []string{"clock.component.ts", "legacy.component.ts"},
		},
		{
			name:    "Tests",
			options: WithTests(true),
			want:    []string{"clock.component.spec.ts", "clock.component.ts"},
		},
		{
			name:    "Exclude",
			options: Options{WithLexical(true), WithExclude("legacy", "clock.*")},
			want:    nil,
		},
		{
			name:    "Nil",
			options: Options{nil, WithGenerated(false)},
			want:    []string{"clock.component.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)

			if got := runAnalyzer(t, a, "web"); !slices.Equal(got, tt.want) {
				t.Errorf("Got diagnostics in %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	if err := a.Flags.Parse([]string{"-lexical", "-exclude=clock.component.ts"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := runAnalyzer(t, a, "web"), []string{"legacy.component.ts"}; !slices.Equal(got, want) {
		t.Errorf("Got diagnostics in %q, want %q", got, want)
	}
}

func TestAnalyzerDiagnostic(t *testing.T) {
	t.Parallel()

	var diags []analysis.Diagnostic

	a := New()
	a.Run = func(p *analysis.Pass) (any, error) {
		p.Report = func(d analysis.Diagnostic) { diags = append(diags, d) }

		return Analyzer.Run(p)
	}

	runAnalyzer(t, a, "web")

	if len(diags) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diags))
	}

	if d := diags[0]; d.Category != "missingTeardown" || d.End <= d.Pos {
		t.Errorf("Got diagnostic %+v", d)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithGenerated(true), nil, Options{WithLexical(false), WithExclude("dist")}}

	if got, want := opts.LogValue().String(), "[generated=true nil=<nil> lexical=false exclude=[dist]]"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
