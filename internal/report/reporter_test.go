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

package report_test

import (
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subguard/internal/classify"
	. "fillmore-labs.com/subguard/internal/report"
	"fillmore-labs.com/subguard/internal/scope"
	"fillmore-labs.com/subguard/internal/subscription"
	"fillmore-labs.com/subguard/internal/testsource"
	"fillmore-labs.com/subguard/internal/tsast"
)

func diagnose(f *tsast.File) []analysis.Diagnostic {
	var diags []analysis.Diagnostic

	r := New(f, func(d analysis.Diagnostic) { diags = append(diags, d) })
	matcher := subscription.NewStructural(f.Imports())
	f.Walk(scope.NewTracker(classify.New(), matcher, r))

	return diags
}

func lines(f *tsast.File, diags []analysis.Diagnostic) []int {
	l := make([]int, 0, len(diags))
	for _, d := range diags {
		l = append(l, f.Position(d.Pos).Line)
	}

	return l
}

func TestReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		lines []int
	}{
		{
			name: "bare",
			body: `  ngOnInit() {
    this.data$.subscribe(value => console.log(value));
  }`,
			lines: []int{4},
		},
		{
			name: "take_until",
			body: `  ngOnInit() {
    this.data$.pipe(takeUntil(this.destroy$)).subscribe(value => console.log(value));
  }`,
			lines: nil,
		},
		{
			name: "take_until_destroyed",
			body: `  ngOnInit() {
    this.data$.pipe(takeUntilDestroyed()).subscribe(value => console.log(value));
  }`,
			lines: nil,
		},
		{
			name: "destroy_handler",
			body: `  ngOnInit() {
    this.data$.subscribe(value => console.log(value));
  }
  ngOnDestroy() {}`,
			lines: nil,
		},
		{
			name: "many",
			body: `  ngOnInit() {
    this.a$.subscribe();
    this.b$.subscribe();
    this.c$.subscribe();
  }`,
			lines: []int{4, 5, 6},
		},
		{
			name: "one_covered_exempts_class",
			body: `  ngOnInit() {
    this.a$.subscribe();
    this.b$.pipe(map(x => x), takeUntil(this.destroy$)).subscribe();
  }`,
			lines: nil,
		},
		{
			name: "nolint",
			body: `  ngOnInit() {
    this.a$.subscribe(); // nolint:subguard
    this.b$.subscribe(
      v => v,
    ); // nolint:all
    this.c$.subscribe(); // nolint:other
  }`,
			lines: []int{8},
		},
		{
			name: "getter_not_teardown",
			body: `  get ngOnDestroy() { return null; }
  ngOnInit() {
    this.a$.subscribe();
  }`,
			lines: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, testsource.Component(tt.body))
			diags := diagnose(f)

			if got := lines(f, diags); !slices.Equal(got, tt.lines) {
				t.Errorf("Got diagnostics on lines %v, want %v", got, tt.lines)
			}

			for _, d := range diags {
				if d.Message != Message {
					t.Errorf("Got message %q, want %q", d.Message, Message)
				}

				if d.Category != MissingTeardown {
					t.Errorf("Got category %q, want %q", d.Category, MissingTeardown)
				}

				if d.End <= d.Pos {
					t.Errorf("Got empty diagnostic range %d-%d", d.Pos, d.End)
				}
			}
		})
	}
}

func TestReportNested(t *testing.T) {
	t.Parallel()

	const src = `@Component({ selector: 'app-outer' })
export class Outer {
  ngOnInit() {
    @Directive({ selector: '[inner]' })
    class Inner {
      ngOnDestroy() {}
      run() { this.inner$.subscribe(); }
    }
    this.outer$.subscribe();
  }
}
`

	f := testsource.Parse(t, src)

	if got, want := lines(f, diagnose(f)), []int{9}; !slices.Equal(got, want) {
		t.Errorf("Got diagnostics on lines %v, want %v", got, want)
	}
}

func TestReportAnonymousDefaultExport(t *testing.T) {
	t.Parallel()

	const src = `@Component({ selector: 'app-anonymous' })
export default class {
  ngOnInit() {
    this.x.subscribe(v => v);
  }
}
`

	f := testsource.Parse(t, src)

	if got, want := lines(f, diagnose(f)), []int{4}; !slices.Equal(got, want) {
		t.Errorf("Got diagnostics on lines %v, want %v", got, want)
	}
}

func TestReportIdempotent(t *testing.T) {
	t.Parallel()

	src := testsource.Component(`  ngOnInit() {
    this.a$.subscribe();
    this.b$.subscribe();
  }`)

	f := testsource.Parse(t, src)

	first, second := diagnose(f), diagnose(f)

	if !slices.EqualFunc(first, second, func(a, b analysis.Diagnostic) bool {
		return a.Pos == b.Pos && a.End == b.End && a.Message == b.Message
	}) {
		t.Errorf("Repeated analysis differs: %v != %v", first, second)
	}
}
