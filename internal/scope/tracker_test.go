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

package scope_test

import (
	"testing"

	"fillmore-labs.com/subguard/internal/classify"
	. "fillmore-labs.com/subguard/internal/scope"
	"fillmore-labs.com/subguard/internal/subscription"
	"fillmore-labs.com/subguard/internal/testsource"
)

type recorder struct{ scopes []*Scope }

func (r *recorder) Report(s *Scope) { r.scopes = append(r.scopes, s) }

type summary struct {
	class    string
	teardown bool
	covered  bool
	pending  int
}

func summarize(s *Scope) summary {
	return summary{s.Class.Name(), s.HasTeardownMethod, s.SawCoveredSubscription, len(s.Pending)}
}

func TestTracker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []summary
	}{
		{
			name: "bare",
			src:  "@Component({})\nclass C { foo() { this.x.subscribe(v => v); } }",
			want: []summary{{"C", false, false, 1}},
		},
		{
			name: "covered",
			src:  "@Component({})\nclass C { foo() { this.x.pipe(takeUntil(this.d$)).subscribe(); this.y.subscribe(); } }",
			want: []summary{{"C", false, true, 1}},
		},
		{
			name: "teardown_after_call",
			src:  "@Component({})\nclass C { foo() { this.x.subscribe(); } ngOnDestroy() {} }",
			want: []summary{{"C", true, false, 1}},
		},
		{
			name: "not_analyzed",
			src:  "class C { foo() { this.x.subscribe(v => v); } }",
			want: nil,
		},
		{
			name: "other_calls",
			src:  "@Injectable()\nclass S { foo() { this.http.get('/').toPromise(); } }",
			want: []summary{{"S", false, false, 0}},
		},
		{
			name: "siblings",
			src: `@Component({}) class A { foo() { this.x.subscribe(); } }
@Pipe({ name: 'p' }) class B { ngOnDestroy() {} }
class C { bar() { this.y.subscribe(); } }`,
			want: []summary{{"A", false, false, 1}, {"B", true, false, 0}},
		},
		{
			name: "nested_analyzed",
			src: `@Component({})
class Outer {
  foo() {
    @Directive({})
    class Inner {
      ngOnDestroy() {}
      bar() { this.b.subscribe(); }
    }
    this.a.subscribe();
  }
}`,
			want: []summary{{"Inner", true, false, 1}, {"Outer", false, false, 1}},
		},
		{
			name: "anonymous_default_export",
			src:  "@Component({})\nexport default class { foo() { this.x.subscribe(v => v); } }",
			want: []summary{{"", false, false, 1}},
		},
		{
			name: "nested_plain",
			src: `@Component({})
class Outer {
  foo() {
    class Helper {
      run() { this.b.subscribe(); }
    }
    this.a.subscribe();
  }
}`,
			want: []summary{{"Outer", false, false, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, tt.src)

			var r recorder
			tracker := NewTracker(classify.New(), subscription.Lexical{}, &r)

			if !tracker.Idle() {
				t.Fatal("New tracker is not idle")
			}

			f.Walk(tracker)

			if !tracker.Idle() {
				t.Errorf("Tracker has %d open scopes after traversal", tracker.Depth())
			}

			if len(r.scopes) != len(tt.want) {
				t.Fatalf("Got %d reported scopes, want %d", len(r.scopes), len(tt.want))
			}

			for i, s := range r.scopes {
				if got := summarize(s); got != tt.want[i] {
					t.Errorf("Scope %d = %+v, want %+v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestUnguarded(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "@Component({})\nclass C { foo() { this.x.subscribe(); this.y.subscribe(); } }")

	var r recorder
	f.Walk(NewTracker(classify.New(), subscription.Lexical{}, &r))

	if len(r.scopes) != 1 {
		t.Fatalf("Got %d reported scopes, want 1", len(r.scopes))
	}

	s := r.scopes[0]

	if got := len(s.Unguarded()); got != 2 {
		t.Errorf("Got %d unguarded subscriptions, want 2", got)
	}

	s.HasTeardownMethod = true

	if got := len(s.Unguarded()); got != 0 {
		t.Errorf("Got %d unguarded subscriptions with teardown, want 0", got)
	}

	s.HasTeardownMethod, s.SawCoveredSubscription = false, true

	if got := len(s.Unguarded()); got != 0 {
		t.Errorf("Got %d unguarded subscriptions with covered subscription, want 0", got)
	}
}
