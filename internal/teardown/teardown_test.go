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

package teardown_test

import (
	"testing"

	. "fillmore-labs.com/subguard/internal/teardown"
	"fillmore-labs.com/subguard/internal/testsource"
)

func TestIsTeardown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want bool
	}{
		{"method", "ngOnDestroy() {}", true},
		{"public", "public ngOnDestroy(): void { this.done.next(); }", true},
		{"async", "async ngOnDestroy() {}", true},
		{"case", "ngondestroy() {}", false},
		{"other", "ngOnInit() {}", false},
		{"field", "ngOnDestroy = () => {};", false},
		{"getter", "get ngOnDestroy() { return 1; }", false},
		{"string_key", "'ngOnDestroy'() {}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, testsource.Component(tt.body))

			var c testsource.Collect
			f.Walk(&c)

			if len(c.Members) != 1 {
				t.Fatalf("Got %d members, want 1", len(c.Members))
			}

			if got := IsTeardown(c.Members[0]); got != tt.want {
				t.Errorf("IsTeardown(%s %q) = %v, want %v", c.Members[0].Kind, c.Members[0].Name, got, tt.want)
			}
		})
	}
}
