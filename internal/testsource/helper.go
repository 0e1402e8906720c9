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

// Package testsource provides utilities for parsing TypeScript source code in tests.
//
// It is designed to simplify testing of the subguard analyzer by handling common
// boilerplate code for parsing source fragments and wrapping them in component classes.
package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/subguard/internal/tsast"
)

const filename = "test.ts"

// Parse parses a TypeScript source into a [tsast.File] named "test.ts".
// The file is closed when the test finishes.
func Parse(tb testing.TB, src string) *tsast.File {
	tb.Helper()

	return ParseFile(tb, filename, src)
}

// ParseFile parses src as the TypeScript file name.
// The file is closed when the test finishes.
func ParseFile(tb testing.TB, name, src string) *tsast.File {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := tsast.Parse(tb.Context(), fset, name, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(f.Close)

	return f
}

// Component wraps a class body fragment in an Angular component class declaration.
// This allows testing member-level code fragments without manually constructing
// the surrounding class scaffolding.
func Component(body string) string {
	const (
		header = "@Component({ selector: 'app-test' })\nexport class TestComponent {\n"
		suffix = "\n}\n"
	)

	return header + body + suffix
}

// Collect records the events delivered by [tsast.File.Walk].
type Collect struct {
	Events  []string
	Classes []tsast.Class
	Members []tsast.Member
	Calls   []tsast.Call
}

// EnterClass implements [tsast.Visitor].
func (c *Collect) EnterClass(class tsast.Class) {
	c.Events = append(c.Events, "enter "+class.Name())
	c.Classes = append(c.Classes, class)
}

// ExitClass implements [tsast.Visitor].
func (c *Collect) ExitClass(class tsast.Class) {
	c.Events = append(c.Events, "exit "+class.Name())
}

// Member implements [tsast.Visitor].
func (c *Collect) Member(m tsast.Member) {
	c.Events = append(c.Events, m.Kind.String()+" "+m.Name)
	c.Members = append(c.Members, m)
}

// Call implements [tsast.Visitor].
func (c *Collect) Call(call tsast.Call) {
	c.Events = append(c.Events, "call "+call.Method())
	c.Calls = append(c.Calls, call)
}
