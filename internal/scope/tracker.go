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

package scope

import (
	"fillmore-labs.com/subguard/internal/subscription"
	"fillmore-labs.com/subguard/internal/teardown"
	"fillmore-labs.com/subguard/internal/tsast"
)

// Classifier decides which classes open an analysis scope.
type Classifier interface {
	IsAnalyzed(c tsast.Class) bool
}

// Reporter consumes a scope when its class is exited.
type Reporter interface {
	Report(s *Scope)
}

// Tracker maintains the stack of open analysis scopes during a file traversal.
//
// Entering an analyzed class pushes a fresh [Scope], exiting it pops the scope and hands
// it to the [Reporter]. Members and calls update the innermost open scope and are ignored
// while no scope is open.
type Tracker struct {
	classifier Classifier
	matcher    subscription.Matcher
	reporter   Reporter
	stack      []*Scope
}

var _ tsast.Visitor = (*Tracker)(nil)

// NewTracker creates a [Tracker] for one file traversal.
func NewTracker(classifier Classifier, matcher subscription.Matcher, reporter Reporter) *Tracker {
	return &Tracker{
		classifier: classifier,
		matcher:    matcher,
		reporter:   reporter,
	}
}

// Idle returns true when no scope is open.
func (t *Tracker) Idle() bool { return len(t.stack) == 0 }

// Depth returns the number of open scopes.
func (t *Tracker) Depth() int { return len(t.stack) }

// EnterClass implements [tsast.Visitor].
func (t *Tracker) EnterClass(c tsast.Class) {
	if !t.classifier.IsAnalyzed(c) {
		return
	}

	t.stack = append(t.stack, &Scope{Class: c})
}

// ExitClass implements [tsast.Visitor].
func (t *Tracker) ExitClass(c tsast.Class) {
	s := t.current()
	if s == nil || !s.Owns(c) {
		return // not analyzed
	}

	t.stack[len(t.stack)-1] = nil
	t.stack = t.stack[:len(t.stack)-1]

	t.reporter.Report(s)
}

// Member implements [tsast.Visitor].
func (t *Tracker) Member(m tsast.Member) {
	s := t.current()
	if s == nil {
		return
	}

	if teardown.IsTeardown(m) {
		s.HasTeardownMethod = true
	}
}

// Call implements [tsast.Visitor].
func (t *Tracker) Call(c tsast.Call) {
	s := t.current()
	if s == nil || !subscription.IsSubscription(c) {
		return
	}

	switch t.matcher.Classify(c) {
	case subscription.Covered:
		s.SawCoveredSubscription = true

	case subscription.Bare:
		s.Pending = append(s.Pending, c)
	}
}

func (t *Tracker) current() *Scope {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}
