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

// Package scope tracks the analysis state of Angular classes during a traversal.
package scope

import "fillmore-labs.com/subguard/internal/tsast"

// Scope is the analysis state of one open analyzed class.
type Scope struct {
	// Class is the class declaration owning this scope.
	Class tsast.Class

	// HasTeardownMethod is set when the class declares ngOnDestroy.
	HasTeardownMethod bool

	// SawCoveredSubscription is set when any subscription in the class is piped
	// through a teardown operator. One covered subscription exempts the whole class.
	SawCoveredSubscription bool

	// Pending holds the bare subscriptions in document order.
	Pending []tsast.Call
}

// Owns returns true if c is the class declaration owning the scope.
func (s *Scope) Owns(c tsast.Class) bool {
	return s.Class.Pos() == c.Pos() && s.Class.End() == c.End()
}

// Unguarded returns the subscriptions to report, which is all pending subscriptions
// unless the class has a teardown guarantee.
func (s *Scope) Unguarded() []tsast.Call {
	if s.HasTeardownMethod || s.SawCoveredSubscription {
		return nil
	}

	return s.Pending
}
